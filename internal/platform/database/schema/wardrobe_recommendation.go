// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package schema

// RecommendationTable represents the 'wardrobe.recommendation' table
type RecommendationTable struct {
	Table              string
	ID                 string
	UserID             string
	EventTitle         string
	EventType          string
	EventDate          string
	EventOn            string
	EventLocation      string
	Clothing           string
	Temperature        string
	WeatherDescription string
	WeatherLocation    string
	WeatherCountry     string
	Prompt             string
	ImageURL           string
	PaymentRequired    string
	Message            string
	CreatedAt          string
}

// Recommendation is the schema definition for wardrobe.recommendation
var Recommendation = RecommendationTable{
	Table:              "wardrobe.recommendation",
	ID:                 "id",
	UserID:             "userid",
	EventTitle:         "eventtitle",
	EventType:          "eventtype",
	EventDate:          "eventdate",
	EventOn:            "eventon",
	EventLocation:      "eventlocation",
	Clothing:           "clothing",
	Temperature:        "temperature",
	WeatherDescription: "weatherdescription",
	WeatherLocation:    "weatherlocation",
	WeatherCountry:     "weathercountry",
	Prompt:             "prompt",
	ImageURL:           "imageurl",
	PaymentRequired:    "paymentrequired",
	Message:            "message",
	CreatedAt:          "createdat",
}

// Columns returns every column in insert order.
func (t RecommendationTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.EventTitle, t.EventType, t.EventDate, t.EventOn,
		t.EventLocation, t.Clothing, t.Temperature, t.WeatherDescription,
		t.WeatherLocation, t.WeatherCountry, t.Prompt, t.ImageURL,
		t.PaymentRequired, t.Message, t.CreatedAt,
	}
}

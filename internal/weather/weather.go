// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

/*
Package weather looks up current conditions for a free-text location.

It wraps the OpenWeatherMap "current weather" endpoint and normalizes the
response into a [Report]. The outfit pipeline only needs the reduced
[Snapshot]; the public /weather endpoint returns the full report.

# Failure Classification

  - Upstream 404 (location could not be geocoded): apperr NOT_FOUND with the
    upstream message.
  - Any other non-2xx: apperr UPSTREAM_ERROR carrying the upstream status.
  - Transport failure: UPSTREAM_ERROR 502, or 504 when the deadline expired.

There is no retry and no caching.
*/
package weather

// # Domain Entities

// Conditions is the primary weather condition reported for the location.
type Conditions struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Wind is the reported wind speed (m/s) and direction (degrees).
type Wind struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

// Report is the normalized current-weather reading for a location.
type Report struct {
	Location    string     `json:"location"`
	Country     string     `json:"country"`
	Temperature float64    `json:"temperature"`
	FeelsLike   float64    `json:"feels_like"`
	Humidity    float64    `json:"humidity"`
	Weather     Conditions `json:"weather"`
	Wind        Wind       `json:"wind"`
}

// Snapshot is the subset of a report captured by an outfit recommendation.
type Snapshot struct {
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Country     string  `json:"country"`
}

// Snapshot reduces the report to what the outfit pipeline records.
func (report *Report) Snapshot() Snapshot {
	return Snapshot{
		Temperature: report.Temperature,
		Description: report.Weather.Description,
		Location:    report.Location,
		Country:     report.Country,
	}
}

// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

/*
Package outfit orchestrates outfit generation for an upcoming event.

# Pipeline

The three stages run strictly in sequence, each under its own deadline:

 1. Weather: look up current conditions for the event location.
 2. Prompt: template an instruction and ask the text model for an image prompt.
 3. Image: render the prompt and store the picture.

Weather and prompt are hard dependencies: a failure aborts the run and no
later stage is called. The image stage may degrade: when the image vendor
answers 402 the run still succeeds with a null image, PaymentRequired set,
and [PaymentRequiredMessage].
*/
package outfit

import (
	"strconv"
	"strings"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/weather"
)

// PaymentRequiredMessage is returned alongside a degraded outfit.
const PaymentRequiredMessage = "The Stability AI service requires payment or has exceeded the free tier limits. You can still see the outfit recommendation text, but the image generation is unavailable."

// # Domain Entities

// Request describes the event an outfit is generated for.
type Request struct {
	EventType     string `json:"eventType"`
	EventLocation string `json:"eventLocation"`
	EventDate     string `json:"eventDate"`
	Clothing      string `json:"clothing,omitempty"`
}

// Image is the outcome of the image stage. Image is nil when generation
// degraded; the JSON key is always present.
type Image struct {
	Image           *string `json:"image"`
	PaymentRequired bool    `json:"paymentRequired,omitempty"`
	Message         string  `json:"message,omitempty"`
}

// Outfit is the generated recommendation.
type Outfit struct {
	Prompt string `json:"prompt"`
	Image
}

// Result is a completed pipeline run.
type Result struct {
	Weather weather.Snapshot `json:"weather"`
	Outfit  Outfit           `json:"outfit"`
}

// # Prompt Template

/*
Instruction builds the text-model instruction for an event.

Description: The clothing clause is included only when a note was given and
the weather clause only when a description is known. Temperatures use the
shortest decimal form (15, not 15.00).
*/
func Instruction(request Request, temperature float64, description string) string {
	var builder strings.Builder

	builder.WriteString("I'm going to ")
	builder.WriteString(request.EventLocation)
	builder.WriteString(" on ")
	builder.WriteString(request.EventDate)
	builder.WriteString(" for a ")
	builder.WriteString(request.EventType)

	if clothing := strings.TrimSpace(request.Clothing); clothing != "" {
		builder.WriteString(" and I have this ")
		builder.WriteString(clothing)
		builder.WriteString(" with me")
	}

	builder.WriteString(". The temperature at ")
	builder.WriteString(request.EventLocation)
	builder.WriteString(" will be ")
	builder.WriteString(strconv.FormatFloat(temperature, 'f', -1, 64))
	builder.WriteString(" degrees Celsius on that day")

	if description != "" {
		builder.WriteString(" and the weather will be ")
		builder.WriteString(description)
	}

	builder.WriteString(". Think about what outfit suits for it. Give me only prompt that I would give it to stability ai such that it would give me outfit image.")

	return builder.String()
}

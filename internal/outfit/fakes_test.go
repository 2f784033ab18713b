// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package outfit

import (
	"context"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/genai"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/storage"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/weather"
)

type fakeWeather struct {
	report *weather.Report
	err    error
	block  bool
	calls  int
}

func (fake *fakeWeather) Lookup(context context.Context, _ string) (*weather.Report, error) {
	fake.calls++
	if fake.block {
		<-context.Done()
		return nil, context.Err()
	}
	if fake.err != nil {
		return nil, fake.err
	}
	return fake.report, nil
}

type fakePrompts struct {
	text         string
	err          error
	instructions []string
}

func (fake *fakePrompts) GeneratePrompt(_ context.Context, instruction string) (string, error) {
	fake.instructions = append(fake.instructions, instruction)
	if fake.err != nil {
		return "", fake.err
	}
	return fake.text, nil
}

type fakeImages struct {
	err     error
	prompts []string
}

func (fake *fakeImages) GenerateImage(_ context.Context, prompt string) (*genai.Image, error) {
	fake.prompts = append(fake.prompts, prompt)
	if fake.err != nil {
		return nil, fake.err
	}
	return &genai.Image{ContentType: "image/jpeg", Data: []byte{0xFF, 0xD8, 0xFF}}, nil
}

// countingStore wraps the inline store and can be told to fail.
type countingStore struct {
	inline *storage.InlineStore
	err    error
	calls  int
	keys   []string
}

func (store *countingStore) Put(context context.Context, key, contentType string, data []byte) (string, error) {
	store.calls++
	store.keys = append(store.keys, key)
	if store.err != nil {
		return "", store.err
	}
	return store.inline.Put(context, key, contentType, data)
}

type fixture struct {
	weather  *fakeWeather
	prompts  *fakePrompts
	images   *fakeImages
	store    *countingStore
	pipeline *Pipeline
}

func newFixture() *fixture {
	fx := &fixture{
		weather: &fakeWeather{report: &weather.Report{
			Location:    "London",
			Country:     "GB",
			Temperature: 15,
			Weather:     weather.Conditions{Main: "Clear", Description: "clear sky"},
		}},
		prompts: &fakePrompts{text: "A tailored navy suit..."},
		images:  &fakeImages{},
		store:   &countingStore{inline: storage.NewInlineStore()},
	}
	fx.pipeline = NewPipeline(fx.weather, fx.prompts, fx.images, fx.store, Timeouts{})
	return fx
}

func londonRequest() Request {
	return Request{EventType: "wedding", EventLocation: "London", EventDate: "March 10, 2025", Clothing: "red shirt"}
}

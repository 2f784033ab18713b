// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	router := chi.NewRouter()
	router.Use(Middleware)
	router.Get("/wardrobe/{id}", func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/wardrobe/{id}", "418"))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/wardrobe/abc", nil))
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/wardrobe/{id}", "418"))

	assert.Equal(t, before+1, after)
}

func TestImageDegraded(t *testing.T) {
	before := testutil.ToFloat64(imageDegradedTotal)
	ImageDegraded()
	assert.Equal(t, before+1, testutil.ToFloat64(imageDegradedTotal))
}

func TestObserveStage(t *testing.T) {
	ObserveStage(StageWeather, time.Now(), errors.New("404"))
	assert.GreaterOrEqual(t, testutil.CollectAndCount(pipelineStageDuration, "wardrobe_outfit_stage_duration_seconds"), 1)
}

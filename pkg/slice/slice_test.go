// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package slice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, slice.Map([]string{"a", "b"}, strings.ToUpper))

	empty := slice.Map[string, string](nil, strings.ToUpper)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
}

func TestFilter(t *testing.T) {
	got := slice.Filter([]string{"spring", "", "fall"}, func(s string) bool { return s != "" })
	assert.Equal(t, []string{"spring", "fall"}, got)
}

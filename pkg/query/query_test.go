// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/pkg/query"
)

func TestStringSlice(t *testing.T) {
	assert.Nil(t, query.StringSlice(nil))
	assert.Equal(t, []string{"summer", "fall"}, query.StringSlice([]string{" Summer , ,fall"}))
	assert.Equal(t, []string{"winter", "spring"}, query.StringSlice([]string{"winter", "spring"}))
}

// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package storage

import (
	"context"
	"encoding/base64"
)

// InlineStore encodes images as data URIs instead of uploading them.
type InlineStore struct{}

// NewInlineStore returns the data-URI backend.
func NewInlineStore() *InlineStore {
	return &InlineStore{}
}

// Put ignores key and returns data:<contentType>;base64,<payload>.
func (store *InlineStore) Put(_ context.Context, _ string, contentType string, data []byte) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

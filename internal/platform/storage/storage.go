// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

/*
Package storage persists generated and uploaded images and returns a
reference the UI can put straight into an <img src>.

Two backends exist:

  - S3Store: any S3-compatible bucket (AWS, R2, MinIO); the reference is a public object URL.
  - InlineStore: no external storage; the reference is a base64 data URI.

The backend is chosen once at startup from configuration.
*/
package storage

import (
	"context"
	"mime"
	"path"
	"strings"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/pkg/slug"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/pkg/uuid"
)

// Store saves image bytes under key and returns a displayable reference.
type Store interface {
	Put(context context.Context, key, contentType string, data []byte) (string, error)
}

// ObjectKey builds a collision-free key of the form
// <prefix>/<uuidv7>[-<slugged name>]<ext>.
func ObjectKey(prefix, filename, contentType string) string {
	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	if filename == "" {
		base = ""
	}

	key := uuid.New()
	if cleaned := slug.From(base); cleaned != "" {
		key += "-" + cleaned
	}

	return strings.Trim(prefix, "/") + "/" + key + extension(filename, contentType)
}

func extension(filename, contentType string) string {
	if ext := strings.ToLower(path.Ext(filename)); ext != "" {
		return ext
	}

	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	}

	if extensions, err := mime.ExtensionsByType(contentType); err == nil && len(extensions) > 0 {
		return extensions[0]
	}
	return ""
}

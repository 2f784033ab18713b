// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

/*
Package genai holds the clients for the two generative-AI vendors the outfit
pipeline depends on.

  - [TextClient]: Gemini generateContent, turns an instruction into an image prompt.
  - [ImageClient]: Stability AI stable-image, turns a prompt into JPEG bytes.

Both clients translate vendor failures into apperr UPSTREAM_ERROR values that
carry the vendor's HTTP status. The one exception is Stability's 402, which is
returned as [ErrPaymentRequired] so callers can degrade instead of failing.
*/
package genai

import (
	"context"
	"errors"
	"net/http"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/apperr"
)

// ErrPaymentRequired reports that the image vendor refused the request
// because the account is out of credits.
var ErrPaymentRequired = errors.New("genai: image generation requires payment")

// maxErrorBody bounds how much of a vendor error body is read.
const maxErrorBody = 64 << 10

func transportError(vendor string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.Upstream(http.StatusGatewayTimeout, vendor+" timed out", err)
	}
	return apperr.Upstream(http.StatusBadGateway, vendor+" is unreachable", err)
}

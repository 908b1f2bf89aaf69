// Package ocr wraps the optical character recognition engine and the
// quality-gated enhanced pass used to recover text from low-contrast scans.
package ocr

import (
	"context"
	"image"
)

// Engine recognizes text in a single page image. Implementations must be
// injected into the pipeline; the caller owns concurrency limits around a
// shared engine.
type Engine interface {
	Recognize(ctx context.Context, img image.Image) (string, error)
}

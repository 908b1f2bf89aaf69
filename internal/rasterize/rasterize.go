// Package rasterize turns invoice documents (PDF, JPEG, PNG bytes) into
// ordered page images for OCR.
package rasterize

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log/slog"

	"github.com/gen2brain/go-fitz"

	"github.com/invoicepipe/invoice-extractor/constants"
)

// Fatal rasterization errors. Callers match with errors.Is.
var (
	// ErrUnsupportedType means the declared media type is not PDF/JPEG/PNG.
	// No bytes are read in this case.
	ErrUnsupportedType = errors.New("unsupported media type")
	// ErrConversion means the PDF renderer could not parse the byte stream.
	ErrConversion = errors.New("pdf conversion failed")
	// ErrDecode means the image bytes are malformed for the declared type.
	ErrDecode = errors.New("image decode failed")
)

// Rasterizer produces ordered page images from document bytes.
type Rasterizer interface {
	Render(ctx context.Context, data []byte, mediaType constants.MediaType) ([]image.Image, error)
}

type Config struct {
	DPI      int // rasterization DPI for PDF pages, default 200
	MaxPages int // 0 = no limit
}

// Renderer is the production Rasterizer: MuPDF (go-fitz) for PDFs, the
// standard codecs for single images.
type Renderer struct {
	cfg    Config
	logger *slog.Logger
}

func NewRenderer(cfg Config, logger *slog.Logger) *Renderer {
	if cfg.DPI <= 0 {
		cfg.DPI = 200
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{cfg: cfg, logger: logger}
}

// Render is a pure transformation: no file handles are retained beyond the call.
func (r *Renderer) Render(ctx context.Context, data []byte, mediaType constants.MediaType) ([]image.Image, error) {
	switch mediaType {
	case constants.PDF:
		return r.renderPDF(ctx, data)
	case constants.JPEG:
		img, err := jpeg.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: jpeg: %v", ErrDecode, err)
		}
		return []image.Image{img}, nil
	case constants.PNG:
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: png: %v", ErrDecode, err)
		}
		return []image.Image{img}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, mediaType)
	}
}

func (r *Renderer) renderPDF(ctx context.Context, data []byte) ([]image.Image, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConversion, err)
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			r.logger.Warn("closing pdf document", "error", cerr)
		}
	}()

	n := doc.NumPage()
	if r.cfg.MaxPages > 0 && n > r.cfg.MaxPages {
		r.logger.Warn("pdf exceeds page cap", "pages", n, "max_pages", r.cfg.MaxPages)
		n = r.cfg.MaxPages
	}

	pages := make([]image.Image, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := doc.ImageDPI(i, float64(r.cfg.DPI))
		if err != nil {
			// A single unrenderable page degrades gracefully; the document
			// fails only when nothing rendered at all.
			r.logger.Warn("pdf page render failed", "page", i, "error", err)
			continue
		}
		pages = append(pages, img)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: no pages rendered", ErrConversion)
	}
	return pages, nil
}

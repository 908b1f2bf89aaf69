package extract

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/invoicepipe/invoice-extractor/constants"
	"github.com/invoicepipe/invoice-extractor/internal/ner"
	"github.com/invoicepipe/invoice-extractor/internal/ocr"
	"github.com/invoicepipe/invoice-extractor/internal/rasterize"
)

// Config tunes the extraction pipeline.
type Config struct {
	// MinTextLen is the non-whitespace character threshold below which a
	// page is re-run through OCR on an enhanced image.
	MinTextLen int
}

// Pipeline turns a document byte stream into an extraction record. It owns
// the rasterize, OCR, and field-extraction stages; entity recognition is
// optional and only consulted when the regex strategies come up empty.
type Pipeline struct {
	raster     rasterize.Rasterizer
	engine     ocr.Engine
	recognizer ner.Recognizer
	cfg        Config
	logger     *slog.Logger
	now        func() time.Time
}

// NewPipeline wires the pipeline stages. recognizer may be nil, in which case
// entity fallback strategies are skipped.
func NewPipeline(raster rasterize.Rasterizer, engine ocr.Engine, recognizer ner.Recognizer, cfg Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinTextLen <= 0 {
		cfg.MinTextLen = ocr.DefaultMinTextLen
	}
	return &Pipeline{
		raster:     raster,
		engine:     engine,
		recognizer: recognizer,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}
}

// RunResult is Extract plus the intermediate artifacts callers persist for
// job auditing.
type RunResult struct {
	Record Record
	Text   string
	Pages  int
}

// Extract runs the full pipeline over one document. Rasterization errors
// propagate as the rasterize package sentinels; a document whose pages all
// OCR to nothing fails with ErrNoTextExtracted. Field extraction itself
// cannot fail.
func (p *Pipeline) Extract(ctx context.Context, data []byte, mediaType constants.MediaType) (Record, error) {
	res, err := p.Run(ctx, data, mediaType)
	return res.Record, err
}

// Run is Extract with the cleaned OCR text and page count included.
func (p *Pipeline) Run(ctx context.Context, data []byte, mediaType constants.MediaType) (RunResult, error) {
	images, err := p.raster.Render(ctx, data, mediaType)
	if err != nil {
		return RunResult{}, err
	}

	texts := make([]string, 0, len(images))
	for i, img := range images {
		text := ocr.PageText(ctx, p.engine, img, p.cfg.MinTextLen, p.logger.With("page", i+1))
		texts = append(texts, text)
	}

	cleaned := ocr.Normalize(ocr.ConcatPages(texts))
	if strings.TrimSpace(cleaned) == "" {
		return RunResult{}, ErrNoTextExtracted
	}

	entities := p.recognizeEntities(ctx, cleaned)
	doc := NewDocument(cleaned, entities, p.now())
	rec, sources := Assemble(doc)

	if err := rec.Validate(); err != nil {
		p.logger.Error("extraction record failed schema validation", "error", err)
	}
	p.logger.Info("extraction complete",
		"pages", len(images),
		"vendor_source", sources["vendor_name"],
		"number_source", sources["invoice_number"],
		"date_source", sources["invoice_date"],
		"amount_source", sources["amount"])
	return RunResult{Record: rec, Text: cleaned, Pages: len(images)}, nil
}

// recognizeEntities asks the optional recognizer for entities. Failures are
// logged and swallowed; extraction proceeds without entity fallbacks.
func (p *Pipeline) recognizeEntities(ctx context.Context, text string) []ner.Entity {
	if p.recognizer == nil {
		return nil
	}
	entities, err := p.recognizer.Recognize(ctx, text)
	if err != nil {
		p.logger.Warn("entity recognition failed", "error", err)
		return nil
	}
	return entities
}

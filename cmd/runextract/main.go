package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/invoicepipe/invoice-extractor/constants"
	"github.com/invoicepipe/invoice-extractor/internal/common"
	"github.com/invoicepipe/invoice-extractor/internal/extract"
	"github.com/invoicepipe/invoice-extractor/internal/ner"
	"github.com/invoicepipe/invoice-extractor/internal/ner/openai"
	"github.com/invoicepipe/invoice-extractor/internal/ocr"
	"github.com/invoicepipe/invoice-extractor/internal/rasterize"
)

// runextract runs the extraction pipeline over a single file and prints the
// resulting record as JSON. No database involved.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <file>")
		os.Exit(2)
	}
	path := os.Args[1]

	mediaType := constants.MapExtToMediaType(filepath.Ext(path))
	if mediaType == "" {
		logger.Error("unsupported file extension", "path", path)
		os.Exit(2)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()

	renderer := rasterize.NewRenderer(rasterize.Config{
		DPI:      cfg.Extract.DPI,
		MaxPages: cfg.Extract.MaxPages,
	}, logger)
	engine := ocr.NewTesseract(ocr.Config{
		Tesseract:   cfg.OCR.Tesseract,
		Lang:        cfg.OCR.TesseractLang,
		TessdataDir: cfg.OCR.TessdataDir,
		PSM:         cfg.OCR.PSM,
		OEM:         cfg.OCR.OEM,
	}, logger)

	var recognizer ner.Recognizer
	if cfg.NER.APIKey != "" {
		recognizer = openai.NewClient(openai.Config{
			APIKey:      cfg.NER.APIKey,
			BaseURL:     cfg.NER.BaseURL,
			Model:       cfg.NER.Model,
			Temperature: cfg.NER.Temperature,
			Timeout:     cfg.NER.Timeout,
		}, logger)
	}

	pipeline := extract.NewPipeline(renderer, engine, recognizer,
		extract.Config{MinTextLen: cfg.Extract.MinTextLen}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	rec, err := pipeline.Extract(ctx, data, mediaType)
	dur := time.Since(start)
	if err != nil {
		logger.Error("extraction failed", "path", path, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		logger.Error("marshal record", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
	logger.Info("extraction OK", "path", path, "duration_ms", dur.Milliseconds())
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invoicepipe/invoice-extractor/constants"
	"github.com/invoicepipe/invoice-extractor/gen/ent"
	"github.com/invoicepipe/invoice-extractor/internal/async"
	"github.com/invoicepipe/invoice-extractor/internal/common"
	"github.com/invoicepipe/invoice-extractor/internal/export"
	"github.com/invoicepipe/invoice-extractor/internal/extract"
	"github.com/invoicepipe/invoice-extractor/internal/ingest"
	"github.com/invoicepipe/invoice-extractor/internal/invoices"
	"github.com/invoicepipe/invoice-extractor/internal/ner"
	"github.com/invoicepipe/invoice-extractor/internal/ner/openai"
	"github.com/invoicepipe/invoice-extractor/internal/ocr"
	"github.com/invoicepipe/invoice-extractor/internal/rasterize"
	repo "github.com/invoicepipe/invoice-extractor/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

// batchProcessor adapts the invoices service to the queue.
type batchProcessor struct {
	svc        *invoices.Service
	processed  atomic.Int64
	duplicates atomic.Int64
	failures   atomic.Int64
}

func (p *batchProcessor) ProcessFile(ctx context.Context, job async.Job) error {
	data, err := os.ReadFile(job.Path)
	if err != nil {
		p.failures.Add(1)
		return err
	}
	res, err := p.svc.ProcessDocument(ctx, data, filepath.Base(job.Path), job.MediaType)
	if err != nil {
		p.failures.Add(1)
		return err
	}
	if res.Duplicate {
		p.duplicates.Add(1)
	} else {
		p.processed.Add(1)
	}
	return nil
}

func main() {
	var (
		inmem = flag.Bool("inmem", false, "use in-memory SQLite instead of DB_URL")
		dir   = flag.String("dir", "", "directory to process invoices from (required)")
		out   = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		watch = flag.Bool("watch", false, "keep watching the directory for new documents until interrupted")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "invoices.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	entc, pool, err := openDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	vendorRepo := repo.NewVendorRepository(entc, logger)
	invoiceRepo := repo.NewInvoiceRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

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
		logger.Info("entity recognizer initialized", "model", cfg.NER.Model)
	} else {
		logger.Warn("OPENAI_API_KEY not configured, entity fallback disabled")
	}

	pipeline := extract.NewPipeline(renderer, engine, recognizer,
		extract.Config{MinTextLen: cfg.Extract.MinTextLen}, logger)
	service := invoices.NewService(pipeline, vendorRepo, invoiceRepo, jobsRepo, logger)

	processor := &batchProcessor{svc: service}
	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Server.Workers),
		async.WithQueueSize(512),
		async.WithProcessTimeout(cfg.Server.UploadTimeout),
	)

	scanned := 0
	matched := 0
	err = filepath.WalkDir(*dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		scanned++
		mediaType := constants.MapExtToMediaType(filepath.Ext(path))
		if mediaType == "" {
			return nil
		}
		matched++
		return queue.Enqueue(ctx, async.Job{
			Path:        path,
			MediaType:   mediaType,
			SubmittedAt: time.Now(),
		})
	})
	if err != nil {
		logger.Error("failed to walk directory", "dir", *dir, "error", err)
		os.Exit(1)
	}

	if *watch {
		watchCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		paths, errs, err := ingest.StartWatcher(watchCtx, ingest.WatchConfig{
			Roots:    []string{*dir},
			Debounce: 500 * time.Millisecond,
		})
		if err != nil {
			logger.Error("failed to start watcher", "dir", *dir, "error", err)
			os.Exit(1)
		}
		logger.Info("watching for new documents", "dir", *dir)
	loop:
		for {
			select {
			case path, ok := <-paths:
				if !ok {
					break loop
				}
				mediaType := constants.MapExtToMediaType(filepath.Ext(path))
				if mediaType == "" {
					continue
				}
				matched++
				_ = queue.Enqueue(watchCtx, async.Job{
					Path:        path,
					MediaType:   mediaType,
					SubmittedAt: time.Now(),
				})
			case werr := <-errs:
				if werr != nil {
					logger.Warn("watcher error", "error", werr)
				}
			case <-watchCtx.Done():
				break loop
			}
		}
	}
	queue.Shutdown(ctx)

	logger.Info("exporting to XLSX", "output", *out)
	exporter := export.NewService(invoiceRepo, logger)
	xlsxBytes, rows, err := exporter.ExportInvoicesXLSX(ctx, repo.ListInvoicesFilter{})
	if err != nil {
		logger.Error("failed to export invoices", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"scanned", scanned,
		"matched", matched,
		"processed", processor.processed.Load(),
		"duplicates", processor.duplicates.Load(),
		"failures", processor.failures.Load(),
		"exported_rows", rows,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files matched: %d\n", matched)
	fmt.Printf("- Invoices stored: %d\n", processor.processed.Load())
	fmt.Printf("- Duplicates: %d\n", processor.duplicates.Load())
	fmt.Printf("- Failures: %d\n", processor.failures.Load())
	fmt.Printf("- Output: %s\n", *out)
}

func openDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	if inmem || cfg.Database.DSN == "" {
		client, err := repo.OpenSQLite(ctx, repo.InMemoryDSN, logger)
		return client, nil, err
	}
	return repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
}

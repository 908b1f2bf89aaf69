package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	invoicespb "github.com/invoicepipe/invoice-extractor/gen/proto/invoices/v1"
	"github.com/invoicepipe/invoice-extractor/internal/common"
	"github.com/invoicepipe/invoice-extractor/internal/export"
	"github.com/invoicepipe/invoice-extractor/internal/extract"
	"github.com/invoicepipe/invoice-extractor/internal/invoices"
	"github.com/invoicepipe/invoice-extractor/internal/ner"
	"github.com/invoicepipe/invoice-extractor/internal/ner/openai"
	"github.com/invoicepipe/invoice-extractor/internal/ocr"
	"github.com/invoicepipe/invoice-extractor/internal/rasterize"
	repo "github.com/invoicepipe/invoice-extractor/internal/repository"
	svc "github.com/invoicepipe/invoice-extractor/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database.DSN, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

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
	exporter := export.NewService(invoiceRepo, logger)

	invoicesService := svc.NewInvoicesService(service, vendorRepo, invoiceRepo, exporter, logger)
	invoicespb.RegisterInvoicesServiceServer(grpcServer, invoicesService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("invoiced listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}

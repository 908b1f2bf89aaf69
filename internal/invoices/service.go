package invoices

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/invoicepipe/invoice-extractor/constants"
	"github.com/invoicepipe/invoice-extractor/internal/common"
	"github.com/invoicepipe/invoice-extractor/internal/entity"
	"github.com/invoicepipe/invoice-extractor/internal/extract"
	"github.com/invoicepipe/invoice-extractor/internal/repository"
	"github.com/invoicepipe/invoice-extractor/internal/utils"
)

// Extractor runs the document pipeline. Satisfied by *extract.Pipeline.
type Extractor interface {
	Run(ctx context.Context, data []byte, mediaType constants.MediaType) (extract.RunResult, error)
}

// ProcessResult reports what became of one uploaded document.
type ProcessResult struct {
	Invoice   *entity.Invoice
	Duplicate bool
	JobID     uuid.UUID
}

// Service orchestrates extraction and persistence for uploaded documents.
type Service struct {
	extractor Extractor
	vendors   repository.VendorRepository
	invoices  repository.InvoiceRepository
	jobs      repository.ExtractJobRepository
	logger    *slog.Logger
}

func NewService(extractor Extractor, vendors repository.VendorRepository, invoices repository.InvoiceRepository, jobs repository.ExtractJobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		extractor: extractor,
		vendors:   vendors,
		invoices:  invoices,
		jobs:      jobs,
		logger:    logger,
	}
}

// ProcessDocument runs the pipeline over one document and stores the result.
// The vendor is upserted by case-insensitive name; an invoice that already
// exists for (vendor, invoice_number) is returned as a duplicate instead of
// being inserted again. Every call leaves an extract_job row behind, failed
// or not.
func (s *Service) ProcessDocument(ctx context.Context, content []byte, fileName string, mediaType constants.MediaType) (*ProcessResult, error) {
	if len(content) == 0 {
		return nil, common.WrapError(common.ErrInvalidInput, "empty document")
	}

	job, err := s.jobs.Start(ctx, fileName, mediaType)
	if err != nil {
		return nil, err
	}

	res, err := s.extractor.Run(ctx, content, mediaType)
	if err != nil {
		_ = s.jobs.FinishFailure(ctx, job.ID, err.Error())
		return nil, err
	}
	if err := s.jobs.MarkOCROK(ctx, job.ID, res.Text, res.Pages); err != nil {
		s.logger.Warn("job audit update failed", "job_id", job.ID, "error", err)
	}

	vendor, err := s.vendors.UpsertFromRecord(ctx, res.Record)
	if err != nil {
		_ = s.jobs.FinishFailure(ctx, job.ID, err.Error())
		return nil, err
	}

	existing, err := s.invoices.FindByVendorAndNumber(ctx, vendor.ID, res.Record.InvoiceNumber)
	if err != nil {
		_ = s.jobs.FinishFailure(ctx, job.ID, err.Error())
		return nil, err
	}
	raw, err := json.Marshal(res.Record)
	if err != nil {
		raw = nil
	}
	if existing != nil {
		s.logger.Info("duplicate invoice skipped",
			"vendor_id", vendor.ID, "invoice_number", res.Record.InvoiceNumber, "invoice_id", existing.ID)
		if err := s.jobs.FinishParsed(ctx, job.ID, existing.ID, raw); err != nil {
			s.logger.Warn("job audit update failed", "job_id", job.ID, "error", err)
		}
		return &ProcessResult{Invoice: existing, Duplicate: true, JobID: job.ID}, nil
	}

	invoiceDate, err := utils.ParseYMD(res.Record.InvoiceDate)
	if err != nil {
		_ = s.jobs.FinishFailure(ctx, job.ID, err.Error())
		return nil, common.WrapError(common.ErrInternal, "extracted date not in canonical form")
	}
	amount, err := strconv.ParseFloat(res.Record.Amount, 64)
	if err != nil {
		_ = s.jobs.FinishFailure(ctx, job.ID, err.Error())
		return nil, common.WrapError(common.ErrInternal, "extracted amount not in canonical form")
	}

	inv, err := s.invoices.Create(ctx, &repository.CreateInvoiceRequest{
		VendorID:      vendor.ID,
		InvoiceNumber: res.Record.InvoiceNumber,
		InvoiceDate:   invoiceDate,
		Amount:        amount,
		FileName:      fileName,
		MediaType:     mediaType,
	})
	if err != nil {
		_ = s.jobs.FinishFailure(ctx, job.ID, err.Error())
		return nil, err
	}
	if err := s.vendors.AddToTotal(ctx, vendor.ID, amount); err != nil {
		s.logger.Warn("vendor total update failed", "vendor_id", vendor.ID, "error", err)
	}
	if err := s.jobs.FinishParsed(ctx, job.ID, inv.ID, raw); err != nil {
		s.logger.Warn("job audit update failed", "job_id", job.ID, "error", err)
	}

	return &ProcessResult{Invoice: inv, Duplicate: false, JobID: job.ID}, nil
}

package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/invoicepipe/invoice-extractor/constants"
	"github.com/invoicepipe/invoice-extractor/gen/ent"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, fileName string, format constants.MediaType) (*ent.ExtractJob, error)
	MarkOCROK(ctx context.Context, jobID uuid.UUID, ocrText string, pageCount int) error
	FinishParsed(ctx context.Context, jobID, invoiceID uuid.UUID, extracted json.RawMessage) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, fileName string, format constants.MediaType) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetFileName(fileName).
		SetFormat(string(format)).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "file_name", fileName, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "file_name", fileName, "format", format)
	return job, nil
}

func (r *extractJobRepo) MarkOCROK(ctx context.Context, jobID uuid.UUID, ocrText string, pageCount int) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetOcrText(ocrText).
		SetPageCount(pageCount).
		SetStatus(string(constants.JobStatusOCROK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job mark(OCR_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job OCR complete", "job_id", jobID, "page_count", pageCount)
	return nil
}

func (r *extractJobRepo) FinishParsed(ctx context.Context, jobID, invoiceID uuid.UUID, extracted json.RawMessage) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetInvoiceID(invoiceID).
		SetExtractedJSON(extracted).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParsed)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(PARSED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (PARSED)", "job_id", jobID, "invoice_id", invoiceID)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

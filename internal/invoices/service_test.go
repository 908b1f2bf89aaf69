package invoices

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicepipe/invoice-extractor/constants"
	"github.com/invoicepipe/invoice-extractor/gen/ent"
	"github.com/invoicepipe/invoice-extractor/internal/common"
	"github.com/invoicepipe/invoice-extractor/internal/entity"
	"github.com/invoicepipe/invoice-extractor/internal/extract"
	"github.com/invoicepipe/invoice-extractor/internal/repository"
)

type fakeExtractor struct {
	result extract.RunResult
	err    error
}

func (f *fakeExtractor) Run(context.Context, []byte, constants.MediaType) (extract.RunResult, error) {
	return f.result, f.err
}

type fakeVendors struct {
	vendor *entity.Vendor
	total  float64
}

func (f *fakeVendors) UpsertFromRecord(context.Context, extract.Record) (*entity.Vendor, error) {
	return f.vendor, nil
}

func (f *fakeVendors) List(context.Context) ([]*entity.Vendor, error) {
	return []*entity.Vendor{f.vendor}, nil
}

func (f *fakeVendors) AddToTotal(_ context.Context, _ uuid.UUID, amount float64) error {
	f.total += amount
	return nil
}

type fakeInvoices struct {
	existing *entity.Invoice
	created  *repository.CreateInvoiceRequest
}

func (f *fakeInvoices) FindByVendorAndNumber(context.Context, uuid.UUID, string) (*entity.Invoice, error) {
	return f.existing, nil
}

func (f *fakeInvoices) Create(_ context.Context, req *repository.CreateInvoiceRequest) (*entity.Invoice, error) {
	f.created = req
	return &entity.Invoice{
		ID:            uuid.New(),
		VendorID:      req.VendorID,
		InvoiceNumber: req.InvoiceNumber,
		InvoiceDate:   req.InvoiceDate,
		Amount:        req.Amount,
		Status:        string(constants.InvoicePendingReview),
		MediaType:     string(req.MediaType),
	}, nil
}

func (f *fakeInvoices) ListInvoices(context.Context, repository.ListInvoicesFilter) ([]*entity.Invoice, error) {
	return nil, nil
}

func (f *fakeInvoices) UpdateStatus(context.Context, uuid.UUID, string) (*entity.Invoice, error) {
	return nil, nil
}

type fakeJobs struct {
	started  bool
	ocrOK    bool
	parsed   bool
	failed   bool
	failure  string
	invoice  uuid.UUID
	rawJSON  json.RawMessage
	jobID    uuid.UUID
	pageText string
}

func (f *fakeJobs) Start(context.Context, string, constants.MediaType) (*ent.ExtractJob, error) {
	f.started = true
	f.jobID = uuid.New()
	return &ent.ExtractJob{ID: f.jobID}, nil
}

func (f *fakeJobs) MarkOCROK(_ context.Context, _ uuid.UUID, text string, _ int) error {
	f.ocrOK = true
	f.pageText = text
	return nil
}

func (f *fakeJobs) FinishParsed(_ context.Context, _ uuid.UUID, invoiceID uuid.UUID, raw json.RawMessage) error {
	f.parsed = true
	f.invoice = invoiceID
	f.rawJSON = raw
	return nil
}

func (f *fakeJobs) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	f.failed = true
	f.failure = message
	return nil
}

func sampleResult() extract.RunResult {
	return extract.RunResult{
		Record: extract.Record{
			VendorName:    "Acme Foods LLC",
			InvoiceNumber: "INV-42",
			InvoiceDate:   "2025-03-08",
			Amount:        "1234.56",
		},
		Text:  "Invoice Number: INV-42",
		Pages: 2,
	}
}

func newTestService(e Extractor, v *fakeVendors, i *fakeInvoices, j *fakeJobs) *Service {
	return NewService(e, v, i, j, nil)
}

func TestProcessDocumentStoresInvoice(t *testing.T) {
	vendorID := uuid.New()
	vendors := &fakeVendors{vendor: &entity.Vendor{ID: vendorID, Name: "Acme Foods LLC"}}
	invoices := &fakeInvoices{}
	jobs := &fakeJobs{}
	svc := newTestService(&fakeExtractor{result: sampleResult()}, vendors, invoices, jobs)

	res, err := svc.ProcessDocument(context.Background(), []byte("pdf bytes"), "inv.pdf", constants.PDF)

	require.NoError(t, err)
	assert.False(t, res.Duplicate)
	assert.Equal(t, "INV-42", res.Invoice.InvoiceNumber)
	assert.Equal(t, vendorID, invoices.created.VendorID)
	assert.Equal(t, time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC), invoices.created.InvoiceDate)
	assert.Equal(t, 1234.56, invoices.created.Amount)
	assert.Equal(t, 1234.56, vendors.total)
	assert.True(t, jobs.ocrOK)
	assert.True(t, jobs.parsed)
	assert.Equal(t, res.Invoice.ID, jobs.invoice)
	assert.JSONEq(t, string(mustMarshal(t, sampleResult().Record)), string(jobs.rawJSON))
}

func TestProcessDocumentDeduplicates(t *testing.T) {
	vendorID := uuid.New()
	existing := &entity.Invoice{ID: uuid.New(), VendorID: vendorID, InvoiceNumber: "INV-42"}
	vendors := &fakeVendors{vendor: &entity.Vendor{ID: vendorID}}
	invoices := &fakeInvoices{existing: existing}
	jobs := &fakeJobs{}
	svc := newTestService(&fakeExtractor{result: sampleResult()}, vendors, invoices, jobs)

	res, err := svc.ProcessDocument(context.Background(), []byte("pdf bytes"), "inv.pdf", constants.PDF)

	require.NoError(t, err)
	assert.True(t, res.Duplicate)
	assert.Equal(t, existing.ID, res.Invoice.ID)
	assert.Nil(t, invoices.created)
	assert.Zero(t, vendors.total)
	assert.True(t, jobs.parsed)
}

func TestProcessDocumentRejectsEmptyContent(t *testing.T) {
	jobs := &fakeJobs{}
	svc := newTestService(&fakeExtractor{}, &fakeVendors{vendor: &entity.Vendor{}}, &fakeInvoices{}, jobs)

	_, err := svc.ProcessDocument(context.Background(), nil, "inv.pdf", constants.PDF)

	require.ErrorIs(t, err, common.ErrInvalidInput)
	assert.False(t, jobs.started)
}

func TestProcessDocumentRecordsExtractionFailure(t *testing.T) {
	jobs := &fakeJobs{}
	svc := newTestService(
		&fakeExtractor{err: extract.ErrNoTextExtracted},
		&fakeVendors{vendor: &entity.Vendor{}}, &fakeInvoices{}, jobs)

	_, err := svc.ProcessDocument(context.Background(), []byte("blank scan"), "inv.png", constants.PNG)

	require.ErrorIs(t, err, extract.ErrNoTextExtracted)
	assert.True(t, jobs.failed)
	assert.Contains(t, jobs.failure, "no text extracted")
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/invoicepipe/invoice-extractor/internal/entity"
	"github.com/invoicepipe/invoice-extractor/internal/repository"
)

type stubInvoiceRepo struct {
	invoices []*entity.Invoice
}

func (s *stubInvoiceRepo) FindByVendorAndNumber(context.Context, uuid.UUID, string) (*entity.Invoice, error) {
	return nil, nil
}

func (s *stubInvoiceRepo) Create(context.Context, *repository.CreateInvoiceRequest) (*entity.Invoice, error) {
	return nil, nil
}

func (s *stubInvoiceRepo) ListInvoices(context.Context, repository.ListInvoicesFilter) ([]*entity.Invoice, error) {
	return s.invoices, nil
}

func (s *stubInvoiceRepo) UpdateStatus(context.Context, uuid.UUID, string) (*entity.Invoice, error) {
	return nil, nil
}

func TestExportInvoicesXLSX(t *testing.T) {
	repo := &stubInvoiceRepo{invoices: []*entity.Invoice{
		{
			VendorName:    "Acme Foods LLC",
			InvoiceNumber: "INV-42",
			InvoiceDate:   time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
			Amount:        1234.56,
			Status:        "Pending for review",
			FileName:      "inv42.pdf",
			MediaType:     "PDF",
		},
		{
			VendorName:    "Baker Supply",
			InvoiceNumber: "7781",
			InvoiceDate:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			Amount:        88,
			Status:        "Approved",
			MediaType:     "PNG",
		},
	}}
	svc := NewService(repo, nil)

	data, rows, err := svc.ExportInvoicesXLSX(context.Background(), repository.ListInvoicesFilter{})

	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	require.NotEmpty(t, data)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	got, err := wb.GetCellValue("Invoices", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Acme Foods LLC", got)
	got, err = wb.GetCellValue("Invoices", "D2")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", got)
	got, err = wb.GetCellValue("Invoices", "B3")
	require.NoError(t, err)
	assert.Equal(t, "7781", got)
}

func TestExportEmptyResultStillProducesWorkbook(t *testing.T) {
	svc := NewService(&stubInvoiceRepo{}, nil)

	data, rows, err := svc.ExportInvoicesXLSX(context.Background(), repository.ListInvoicesFilter{})

	require.NoError(t, err)
	assert.Zero(t, rows)
	assert.NotEmpty(t, data)
}

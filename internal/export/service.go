package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/invoicepipe/invoice-extractor/internal/repository"
)

// Service is a tiny façade over the invoice repository that produces XLSX
// bytes for exports.
type Service struct {
	invoiceRepo repository.InvoiceRepository
	logger      *slog.Logger
}

func NewService(invoiceRepo repository.InvoiceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoiceRepo: invoiceRepo, logger: logger}
}

// ExportInvoicesXLSX returns an XLSX workbook (as bytes) for invoices
// matching the filter, plus the number of data rows written.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, filter repository.ListInvoicesFilter) ([]byte, int, error) {
	start := time.Now()

	invs, err := s.invoiceRepo.ListInvoices(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, 0, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Vendor",
		"Invoice Number",
		"Invoice Date",
		"Amount",
		"Status",
		"Source File",
		"Media Type",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inv := range invs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, inv.VendorName)
		write(2, inv.InvoiceNumber)
		if !inv.InvoiceDate.IsZero() {
			write(3, inv.InvoiceDate.Format("2006-01-02"))
		} else {
			write(3, "")
		}
		write(4, fmt.Sprintf("%.2f", inv.Amount))
		write(5, inv.Status)
		write(6, inv.FileName)
		write(7, inv.MediaType)
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("invoices exported",
		"rows", row-2,
		"duration_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), row - 2, nil
}

package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/invoicepipe/invoice-extractor/constants"
	"github.com/invoicepipe/invoice-extractor/gen/ent"
	"github.com/invoicepipe/invoice-extractor/gen/ent/invoice"
	"github.com/invoicepipe/invoice-extractor/internal/common"
	"github.com/invoicepipe/invoice-extractor/internal/entity"
	"github.com/invoicepipe/invoice-extractor/internal/utils"
)

// CreateInvoiceRequest wraps parameters for creating an invoice row.
type CreateInvoiceRequest struct {
	VendorID      uuid.UUID
	InvoiceNumber string
	InvoiceDate   time.Time
	Amount        float64
	FileName      string
	MediaType     constants.MediaType
}

// ListInvoicesFilter narrows ListInvoices; nil members match everything.
type ListInvoicesFilter struct {
	Status   string
	VendorID *uuid.UUID
	FromDate *time.Time
	ToDate   *time.Time
}

type InvoiceRepository interface {
	// FindByVendorAndNumber returns nil without error when no invoice
	// matches; the number comparison is case-insensitive.
	FindByVendorAndNumber(ctx context.Context, vendorID uuid.UUID, number string) (*entity.Invoice, error)
	Create(ctx context.Context, request *CreateInvoiceRequest) (*entity.Invoice, error)
	ListInvoices(ctx context.Context, filter ListInvoicesFilter) ([]*entity.Invoice, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, newStatus string) (*entity.Invoice, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

func (r *invoiceRepository) FindByVendorAndNumber(ctx context.Context, vendorID uuid.UUID, number string) (*entity.Invoice, error) {
	inv, err := r.client.Invoice.Query().
		Where(invoice.VendorID(vendorID), invoice.InvoiceNumberEqualFold(number)).
		WithVendor().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("invoice lookup failed", "vendor_id", vendorID, "invoice_number", number, "error", err)
		return nil, err
	}
	return utils.ToInvoice(inv), nil
}

func (r *invoiceRepository) Create(ctx context.Context, request *CreateInvoiceRequest) (*entity.Invoice, error) {
	inv, err := r.client.Invoice.Create().
		SetVendorID(request.VendorID).
		SetInvoiceNumber(request.InvoiceNumber).
		SetInvoiceDate(request.InvoiceDate).
		SetAmount(request.Amount).
		SetFileName(request.FileName).
		SetMediaType(string(request.MediaType)).
		Save(ctx)
	if ent.IsConstraintError(err) {
		// Lost the race against a concurrent upload of the same invoice.
		return nil, common.WrapError(common.ErrDuplicate, "invoice already exists for vendor")
	}
	if err != nil {
		r.logger.Error("invoice create failed", "vendor_id", request.VendorID, "invoice_number", request.InvoiceNumber, "error", err)
		return nil, err
	}
	r.logger.Info("invoice created", "invoice_id", inv.ID, "invoice_number", inv.InvoiceNumber)

	// re-read with the vendor edge so the entity carries the vendor name
	inv, err = r.client.Invoice.Query().
		Where(invoice.ID(inv.ID)).
		WithVendor().
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToInvoice(inv), nil
}

func (r *invoiceRepository) ListInvoices(ctx context.Context, filter ListInvoicesFilter) ([]*entity.Invoice, error) {
	q := r.client.Invoice.Query().WithVendor()
	if filter.Status != "" {
		q = q.Where(invoice.Status(filter.Status))
	}
	if filter.VendorID != nil {
		q = q.Where(invoice.VendorID(*filter.VendorID))
	}
	if filter.FromDate != nil {
		q = q.Where(invoice.InvoiceDateGTE(*filter.FromDate))
	}
	if filter.ToDate != nil {
		q = q.Where(invoice.InvoiceDateLTE(*filter.ToDate))
	}
	invs, err := q.Order(invoice.ByInvoiceDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "error", err)
		return nil, err
	}

	result := make([]*entity.Invoice, len(invs))
	for i, inv := range invs {
		result[i] = utils.ToInvoice(inv)
	}
	return result, nil
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus string) (*entity.Invoice, error) {
	if !constants.IsInvoiceStatus(newStatus) {
		return nil, common.WrapError(common.ErrInvalidInput, "invalid invoice status")
	}
	err := r.client.Invoice.UpdateOneID(id).SetStatus(newStatus).Exec(ctx)
	if ent.IsNotFound(err) {
		return nil, common.WrapError(common.ErrNotFound, "invoice not found")
	}
	if err != nil {
		r.logger.Error("invoice status update failed", "invoice_id", id, "error", err)
		return nil, err
	}

	inv, err := r.client.Invoice.Query().
		Where(invoice.ID(id)).
		WithVendor().
		Only(ctx)
	if err != nil {
		return nil, err
	}
	r.logger.Info("invoice status updated", "invoice_id", id, "status", newStatus)
	return utils.ToInvoice(inv), nil
}

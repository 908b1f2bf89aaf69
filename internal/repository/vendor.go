package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/invoicepipe/invoice-extractor/gen/ent"
	"github.com/invoicepipe/invoice-extractor/gen/ent/vendor"
	"github.com/invoicepipe/invoice-extractor/internal/entity"
	"github.com/invoicepipe/invoice-extractor/internal/extract"
	"github.com/invoicepipe/invoice-extractor/internal/utils"
)

type VendorRepository interface {
	// UpsertFromRecord finds the vendor whose name matches the record
	// case-insensitively, creating it when absent. Non-empty contact and
	// banking fields from the record overwrite what is stored.
	UpsertFromRecord(ctx context.Context, rec extract.Record) (*entity.Vendor, error)
	List(ctx context.Context) ([]*entity.Vendor, error)
	AddToTotal(ctx context.Context, id uuid.UUID, amount float64) error
}

type vendorRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewVendorRepository(client *ent.Client, logger *slog.Logger) VendorRepository {
	return &vendorRepository{
		client: client,
		logger: logger,
	}
}

func (r *vendorRepository) UpsertFromRecord(ctx context.Context, rec extract.Record) (*entity.Vendor, error) {
	existing, err := r.client.Vendor.Query().
		Where(vendor.NameEqualFold(rec.VendorName)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		r.logger.Error("vendor lookup failed", "vendor_name", rec.VendorName, "error", err)
		return nil, err
	}

	if ent.IsNotFound(err) {
		builder := r.client.Vendor.Create().
			SetName(rec.VendorName).
			SetAccountNumber(rec.AccountNumber).
			SetItemsSupplied(rec.ItemsSupplied).
			SetCategory(rec.Category).
			SetAddressLine1(rec.AddressLine1).
			SetAddressLine2(rec.AddressLine2).
			SetCity(rec.City).
			SetState(rec.State).
			SetZipCode(rec.ZipCode).
			SetContactEmail(rec.ContactEmail).
			SetContactPhone(rec.ContactPhone).
			SetBankAccountNumber(rec.BankAccountNumber).
			SetRoutingNumber(rec.RoutingNumber).
			SetBankName(rec.BankName).
			SetAccountPayee(rec.AccountPayee)
		created, err := builder.Save(ctx)
		if err != nil {
			r.logger.Error("vendor create failed", "vendor_name", rec.VendorName, "error", err)
			return nil, err
		}
		r.logger.Info("vendor created", "vendor_id", created.ID, "vendor_name", created.Name)
		return utils.ToVendor(created), nil
	}

	// fill in metadata the record actually carries; keep stored values for
	// the rest
	builder := existing.Update()
	if rec.AccountNumber != "" {
		builder = builder.SetAccountNumber(rec.AccountNumber)
	}
	if rec.ItemsSupplied != "" {
		builder = builder.SetItemsSupplied(rec.ItemsSupplied)
	}
	if rec.Category != "" {
		builder = builder.SetCategory(rec.Category)
	}
	if rec.AddressLine1 != "" {
		builder = builder.SetAddressLine1(rec.AddressLine1)
	}
	if rec.AddressLine2 != "" {
		builder = builder.SetAddressLine2(rec.AddressLine2)
	}
	if rec.City != "" {
		builder = builder.SetCity(rec.City)
	}
	if rec.State != "" {
		builder = builder.SetState(rec.State)
	}
	if rec.ZipCode != "" {
		builder = builder.SetZipCode(rec.ZipCode)
	}
	if rec.ContactEmail != "" {
		builder = builder.SetContactEmail(rec.ContactEmail)
	}
	if rec.ContactPhone != "" {
		builder = builder.SetContactPhone(rec.ContactPhone)
	}
	if rec.BankAccountNumber != "" {
		builder = builder.SetBankAccountNumber(rec.BankAccountNumber)
	}
	if rec.RoutingNumber != "" {
		builder = builder.SetRoutingNumber(rec.RoutingNumber)
	}
	if rec.BankName != "" {
		builder = builder.SetBankName(rec.BankName)
	}
	if rec.AccountPayee != "" {
		builder = builder.SetAccountPayee(rec.AccountPayee)
	}
	updated, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("vendor update failed", "vendor_id", existing.ID, "error", err)
		return nil, err
	}
	return utils.ToVendor(updated), nil
}

func (r *vendorRepository) List(ctx context.Context) ([]*entity.Vendor, error) {
	vendors, err := r.client.Vendor.Query().Order(vendor.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list vendors", "error", err)
		return nil, err
	}
	result := make([]*entity.Vendor, len(vendors))
	for i, v := range vendors {
		result[i] = utils.ToVendor(v)
	}
	return result, nil
}

func (r *vendorRepository) AddToTotal(ctx context.Context, id uuid.UUID, amount float64) error {
	err := r.client.Vendor.UpdateOneID(id).AddTotalAmountPurchased(amount).Exec(ctx)
	if err != nil {
		r.logger.Error("failed to update vendor total", "vendor_id", id, "error", err)
	}
	return err
}

package utils

import (
	"fmt"
	"time"

	"github.com/invoicepipe/invoice-extractor/gen/ent"
	invoicespb "github.com/invoicepipe/invoice-extractor/gen/proto/invoices/v1"
	"github.com/invoicepipe/invoice-extractor/internal/entity"
)

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToVendor(e *ent.Vendor) *entity.Vendor {
	return &entity.Vendor{
		ID:                   e.ID,
		Name:                 e.Name,
		AccountNumber:        e.AccountNumber,
		ItemsSupplied:        e.ItemsSupplied,
		Category:             e.Category,
		AddressLine1:         e.AddressLine1,
		AddressLine2:         e.AddressLine2,
		City:                 e.City,
		State:                e.State,
		ZipCode:              e.ZipCode,
		ContactEmail:         e.ContactEmail,
		ContactPhone:         e.ContactPhone,
		BankAccountNumber:    e.BankAccountNumber,
		RoutingNumber:        e.RoutingNumber,
		BankName:             e.BankName,
		AccountPayee:         e.AccountPayee,
		TotalAmountPurchased: e.TotalAmountPurchased,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

// ToInvoice maps an Ent invoice row to its transfer struct. The vendor name
// comes from the vendor edge when it was loaded with the query.
func ToInvoice(e *ent.Invoice) *entity.Invoice {
	inv := &entity.Invoice{
		ID:            e.ID,
		VendorID:      e.VendorID,
		InvoiceNumber: e.InvoiceNumber,
		InvoiceDate:   e.InvoiceDate,
		Amount:        e.Amount,
		Status:        e.Status,
		FileName:      e.FileName,
		MediaType:     e.MediaType,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if e.Edges.Vendor != nil {
		inv.VendorName = e.Edges.Vendor.Name
	}
	return inv
}

func ToExtractJob(e *ent.ExtractJob) *entity.ExtractJob {
	return &entity.ExtractJob{
		ID:            e.ID,
		InvoiceID:     e.InvoiceID,
		FileName:      e.FileName,
		Format:        e.Format,
		StartedAt:     e.StartedAt,
		FinishedAt:    e.FinishedAt,
		Status:        e.Status,
		ErrorMessage:  e.ErrorMessage,
		PageCount:     e.PageCount,
		OCRText:       e.OcrText,
		ExtractedJSON: e.ExtractedJSON,
	}
}

func ToPBInvoice(i *entity.Invoice) *invoicespb.Invoice {
	return &invoicespb.Invoice{
		Id:            i.ID.String(),
		VendorId:      i.VendorID.String(),
		VendorName:    i.VendorName,
		InvoiceNumber: i.InvoiceNumber,
		InvoiceDate:   i.InvoiceDate.Format("2006-01-02"),
		Amount:        fmt.Sprintf("%.2f", i.Amount),
		Status:        i.Status,
		FileName:      i.FileName,
		MediaType:     i.MediaType,
		CreatedAt:     i.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     i.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBVendor(v *entity.Vendor) *invoicespb.Vendor {
	return &invoicespb.Vendor{
		Id:                   v.ID.String(),
		Name:                 v.Name,
		AccountNumber:        v.AccountNumber,
		ItemsSupplied:        v.ItemsSupplied,
		Category:             v.Category,
		AddressLine_1:        v.AddressLine1,
		AddressLine_2:        v.AddressLine2,
		City:                 v.City,
		State:                v.State,
		ZipCode:              v.ZipCode,
		ContactEmail:         v.ContactEmail,
		ContactPhone:         v.ContactPhone,
		BankAccountNumber:    v.BankAccountNumber,
		RoutingNumber:        v.RoutingNumber,
		BankName:             v.BankName,
		AccountPayee:         v.AccountPayee,
		TotalAmountPurchased: fmt.Sprintf("%.2f", v.TotalAmountPurchased),
		CreatedAt:            v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:            v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

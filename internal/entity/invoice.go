package entity

import (
	"time"

	"github.com/google/uuid"
)

// Invoice represents an invoice for data transfer between layers.
type Invoice struct {
	ID            uuid.UUID `json:"id"`
	VendorID      uuid.UUID `json:"vendor_id"`
	VendorName    string    `json:"vendor_name"`
	InvoiceNumber string    `json:"invoice_number"`
	InvoiceDate   time.Time `json:"invoice_date"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	FileName      string    `json:"file_name,omitempty"`
	MediaType     string    `json:"media_type"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vendor represents a vendor for data transfer between layers.
type Vendor struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	AccountNumber        string    `json:"account_number,omitempty"`
	ItemsSupplied        string    `json:"items_supplied,omitempty"`
	Category             string    `json:"category,omitempty"`
	AddressLine1         string    `json:"address_line_1,omitempty"`
	AddressLine2         string    `json:"address_line_2,omitempty"`
	City                 string    `json:"city,omitempty"`
	State                string    `json:"state,omitempty"`
	ZipCode              string    `json:"zip_code,omitempty"`
	ContactEmail         string    `json:"contact_email,omitempty"`
	ContactPhone         string    `json:"contact_phone,omitempty"`
	BankAccountNumber    string    `json:"bank_account_number,omitempty"`
	RoutingNumber        string    `json:"routing_number,omitempty"`
	BankName             string    `json:"bank_name,omitempty"`
	AccountPayee         string    `json:"account_payee,omitempty"`
	TotalAmountPurchased float64   `json:"total_amount_purchased"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

package extract

import "encoding/json"

// Record is the structured output of one extraction call. The four core
// fields always carry non-empty values; secondary fields are empty when no
// labeled match was found.
type Record struct {
	VendorName    string `json:"vendor_name"`
	InvoiceNumber string `json:"invoice_number"`
	InvoiceDate   string `json:"invoice_date"`
	Amount        string `json:"amount"`

	AccountNumber     string `json:"account_number"`
	ItemsSupplied     string `json:"items_supplied"`
	Category          string `json:"category"`
	AddressLine1      string `json:"address_line_1"`
	AddressLine2      string `json:"address_line_2"`
	City              string `json:"city"`
	State             string `json:"state"`
	ZipCode           string `json:"zip_code"`
	ContactEmail      string `json:"contact_email"`
	ContactPhone      string `json:"contact_phone"`
	BankAccountNumber string `json:"bank_account_number"`
	RoutingNumber     string `json:"routing_number"`
	BankName          string `json:"bank_name"`
	AccountPayee      string `json:"account_payee"`
}

// Validate checks the record against the output schema. It reports schema
// violations for callers to log; extraction itself never produces an invalid
// record when the cascades run to completion.
func (r Record) Validate() error {
	raw, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return validateJSONAgainstSchema(raw, recordJSONSchema())
}

// recordJSONSchema describes the extraction output contract. Core fields are
// required and format-constrained; everything else is a free string.
func recordJSONSchema() map[string]any {
	props := map[string]any{
		"vendor_name": map[string]any{
			"type":      "string",
			"minLength": 1,
			"maxLength": 255,
		},
		"invoice_number": map[string]any{
			"type":      "string",
			"minLength": 1,
			"maxLength": 100,
		},
		"invoice_date": map[string]any{
			"type":    "string",
			"pattern": `^\d{4}-\d{2}-\d{2}$`,
		},
		"amount": map[string]any{
			"type":    "string",
			"pattern": `^\d+\.\d{2}$`,
		},
	}
	for _, spec := range secondarySpecs {
		props[spec.name] = map[string]any{"type": "string"}
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"vendor_name", "invoice_number", "invoice_date", "amount"},
		"properties":           props,
	}
}

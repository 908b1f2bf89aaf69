package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleHeaderScenario(t *testing.T) {
	text := "Invoice Date: 03/08/2025\nInvoice Number: INV-42\nTOTAL DUE: $1,234.56\nABC Supply Co\n"

	rec, sources := Assemble(doc(text))

	assert.Equal(t, "2025-03-08", rec.InvoiceDate)
	assert.Equal(t, "INV-42", rec.InvoiceNumber)
	assert.Equal(t, "1234.56", rec.Amount)
	assert.Equal(t, "ABC Supply Co", rec.VendorName)
	assert.Equal(t, SourcePattern, sources["invoice_number"])
	require.NoError(t, rec.Validate())
}

func TestAssembleSecondaryFields(t *testing.T) {
	text := "REMIT TO: Acme Foods LLC\n" +
		"Account Number: AC-9917\n" +
		"Address: 12 Harbor Way\n" +
		"City: Springfield\n" +
		"State: IL\n" +
		"Zip Code: 62704\n" +
		"Email: billing@acmefoods.example\n" +
		"Phone: (217) 555-0134\n" +
		"Bank Name: First National\n" +
		"Routing Number: 071000013\n" +
		"TOTAL DUE: $20.00\n"

	rec, _ := Assemble(doc(text))

	assert.Equal(t, "Acme Foods LLC", rec.VendorName)
	assert.Equal(t, "AC-9917", rec.AccountNumber)
	assert.Equal(t, "12 Harbor Way", rec.AddressLine1)
	assert.Equal(t, "Springfield", rec.City)
	assert.Equal(t, "IL", rec.State)
	assert.Equal(t, "62704", rec.ZipCode)
	assert.Equal(t, "billing@acmefoods.example", rec.ContactEmail)
	assert.Equal(t, "(217) 555-0134", rec.ContactPhone)
	assert.Equal(t, "First National", rec.BankName)
	assert.Equal(t, "071000013", rec.RoutingNumber)
	assert.Empty(t, rec.AddressLine2)
	assert.Empty(t, rec.Category)
}

func TestAssembleBareEmailFallback(t *testing.T) {
	text := "Acme Widgets\nquestions to ap@acme.example anytime\nTOTAL DUE: $5.00\n"

	rec, sources := Assemble(doc(text))

	assert.Equal(t, "ap@acme.example", rec.ContactEmail)
	assert.Equal(t, SourceHeuristic, sources["contact_email"])
}

func TestAssembleDefaultsSatisfySchema(t *testing.T) {
	rec, sources := Assemble(doc("zzz qqq\n"))

	assert.NotEmpty(t, rec.VendorName)
	assert.NotEmpty(t, rec.InvoiceNumber)
	assert.NotEmpty(t, rec.InvoiceDate)
	assert.Equal(t, ZeroAmount, rec.Amount)
	assert.Equal(t, SourceDefault, sources["amount"])
	require.NoError(t, rec.Validate())
}

package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/invoicepipe/invoice-extractor/internal/ner"
)

func TestInvoiceDateFromLabel(t *testing.T) {
	f := extractInvoiceDate(doc("Invoice Date: 03/08/2025\n"))

	assert.Equal(t, "2025-03-08", f.Value)
	assert.Equal(t, SourcePattern, f.Source)
}

func TestInvoiceDateFromDueDateLabel(t *testing.T) {
	f := extractInvoiceDate(doc("Due Date: 12/31/2024\n"))

	assert.Equal(t, "2024-12-31", f.Value)
}

func TestInvoiceDateFromBareDate(t *testing.T) {
	f := extractInvoiceDate(doc("shipped on 7/4/2025 via ground\n"))

	assert.Equal(t, "2025-07-04", f.Value)
}

func TestInvoiceDateSingleDigitComponents(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Invoice Date: 3/8/25\n", "2025-03-08"},
		{"Invoice Date: 7/4/2025\n", "2025-07-04"},
		{"shipped 9/30/2024 overnight\n", "2024-09-30"},
	}
	for _, tt := range tests {
		f := extractInvoiceDate(doc(tt.text))

		assert.Equal(t, tt.want, f.Value, "text %q", tt.text)
		assert.NotEqual(t, SourceDefault, f.Source, "text %q", tt.text)
	}
}

func TestInvoiceDateTwoDigitYear(t *testing.T) {
	f := extractInvoiceDate(doc("Invoice Date: 03/08/25\n"))

	assert.Equal(t, "2025-03-08", f.Value)
}

func TestInvoiceDateFromEntity(t *testing.T) {
	entities := []ner.Entity{{Type: ner.TypeDate, Text: "March 8, 2025", Confidence: 0.8}}
	d := NewDocument("nothing dated here\n", entities, time.Now())

	f := extractInvoiceDate(d)

	assert.Equal(t, "2025-03-08", f.Value)
	assert.Equal(t, SourceNER, f.Source)
}

func TestInvoiceDateDefaultsToToday(t *testing.T) {
	f := extractInvoiceDate(doc("no date anywhere\n"))

	assert.Equal(t, "2025-03-08", f.Value)
	assert.Equal(t, SourceDefault, f.Source)
}

func TestInvoiceDateUnparseableFallsBackToToday(t *testing.T) {
	f := extractInvoiceDate(doc("Invoice Date: 99/99/9999\n"))

	assert.Equal(t, "2025-03-08", f.Value)
	assert.Equal(t, SourceDefault, f.Source)
}

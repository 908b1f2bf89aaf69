package extract

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicepipe/invoice-extractor/internal/ner"
)

func doc(text string) *Document {
	return NewDocument(text, nil, time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC))
}

func TestVendorFromPayableTo(t *testing.T) {
	d := doc("Some Other Header\nMake check payable to: Acme Foods LLC\nTOTAL DUE: $10.00")

	f := extractVendorName(d)

	assert.Equal(t, "Acme Foods LLC", f.Value)
	assert.Equal(t, SourcePattern, f.Source)
}

func TestVendorRemitToCutsAtDBA(t *testing.T) {
	d := doc("REMIT TO: Acme Foods LLC DBA Acme Catering\n")

	f := extractVendorName(d)

	assert.Equal(t, "Acme Foods LLC", f.Value)
}

func TestVendorFromHeaderStripsContactTokens(t *testing.T) {
	d := doc("ABC Supply Co info@abcsupply.com\nBill To Ship To\nWidgets\n")

	f := extractVendorName(d)

	assert.Equal(t, "ABC Supply Co Widgets", f.Value)
	assert.Equal(t, SourceHeuristic, f.Source)
}

func TestVendorFallsBackToOrgEntity(t *testing.T) {
	entities := []ner.Entity{
		{Type: ner.TypeOrg, Text: "Acme Holdings", Confidence: 0.4},
		{Type: ner.TypeOrg, Text: "Acme Foods LLC", Confidence: 0.9},
	}
	d := NewDocument("INVOICE\nBill To Ship To\nCustomer Service\n", entities, time.Now())

	f := extractVendorName(d)

	assert.Equal(t, "Acme Foods LLC", f.Value)
	assert.Equal(t, SourceNER, f.Source)
}

func TestVendorDefaultsToUnknown(t *testing.T) {
	d := doc("INVOICE\nBill To Ship To\nCustomer Service\n")

	f := extractVendorName(d)

	assert.Equal(t, UnknownVendor, f.Value)
	assert.Equal(t, SourceDefault, f.Source)
}

func TestVendorCutAtFirstDigit(t *testing.T) {
	d := doc("Make check payable to: Acme Foods 123 Main Street\n")

	f := extractVendorName(d)

	assert.Equal(t, "Acme Foods", f.Value)
}

func TestVendorTruncatedToStorageLimit(t *testing.T) {
	long := strings.Repeat("A", 300)
	d := doc("Make check payable to: " + long + "\n")

	f := extractVendorName(d)

	require.Len(t, f.Value, 255)
}

func TestVendorStripsTrailingLetterArtifact(t *testing.T) {
	d := doc("REMIT TO: Acme Foods LLC j\n")

	f := extractVendorName(d)

	assert.Equal(t, "Acme Foods LLC", f.Value)
}

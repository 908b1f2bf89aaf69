package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/invoicepipe/invoice-extractor/internal/ner"
)

func TestAmountFromTotalDue(t *testing.T) {
	f := extractAmount(doc("items...\nTOTAL DUE: $1,234.56\n"))

	assert.Equal(t, "1234.56", f.Value)
	assert.Equal(t, SourcePattern, f.Source)
}

func TestAmountFromInvoiceTotalLabel(t *testing.T) {
	f := extractAmount(doc("Invoice Total: 88.00\n"))

	assert.Equal(t, "88.00", f.Value)
}

func TestAmountSumsMultipleSubtotals(t *testing.T) {
	text := "DISHWASHER SUB TOTAL: $50.00\nOTHER SUB TOTAL: $25.50\n"

	f := extractAmount(doc(text))

	assert.Equal(t, "75.50", f.Value)
	assert.Equal(t, SourceHeuristic, f.Source)
}

func TestAmountSingleSubtotalYieldsToTotalLine(t *testing.T) {
	text := "SUB TOTAL: $50.00\nTAX: $5.00\nTOTAL: $55.00\n"

	f := extractAmount(doc(text))

	assert.Equal(t, "50.00", f.Value)
}

func TestAmountLastTokenOnTotalLine(t *testing.T) {
	f := extractAmount(doc("2 widgets 5.00 each total 10.00\n"))

	assert.Equal(t, "10.00", f.Value)
}

func TestAmountFromMoneyEntity(t *testing.T) {
	entities := []ner.Entity{{Type: ner.TypeMoney, Text: "$42.10", Confidence: 0.7}}
	d := NewDocument("no labels here\n", entities, time.Now())

	f := extractAmount(d)

	assert.Equal(t, "42.10", f.Value)
	assert.Equal(t, SourceNER, f.Source)
}

func TestAmountMaxTokenFallback(t *testing.T) {
	f := extractAmount(doc("paid 12.00 then 45.67 remaining\n"))

	assert.Equal(t, "45.67", f.Value)
}

func TestAmountDefaultsToZero(t *testing.T) {
	f := extractAmount(doc("nothing monetary\n"))

	assert.Equal(t, ZeroAmount, f.Value)
	assert.Equal(t, SourceDefault, f.Source)
}

func TestNormalizeAmount(t *testing.T) {
	assert.Equal(t, "1234.56", normalizeAmount("1,234.56"))
	assert.Equal(t, "10.00", normalizeAmount("10.0"))
	assert.Equal(t, "", normalizeAmount("not money"))
	assert.Equal(t, "", normalizeAmount(""))
}

package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/invoicepipe/invoice-extractor/internal/ner"
)

var (
	reInvoiceDateLabel = regexp.MustCompile(`(?i)invoice\s*date[:\s\-]*([\d/\-]+)`)
	reDueDateLabel     = regexp.MustCompile(`(?i)(?:due\s*date|delivery)[:\s\-]*([\d/\-]+)`)
)

// dateLayouts are tried in order against a raw date candidate. Month-first
// slash forms win over day-first ones for ambiguous values, four-digit years
// before two-digit. The non-padded slash layouts accept both "07/04/2025"
// and "7/4/2025".
var dateLayouts = []string{
	"1/2/2006",
	"1/2/06",
	"2/1/2006",
	"2/1/06",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02",
}

var dateStrategies = []Strategy{
	{Name: "invoice-date-label", Source: SourcePattern, Run: func(d *Document) string {
		return firstSubmatch(d.Text, []*regexp.Regexp{reInvoiceDateLabel})
	}},
	{Name: "due-date-label", Source: SourcePattern, Run: func(d *Document) string {
		return firstSubmatch(d.Text, []*regexp.Regexp{reDueDateLabel})
	}},
	{Name: "bare-date", Source: SourcePattern, Run: func(d *Document) string {
		return reBareDate.FindString(d.Text)
	}},
	{Name: "date-entity", Source: SourceNER, Run: func(d *Document) string {
		if e, ok := ner.Best(d.Entities, ner.TypeDate); ok {
			return e.Text
		}
		return ""
	}},
}

// extractInvoiceDate always yields an ISO yyyy-mm-dd value. A raw candidate
// that fails every layout falls back to the current date, same as finding no
// candidate at all.
func extractInvoiceDate(d *Document) Field {
	f := runCascade("invoice_date", d, dateStrategies, func(*Document) string { return "" })
	iso, ok := parseDate(f.Value, d.Now)
	if !ok {
		f.Source = SourceDefault
	}
	f.Value = iso
	return f
}

func parseDate(raw string, now time.Time) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t.Format("2006-01-02"), true
			}
		}
	}
	return now.Format("2006-01-02"), false
}

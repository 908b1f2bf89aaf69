package extract

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/invoicepipe/invoice-extractor/constants"
)

var (
	invoiceNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)invoice\s*number[:\s\-]*([A-Za-z0-9][A-Za-z0-9\-]*)`),
		regexp.MustCompile(`(?i)invoice\s*#[:\s\-]*([A-Za-z0-9][A-Za-z0-9\-]*)`),
		regexp.MustCompile(`(?i)invoice\s*no\.?[:\s\-]*([A-Za-z0-9][A-Za-z0-9\-]*)`),
		regexp.MustCompile(`(?i)bill\s*no\.?[:\s\-]*([A-Za-z0-9][A-Za-z0-9\-]*)`),
	}

	reBareDate   = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`)
	reDigitRun   = regexp.MustCompile(`\d+`)
	reStandalone = regexp.MustCompile(`\b\d{3,}\b`)
)

var invoiceNumberStrategies = []Strategy{
	{Name: "labeled", Source: SourcePattern, Run: numberFromLabels},
	{Name: "date-line", Source: SourceHeuristic, Run: numberFromDateLine},
	{Name: "digit-run", Source: SourceHeuristic, Run: numberFromAnyDigits},
}

func extractInvoiceNumber(d *Document) Field {
	f := runCascade("invoice_number", d, invoiceNumberStrategies, placeholderInvoiceNumber)
	f.Value = clip(f.Value, constants.MaxInvoiceNumberLen)
	return f
}

func numberFromLabels(d *Document) string {
	return firstSubmatch(d.Text, invoiceNumberPatterns)
}

// numberFromDateLine finds the first line carrying a bare slash date and
// takes the second digit run on it, on the theory that header lines often
// read "Date ... Number". With a single run the run itself is returned, even
// when it is part of the date.
func numberFromDateLine(d *Document) string {
	for _, line := range d.Lines {
		if !reBareDate.MatchString(line) {
			continue
		}
		runs := reDigitRun.FindAllString(line, -1)
		if len(runs) >= 2 {
			return runs[1]
		}
		if len(runs) == 1 {
			return runs[0]
		}
	}
	return ""
}

func numberFromAnyDigits(d *Document) string {
	return reStandalone.FindString(d.Text)
}

// placeholderInvoiceNumber makes a synthetic number when nothing in the text
// qualifies. The short random suffix keeps two placeholders generated within
// the same second distinct.
func placeholderInvoiceNumber(d *Document) string {
	return fmt.Sprintf("INV-%d-%s", d.Now.Unix(), uuid.NewString()[:4])
}

// firstSubmatch returns the first capture group of the first pattern that
// matches text.
func firstSubmatch(text string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

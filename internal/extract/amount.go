package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/invoicepipe/invoice-extractor/internal/ner"
)

// ZeroAmount is the sentinel used when no monetary value can be found.
const ZeroAmount = "0.00"

var (
	reTotalDue = regexp.MustCompile(`(?i)(?:total\s+due|grand\s+total)[:\s]*\$?\s*([\d,]+\.\d{2})`)

	amountLabelPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)net\s+invoice[:\s\-]*\$?\s*([\d,]+\.\d{2})`),
		regexp.MustCompile(`(?i)invoice\s+total[:\s\-]*\$?\s*([\d,]+\.\d{2})`),
		regexp.MustCompile(`(?i)total\s+sale[:\s\-]*\$?\s*([\d,]+\.\d{2})`),
		regexp.MustCompile(`(?i)amount\s+due[:\s\-]*\$?\s*([\d,]+\.\d{2})`),
	}

	reSubTotal   = regexp.MustCompile(`(?i)sub\s*total[:\s]*\$?\s*([\d,]+\.\d{2})`)
	reMoneyToken = regexp.MustCompile(`[\d,]+\.\d{2}`)
)

var amountStrategies = []Strategy{
	{Name: "total-due", Source: SourcePattern, Run: func(d *Document) string {
		return normalizeAmount(firstSubmatch(d.Text, []*regexp.Regexp{reTotalDue}))
	}},
	{Name: "amount-labels", Source: SourcePattern, Run: func(d *Document) string {
		return normalizeAmount(firstSubmatch(d.Text, amountLabelPatterns))
	}},
	{Name: "subtotal-sum", Source: SourceHeuristic, Run: amountFromSubtotals},
	{Name: "total-line", Source: SourceHeuristic, Run: amountFromTotalLine},
	{Name: "money-entity", Source: SourceNER, Run: amountFromEntities},
	{Name: "max-token", Source: SourceHeuristic, Run: amountFromMaxToken},
}

func extractAmount(d *Document) Field {
	return runCascade("amount", d, amountStrategies, func(*Document) string { return ZeroAmount })
}

// amountFromSubtotals reconstructs a missing grand total by summing subtotal
// lines. It only fires when at least two subtotals are present; a lone
// subtotal usually sits above a real total line that the next strategy finds.
func amountFromSubtotals(d *Document) string {
	matches := reSubTotal.FindAllStringSubmatch(d.Text, -1)
	if len(matches) < 2 {
		return ""
	}
	var sum float64
	for _, m := range matches {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			return ""
		}
		sum += v
	}
	return fmt.Sprintf("%.2f", sum)
}

// amountFromTotalLine takes the last monetary token on the first line that
// mentions a total. Quantity and unit-price columns come before the extended
// amount, so the last token is the one that matters.
func amountFromTotalLine(d *Document) string {
	for _, line := range d.Lines {
		if !strings.Contains(strings.ToLower(line), "total") {
			continue
		}
		tokens := reMoneyToken.FindAllString(line, -1)
		if len(tokens) > 0 {
			return normalizeAmount(tokens[len(tokens)-1])
		}
	}
	return ""
}

func amountFromEntities(d *Document) string {
	if e, ok := ner.Best(d.Entities, ner.TypeMoney); ok {
		return normalizeAmount(reMoneyToken.FindString(e.Text))
	}
	return ""
}

// amountFromMaxToken is the last resort: the largest monetary token anywhere
// in the document. Known to overshoot on documents where a running balance
// exceeds the invoice total.
func amountFromMaxToken(d *Document) string {
	var (
		max   float64
		found bool
	)
	for _, tok := range reMoneyToken.FindAllString(d.Text, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", ""), 64)
		if err != nil {
			continue
		}
		if !found || v > max {
			max = v
			found = true
		}
	}
	if !found {
		return ""
	}
	return fmt.Sprintf("%.2f", max)
}

// normalizeAmount strips thousands separators and reformats to a plain
// two-decimal string. Anything unparseable normalizes to empty.
func normalizeAmount(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return ""
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%.2f", v)
}

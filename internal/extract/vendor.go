package extract

import (
	"regexp"
	"strings"

	"github.com/invoicepipe/invoice-extractor/constants"
	"github.com/invoicepipe/invoice-extractor/internal/ner"
)

// UnknownVendor is the sentinel vendor name used when every strategy fails.
const UnknownVendor = "Unknown Vendor"

// vendorWindow bounds how many non-blank lines the header heuristic inspects.
const vendorWindow = 5

var (
	reRemitTo   = regexp.MustCompile(`(?im)remit\s+to[:\-]?\s*(.+)`)
	rePayableTo = regexp.MustCompile(`(?im)make\s+check\s+payable\s+to[:\-]?\s*(.+)`)
	reDBA       = regexp.MustCompile(`(?i)\s*\bDBA\b.*$`)

	reEmailToken = regexp.MustCompile(`\S+@\S+`)
	rePhoneToken = regexp.MustCompile(`\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)

	reTrailingLetter = regexp.MustCompile(`(?i)\s+[a-z]$`)
	reFirstDigit     = regexp.MustCompile(`\d`)
)

// headerNoise marks lines in the document header that never name the vendor.
var headerNoise = []string{"invoice", "bill to", "ship to", "billing", "account", "customer", "service", "phone", "total", "page"}

var vendorStrategies = []Strategy{
	{Name: "remit-label", Source: SourcePattern, Run: vendorFromRemitLabel},
	{Name: "header-lines", Source: SourceHeuristic, Run: vendorFromHeader},
	{Name: "org-entity", Source: SourceNER, Run: vendorFromEntities},
}

func extractVendorName(d *Document) Field {
	f := runCascade("vendor_name", d, vendorStrategies, func(*Document) string { return UnknownVendor })
	if f.Source == SourceDefault {
		return f
	}
	cleaned := cleanVendorName(f.Value)
	if cleaned == "" {
		return Field{Name: "vendor_name", Value: UnknownVendor, Source: SourceDefault}
	}
	f.Value = cleaned
	return f
}

// vendorFromRemitLabel looks for explicit remit-to and payable-to labels.
// The name is cut at a DBA marker since everything after it restates the
// trade name.
func vendorFromRemitLabel(d *Document) string {
	for _, re := range []*regexp.Regexp{reRemitTo, rePayableTo} {
		m := re.FindStringSubmatch(d.Text)
		if m == nil {
			continue
		}
		v := strings.TrimSpace(reDBA.ReplaceAllString(m[1], ""))
		if v != "" {
			return v
		}
	}
	return ""
}

// vendorFromHeader scans the first few non-blank lines, drops boilerplate,
// strips email addresses and phone numbers, and joins what remains. The
// strategy declines when the result is empty or just the word INVOICE so the
// cascade can fall through to entity recognition.
func vendorFromHeader(d *Document) string {
	var kept []string
	seen := 0
	for _, line := range d.Lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > vendorWindow {
			break
		}
		if isHeaderNoise(line) {
			continue
		}
		line = reEmailToken.ReplaceAllString(line, "")
		line = rePhoneToken.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
		if len(kept) == 2 {
			break
		}
	}
	v := strings.TrimSpace(strings.Join(kept, " "))
	if strings.EqualFold(v, "invoice") {
		return ""
	}
	return v
}

func vendorFromEntities(d *Document) string {
	if e, ok := ner.Best(d.Entities, ner.TypeOrg); ok {
		return e.Text
	}
	return ""
}

func isHeaderNoise(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range headerNoise {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// cleanVendorName removes OCR artifacts that commonly trail a vendor line: a
// stray single letter, then anything from the first digit on, which is almost
// always the start of a street address run into the name.
func cleanVendorName(v string) string {
	v = reTrailingLetter.ReplaceAllString(v, "")
	if loc := reFirstDigit.FindStringIndex(v); loc != nil {
		v = v[:loc[0]]
	}
	v = strings.TrimSpace(v)
	return clip(v, constants.MaxVendorNameLen)
}

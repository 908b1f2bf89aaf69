package extract

import (
	"regexp"
	"strings"

	"github.com/invoicepipe/invoice-extractor/constants"
)

// secondarySpecs drives the labeled contact, address, and banking lookups.
// Each field is a single line-anchored "Label: value" match with no cascade;
// no match leaves the field empty.
var secondarySpecs = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"account_number", regexp.MustCompile(`(?im)^account\s*(?:number|no\.?|#)[:\s\-]*([\w\-]+)`)},
	{"items_supplied", regexp.MustCompile(`(?im)^items?\s*supplied[:\s\-]*(.+)`)},
	{"category", regexp.MustCompile(`(?im)^category[:\s\-]*(.+)`)},
	{"address_line_1", regexp.MustCompile(`(?im)^address(?:\s*line\s*1)?\s*[:\-]\s*(.+)`)},
	{"address_line_2", regexp.MustCompile(`(?im)^address\s*line\s*2[:\s\-]*(.+)`)},
	{"city", regexp.MustCompile(`(?im)^city[:\s\-]*(.+)`)},
	{"state", regexp.MustCompile(`(?im)^state[:\s\-]*(.+)`)},
	{"zip_code", regexp.MustCompile(`(?im)^zip(?:\s*code)?[:\s\-]*([\w\-]+)`)},
	{"contact_email", regexp.MustCompile(`(?im)^(?:contact\s*)?e?-?mail[:\s]*(\S+@\S+)`)},
	{"contact_phone", regexp.MustCompile(`(?im)^(?:contact\s*)?(?:phone|tel(?:ephone)?)[:\s\-]*([\d\s().\-+]+)`)},
	{"bank_account_number", regexp.MustCompile(`(?im)^bank\s*account\s*(?:number|no\.?)?[:\s\-]*([\w\-]+)`)},
	{"routing_number", regexp.MustCompile(`(?im)^routing\s*(?:number|no\.?)?[:\s\-]*([\w\-]+)`)},
	{"bank_name", regexp.MustCompile(`(?im)^bank\s*name[:\s\-]*(.+)`)},
	{"account_payee", regexp.MustCompile(`(?im)^(?:account\s*)?payee[:\s\-]*(.+)`)},
}

// reBareEmail is the fallback for contact_email when no explicit label is
// present anywhere in the text.
var reBareEmail = regexp.MustCompile(`[\w.+\-]+@[\w\-]+\.[\w.\-]+`)

// extractSecondaryFields runs every labeled lookup and returns the fields in
// declaration order. Values are clipped to the storage limit.
func extractSecondaryFields(d *Document) []Field {
	fields := make([]Field, 0, len(secondarySpecs))
	for _, spec := range secondarySpecs {
		v := firstSubmatch(d.Text, []*regexp.Regexp{spec.pattern})
		src := SourcePattern
		if v == "" && spec.name == "contact_email" {
			v = reBareEmail.FindString(d.Text)
			src = SourceHeuristic
		}
		if v == "" {
			src = SourceDefault
		}
		fields = append(fields, Field{Name: spec.name, Value: clip(strings.TrimSpace(v), constants.MaxFieldLen), Source: src})
	}
	return fields
}

package ocr

import (
	"regexp"
	"strings"
)

var (
	reCRLF   = regexp.MustCompile(`\r\n?`)
	reNoise  = regexp.MustCompile(`(?i)^(SE PAGE|PAGE \d+)`)
	reSpaces = regexp.MustCompile(`\s+`)
)

// Normalize cleans raw OCR output: repeated page-header/footer noise lines are
// dropped, runs of whitespace inside each surviving line collapse to a single
// space, and line order is preserved. Idempotent by construction.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if reNoise.MatchString(strings.TrimSpace(line)) {
			continue
		}
		out = append(out, strings.TrimSpace(reSpaces.ReplaceAllString(line, " ")))
	}
	return strings.Join(out, "\n")
}

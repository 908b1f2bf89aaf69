package extract

import "strings"

// Source identifies the kind of strategy that produced a field value.
type Source string

const (
	SourcePattern   Source = "pattern-match"
	SourceHeuristic Source = "structural-heuristic"
	SourceNER       Source = "ner-fallback"
	SourceDefault   Source = "default"
)

// Field is one extracted value together with where it came from.
type Field struct {
	Name   string
	Value  string
	Source Source
}

// Strategy is one way of pulling a field out of a document. Run returns an
// empty string when the strategy has nothing, which moves the cascade on to
// the next entry. Strategies never fail; a malformed candidate is just a
// non-match.
type Strategy struct {
	Name   string
	Source Source
	Run    func(d *Document) string
}

// runCascade tries strategies in order and keeps the first non-empty value.
// When every strategy comes up empty the field gets the sentinel from def.
func runCascade(name string, d *Document, strategies []Strategy, def func(d *Document) string) Field {
	for _, s := range strategies {
		if v := strings.TrimSpace(s.Run(d)); v != "" {
			return Field{Name: name, Value: v, Source: s.Source}
		}
	}
	return Field{Name: name, Value: def(d), Source: SourceDefault}
}

// clip truncates s to at most max bytes. Field values are plain ASCII in
// practice so byte truncation is safe for storage limits.
func clip(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

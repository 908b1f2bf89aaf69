package extract

import (
	"strings"
	"time"

	"github.com/invoicepipe/invoice-extractor/internal/ner"
)

// Document holds one cleaned invoice text plus the derived views the field
// strategies share. Lines is Text split on newlines, in page order.
type Document struct {
	Text     string
	Lines    []string
	Entities []ner.Entity
	Now      time.Time
}

// NewDocument builds a Document from normalized text. A zero now falls back
// to the wall clock.
func NewDocument(text string, entities []ner.Entity, now time.Time) *Document {
	if now.IsZero() {
		now = time.Now()
	}
	return &Document{
		Text:     text,
		Lines:    strings.Split(text, "\n"),
		Entities: entities,
		Now:      now,
	}
}

// Package ner defines the named-entity recognizer contract the extraction
// cascades fall back to when regex-based matching fails.
package ner

import "context"

// Entity types the extraction cascades consume.
const (
	TypeOrg   = "ORG"
	TypeDate  = "DATE"
	TypeMoney = "MONEY"
)

// Entity is one labeled span of text.
type Entity struct {
	Type       string  `json:"type"`
	Text       string  `json:"text"`
	Confidence float32 `json:"confidence"` // 0..1
}

// Recognizer labels spans of cleaned text. The pipeline treats it as optional:
// a nil Recognizer or a recognizer error simply means no entities.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
}

// Best returns the highest-confidence entity of the given type.
func Best(entities []Entity, typ string) (Entity, bool) {
	var best Entity
	found := false
	for _, e := range entities {
		if e.Type != typ || e.Text == "" {
			continue
		}
		if !found || e.Confidence > best.Confidence {
			best = e
			found = true
		}
	}
	return best, found
}

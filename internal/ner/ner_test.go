package ner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestPicksHighestConfidenceOfType(t *testing.T) {
	entities := []Entity{
		{Type: TypeOrg, Text: "Acme Foods", Confidence: 0.6},
		{Type: TypeOrg, Text: "Acme Foods LLC", Confidence: 0.9},
		{Type: TypeMoney, Text: "99.99", Confidence: 0.99},
	}

	got, ok := Best(entities, TypeOrg)

	require.True(t, ok)
	assert.Equal(t, "Acme Foods LLC", got.Text)
}

func TestBestIgnoresEmptyTextAndOtherTypes(t *testing.T) {
	entities := []Entity{
		{Type: TypeDate, Text: "", Confidence: 1.0},
		{Type: TypeMoney, Text: "12.00", Confidence: 0.5},
	}

	_, ok := Best(entities, TypeDate)
	assert.False(t, ok)

	got, ok := Best(entities, TypeMoney)
	require.True(t, ok)
	assert.Equal(t, "12.00", got.Text)
}

func TestBestEmptySlice(t *testing.T) {
	_, ok := Best(nil, TypeOrg)
	assert.False(t, ok)
}

func TestValidateEntitiesPayload(t *testing.T) {
	schema := BuildEntitiesJSONSchema()

	good := []byte(`{"entities":[{"type":"ORG","text":"Acme Foods LLC","confidence":0.92}]}`)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, good))

	empty := []byte(`{"entities":[]}`)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, empty))
}

func TestValidateEntitiesPayloadRejections(t *testing.T) {
	schema := BuildEntitiesJSONSchema()

	tests := []struct {
		name    string
		payload string
	}{
		{"unknown entity type", `{"entities":[{"type":"PERSON","text":"Jo"}]}`},
		{"empty text", `{"entities":[{"type":"ORG","text":""}]}`},
		{"confidence out of range", `{"entities":[{"type":"ORG","text":"A","confidence":1.5}]}`},
		{"missing entities key", `{}`},
		{"extra top-level key", `{"entities":[],"extra":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(tt.payload)))
		})
	}
}

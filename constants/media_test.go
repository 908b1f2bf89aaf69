package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapExtToMediaType(t *testing.T) {
	tests := []struct {
		ext  string
		want MediaType
	}{
		{".pdf", PDF},
		{"PDF", PDF},
		{".JPG", JPEG},
		{"jpeg", JPEG},
		{".png", PNG},
		{".tiff", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MapExtToMediaType(tt.ext), "ext %q", tt.ext)
	}
}

func TestParseMediaType(t *testing.T) {
	assert.Equal(t, PDF, ParseMediaType("application/pdf"))
	assert.Equal(t, JPEG, ParseMediaType(" image/jpeg "))
	assert.Equal(t, PNG, ParseMediaType("PNG"))
	assert.Equal(t, MediaType(""), ParseMediaType("image/tiff"))
}

func TestIsInvoiceStatus(t *testing.T) {
	for _, s := range InvoiceStatuses() {
		assert.True(t, IsInvoiceStatus(s))
	}
	assert.False(t, IsInvoiceStatus("pending for review"))
	assert.False(t, IsInvoiceStatus(""))
}

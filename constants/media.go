package constants

import "strings"

// MediaType is the declared format of an uploaded invoice document.
type MediaType string

// Stable values (store these exact strings in DB).
const (
	PDF  MediaType = "PDF"
	JPEG MediaType = "JPEG"
	PNG  MediaType = "PNG"
)

// MediaTypes holds the allowed values for the media_type field on invoices and jobs.
var MediaTypes = []string{string(PDF), string(JPEG), string(PNG)}

// AllowedExtensions holds the default allowed file extensions for invoice ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToMediaType maps a file extension to its media type, or "" if unsupported.
func MapExtToMediaType(ext string) MediaType {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg":
		return JPEG
	case "png":
		return PNG
	default:
		return ""
	}
}

// ParseMediaType maps a declared content type or bare name to a MediaType, or "" if unsupported.
func ParseMediaType(s string) MediaType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf", "application/pdf":
		return PDF
	case "jpg", "jpeg", "image/jpeg":
		return JPEG
	case "png", "image/png":
		return PNG
	default:
		return ""
	}
}

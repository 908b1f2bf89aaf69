package constants

// Column widths for stored invoice/vendor fields. Extracted values longer than
// these are truncated, never rejected.
const (
	MaxVendorNameLen    = 255
	MaxInvoiceNumberLen = 100
	MaxFieldLen         = 255
)

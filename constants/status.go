package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued  JobStatus = "QUEUED"  // queued for processing
	JobStatusRunning JobStatus = "RUNNING" // in progress
	JobStatusOCROK   JobStatus = "OCR_OK"  // stage 1 completed (text extracted)
	JobStatusParsed  JobStatus = "PARSED"  // stage 2 completed (fields extracted)
	JobStatusFailed  JobStatus = "FAILED"  // terminal failure
)

// InvoiceStatus is the review/payment lifecycle of a stored invoice.
type InvoiceStatus string

const (
	InvoicePendingReview   InvoiceStatus = "Pending for review"
	InvoicePendingApproval InvoiceStatus = "Pending for approval"
	InvoiceApproved        InvoiceStatus = "Approved"
	InvoicePaid            InvoiceStatus = "Paid"
	InvoiceClosed          InvoiceStatus = "Closed"
)

var allInvoiceStatuses = []InvoiceStatus{
	InvoicePendingReview,
	InvoicePendingApproval,
	InvoiceApproved,
	InvoicePaid,
	InvoiceClosed,
}

// InvoiceStatuses returns the allowed status strings in lifecycle order.
func InvoiceStatuses() []string {
	out := make([]string, len(allInvoiceStatuses))
	for i, s := range allInvoiceStatuses {
		out[i] = string(s)
	}
	return out
}

// IsInvoiceStatus reports whether s is one of the allowed invoice statuses.
func IsInvoiceStatus(s string) bool {
	for _, st := range allInvoiceStatuses {
		if string(st) == s {
			return true
		}
	}
	return false
}

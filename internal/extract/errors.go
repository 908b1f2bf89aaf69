package extract

import "errors"

// ErrNoTextExtracted means OCR produced no usable text for any page of the
// document. Callers can match it with errors.Is.
var ErrNoTextExtracted = errors.New("no text extracted from document")

package domain

import "errors"

var (
	ErrMissingText      = errors.New("request body is missing the text field")
	ErrUnknownSection   = errors.New("unknown form section")
	ErrBatchTooLarge    = errors.New("batch exceeds maximum document count")
	ErrBatchEmpty       = errors.New("batch contains no documents")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrExtractionTimeout = errors.New("extraction exceeded time budget")
)

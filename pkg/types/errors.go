package types

import "errors"

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
	ErrInvalidID   = errors.New("invalid record ID")
	ErrNotFound    = errors.New("record not found")
)

// Validation errors returned by write hooks. A hook rejection aborts the
// single write it guards; nothing is persisted.
var (
	ErrEmptyContent        = errors.New("content must not be empty")
	ErrInvalidMood         = errors.New("mood must be between 1 and 5")
	ErrMissingImportSource = errors.New("import source must not be empty")
	ErrInvalidSender       = errors.New("sender must be \"user\" or \"therapist\"")
)

// IsValidation reports whether err is one of the hook validation errors.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyContent) ||
		errors.Is(err, ErrInvalidMood) ||
		errors.Is(err, ErrMissingImportSource) ||
		errors.Is(err, ErrInvalidSender)
}

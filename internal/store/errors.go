package store

import "errors"

// Sentinel errors, mapped to HTTP status codes by the API layer.
var (
	// ErrNotFound covers both "does not exist" and "not owned by the
	// caller" so handlers expose a uniform 404.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned for missing or malformed fields,
	// before any write happens.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateBarcode is returned when a (barcode, user) pair
	// already exists.
	ErrDuplicateBarcode = errors.New("barcode already exists")

	// ErrDuplicateEmail is returned when registering an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("email already registered")
)

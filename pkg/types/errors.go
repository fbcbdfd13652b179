package types

import "errors"

// Field and record errors.
var (
	ErrInvalidValue = errors.New("invalid value")
	ErrNotFound     = errors.New("not found")
)

// ErrMalformedData is returned when persisted data does not match the
// address book file format.
var ErrMalformedData = errors.New("malformed address book data")

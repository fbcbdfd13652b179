package types

import "errors"

// Store persists an AddressBook in a backend-specific location.
// Callers attach to a backend, load or save the book, and detach when done.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Load reads the persisted book. A backend with nothing persisted yet
	// returns an empty book.
	Load() (*AddressBook, error)

	// Save replaces the persisted book with book.
	Save(book *AddressBook) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, Load and Save return ErrStoreDetached.
	Detach() error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

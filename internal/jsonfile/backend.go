// Package jsonfile implements the default storage backend: the address book
// kept as a single JSON file in the data directory.
package jsonfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/Makzui/phone-book/pkg/types"
)

// FileName is the address book file created inside the data directory.
const FileName = "contacts.json"

var _ types.Store = (*Backend)(nil)

// Backend implements types.Store with AddressBook.Save and AddressBook.Load.
type Backend struct {
	mu       sync.Mutex
	attached bool
	path     string
	log      *zap.Logger
}

// NewBackend creates a detached JSON file backend. A nil logger disables
// logging.
func NewBackend(log *zap.Logger) *Backend {
	if log == nil {
		log = zap.NewNop()
	}
	return &Backend{log: log.Named("jsonfile")}
}

// Attach creates config.DataDir if needed and points the backend at the
// contacts file inside it. The file itself is created by the first Save.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	b.path = filepath.Join(dataDir, FileName)
	b.attached = true
	b.log.Debug("attached", zap.String("path", b.path))
	return nil
}

// Path returns the contacts file location, or "" when detached.
func (b *Backend) Path() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.path
}

// Load reads the contacts file. A missing file yields an empty book.
func (b *Backend) Load() (*types.AddressBook, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	book := types.NewAddressBook()
	if err := book.Load(b.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			b.log.Debug("no contacts file yet", zap.String("path", b.path))
			return book, nil
		}
		return nil, err
	}

	b.log.Debug("loaded", zap.Int("contacts", book.Len()))
	return book, nil
}

// Save writes book to the contacts file atomically.
func (b *Backend) Save(book *types.AddressBook) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	if err := book.Save(b.path); err != nil {
		return fmt.Errorf("save %s: %w", b.path, err)
	}

	b.log.Debug("saved", zap.Int("contacts", book.Len()))
	return nil
}

// Detach forgets the contacts file. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false
	b.path = ""
	b.log.Debug("detached")
	return nil
}

// Package sqlite implements the SQLite storage backend for the address book.
// The database file is the source of truth: contacts keep their position so
// that book order survives a round trip, and phones keep theirs within a
// contact.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/Makzui/phone-book/pkg/types"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "phonebook.db"

var _ types.Store = (*Backend)(nil)

// Backend implements types.Store on top of a SQLite database.
type Backend struct {
	mu       sync.Mutex
	attached bool
	config   types.Config
	db       *sql.DB
	log      *zap.Logger
}

// NewBackend creates a new SQLite backend instance. A nil logger disables
// logging. The backend is not attached; call Attach with a Config to
// initialize.
func NewBackend(log *zap.Logger) *Backend {
	if log == nil {
		log = zap.NewNop()
	}
	return &Backend{log: log.Named("sqlite")}
}

// Attach opens (creating if needed) the database in config.DataDir and
// applies the schema.
// Returns ErrAlreadyAttached if already attached.
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

	dbPath := filepath.Join(dataDir, DBFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	// One connection keeps PRAGMA foreign_keys in effect for every statement.
	db.SetMaxOpenConns(1)

	if err := applySchema(db); err != nil {
		db.Close()
		return fmt.Errorf("apply schema: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true

	b.log.Debug("attached", zap.String("path", dbPath))
	return nil
}

func applySchema(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return err
	}
	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	for _, stmt := range indexDDL {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Detach closes the database. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	b.log.Debug("detached")
	return nil
}

// Load reads every contact in stored order. Values are validated the same
// way as records built by hand; a row that fails validation aborts the load.
func (b *Backend) Load() (*types.AddressBook, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	tx, err := b.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	ids, records, err := loadContacts(tx)
	if err != nil {
		return nil, err
	}
	if err := loadPhones(tx, records); err != nil {
		return nil, err
	}

	book := types.NewAddressBook()
	for _, id := range ids {
		book.Add(records[id])
	}

	b.log.Debug("loaded", zap.Int("contacts", book.Len()))
	return book, nil
}

func loadContacts(tx *sql.Tx) ([]string, map[string]*types.Record, error) {
	rows, err := tx.Query("SELECT contact_id, name, birthday FROM contacts ORDER BY position")
	if err != nil {
		return nil, nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	var ids []string
	records := make(map[string]*types.Record)
	for rows.Next() {
		var id, name string
		var birthday sql.NullString
		if err := rows.Scan(&id, &name, &birthday); err != nil {
			return nil, nil, fmt.Errorf("scanning contact: %w", err)
		}
		rec, err := types.NewRecord(name, birthday.String)
		if err != nil {
			return nil, nil, fmt.Errorf("contact %s: %w", id, err)
		}
		ids = append(ids, id)
		records[id] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating contacts: %w", err)
	}
	return ids, records, nil
}

func loadPhones(tx *sql.Tx, records map[string]*types.Record) error {
	rows, err := tx.Query("SELECT contact_id, phone FROM phones ORDER BY contact_id, position")
	if err != nil {
		return fmt.Errorf("querying phones: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, phone string
		if err := rows.Scan(&id, &phone); err != nil {
			return fmt.Errorf("scanning phone: %w", err)
		}
		rec, ok := records[id]
		if !ok {
			return fmt.Errorf("phone for unknown contact %s: %w", id, types.ErrMalformedData)
		}
		if err := rec.AddPhone(phone); err != nil {
			return fmt.Errorf("contact %s: %w", id, err)
		}
	}
	return rows.Err()
}

// Save replaces the stored contacts with book in a single transaction.
// Contacts that already exist keep their contact_id; new ones get a UUID v7.
func (b *Backend) Save(book *types.AddressBook) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := contactIDs(tx)
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM phones"); err != nil {
		return fmt.Errorf("clearing phones: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM contacts"); err != nil {
		return fmt.Errorf("clearing contacts: %w", err)
	}

	insContact, err := tx.Prepare("INSERT INTO contacts (contact_id, name, birthday, position) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing contact insert: %w", err)
	}
	defer insContact.Close()

	insPhone, err := tx.Prepare("INSERT INTO phones (contact_id, position, phone) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing phone insert: %w", err)
	}
	defer insPhone.Close()

	for pos, rec := range book.Records() {
		id, ok := existing[rec.Name()]
		if !ok {
			id = generateUUID()
		}
		var birthday sql.NullString
		if bd, ok := rec.Birthday(); ok {
			birthday = sql.NullString{String: bd, Valid: true}
		}
		if _, err := insContact.Exec(id, rec.Name(), birthday, pos); err != nil {
			return fmt.Errorf("inserting contact %q: %w", rec.Name(), err)
		}
		for i, phone := range rec.Phones() {
			if _, err := insPhone.Exec(id, i, phone); err != nil {
				return fmt.Errorf("inserting phone for %q: %w", rec.Name(), err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}

	b.log.Debug("saved", zap.Int("contacts", book.Len()))
	return nil
}

// contactIDs maps stored contact names to their IDs.
func contactIDs(tx *sql.Tx) (map[string]string, error) {
	rows, err := tx.Query("SELECT contact_id, name FROM contacts")
	if err != nil {
		return nil, fmt.Errorf("querying contact ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scanning contact id: %w", err)
		}
		ids[name] = id
	}
	return ids, rows.Err()
}

// contactID returns the stored ID for name.
// Returns ErrNotFound if no contact with that name has been saved.
func (b *Backend) contactID(name string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return "", types.ErrStoreDetached
	}

	var id string
	err := b.db.QueryRow("SELECT contact_id FROM contacts WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("contact %q: %w", name, types.ErrNotFound)
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

// generateUUID generates a new UUID v7 for contact IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

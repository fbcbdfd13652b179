package types

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// recordJSON is one element of the address book file:
//
//	{"name": "John Smith", "phones": ["1234567890"], "birthday": "1990-05-21"}
//
// Birthday is null when no birthday is recorded.
type recordJSON struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday *string  `json:"birthday"`
}

// requiredKeys lists the keys every persisted record must carry.
var requiredKeys = []string{"name", "phones", "birthday"}

// nullableKeys lists the required keys that may hold null.
var nullableKeys = map[string]bool{"birthday": true}

var jsonNull = []byte("null")

// Encode writes the book to w as an indented JSON array in book order.
func (b *AddressBook) Encode(w io.Writer) error {
	out := make([]recordJSON, 0, b.Len())
	for _, r := range b.Records() {
		rec := recordJSON{Name: r.Name(), Phones: r.Phones()}
		if bd, ok := r.Birthday(); ok {
			rec.Birthday = &bd
		}
		out = append(out, rec)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding address book: %w", err)
	}
	return nil
}

// Decode reads a JSON array of records from r and adds them to the book,
// replacing records with the same name. Every field goes through the same
// validation as NewRecord, AddPhone and SetBirthday. Nothing is added unless
// the whole input decodes and validates.
// Returns ErrMalformedData if the input does not have the file shape and
// ErrInvalidValue if a name, phone or birthday is rejected.
func (b *AddressBook) Decode(r io.Reader) error {
	dec := json.NewDecoder(r)
	var raw []map[string]json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	if raw == nil {
		return fmt.Errorf("%w: expected an array", ErrMalformedData)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after array", ErrMalformedData)
	}

	records := make([]*Record, 0, len(raw))
	for i, obj := range raw {
		rec, err := decodeRecord(obj)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}

	for _, rec := range records {
		b.Add(rec)
	}
	return nil
}

func decodeRecord(obj map[string]json.RawMessage) (*Record, error) {
	for _, key := range requiredKeys {
		v, ok := obj[key]
		if !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrMalformedData, key)
		}
		if !nullableKeys[key] && bytes.Equal(bytes.TrimSpace(v), jsonNull) {
			return nil, fmt.Errorf("%w: %q is null", ErrMalformedData, key)
		}
	}

	var rj recordJSON
	if err := json.Unmarshal(obj["name"], &rj.Name); err != nil {
		return nil, fmt.Errorf("%w: name: %v", ErrMalformedData, err)
	}
	if err := json.Unmarshal(obj["phones"], &rj.Phones); err != nil {
		return nil, fmt.Errorf("%w: phones: %v", ErrMalformedData, err)
	}
	if err := json.Unmarshal(obj["birthday"], &rj.Birthday); err != nil {
		return nil, fmt.Errorf("%w: birthday: %v", ErrMalformedData, err)
	}

	rec, err := NewRecord(rj.Name)
	if err != nil {
		return nil, err
	}
	for _, p := range rj.Phones {
		if err := rec.AddPhone(p); err != nil {
			return nil, err
		}
	}
	if rj.Birthday != nil {
		if err := rec.SetBirthday(*rj.Birthday); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// Save writes the book to path atomically using the temp-file, fsync,
// rename pattern. The directory of path must exist.
func (b *AddressBook) Save(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".phonebook-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if err := b.Encode(w); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Load reads records from the file at path into the book. See Decode.
func (b *AddressBook) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if err := b.Decode(f); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

package cli

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Makzui/phone-book/pkg/store"
	"github.com/Makzui/phone-book/pkg/types"
)

// withBook attaches the store, loads the book and runs fn on it. When save
// is true and fn succeeds, the book is written back before detaching.
func (a *app) withBook(save bool, fn func(book *types.AddressBook) error) (err error) {
	s, err := store.New(a.cfg, a.log)
	if err != nil {
		return &sysError{err}
	}
	if err := s.Attach(a.cfg); err != nil {
		return &sysError{fmt.Errorf("attach store: %w", err)}
	}
	defer func() {
		if derr := s.Detach(); derr != nil && err == nil {
			err = &sysError{fmt.Errorf("detach store: %w", derr)}
		}
	}()

	book, err := s.Load()
	if err != nil {
		if isDataError(err) {
			return fmt.Errorf("load contacts: %w", err)
		}
		return &sysError{fmt.Errorf("load contacts: %w", err)}
	}

	if err := fn(book); err != nil {
		return err
	}
	if !save {
		return nil
	}
	if err := s.Save(book); err != nil {
		return &sysError{fmt.Errorf("save contacts: %w", err)}
	}
	a.log.Info("contacts saved", zap.Int("contacts", book.Len()))
	return nil
}

// isDataError reports whether err comes from bad contact data rather than
// from the environment.
func isDataError(err error) bool {
	return errors.Is(err, types.ErrMalformedData) ||
		errors.Is(err, types.ErrInvalidValue) ||
		errors.Is(err, types.ErrNotFound)
}

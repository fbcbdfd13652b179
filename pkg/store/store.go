// Package store provides the public factory for address book stores.
// It exposes backend selection while keeping implementation details
// internal.
//
// Example:
//
//	s, err := store.New(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".phonebook-data",
//	}, nil)
//	if err != nil { ... }
//	if err := s.Attach(cfg); err != nil { ... }
//	defer s.Detach()
package store

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Makzui/phone-book/internal/jsonfile"
	"github.com/Makzui/phone-book/internal/sqlite"
	"github.com/Makzui/phone-book/pkg/types"
)

// New returns a detached store for config.Backend. A nil logger disables
// logging.
// Returns ErrBackendEmpty or ErrBackendUnknown for an unusable backend name.
func New(config types.Config, log *zap.Logger) (types.Store, error) {
	switch config.Backend {
	case types.BackendJSON:
		return jsonfile.NewBackend(log), nil
	case types.BackendSQLite:
		return sqlite.NewBackend(log), nil
	case "":
		return nil, types.ErrBackendEmpty
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, config.Backend)
	}
}

package store

import (
	"context"
	"fmt"

	"github.com/savrasovpm/go-pantry-keeper/internal/config"
	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
)

// ClientStorages groups the client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// State is the SQLite-backed local state repository holding the
	// persisted session and collection snapshots.
	State LocalStateRepository
}

// NewClientStorages initialises the client storage layer: it opens the local
// SQLite state file named in cfg.Local.Path (creating it when missing),
// ensures the schema exists and wires a fresh [LocalStateRepository].
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(context.Background(), cfg.Local, logger)
	if err != nil {
		return nil, fmt.Errorf("local state connection error: %w", err)
	}

	return &ClientStorages{
		State: NewLocalStateRepository(db, logger),
	}, nil
}

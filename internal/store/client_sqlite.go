package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/savrasovpm/go-pantry-keeper/internal/config"
	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
)

// NewConnectSQLite opens (and creates if needed) the client's local SQLite
// state file and ensures its schema exists. Pass ":memory:" as the path for
// a throwaway database.
func NewConnectSQLite(ctx context.Context, cfg config.ClientLocal, log *logger.Logger) (*DB, error) {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	if path != ":memory:" {
		if err := createLocalDBFileIfNotExists(path); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating state file")
			return nil, fmt.Errorf("error creating state file")
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening state file")
		return nil, fmt.Errorf("error opening local state db")
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error pinging state db")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, createClientSchema); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating client schema")
		return nil, fmt.Errorf("error creating client schema: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("local state db ready")

	return &DB{DB: conn, logger: log}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

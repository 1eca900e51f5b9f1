package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

type localStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalStateRepository(db *DB, logger *logger.Logger) LocalStateRepository {
	return &localStateRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localStateRepository) SaveSession(ctx context.Context, session models.LocalSession) error {
	if session.SavedAt.IsZero() {
		session.SavedAt = time.Now().UTC()
	}

	_, err := l.DB.ExecContext(ctx, saveSession,
		session.Token,
		session.UserID,
		session.Username,
		session.SavedAt,
	)
	if err != nil {
		l.logger.Err(err).
			Str("func", "localStateRepository.SaveSession").
			Int64("user_id", session.UserID).
			Msg("failed to persist session")
		return fmt.Errorf("failed to persist session: %w", err)
	}

	return nil
}

func (l *localStateRepository) GetSession(ctx context.Context) (models.LocalSession, error) {
	var session models.LocalSession

	row := l.DB.QueryRowContext(ctx, getSession)
	err := row.Scan(&session.Token, &session.UserID, &session.Username, &session.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		l.logger.Err(err).
			Str("func", "localStateRepository.GetSession").
			Msg("failed to read persisted session")
		return models.LocalSession{}, fmt.Errorf("failed to read persisted session: %w", err)
	}

	return session, nil
}

func (l *localStateRepository) ClearSession(ctx context.Context) error {
	if _, err := l.DB.ExecContext(ctx, clearSession); err != nil {
		l.logger.Err(err).
			Str("func", "localStateRepository.ClearSession").
			Msg("failed to clear persisted session")
		return fmt.Errorf("failed to clear persisted session: %w", err)
	}

	return nil
}

func (l *localStateRepository) SaveSnapshot(ctx context.Context, collection string, payload []byte) error {
	_, err := l.DB.ExecContext(ctx, saveSnapshot, collection, payload, time.Now().UTC())
	if err != nil {
		l.logger.Err(err).
			Str("func", "localStateRepository.SaveSnapshot").
			Str("collection", collection).
			Msg("failed to persist snapshot")
		return fmt.Errorf("failed to persist %s snapshot: %w", collection, err)
	}

	return nil
}

func (l *localStateRepository) GetSnapshot(ctx context.Context, collection string) ([]byte, error) {
	var payload []byte

	row := l.DB.QueryRowContext(ctx, getSnapshot, collection)
	err := row.Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLocalSnapshotNotFound
	}
	if err != nil {
		l.logger.Err(err).
			Str("func", "localStateRepository.GetSnapshot").
			Str("collection", collection).
			Msg("failed to read snapshot")
		return nil, fmt.Errorf("failed to read %s snapshot: %w", collection, err)
	}

	return payload, nil
}

func (l *localStateRepository) ClearSnapshots(ctx context.Context) error {
	if _, err := l.DB.ExecContext(ctx, clearSnapshots); err != nil {
		l.logger.Err(err).
			Str("func", "localStateRepository.ClearSnapshots").
			Msg("failed to clear snapshots")
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}

	return nil
}

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

func newTestStateRepo(t *testing.T) (*localStateRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return &localStateRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}, mock
}

func TestSaveSession_UpsertsSingleRow(t *testing.T) {
	repo, mock := newTestStateRepo(t)

	session := models.LocalSession{
		Token:    "tok-123",
		UserID:   7,
		Username: "alice",
		SavedAt:  time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO session").
		WithArgs(session.Token, session.UserID, session.Username, session.SavedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SaveSession(context.Background(), session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetSession_NotPersisted(t *testing.T) {
	repo, mock := newTestStateRepo(t)

	mock.ExpectQuery("SELECT token, user_id, username, saved_at").
		WillReturnRows(sqlmock.NewRows([]string{"token", "user_id", "username", "saved_at"}))

	_, err := repo.GetSession(context.Background())
	if !errors.Is(err, ErrLocalSessionNotFound) {
		t.Fatalf("expected ErrLocalSessionNotFound, got %v", err)
	}
}

func TestGetSession_RoundTrip(t *testing.T) {
	repo, mock := newTestStateRepo(t)

	saved := time.Now().UTC().Truncate(time.Second)
	rows := sqlmock.NewRows([]string{"token", "user_id", "username", "saved_at"}).
		AddRow("tok-123", int64(7), "alice", saved)

	mock.ExpectQuery("SELECT token, user_id, username, saved_at").WillReturnRows(rows)

	got, err := repo.GetSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Token != "tok-123" || got.UserID != 7 || got.Username != "alice" {
		t.Errorf("unexpected session: %+v", got)
	}
}

func TestClearSession(t *testing.T) {
	repo, mock := newTestStateRepo(t)

	mock.ExpectExec("DELETE FROM session").WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ClearSession(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	repo, mock := newTestStateRepo(t)

	payload := []byte(`[{"id":1,"name":"Pancakes"}]`)

	mock.ExpectExec("INSERT INTO snapshots").
		WithArgs("recipes", payload, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT payload").
		WithArgs("recipes").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(payload))

	if err := repo.SaveSnapshot(context.Background(), "recipes", payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetSnapshot(context.Background(), "recipes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("unexpected payload: %s", got)
	}
}

func TestGetSnapshot_NotPersisted(t *testing.T) {
	repo, mock := newTestStateRepo(t)

	mock.ExpectQuery("SELECT payload").
		WithArgs("recipes").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	_, err := repo.GetSnapshot(context.Background(), "recipes")
	if !errors.Is(err, ErrLocalSnapshotNotFound) {
		t.Fatalf("expected ErrLocalSnapshotNotFound, got %v", err)
	}
}

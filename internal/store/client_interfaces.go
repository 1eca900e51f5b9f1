package store

import (
	"context"

	"github.com/savrasovpm/go-pantry-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalStateRepository is the client's on-disk state: the persisted session
// and the last-known snapshot of each collection, so a restart starts warm
// instead of empty.
type LocalStateRepository interface {
	SaveSession(ctx context.Context, session models.LocalSession) error
	GetSession(ctx context.Context) (models.LocalSession, error)
	ClearSession(ctx context.Context) error

	SaveSnapshot(ctx context.Context, collection string, payload []byte) error
	GetSnapshot(ctx context.Context, collection string) ([]byte, error)
	ClearSnapshots(ctx context.Context) error
}

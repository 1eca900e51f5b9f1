package catalog

import (
	"context"
	"encoding/json"
	"fmt"
)

// SnapshotStore persists a serialized copy of a cache between client runs.
// [store.LocalStateRepository] satisfies it.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, collection string, payload []byte) error
	GetSnapshot(ctx context.Context, collection string) ([]byte, error)
}

// Persist enables snapshot persistence for the cache: every committed reload
// is written to store under the collection's name. Call before first use.
func (c *Cache[T]) Persist(store SnapshotStore) {
	c.snapshots = store
}

// WarmStart installs the snapshot a previous run persisted, so the UI has
// contents to show before the first reload completes. The next LoadAll still
// replaces everything wholesale. A cache that already committed a reload is
// left untouched. Returns the store's error when no snapshot exists or it
// cannot be decoded; the cache stays empty in that case.
func (c *Cache[T]) WarmStart(ctx context.Context) error {
	if c.snapshots == nil {
		return nil
	}

	payload, err := c.snapshots.GetSnapshot(ctx, c.collection.Name)
	if err != nil {
		return err
	}

	var records []T
	if err = json.Unmarshal(payload, &records); err != nil {
		return fmt.Errorf("decode %s snapshot: %w", c.collection.Name, err)
	}
	c.sortRecords(records)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return nil
	}
	c.records = records
	c.loaded = true

	return nil
}

// saveSnapshot runs after a committed reload. Failures are logged, never
// surfaced: the snapshot is a warm-start hint, the server stays the source
// of truth.
func (c *Cache[T]) saveSnapshot(ctx context.Context, records []T) {
	if c.snapshots == nil {
		return
	}

	payload, err := json.Marshal(records)
	if err == nil {
		err = c.snapshots.SaveSnapshot(ctx, c.collection.Name, payload)
	}
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("collection", c.collection.Name).
			Msg("failed to persist snapshot")
	}
}

package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
)

// Session is the slice of the session service a cache depends on: the
// current token, read once per operation, and a hook to report that the
// server rejected it.
type Session interface {
	// Token returns the current bearer token, or "" when logged out.
	Token() string
	// Invalidate clears the session after an authorization failure.
	Invalidate()
}

// Cache is the client's authoritative copy of one collection. Records are
// kept sorted by case-insensitive display name and mutated only after the
// corresponding server call succeeds.
//
// A Cache is safe for concurrent use. Wholesale reloads are guarded by a
// generation counter: each LoadAll captures the generation before issuing
// the request and commits its result only if the generation is unchanged
// when the response arrives, so a reload raced by another reload, or by
// Deactivate, is discarded instead of tearing the cache.
type Cache[T any] struct {
	collection Collection[T]
	session    Session
	snapshots  SnapshotStore
	logger     *logger.Logger

	mu         sync.Mutex
	records    []T
	generation uint64
	loaded     bool
}

func NewCache[T any](collection Collection[T], session Session, logger *logger.Logger) *Cache[T] {
	return &Cache[T]{collection: collection, session: session, logger: logger}
}

// Records returns a copy of the current cache contents in display order.
func (c *Cache[T]) Records() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.records)
}

// Loaded reports whether at least one LoadAll has committed since the cache
// was created or last Reset. It lets the UI tell "collection failed to
// load" apart from "collection is empty".
func (c *Cache[T]) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Len returns the number of cached records.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Deactivate marks any in-flight LoadAll stale. The UI calls it when the
// user navigates away from the collection's screen so a late response is
// ignored rather than committed to a cache nobody is looking at.
func (c *Cache[T]) Deactivate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
}

// Reset empties the cache without contacting the server. Used on logout.
func (c *Cache[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = nil
	c.loaded = false
	c.generation++
}

// LoadAll fetches the full collection and replaces the cache contents with
// the result, sorted by case-insensitive display name. On failure the
// previous contents stay visible and the error is returned.
//
// Concurrent reloads each replace the cache wholesale, so the last response
// to complete wins. A response that arrives after Deactivate or Reset is
// discarded and the current contents are returned instead.
func (c *Cache[T]) LoadAll(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	generation := c.generation
	c.mu.Unlock()

	fetched, err := c.collection.List(ctx)
	if err != nil {
		return nil, c.fail("load", err)
	}

	c.sortRecords(fetched)

	c.mu.Lock()
	if c.generation != generation {
		defer c.mu.Unlock()
		c.logger.Debug().
			Str("collection", c.collection.Name).
			Msg("discarding stale reload response")
		return slices.Clone(c.records), nil
	}

	c.records = fetched
	c.loaded = true
	result := slices.Clone(c.records)
	c.mu.Unlock()

	c.saveSnapshot(ctx, result)

	return result, nil
}

// Create validates record, round-trips it to the server and inserts the
// server's returned representation at its sorted position. Validation and
// the token check happen before any network call.
func (c *Cache[T]) Create(ctx context.Context, record T) (T, error) {
	var zero T

	if err := c.collection.Validate(record); err != nil {
		return zero, err
	}
	if err := c.requireToken(); err != nil {
		return zero, err
	}

	created, err := c.collection.Create(ctx, record)
	if err != nil {
		return zero, c.fail("create", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.insertSorted(created)

	return created, nil
}

// Update requires id to be present in the cache, round-trips the change and
// replaces the cached entry with the server's returned representation. The
// server is the authority on the merged result; the caller's payload is
// never committed locally.
func (c *Cache[T]) Update(ctx context.Context, id int64, record T) (T, error) {
	var zero T

	if c.collection.Update == nil {
		return zero, fmt.Errorf("%w: collection %s does not support update", ErrValidationFailed, c.collection.Name)
	}
	if err := c.collection.Validate(record); err != nil {
		return zero, err
	}
	if !c.contains(id) {
		return zero, fmt.Errorf("%w: id %d is not in the %s cache", ErrNotFound, id, c.collection.Name)
	}
	if err := c.requireToken(); err != nil {
		return zero, err
	}

	updated, err := c.collection.Update(ctx, id, record)
	if err != nil {
		return zero, c.fail("update", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(id)
	c.insertSorted(updated)

	return updated, nil
}

// Delete removes the record with id from the cache after the server
// confirms the deletion. A failed delete leaves the cache unchanged.
func (c *Cache[T]) Delete(ctx context.Context, id int64) error {
	if !c.contains(id) {
		return fmt.Errorf("%w: id %d is not in the %s cache", ErrNotFound, id, c.collection.Name)
	}
	if err := c.requireToken(); err != nil {
		return err
	}

	if err := c.collection.Delete(ctx, id); err != nil {
		return c.fail("delete", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(id)

	return nil
}

// Get returns the cached record with id.
func (c *Cache[T]) Get(id int64) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, record := range c.records {
		if c.collection.ID(record) == id {
			return record, nil
		}
	}

	var zero T
	return zero, fmt.Errorf("%w: id %d is not in the %s cache", ErrNotFound, id, c.collection.Name)
}

func (c *Cache[T]) contains(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.ContainsFunc(c.records, func(record T) bool {
		return c.collection.ID(record) == id
	})
}

func (c *Cache[T]) requireToken() error {
	if c.session.Token() == "" {
		return fmt.Errorf("%w: no session token", ErrUnauthorized)
	}
	return nil
}

// fail classifies a transport error and tells the session service when the
// server rejected the token.
func (c *Cache[T]) fail(op string, err error) error {
	classified := classify(err)

	c.logger.Warn().
		Err(err).
		Str("collection", c.collection.Name).
		Str("operation", op).
		Msg("collection operation failed")

	if isUnauthorized(classified) {
		c.session.Invalidate()
	}

	return classified
}

func (c *Cache[T]) sortRecords(records []T) {
	slices.SortStableFunc(records, func(a, b T) int {
		return strings.Compare(c.sortKey(a), c.sortKey(b))
	})
}

// insertSorted places record after any entries with an equal sort key so
// same-named records keep their arrival order. Caller holds c.mu.
func (c *Cache[T]) insertSorted(record T) {
	key := c.sortKey(record)
	at, _ := slices.BinarySearchFunc(c.records, key, func(existing T, target string) int {
		if k := c.sortKey(existing); k <= target {
			return -1
		}
		return 1
	})
	c.records = slices.Insert(c.records, at, record)
}

func (c *Cache[T]) removeLocked(id int64) {
	c.records = slices.DeleteFunc(c.records, func(record T) bool {
		return c.collection.ID(record) == id
	})
}

func (c *Cache[T]) sortKey(record T) string {
	return strings.ToLower(c.collection.DisplayName(record))
}

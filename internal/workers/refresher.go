// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Savrasov

package workers

import (
	"context"
	"time"

	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
)

// refresher periodically reloads a shared, read-mostly collection so that
// changes made by other users become visible without an explicit refresh.
// A failed reload is logged and retried on the next tick; the cached
// contents stay as they were.
type refresher struct {
	name     string
	interval time.Duration
	reload   func(ctx context.Context) error

	logger *logger.Logger
}

// NewRefresher creates a worker that calls reload every interval until the
// run context is cancelled.
func NewRefresher(name string, interval time.Duration, reload func(ctx context.Context) error, logger *logger.Logger) Worker {
	return &refresher{
		name:     name,
		interval: interval,
		reload:   reload,
		logger:   logger,
	}
}

func (r *refresher) Run(ctx context.Context) {
	go r.loop(ctx)
}

func (r *refresher) loop(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Str("worker", r.name).Msg("refresher stopped")
			return
		case <-ticker.C:
			if err := r.reload(ctx); err != nil {
				r.logger.Warn().Err(err).Str("worker", r.name).Msg("background refresh failed")
			}
		}
	}
}

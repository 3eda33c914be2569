// Package cache persists the latest normalized snapshot per symbol. The
// cache is an optimization, never a correctness dependency: entries older
// than the configured max age are treated as absent, and callers are
// expected to swallow Put failures after logging them.
package cache

import (
	"context"
	"fmt"
	"time"

	"cotmonitor/src/model"
)

// Store is a symbol-keyed snapshot cache with time-based staleness.
type Store interface {
	// Get returns the cached snapshot, or false when absent or stale.
	Get(ctx context.Context, symbol string) (*model.Snapshot, bool)
	// Put overwrites the entry for a symbol unconditionally.
	Put(ctx context.Context, symbol string, snap *model.Snapshot) error
}

// New builds the store selected by the config.
func New(cfg *Config) (Store, error) {
	maxAge := time.Duration(cfg.MaxAgeHours) * time.Hour

	switch cfg.Backend {
	case "sqlite", "postgres":
		return newGormStore(cfg, maxAge)
	case "redis":
		return newRedisStore(cfg, maxAge)
	}
	return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
}

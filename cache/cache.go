// Package cache stores rendered frame chunks between runs so re-rendering
// an unchanged reel skips the frames it has already computed.
package cache

import (
	"context"

	"go.uber.org/zap"

	"reel-composer/config"
)

// SegmentCache stores opaque encoded chunks by key.
// Implementations must be safe for concurrent use.
type SegmentCache interface {
	// Get returns ok=false on a miss
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte) error
	Close() error
}

// Nop never stores anything
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (Nop) Set(context.Context, string, []byte) error         { return nil }
func (Nop) Close() error                                      { return nil }

// Open returns the cache described by cfg. A disabled or unreachable cache
// yields Nop; rendering never depends on the cache being up.
func Open(ctx context.Context, cfg config.CacheConfig, logger *zap.SugaredLogger) SegmentCache {
	if !cfg.Enabled {
		return Nop{}
	}
	r, err := Connect(ctx, cfg)
	if err != nil {
		logger.Warnw("segment cache unavailable, continuing without it", "addr", cfg.Addr, "error", err)
		return Nop{}
	}
	logger.Infow("segment cache connected", "addr", cfg.Addr, "ttl", cfg.TTL)
	return r
}

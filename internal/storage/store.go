// Package storage provides abstractions over where a store's seed comes from.
package storage

import (
	"context"

	"github.com/zaryabali001/roommate/internal/models"
)

// SeedSource loads the dataset a store is built from.
// This abstraction allows swapping seed backends (built-in demo, YAML, SQLite)
// without changing how the server starts.
type SeedSource interface {
	// LoadSeed returns the complete seed. Callers validate it before use.
	LoadSeed(ctx context.Context) (*models.Seed, error)

	// Close releases any resources held by the source.
	Close() error
}

// SeedSink persists a seed so it can be loaded again later.
type SeedSink interface {
	// SaveSeed replaces whatever was stored with seed.
	SaveSeed(ctx context.Context, seed *models.Seed) error
}

// StaticSource serves a fixed in-memory seed.
type StaticSource struct {
	Seed *models.Seed
}

// LoadSeed returns the wrapped seed.
func (s StaticSource) LoadSeed(_ context.Context) (*models.Seed, error) {
	return s.Seed, nil
}

// Close is a no-op.
func (StaticSource) Close() error { return nil }

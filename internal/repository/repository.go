// Package repository provides read access to the asset universe.
//
// Two implementations exist: an in-memory mock with simulated latency
// (the default, mirroring the service the dashboard was built against)
// and a GORM-backed store for a real database.
package repository

import (
	"context"

	"marketdeck/internal/models"
)

// AssetRepository defines the four read operations over the asset
// universe. All operations honor context cancellation. Returned slices
// share the underlying records; callers must not mutate them.
type AssetRepository interface {
	// FetchAll returns the entire universe in fixed insertion order.
	FetchAll(ctx context.Context) ([]models.Asset, error)

	// FetchByID returns the asset with the given id, or (nil, nil) when
	// no asset matches. Absence is not an error.
	FetchByID(ctx context.Context, id string) (*models.Asset, error)

	// FetchByCategory returns all assets in the category, preserving
	// original relative order.
	FetchByCategory(ctx context.Context, category models.Category) ([]models.Asset, error)

	// Search returns assets whose name or symbol contains the query,
	// case-insensitively. An empty result is not an error.
	Search(ctx context.Context, query string) ([]models.Asset, error)
}

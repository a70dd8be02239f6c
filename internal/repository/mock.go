package repository

import (
	"context"
	"strings"
	"time"

	"marketdeck/internal/models"
)

// MockConfig controls the simulated latency of the mock store. Latency
// is purely UX realism for clients, not a reliability property; zero
// values disable it (used by tests).
type MockConfig struct {
	ListLatency   time.Duration
	LookupLatency time.Duration
}

// mockRepository serves a static in-memory universe. The backing slice
// is never mutated after construction, so concurrent reads need no
// locking.
type mockRepository struct {
	assets        []models.Asset
	listLatency   time.Duration
	lookupLatency time.Duration
}

// NewMockRepository creates an asset repository seeded with the
// canonical ten-asset universe.
func NewMockRepository(cfg MockConfig) AssetRepository {
	return &mockRepository{
		assets:        SeedAssets(),
		listLatency:   cfg.ListLatency,
		lookupLatency: cfg.LookupLatency,
	}
}

// wait blocks for the simulated latency window or until the context is
// cancelled, whichever comes first.
func (r *mockRepository) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r *mockRepository) FetchAll(ctx context.Context) ([]models.Asset, error) {
	if err := r.wait(ctx, r.listLatency); err != nil {
		return nil, err
	}
	return r.assets, nil
}

func (r *mockRepository) FetchByID(ctx context.Context, id string) (*models.Asset, error) {
	if err := r.wait(ctx, r.lookupLatency); err != nil {
		return nil, err
	}
	for i := range r.assets {
		if r.assets[i].ID == id {
			return &r.assets[i], nil
		}
	}
	return nil, nil
}

func (r *mockRepository) FetchByCategory(ctx context.Context, category models.Category) ([]models.Asset, error) {
	if err := r.wait(ctx, r.lookupLatency); err != nil {
		return nil, err
	}
	filtered := []models.Asset{}
	for _, a := range r.assets {
		if a.Category == category {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

func (r *mockRepository) Search(ctx context.Context, query string) ([]models.Asset, error) {
	if err := r.wait(ctx, r.lookupLatency); err != nil {
		return nil, err
	}
	needle := strings.ToLower(query)
	matched := []models.Asset{}
	for _, a := range r.assets {
		if strings.Contains(strings.ToLower(a.Name), needle) ||
			strings.Contains(strings.ToLower(a.Symbol), needle) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

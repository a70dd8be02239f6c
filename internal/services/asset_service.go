package services

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	apperrors "marketdeck/internal/errors"
	"marketdeck/internal/models"
	"marketdeck/internal/repository"
)

// assetService handles asset-related business logic. It caches the full
// universe after the first fetch so that switching the category filter
// back to "all" restores the original list without a repository
// round-trip.
type assetService struct {
	repo repository.AssetRepository

	// issued hands out a sequence number per refresh. applied records
	// the sequence of the cached universe; a slower, older fetch result
	// must not overwrite a newer one.
	issued  atomic.Uint64
	mu      sync.Mutex
	applied uint64
	cached  []models.Asset
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(repo repository.AssetRepository) AssetServicer {
	return &assetService{repo: repo}
}

// universe returns the cached full asset list, fetching it on first use.
func (s *assetService) universe(ctx context.Context) ([]models.Asset, error) {
	s.mu.Lock()
	if s.cached != nil {
		cached := s.cached
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()
	return s.refresh(ctx)
}

// refresh fetches the universe and applies it under the sequence guard.
// It returns the freshest cached list, which may be newer than the one
// this call fetched.
func (s *assetService) refresh(ctx context.Context) ([]models.Asset, error) {
	seq := s.issued.Add(1)

	assets, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAssetsUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq > s.applied {
		s.applied = seq
		s.cached = assets
	}
	return s.cached, nil
}

// ListAssets returns assets for the given category filter.
func (s *assetService) ListAssets(ctx context.Context, filter string) ([]models.Asset, error) {
	if filter == "" || filter == FilterAll {
		return s.universe(ctx)
	}

	category := models.Category(filter)
	if !category.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidCategory, "Unknown asset category: "+filter)
	}

	assets, err := s.repo.FetchByCategory(ctx, category)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAssetsUnavailable, err)
	}
	return assets, nil
}

// GetAssetByID returns a single asset by its id.
func (s *assetService) GetAssetByID(ctx context.Context, id string) (*models.Asset, error) {
	asset, err := s.repo.FetchByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAssetsUnavailable, err)
	}
	if asset == nil {
		return nil, apperrors.ErrAssetNotFound
	}
	return asset, nil
}

// SearchAssets matches the query against asset names and symbols. A
// blank query never reaches the repository.
func (s *assetService) SearchAssets(ctx context.Context, query string) ([]models.Asset, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Search query is blank")
	}

	assets, err := s.repo.Search(ctx, trimmed)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSearchFailed, err)
	}
	return assets, nil
}

// CategoryCounts derives the filter-control counts from the full
// universe, one entry per known category in fixed order.
func (s *assetService) CategoryCounts(ctx context.Context) ([]CategoryCount, error) {
	assets, err := s.universe(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[models.Category]int, 5)
	for _, a := range assets {
		byCategory[a.Category]++
	}

	counts := make([]CategoryCount, 0, 5)
	for _, c := range models.Categories() {
		counts = append(counts, CategoryCount{
			Category: c,
			Label:    c.Label(),
			Count:    byCategory[c],
		})
	}
	return counts, nil
}

package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"marketdeck/internal/models"
)

// gormRepository serves the asset universe from a relational store.
// Same contract as the mock: reads only, insertion order by position.
type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates an asset repository backed by the given
// database handle.
func NewGormRepository(db *gorm.DB) AssetRepository {
	return &gormRepository{db: db}
}

func (r *gormRepository) FetchAll(ctx context.Context) ([]models.Asset, error) {
	var assets []models.Asset
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *gormRepository) FetchByID(ctx context.Context, id string) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.WithContext(ctx).First(&asset, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *gormRepository) FetchByCategory(ctx context.Context, category models.Category) ([]models.Asset, error) {
	var assets []models.Asset
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("position ASC").
		Find(&assets).Error
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *gormRepository) Search(ctx context.Context, query string) ([]models.Asset, error) {
	needle := "%" + strings.ToLower(query) + "%"
	var assets []models.Asset
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(symbol) LIKE ?", needle, needle).
		Order("position ASC").
		Find(&assets).Error
	if err != nil {
		return nil, err
	}
	return assets, nil
}

package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"marketdeck/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewTestAsset builds an asset with sensible defaults and a unique
// id/symbol. Callers override fields as needed.
func NewTestAsset(category models.Category) models.Asset {
	n := nextID()
	return models.Asset{
		ID:            fmt.Sprintf("test-%d", n),
		Symbol:        fmt.Sprintf("SYM%d", n),
		Name:          fmt.Sprintf("Test Asset %d", n),
		Price:         decimal.NewFromInt(100),
		PreviousPrice: decimal.NewFromInt(99),
		Change:        decimal.NewFromInt(1),
		ChangePercent: decimal.RequireFromString("1.01"),
		LoanToValue:   decimal.RequireFromString("0.5"),
		Volume:        1000000,
		MarketCap:     5000000000,
		Category:      category,
		Rating:        models.RatingB,
		RiskScore:     decimal.RequireFromString("3.0"),
		Liquidity:     models.LiquidityMedium,
		LastUpdated:   time.Now().UTC(),
		Position:      int(n),
	}
}

// CreateTestAsset persists a default asset of the given category.
func CreateTestAsset(t *testing.T, db *gorm.DB, category models.Category) *models.Asset {
	t.Helper()

	asset := NewTestAsset(category)
	if err := db.Create(&asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return &asset
}

// CreateAssets persists the given assets in order.
func CreateAssets(t *testing.T, db *gorm.DB, assets []models.Asset) {
	t.Helper()

	for i := range assets {
		if err := db.Create(&assets[i]).Error; err != nil {
			t.Fatalf("failed to create asset %s: %v", assets[i].Symbol, err)
		}
	}
}

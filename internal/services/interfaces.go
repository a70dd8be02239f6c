package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"marketdeck/internal/models"
)

// FilterAll selects the unfiltered universe in a category filter.
const FilterAll = "all"

// CategoryCount is one entry in the category filter controls. Every
// known category is present even when its count is zero.
type CategoryCount struct {
	Category models.Category `json:"category"`
	Label    string          `json:"label"`
	Count    int             `json:"count"`
}

// AssetServicer defines the contract for asset-related business logic.
type AssetServicer interface {
	// ListAssets returns assets for a category filter. FilterAll (or an
	// empty filter) serves the cached universe without a repository call.
	ListAssets(ctx context.Context, filter string) ([]models.Asset, error)

	// GetAssetByID returns the asset or ErrAssetNotFound.
	GetAssetByID(ctx context.Context, id string) (*models.Asset, error)

	// SearchAssets matches the query against names and symbols,
	// case-insensitively. Blank queries are rejected without a fetch.
	SearchAssets(ctx context.Context, query string) ([]models.Asset, error)

	// CategoryCounts derives per-category counts from the full universe.
	CategoryCounts(ctx context.Context) ([]CategoryCount, error)
}

// MarketIndexView is a market index with its display strings.
type MarketIndexView struct {
	models.MarketIndex
	Display IndexDisplay `json:"display"`
}

// IndexDisplay holds the formatted strings for one summary card.
type IndexDisplay struct {
	Value  string `json:"value"`
	Change string `json:"change"`
	Tone   string `json:"tone"`
}

// MarketServicer defines the contract for the dashboard's market summary.
type MarketServicer interface {
	Summary() []MarketIndexView
}

// PortfolioEntry is one validated row of an imported portfolio.
type PortfolioEntry struct {
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	PurchaseDate  time.Time       `json:"purchase_date"`
}

// RowError reports a validation failure for a single CSV row. Line
// numbers count the header as line 1.
type RowError struct {
	Line    int    `json:"line"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportResult summarizes one import run. A run with rejected rows still
// succeeds; the row errors tell the user what to fix.
type ImportResult struct {
	ImportID string           `json:"import_id"`
	Source   string           `json:"source"`
	Imported int              `json:"imported"`
	Rejected int              `json:"rejected"`
	Entries  []PortfolioEntry `json:"entries"`
	Errors   []RowError       `json:"errors"`
}

// ImportServicer defines the contract for the portfolio import pipeline.
type ImportServicer interface {
	// ImportPortfolio parses and validates CSV data. The source names
	// the uploaded file, or is empty for pasted data.
	ImportPortfolio(ctx context.Context, source, data string) (*ImportResult, error)

	// Template returns the downloadable CSV template.
	Template() string
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category partitions the asset universe. The five values are closed;
// there is no open-ended extension.
type Category string

const (
	CategoryStock     Category = "stock"
	CategoryBond      Category = "bond"
	CategoryCommodity Category = "commodity"
	CategoryCrypto    Category = "crypto"
	CategoryForex     Category = "forex"
)

// Categories returns all known categories in their fixed display order.
func Categories() []Category {
	return []Category{CategoryStock, CategoryBond, CategoryCommodity, CategoryCrypto, CategoryForex}
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryStock, CategoryBond, CategoryCommodity, CategoryCrypto, CategoryForex:
		return true
	}
	return false
}

// Label returns the display label for the category filter buttons.
func (c Category) Label() string {
	switch c {
	case CategoryStock:
		return "Stocks"
	case CategoryBond:
		return "Bonds"
	case CategoryCommodity:
		return "Commodities"
	case CategoryCrypto:
		return "Crypto"
	case CategoryForex:
		return "Forex"
	}
	return string(c)
}

// Rating is a qualitative risk grade. A is best, D is worst.
type Rating string

const (
	RatingA        Rating = "A"
	RatingB        Rating = "B"
	RatingC        Rating = "C"
	RatingD        Rating = "D"
	RatingNotRated Rating = "N/A"
)

// Liquidity indicates qualitative ease of trading.
type Liquidity string

const (
	LiquidityHigh   Liquidity = "high"
	LiquidityMedium Liquidity = "medium"
	LiquidityLow    Liquidity = "low"
)

// Asset represents one tradable instrument record.
// Assets are immutable reads: no Base embed, no soft deletes. Change and
// ChangePercent are trusted as given; they are never recomputed from
// Price/PreviousPrice at render time. LoanToValue is stored as a fraction
// in [0,1], never pre-multiplied.
type Asset struct {
	ID            string          `gorm:"primaryKey" json:"id"`
	Symbol        string          `gorm:"not null;index" json:"symbol"`
	Name          string          `gorm:"not null" json:"name"`
	Price         decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	PreviousPrice decimal.Decimal `gorm:"type:numeric;not null" json:"previous_price"`
	Change        decimal.Decimal `gorm:"type:numeric;not null" json:"change"`
	ChangePercent decimal.Decimal `gorm:"type:numeric;not null" json:"change_percent"`
	LoanToValue   decimal.Decimal `gorm:"type:numeric;not null" json:"loan_to_value"`
	Volume        int64           `gorm:"not null" json:"volume"`
	MarketCap     int64           `gorm:"not null" json:"market_cap"`
	Category      Category        `gorm:"not null;index" json:"category"`
	Rating        Rating          `gorm:"not null" json:"rating"`
	RiskScore     decimal.Decimal `gorm:"type:numeric;not null" json:"risk_score"`
	Liquidity     Liquidity       `gorm:"not null" json:"liquidity"`
	LastUpdated   time.Time       `gorm:"not null" json:"last_updated"`

	// Position preserves the universe's insertion order for stable reads.
	Position int `gorm:"not null;index" json:"-"`
}

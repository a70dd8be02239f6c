package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"marketdeck/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// SeedAssets returns a fresh copy of the canonical asset universe. The
// same records back the mock store and the database seed migration.
func SeedAssets() []models.Asset {
	now := time.Now().UTC()
	return []models.Asset{
		{
			ID: "1", Symbol: "AAPL", Name: "Apple Inc.",
			Price: dec("182.63"), PreviousPrice: dec("178.42"),
			Change: dec("4.21"), ChangePercent: dec("2.36"),
			LoanToValue: dec("0.8"), Volume: 58921453, MarketCap: 2850000000000,
			Category: models.CategoryStock, Rating: models.RatingA,
			RiskScore: dec("2.1"), Liquidity: models.LiquidityHigh,
			LastUpdated: now, Position: 1,
		},
		{
			ID: "2", Symbol: "MSFT", Name: "Microsoft Corporation",
			Price: dec("412.65"), PreviousPrice: dec("415.32"),
			Change: dec("-2.67"), ChangePercent: dec("-0.64"),
			LoanToValue: dec("0.75"), Volume: 23450123, MarketCap: 3120000000000,
			Category: models.CategoryStock, Rating: models.RatingA,
			RiskScore: dec("2.5"), Liquidity: models.LiquidityHigh,
			LastUpdated: now, Position: 2,
		},
		{
			ID: "3", Symbol: "AMZN", Name: "Amazon.com Inc.",
			Price: dec("178.75"), PreviousPrice: dec("175.43"),
			Change: dec("3.32"), ChangePercent: dec("1.89"),
			LoanToValue: dec("0.7"), Volume: 36125478, MarketCap: 1850000000000,
			Category: models.CategoryStock, Rating: models.RatingA,
			RiskScore: dec("3.2"), Liquidity: models.LiquidityHigh,
			LastUpdated: now, Position: 3,
		},
		{
			ID: "4", Symbol: "GOOGL", Name: "Alphabet Inc.",
			Price: dec("148.95"), PreviousPrice: dec("149.25"),
			Change: dec("-0.30"), ChangePercent: dec("-0.20"),
			LoanToValue: dec("0.72"), Volume: 19827634, MarketCap: 1920000000000,
			Category: models.CategoryStock, Rating: models.RatingA,
			RiskScore: dec("2.8"), Liquidity: models.LiquidityHigh,
			LastUpdated: now, Position: 4,
		},
		{
			ID: "5", Symbol: "TSLA", Name: "Tesla, Inc.",
			Price: dec("175.21"), PreviousPrice: dec("180.54"),
			Change: dec("-5.33"), ChangePercent: dec("-2.95"),
			LoanToValue: dec("0.6"), Volume: 98654321, MarketCap: 560000000000,
			Category: models.CategoryStock, Rating: models.RatingB,
			RiskScore: dec("4.6"), Liquidity: models.LiquidityHigh,
			LastUpdated: now, Position: 5,
		},
		{
			ID: "6", Symbol: "BTC", Name: "Bitcoin",
			Price: dec("67542.75"), PreviousPrice: dec("66897.32"),
			Change: dec("645.43"), ChangePercent: dec("0.96"),
			LoanToValue: dec("0.5"), Volume: 32456789, MarketCap: 1320000000000,
			Category: models.CategoryCrypto, Rating: models.RatingB,
			RiskScore: dec("7.8"), Liquidity: models.LiquidityMedium,
			LastUpdated: now, Position: 6,
		},
		{
			ID: "7", Symbol: "ETH", Name: "Ethereum",
			Price: dec("3452.89"), PreviousPrice: dec("3400.12"),
			Change: dec("52.77"), ChangePercent: dec("1.55"),
			LoanToValue: dec("0.45"), Volume: 18756432, MarketCap: 425000000000,
			Category: models.CategoryCrypto, Rating: models.RatingB,
			RiskScore: dec("6.9"), Liquidity: models.LiquidityMedium,
			LastUpdated: now, Position: 7,
		},
		{
			ID: "8", Symbol: "US10Y", Name: "US 10 Year Treasury",
			Price: dec("98.45"), PreviousPrice: dec("98.37"),
			Change: dec("0.08"), ChangePercent: dec("0.08"),
			LoanToValue: dec("0.9"), Volume: 287654321, MarketCap: 0,
			Category: models.CategoryBond, Rating: models.RatingA,
			RiskScore: dec("1.2"), Liquidity: models.LiquidityHigh,
			LastUpdated: now, Position: 8,
		},
		{
			ID: "9", Symbol: "EUR/USD", Name: "Euro / US Dollar",
			Price: dec("1.0845"), PreviousPrice: dec("1.0867"),
			Change: dec("-0.0022"), ChangePercent: dec("-0.20"),
			LoanToValue: dec("0.85"), Volume: 125436789, MarketCap: 0,
			Category: models.CategoryForex, Rating: models.RatingA,
			RiskScore: dec("2.0"), Liquidity: models.LiquidityHigh,
			LastUpdated: now, Position: 9,
		},
		{
			ID: "10", Symbol: "GOLD", Name: "Gold Futures",
			Price: dec("2321.60"), PreviousPrice: dec("2305.30"),
			Change: dec("16.30"), ChangePercent: dec("0.71"),
			LoanToValue: dec("0.75"), Volume: 165432789, MarketCap: 0,
			Category: models.CategoryCommodity, Rating: models.RatingA,
			RiskScore: dec("3.5"), Liquidity: models.LiquidityMedium,
			LastUpdated: now, Position: 10,
		},
	}
}

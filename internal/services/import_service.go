package services

import (
	"context"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	apperrors "marketdeck/internal/errors"
	"marketdeck/internal/logger"
	"marketdeck/internal/uuid"
)

const purchaseDateLayout = "2006-01-02"

// portfolioRow mirrors the CSV template schema. Fields stay strings so
// that one bad cell rejects one row, not the whole batch.
type portfolioRow struct {
	Symbol        string `csv:"symbol"`
	Name          string `csv:"name"`
	Quantity      string `csv:"quantity"`
	PurchasePrice string `csv:"purchasePrice"`
	PurchaseDate  string `csv:"purchaseDate"`
}

// templateRows are the illustrative entries in the downloadable template.
var templateRows = []portfolioRow{
	{Symbol: "AAPL", Name: "Apple Inc.", Quantity: "10", PurchasePrice: "180.50", PurchaseDate: "2023-01-15"},
	{Symbol: "MSFT", Name: "Microsoft Corp.", Quantity: "5", PurchasePrice: "350.20", PurchaseDate: "2023-02-20"},
}

// importService parses and validates portfolio CSV uploads.
type importService struct{}

// NewImportService creates a new ImportServicer.
func NewImportService() ImportServicer {
	return &importService{}
}

// ImportPortfolio parses the CSV data and validates it row by row.
func (s *importService) ImportPortfolio(ctx context.Context, source, data string) (*ImportResult, error) {
	if strings.TrimSpace(data) == "" {
		return nil, apperrors.ErrEmptyImport
	}

	var rows []portfolioRow
	if err := gocsv.UnmarshalString(data, &rows); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrMalformedCSV, err)
	}
	if len(rows) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrEmptyImport, "CSV contains a header but no data rows")
	}

	result := &ImportResult{
		ImportID: uuid.New(),
		Source:   source,
		Entries:  []PortfolioEntry{},
		Errors:   []RowError{},
	}
	if result.Source == "" {
		result.Source = "pasted data"
	}

	for i, row := range rows {
		// Header is line 1; data rows start at line 2.
		line := i + 2
		entry, rowErrs := validateRow(line, row)
		if len(rowErrs) > 0 {
			result.Rejected++
			result.Errors = append(result.Errors, rowErrs...)
			continue
		}
		result.Imported++
		result.Entries = append(result.Entries, *entry)
	}

	logger.Get().Infow("portfolio import",
		"import_id", result.ImportID,
		"source", result.Source,
		"imported", result.Imported,
		"rejected", result.Rejected,
	)
	return result, nil
}

// validateRow converts one string-typed CSV row into a PortfolioEntry,
// collecting every field error on the row.
func validateRow(line int, row portfolioRow) (*PortfolioEntry, []RowError) {
	var errs []RowError

	symbol := strings.TrimSpace(row.Symbol)
	if symbol == "" {
		errs = append(errs, RowError{Line: line, Field: "symbol", Message: "symbol is required"})
	}

	name := strings.TrimSpace(row.Name)
	if name == "" {
		errs = append(errs, RowError{Line: line, Field: "name", Message: "name is required"})
	}

	quantity, err := decimal.NewFromString(strings.TrimSpace(row.Quantity))
	if err != nil {
		errs = append(errs, RowError{Line: line, Field: "quantity", Message: "quantity is not a number"})
	} else if quantity.Sign() <= 0 {
		errs = append(errs, RowError{Line: line, Field: "quantity", Message: "quantity must be positive"})
	}

	price, err := decimal.NewFromString(strings.TrimSpace(row.PurchasePrice))
	if err != nil {
		errs = append(errs, RowError{Line: line, Field: "purchasePrice", Message: "purchase price is not a number"})
	} else if price.Sign() < 0 {
		errs = append(errs, RowError{Line: line, Field: "purchasePrice", Message: "purchase price cannot be negative"})
	}

	date, err := time.Parse(purchaseDateLayout, strings.TrimSpace(row.PurchaseDate))
	if err != nil {
		errs = append(errs, RowError{Line: line, Field: "purchaseDate", Message: "purchase date must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &PortfolioEntry{
		Symbol:        symbol,
		Name:          name,
		Quantity:      quantity,
		PurchasePrice: price,
		PurchaseDate:  date,
	}, nil
}

// Template returns the CSV template offered for download: the schema
// header plus two illustrative rows.
func (s *importService) Template() string {
	out, err := gocsv.MarshalString(&templateRows)
	if err != nil {
		// The template rows are constants; marshalling cannot fail at runtime.
		logger.Get().Errorw("template marshal failed", "error", err)
		return ""
	}
	return out
}

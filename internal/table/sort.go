// Package table turns a list of assets into the ordered, display-ready
// rows the dashboard renders.
package table

import (
	"sort"
	"strings"

	"marketdeck/internal/models"
)

// SortKey identifies one sortable column. Each key carries a dedicated,
// type-correct comparator; there is no dynamic field lookup.
type SortKey string

const (
	SortBySymbol        SortKey = "symbol"
	SortByName          SortKey = "name"
	SortByPrice         SortKey = "price"
	SortByChangePercent SortKey = "change_percent"
	SortByLoanToValue   SortKey = "loan_to_value"
	SortByVolume        SortKey = "volume"
	SortByMarketCap     SortKey = "market_cap"
	SortByRating        SortKey = "rating"
)

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortBySymbol, SortByName, SortByPrice, SortByChangePercent,
		SortByLoanToValue, SortByVolume, SortByMarketCap, SortByRating:
		return true
	}
	return false
}

// Direction is the sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == Ascending || d == Descending
}

// SortSpec is the single active sort directive for a table.
type SortSpec struct {
	Key       SortKey
	Direction Direction
}

// DefaultSort is the table's initial directive: symbol ascending.
func DefaultSort() SortSpec {
	return SortSpec{Key: SortBySymbol, Direction: Ascending}
}

// Toggle returns the directive after the user activates a column header:
// the same key flips direction, a different key takes over ascending.
func (s SortSpec) Toggle(key SortKey) SortSpec {
	if key == s.Key {
		if s.Direction == Ascending {
			return SortSpec{Key: key, Direction: Descending}
		}
		return SortSpec{Key: key, Direction: Ascending}
	}
	return SortSpec{Key: key, Direction: Ascending}
}

// compare orders a before b for the given key. Strings compare
// lexicographically, numbers numerically. Rating compares on its string
// form, so N/A sorts after D.
func compare(a, b *models.Asset, key SortKey) int {
	switch key {
	case SortBySymbol:
		return strings.Compare(a.Symbol, b.Symbol)
	case SortByName:
		return strings.Compare(a.Name, b.Name)
	case SortByPrice:
		return a.Price.Cmp(b.Price)
	case SortByChangePercent:
		return a.ChangePercent.Cmp(b.ChangePercent)
	case SortByLoanToValue:
		return a.LoanToValue.Cmp(b.LoanToValue)
	case SortByVolume:
		return compareInt64(a.Volume, b.Volume)
	case SortByMarketCap:
		return compareInt64(a.MarketCap, b.MarketCap)
	case SortByRating:
		return strings.Compare(string(a.Rating), string(b.Rating))
	}
	return 0
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Sort returns the assets ordered by the directive. The input slice is
// never mutated. Ties are not broken by a secondary key, so relative
// order among equal values is unspecified. An invalid directive falls
// back to the default sort.
func Sort(assets []models.Asset, spec SortSpec) []models.Asset {
	if !spec.Key.Valid() || !spec.Direction.Valid() {
		spec = DefaultSort()
	}

	sorted := make([]models.Asset, len(assets))
	copy(sorted, assets)

	sort.Slice(sorted, func(i, j int) bool {
		c := compare(&sorted[i], &sorted[j], spec.Key)
		if spec.Direction == Descending {
			return c > 0
		}
		return c < 0
	})
	return sorted
}

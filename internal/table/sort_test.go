package table

import (
	"testing"

	"marketdeck/internal/models"
)

func testAssets() []models.Asset {
	return []models.Asset{
		{ID: "1", Symbol: "MSFT", Name: "Microsoft Corporation", Price: d("412.65"), ChangePercent: d("-0.64"), LoanToValue: d("0.75"), Volume: 23450123, MarketCap: 3120000000000, Rating: models.RatingA},
		{ID: "2", Symbol: "AAPL", Name: "Apple Inc.", Price: d("182.63"), ChangePercent: d("2.36"), LoanToValue: d("0.8"), Volume: 58921453, MarketCap: 2850000000000, Rating: models.RatingA},
		{ID: "3", Symbol: "BTC", Name: "Bitcoin", Price: d("67542.75"), ChangePercent: d("0.96"), LoanToValue: d("0.5"), Volume: 32456789, MarketCap: 1320000000000, Rating: models.RatingB},
		{ID: "4", Symbol: "US10Y", Name: "US 10 Year Treasury", Price: d("98.45"), ChangePercent: d("0.08"), LoanToValue: d("0.9"), Volume: 287654321, MarketCap: 0, Rating: models.RatingA},
	}
}

func symbols(assets []models.Asset) []string {
	out := make([]string, len(assets))
	for i, a := range assets {
		out[i] = a.Symbol
	}
	return out
}

func assertOrder(t *testing.T, got []models.Asset, want []string) {
	t.Helper()
	gotSymbols := symbols(got)
	if len(gotSymbols) != len(want) {
		t.Fatalf("expected %d assets, got %d", len(want), len(gotSymbols))
	}
	for i := range want {
		if gotSymbols[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, gotSymbols)
		}
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		name string
		spec SortSpec
		want []string
	}{
		{"symbol ascending", SortSpec{SortBySymbol, Ascending}, []string{"AAPL", "BTC", "MSFT", "US10Y"}},
		{"symbol descending", SortSpec{SortBySymbol, Descending}, []string{"US10Y", "MSFT", "BTC", "AAPL"}},
		{"name ascending", SortSpec{SortByName, Ascending}, []string{"AAPL", "BTC", "MSFT", "US10Y"}},
		{"price ascending", SortSpec{SortByPrice, Ascending}, []string{"US10Y", "AAPL", "MSFT", "BTC"}},
		{"price descending", SortSpec{SortByPrice, Descending}, []string{"BTC", "MSFT", "AAPL", "US10Y"}},
		{"change percent ascending", SortSpec{SortByChangePercent, Ascending}, []string{"MSFT", "US10Y", "BTC", "AAPL"}},
		{"loan to value descending", SortSpec{SortByLoanToValue, Descending}, []string{"US10Y", "AAPL", "MSFT", "BTC"}},
		{"volume ascending", SortSpec{SortByVolume, Ascending}, []string{"MSFT", "BTC", "AAPL", "US10Y"}},
		{"market cap descending", SortSpec{SortByMarketCap, Descending}, []string{"MSFT", "AAPL", "BTC", "US10Y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertOrder(t, Sort(testAssets(), tt.spec), tt.want)
		})
	}
}

func TestSortReversalSymmetry(t *testing.T) {
	keys := []SortKey{SortBySymbol, SortByName, SortByPrice, SortByChangePercent, SortByLoanToValue, SortByVolume, SortByMarketCap}

	for _, key := range keys {
		t.Run(string(key), func(t *testing.T) {
			asc := Sort(testAssets(), SortSpec{Key: key, Direction: Ascending})
			desc := Sort(testAssets(), SortSpec{Key: key, Direction: Descending})

			for i := range asc {
				if asc[i].ID != desc[len(desc)-1-i].ID {
					t.Fatalf("descending order is not the reverse of ascending for key %s", key)
				}
			}
		})
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	assets := testAssets()
	Sort(assets, SortSpec{Key: SortByPrice, Direction: Descending})
	assertOrder(t, assets, []string{"MSFT", "AAPL", "BTC", "US10Y"})
}

func TestSortInvalidSpecFallsBackToDefault(t *testing.T) {
	got := Sort(testAssets(), SortSpec{Key: "nonsense", Direction: "sideways"})
	assertOrder(t, got, []string{"AAPL", "BTC", "MSFT", "US10Y"})
}

func TestDefaultSort(t *testing.T) {
	spec := DefaultSort()
	if spec.Key != SortBySymbol || spec.Direction != Ascending {
		t.Errorf("expected symbol/asc default, got %s/%s", spec.Key, spec.Direction)
	}
}

func TestToggle(t *testing.T) {
	t.Run("same key flips direction", func(t *testing.T) {
		spec := SortSpec{Key: SortByPrice, Direction: Ascending}
		spec = spec.Toggle(SortByPrice)
		if spec.Direction != Descending {
			t.Errorf("expected descending after toggle, got %s", spec.Direction)
		}
	})

	t.Run("toggling twice restores the directive", func(t *testing.T) {
		spec := SortSpec{Key: SortByVolume, Direction: Ascending}
		roundTrip := spec.Toggle(SortByVolume).Toggle(SortByVolume)
		if roundTrip != spec {
			t.Errorf("expected %v after double toggle, got %v", spec, roundTrip)
		}
	})

	t.Run("new key resets to ascending", func(t *testing.T) {
		spec := SortSpec{Key: SortByPrice, Direction: Descending}
		spec = spec.Toggle(SortByRating)
		if spec.Key != SortByRating || spec.Direction != Ascending {
			t.Errorf("expected rating/asc, got %s/%s", spec.Key, spec.Direction)
		}
	})
}

func TestBuild(t *testing.T) {
	rows := Build(testAssets(), DefaultSort())

	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Symbol != "AAPL" {
		t.Fatalf("expected AAPL first under the default sort, got %s", first.Symbol)
	}
	if first.Price != "$182.63" {
		t.Errorf("expected price $182.63, got %q", first.Price)
	}
	if first.ChangePercent != "+2.36%" {
		t.Errorf("expected change +2.36%%, got %q", first.ChangePercent)
	}
	if first.LoanToValue != "80%" {
		t.Errorf("expected LTV 80%%, got %q", first.LoanToValue)
	}
	if first.Volume != "58.92M" {
		t.Errorf("expected volume 58.92M, got %q", first.Volume)
	}
	if first.MarketCap != "2.85T" {
		t.Errorf("expected market cap 2.85T, got %q", first.MarketCap)
	}
	if first.RatingTone != TonePositive {
		t.Errorf("expected positive rating tone for A, got %q", first.RatingTone)
	}
	if first.ChangeTone != TonePositive {
		t.Errorf("expected positive change tone, got %q", first.ChangeTone)
	}

	// Zero market cap renders as the em dash placeholder.
	last := rows[len(rows)-1]
	if last.Symbol != "US10Y" || last.MarketCap != "—" {
		t.Errorf("expected US10Y with market cap —, got %s with %q", last.Symbol, last.MarketCap)
	}
}

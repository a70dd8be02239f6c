package services

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"marketdeck/internal/models"
	"marketdeck/internal/table"
)

// marketService serves the dashboard's market summary cards. The index
// levels are a fixed snapshot; live index feeds are out of scope.
type marketService struct {
	indices []models.MarketIndex
}

// NewMarketService creates a new MarketServicer.
func NewMarketService() MarketServicer {
	return &marketService{
		indices: []models.MarketIndex{
			{Name: "S&P 500", Value: 5218.50, Change: 23.45, ChangePercent: 0.45},
			{Name: "Dow Jones", Value: 38765.32, Change: -45.67, ChangePercent: -0.12},
			{Name: "Nasdaq", Value: 16340.87, Change: 82.23, ChangePercent: 0.51},
		},
	}
}

// Summary returns the indices with their display strings.
func (s *marketService) Summary() []MarketIndexView {
	views := make([]MarketIndexView, len(s.indices))
	for i, idx := range s.indices {
		tone := table.TonePositive
		if idx.Change < 0 {
			tone = table.ToneNegative
		}
		views[i] = MarketIndexView{
			MarketIndex: idx,
			Display: IndexDisplay{
				Value:  humanize.FormatFloat("#,###.##", idx.Value),
				Change: fmt.Sprintf("%+.2f (%.2f%%)", idx.Change, idx.ChangePercent),
				Tone:   string(tone),
			},
		}
	}
	return views
}

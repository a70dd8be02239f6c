package table

import "marketdeck/internal/models"

// Row is one display-formatted table row.
type Row struct {
	ID            string `json:"id"`
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Price         string `json:"price"`
	ChangePercent string `json:"change_percent"`
	LoanToValue   string `json:"loan_to_value"`
	Volume        string `json:"volume"`
	MarketCap     string `json:"market_cap"`
	Rating        string `json:"rating"`
	RatingTone    Tone   `json:"rating_tone"`
	ChangeTone    Tone   `json:"change_tone"`
}

// Build sorts the assets by the directive and formats each into a Row.
// The input slice is not mutated.
func Build(assets []models.Asset, spec SortSpec) []Row {
	sorted := Sort(assets, spec)
	rows := make([]Row, len(sorted))
	for i, a := range sorted {
		rows[i] = Row{
			ID:            a.ID,
			Symbol:        a.Symbol,
			Name:          a.Name,
			Price:         FormatCurrency(a.Price),
			ChangePercent: FormatPercent(a.ChangePercent),
			LoanToValue:   FormatLoanToValue(a.LoanToValue),
			Volume:        FormatLargeNumber(a.Volume),
			MarketCap:     FormatLargeNumber(a.MarketCap),
			Rating:        string(a.Rating),
			RatingTone:    RatingTone(a.Rating),
			ChangeTone:    ChangeTone(a.ChangePercent),
		}
	}
	return rows
}

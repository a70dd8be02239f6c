package models

// MarketIndex represents one summary card on the dashboard
// (index level plus its daily move).
type MarketIndex struct {
	Name          string  `json:"index_name"`
	Value         float64 `json:"value"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

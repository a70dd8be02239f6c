package table

import (
	"fmt"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"marketdeck/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

// FormatCurrency renders a price in US-dollar convention with two
// decimal places, e.g. 182.63 -> "$182.63".
func FormatCurrency(v decimal.Decimal) string {
	cents := v.Mul(oneHundred).Round(0).IntPart()
	return money.New(cents, money.USD).Display()
}

// FormatPercent renders a percentage-point change with an explicit sign
// for non-negative values, e.g. 2.36 -> "+2.36%", -0.64 -> "-0.64%".
func FormatPercent(v decimal.Decimal) string {
	s := v.StringFixed(2) + "%"
	if v.Sign() >= 0 {
		return "+" + s
	}
	return s
}

// FormatLoanToValue renders a stored fraction as a whole percentage,
// e.g. 0.8 -> "80%".
func FormatLoanToValue(v decimal.Decimal) string {
	return v.Mul(oneHundred).Round(0).String() + "%"
}

// FormatLargeNumber abbreviates volumes and market caps into the largest
// applicable unit with two decimals. Zero renders as an em dash
// (market cap is legitimately zero for bonds and forex); values below
// one thousand render as the plain integer.
func FormatLargeNumber(v int64) string {
	switch {
	case v == 0:
		return "—"
	case v >= 1e12:
		return fmt.Sprintf("%.2fT", float64(v)/1e12)
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", float64(v)/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", float64(v)/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2fK", float64(v)/1e3)
	}
	return strconv.FormatInt(v, 10)
}

// Tone is a presentation hint for a cell, not a data transformation.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
)

// RatingTone flags rating A as positive and D as negative.
func RatingTone(r models.Rating) Tone {
	switch r {
	case models.RatingA:
		return TonePositive
	case models.RatingD:
		return ToneNegative
	}
	return ToneNeutral
}

// ChangeTone flags a non-negative change as positive.
func ChangeTone(v decimal.Decimal) Tone {
	if v.Sign() >= 0 {
		return TonePositive
	}
	return ToneNegative
}

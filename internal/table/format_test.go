package table

import (
	"testing"

	"github.com/shopspring/decimal"

	"marketdeck/internal/models"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"typical price", "182.63", "$182.63"},
		{"whole dollars", "100", "$100.00"},
		{"rounds half up", "1.005", "$1.01"},
		{"large price groups thousands", "67542.75", "$67,542.75"},
		{"sub-dollar", "0.99", "$0.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCurrency(d(tt.value)); got != tt.want {
				t.Errorf("FormatCurrency(%s) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"positive gets explicit sign", "2.36", "+2.36%"},
		{"negative keeps its sign", "-0.64", "-0.64%"},
		{"zero counts as positive", "0", "+0.00%"},
		{"pads to two decimals", "1.5", "+1.50%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPercent(d(tt.value)); got != tt.want {
				t.Errorf("FormatPercent(%s) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatLoanToValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"fraction to whole percent", "0.8", "80%"},
		{"three quarters", "0.75", "75%"},
		{"rounds to whole number", "0.455", "46%"},
		{"full collateral", "1", "100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLoanToValue(d(tt.value)); got != tt.want {
				t.Errorf("FormatLoanToValue(%s) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatLargeNumber(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		want  string
	}{
		{"zero renders as em dash", 0, "—"},
		{"trillions", 2850000000000, "2.85T"},
		{"billions", 560000000000, "560.00B"},
		{"millions", 58921453, "58.92M"},
		{"thousands", 58921, "58.92K"},
		{"below one thousand stays plain", 999, "999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLargeNumber(tt.value); got != tt.want {
				t.Errorf("FormatLargeNumber(%d) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestRatingTone(t *testing.T) {
	tests := []struct {
		rating models.Rating
		want   Tone
	}{
		{models.RatingA, TonePositive},
		{models.RatingB, ToneNeutral},
		{models.RatingC, ToneNeutral},
		{models.RatingD, ToneNegative},
		{models.RatingNotRated, ToneNeutral},
	}

	for _, tt := range tests {
		t.Run(string(tt.rating), func(t *testing.T) {
			if got := RatingTone(tt.rating); got != tt.want {
				t.Errorf("RatingTone(%s) = %q, want %q", tt.rating, got, tt.want)
			}
		})
	}
}

func TestChangeTone(t *testing.T) {
	if got := ChangeTone(d("2.36")); got != TonePositive {
		t.Errorf("expected positive tone for a gain, got %q", got)
	}
	if got := ChangeTone(d("-0.64")); got != ToneNegative {
		t.Errorf("expected negative tone for a loss, got %q", got)
	}
	if got := ChangeTone(d("0")); got != TonePositive {
		t.Errorf("expected flat change to read as positive, got %q", got)
	}
}

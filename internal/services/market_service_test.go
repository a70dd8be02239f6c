package services

import "testing"

func TestMarketSummary(t *testing.T) {
	svc := NewMarketService()
	views := svc.Summary()

	if len(views) != 3 {
		t.Fatalf("expected 3 indices, got %d", len(views))
	}

	tests := []struct {
		name   string
		value  string
		change string
		tone   string
	}{
		{"S&P 500", "5,218.50", "+23.45 (0.45%)", "positive"},
		{"Dow Jones", "38,765.32", "-45.67 (-0.12%)", "negative"},
		{"Nasdaq", "16,340.87", "+82.23 (0.51%)", "positive"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := views[i]
			if got.Name != tt.name {
				t.Fatalf("expected index %q, got %q", tt.name, got.Name)
			}
			if got.Display.Value != tt.value {
				t.Errorf("value: got %q, want %q", got.Display.Value, tt.value)
			}
			if got.Display.Change != tt.change {
				t.Errorf("change: got %q, want %q", got.Display.Change, tt.change)
			}
			if got.Display.Tone != tt.tone {
				t.Errorf("tone: got %q, want %q", got.Display.Tone, tt.tone)
			}
		})
	}
}

package handlers

import (
	"net/http"
	"testing"
)

func TestMarketSummaryEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := doGet(t, router, "/api/v1/markets/summary")
	assertStatus(t, w, http.StatusOK)

	body := parseJSON(t, w)
	indices, ok := body["indices"].([]any)
	if !ok {
		t.Fatalf("expected an indices array, got %s", w.Body.String())
	}
	if len(indices) != 3 {
		t.Fatalf("expected 3 indices, got %d", len(indices))
	}

	first := indices[0].(map[string]any)
	if first["index_name"] != "S&P 500" {
		t.Errorf("expected S&P 500 first, got %v", first["index_name"])
	}
	display := first["display"].(map[string]any)
	if display["value"] != "5,218.50" {
		t.Errorf("expected formatted value, got %v", display["value"])
	}
	if display["tone"] != "positive" {
		t.Errorf("expected positive tone, got %v", display["tone"])
	}
}

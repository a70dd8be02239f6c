package handlers

import (
	"net/http"
	"testing"
)

func TestListAssetsEndpoint(t *testing.T) {
	router := setupRouter(t)

	t.Run("default listing", func(t *testing.T) {
		w := doGet(t, router, "/api/v1/assets")
		assertStatus(t, w, http.StatusOK)

		body := parseJSON(t, w)
		rows, ok := body["data"].([]any)
		if !ok {
			t.Fatalf("expected a data array, got %s", w.Body.String())
		}
		if len(rows) != 10 {
			t.Fatalf("expected 10 rows, got %d", len(rows))
		}
		if body["total_items"].(float64) != 10 {
			t.Errorf("expected total_items 10, got %v", body["total_items"])
		}

		// Default sort is symbol ascending.
		first := rows[0].(map[string]any)
		if first["symbol"] != "AAPL" {
			t.Errorf("expected AAPL first, got %v", first["symbol"])
		}
		if first["price"] != "$182.63" {
			t.Errorf("expected formatted price $182.63, got %v", first["price"])
		}
		if first["change_percent"] != "+2.36%" {
			t.Errorf("expected +2.36%%, got %v", first["change_percent"])
		}
	})

	t.Run("category filter", func(t *testing.T) {
		w := doGet(t, router, "/api/v1/assets?category=crypto")
		assertStatus(t, w, http.StatusOK)

		body := parseJSON(t, w)
		rows := body["data"].([]any)
		if len(rows) != 2 {
			t.Fatalf("expected 2 crypto rows, got %d", len(rows))
		}
	})

	t.Run("sort by price descending", func(t *testing.T) {
		w := doGet(t, router, "/api/v1/assets?sort=price&direction=desc")
		assertStatus(t, w, http.StatusOK)

		rows := parseJSON(t, w)["data"].([]any)
		first := rows[0].(map[string]any)
		if first["symbol"] != "BTC" {
			t.Errorf("expected BTC first by price desc, got %v", first["symbol"])
		}
	})

	t.Run("pagination", func(t *testing.T) {
		w := doGet(t, router, "/api/v1/assets?page=2&page_size=4")
		assertStatus(t, w, http.StatusOK)

		body := parseJSON(t, w)
		rows := body["data"].([]any)
		if len(rows) != 4 {
			t.Fatalf("expected 4 rows on page 2, got %d", len(rows))
		}
		if body["total_pages"].(float64) != 3 {
			t.Errorf("expected 3 total pages, got %v", body["total_pages"])
		}
	})

	t.Run("invalid sort key", func(t *testing.T) {
		w := doGet(t, router, "/api/v1/assets?sort=sparkline")
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("invalid direction", func(t *testing.T) {
		w := doGet(t, router, "/api/v1/assets?direction=sideways")
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("invalid category", func(t *testing.T) {
		w := doGet(t, router, "/api/v1/assets?category=derivatives")
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func TestGetAssetEndpoint(t *testing.T) {
	router := setupRouter(t)

	t.Run("known asset", func(t *testing.T) {
		w := doGet(t, router, "/api/v1/assets/6")
		assertStatus(t, w, http.StatusOK)

		body := parseJSON(t, w)
		asset, ok := body["asset"].(map[string]any)
		if !ok {
			t.Fatalf("expected an asset object, got %s", w.Body.String())
		}
		if asset["symbol"] != "BTC" {
			t.Errorf("expected BTC, got %v", asset["symbol"])
		}
	})

	t.Run("unknown asset", func(t *testing.T) {
		w := doGet(t, router, "/api/v1/assets/999")
		assertErrorCode(t, w, http.StatusNotFound, "ASSET_NOT_FOUND")
	})
}

func TestGetCategoryCountsEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := doGet(t, router, "/api/v1/assets/categories")
	assertStatus(t, w, http.StatusOK)

	body := parseJSON(t, w)
	categories, ok := body["categories"].([]any)
	if !ok {
		t.Fatalf("expected a categories array, got %s", w.Body.String())
	}
	if len(categories) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(categories))
	}

	first := categories[0].(map[string]any)
	if first["category"] != "stock" || first["label"] != "Stocks" || first["count"].(float64) != 5 {
		t.Errorf("unexpected first category entry: %v", first)
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketdeck/internal/services"
)

// MarketHandler handles the dashboard's market summary cards.
type MarketHandler struct {
	marketService services.MarketServicer
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketService services.MarketServicer) *MarketHandler {
	return &MarketHandler{marketService: marketService}
}

// Summary handles the market index summary.
// @Summary     Market summary
// @Description Get the market index summary cards
// @Tags        markets
// @Produce     json
// @Success     200 {object} map[string][]services.MarketIndexView "Index cards"
// @Router      /markets/summary [get]
func (h *MarketHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"indices": h.marketService.Summary()})
}

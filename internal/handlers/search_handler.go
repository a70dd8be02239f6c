package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "marketdeck/internal/errors"
	"marketdeck/internal/services"
	"marketdeck/internal/table"
)

// SearchHandler handles free-text asset search.
type SearchHandler struct {
	assetService services.AssetServicer
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(assetService services.AssetServicer) *SearchHandler {
	return &SearchHandler{assetService: assetService}
}

// SearchRequest holds the search page's query parameters.
type SearchRequest struct {
	Query     string `form:"q"`
	Sort      string `form:"sort" binding:"omitempty,sort_key"`
	Direction string `form:"direction" binding:"omitempty,sort_direction"`
}

// Search handles a free-text search over names and symbols. The query is
// echoed back so results stay shareable via the request URL.
// @Summary     Search assets
// @Description Case-insensitive substring search against asset names and symbols
// @Tags        search
// @Produce     json
// @Param       q         query string true  "Search query (must not be blank)"
// @Param       sort      query string false "Sort key (default symbol)"
// @Param       direction query string false "Sort direction asc|desc (default asc)"
// @Success     200 {object} map[string]interface{} "Query, count, and formatted result rows"
// @Failure     400 {object} ErrorResponse "Blank query"
// @Failure     502 {object} ErrorResponse "Search failed"
// @Router      /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	results, err := h.assetService.SearchAssets(c.Request.Context(), req.Query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows := table.Build(results, sortSpec(req.Sort, req.Direction))

	c.JSON(http.StatusOK, gin.H{
		"query":   strings.TrimSpace(req.Query),
		"count":   len(rows),
		"results": rows,
	})
}

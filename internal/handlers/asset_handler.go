package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "marketdeck/internal/errors"
	"marketdeck/internal/pagination"
	"marketdeck/internal/services"
	"marketdeck/internal/table"
)

// AssetHandler handles asset listing, lookup, and category counts.
type AssetHandler struct {
	assetService services.AssetServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// ListAssetsRequest holds the home table's query parameters.
type ListAssetsRequest struct {
	Category  string `form:"category" binding:"omitempty,category_filter"`
	Sort      string `form:"sort" binding:"omitempty,sort_key"`
	Direction string `form:"direction" binding:"omitempty,sort_direction"`
}

// ListAssets handles the dashboard's asset table.
// @Summary     List assets
// @Description Get the sorted, display-formatted asset table, optionally filtered by category
// @Tags        assets
// @Produce     json
// @Param       category  query string false "Category filter (stock|bond|commodity|crypto|forex|all)"
// @Param       sort      query string false "Sort key (default symbol)"
// @Param       direction query string false "Sort direction asc|desc (default asc)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[table.Row] "Paginated table rows"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Assets unavailable"
// @Router      /assets [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	var req ListAssetsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	page.Defaults()

	assets, err := h.assetService.ListAssets(c.Request.Context(), req.Category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows := table.Build(assets, sortSpec(req.Sort, req.Direction))
	paged := pagination.Slice(rows, page)
	result := pagination.NewPageResponse(paged, page.Page, page.PageSize, int64(len(rows)))

	c.JSON(http.StatusOK, result)
}

// GetAsset handles retrieving a single asset.
// @Summary     Get asset by ID
// @Description Get one asset record by its identifier
// @Tags        assets
// @Produce     json
// @Param       id path string true "Asset ID"
// @Success     200 {object} map[string]models.Asset "Asset record"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	asset, err := h.assetService.GetAssetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// GetCategoryCounts handles the filter-control counts.
// @Summary     Category counts
// @Description Get per-category asset counts for the filter controls
// @Tags        assets
// @Produce     json
// @Success     200 {object} map[string][]services.CategoryCount "Counts per category"
// @Failure     502 {object} ErrorResponse "Assets unavailable"
// @Router      /assets/categories [get]
func (h *AssetHandler) GetCategoryCounts(c *gin.Context) {
	counts, err := h.assetService.CategoryCounts(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": counts})
}

package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "marketdeck/internal/errors"
	"marketdeck/internal/services"
)

// ImportHandler handles portfolio CSV import and the template download.
type ImportHandler struct {
	importService services.ImportServicer
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService services.ImportServicer) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// ImportDataRequest is the JSON body for pasted portfolio data.
type ImportDataRequest struct {
	Data string `json:"data" binding:"required"`
}

// ImportPortfolio handles a portfolio import. Multipart requests carry
// either an uploaded "file" or a pasted "data" form value, never both;
// JSON requests carry {"data": ...}.
// @Summary     Import portfolio
// @Description Parse and validate a portfolio CSV from an uploaded file or pasted data
// @Tags        import
// @Accept      mpfd
// @Accept      json
// @Produce     json
// @Param       file body string false "CSV file (multipart)"
// @Param       data body string false "Pasted CSV data"
// @Success     200 {object} services.ImportResult "Import result with row-level errors"
// @Failure     400 {object} ErrorResponse "No data, ambiguous input, or malformed CSV"
// @Router      /import [post]
func (h *ImportHandler) ImportPortfolio(c *gin.Context) {
	source, data, err := readImportPayload(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.importService.ImportPortfolio(c.Request.Context(), source, data)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// readImportPayload extracts the CSV data and its source name from the
// request, enforcing the mutually exclusive input modes.
func readImportPayload(c *gin.Context) (source, data string, err error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		var req ImportDataRequest
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			return "", "", apperrors.WithMessage(apperrors.ErrInvalidInput, bindErr.Error())
		}
		return "", req.Data, nil
	}

	pasted := c.PostForm("data")
	header, fileErr := c.FormFile("file")
	if fileErr != nil && pasted == "" {
		return "", "", apperrors.ErrEmptyImport
	}
	if fileErr == nil && pasted != "" {
		return "", "", apperrors.ErrAmbiguousImport
	}
	if fileErr != nil {
		return "", pasted, nil
	}

	f, openErr := header.Open()
	if openErr != nil {
		return "", "", apperrors.Wrap(apperrors.ErrInternalServer, openErr)
	}
	defer f.Close()

	raw, readErr := io.ReadAll(f)
	if readErr != nil {
		return "", "", apperrors.Wrap(apperrors.ErrInternalServer, readErr)
	}
	return header.Filename, string(raw), nil
}

// DownloadTemplate handles the CSV template download.
// @Summary     Download CSV template
// @Description Download the portfolio CSV template with example rows
// @Tags        import
// @Produce     text/csv
// @Success     200 {string} string "CSV template"
// @Router      /import/template [get]
func (h *ImportHandler) DownloadTemplate(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="portfolio_template.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(h.importService.Template()))
}

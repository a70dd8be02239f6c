package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "marketdeck/internal/errors"
	"marketdeck/internal/logger"
	"marketdeck/internal/table"
)

// ErrorResponse documents the JSON error envelope for swagger.
type ErrorResponse struct {
	Error apperrors.AppError `json:"error"`
}

// sortSpec builds a table sort directive from bound query parameters,
// falling back to the default (symbol ascending) for omitted values.
// Validity is enforced by the sort_key/sort_direction binding tags.
func sortSpec(sortKey, direction string) table.SortSpec {
	spec := table.DefaultSort()
	if sortKey != "" {
		spec.Key = table.SortKey(sortKey)
	}
	if direction != "" {
		spec.Direction = table.Direction(direction)
	}
	return spec
}

// respondWithError writes a consistent JSON error response. If the error
// is an *AppError it uses the error's status code, code, and message.
// Otherwise it logs the unexpected error and returns a generic internal
// server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

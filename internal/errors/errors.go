// Package errors provides custom error types for the Marketdeck API.
// All service-layer errors should use AppError so that responses stay
// consistent and never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Asset errors. The *_UNAVAILABLE errors carry the retryable messages the
// dashboard shows in its error banners.
var (
	ErrAssetNotFound     = &AppError{Code: "ASSET_NOT_FOUND", Message: "Asset not found", StatusCode: http.StatusNotFound}
	ErrInvalidCategory   = &AppError{Code: "INVALID_CATEGORY", Message: "Unknown asset category", StatusCode: http.StatusBadRequest}
	ErrInvalidSort       = &AppError{Code: "INVALID_SORT", Message: "Unknown sort key or direction", StatusCode: http.StatusBadRequest}
	ErrAssetsUnavailable = &AppError{Code: "ASSETS_UNAVAILABLE", Message: "Failed to load assets. Please try again.", StatusCode: http.StatusBadGateway}
	ErrSearchFailed      = &AppError{Code: "SEARCH_FAILED", Message: "Failed to search assets. Please try again.", StatusCode: http.StatusBadGateway}
)

// Import errors.
var (
	ErrEmptyImport     = &AppError{Code: "EMPTY_IMPORT", Message: "No portfolio data provided", StatusCode: http.StatusBadRequest}
	ErrAmbiguousImport = &AppError{Code: "AMBIGUOUS_IMPORT", Message: "Provide either a file or pasted data, not both", StatusCode: http.StatusBadRequest}
	ErrMalformedCSV    = &AppError{Code: "MALFORMED_CSV", Message: "Portfolio data is not valid CSV", StatusCode: http.StatusBadRequest}
)

// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("asset_category", validateAssetCategory)
		_ = v.RegisterValidation("category_filter", validateCategoryFilter)
		_ = v.RegisterValidation("sort_key", validateSortKey)
		_ = v.RegisterValidation("sort_direction", validateSortDirection)
	}
}

func validateAssetCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "stock", "bond", "commodity", "crypto", "forex":
		return true
	}
	return false
}

// category_filter additionally accepts "all", which the dashboard uses to
// show the unfiltered universe.
func validateCategoryFilter(fl validator.FieldLevel) bool {
	if fl.Field().String() == "all" {
		return true
	}
	return validateAssetCategory(fl)
}

func validateSortKey(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "symbol", "name", "price", "change_percent", "loan_to_value", "volume", "market_cap", "rating":
		return true
	}
	return false
}

func validateSortDirection(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "asc", "desc":
		return true
	}
	return false
}

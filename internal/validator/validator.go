// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("product_category", validateProductCategory)
	}
}

func validateProductCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "stock", "etf", "mutual_fund", "bond", "reit":
		return true
	}
	return false
}

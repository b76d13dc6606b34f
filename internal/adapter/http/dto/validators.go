package dto

import (
	"greenfund-demo/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("view_name", validateViewName)
	}
}

// validateViewName accepts the names of the selectable tabs.
func validateViewName(fl validator.FieldLevel) bool {
	return domain.ViewSelection(fl.Field().String()).IsValid()
}

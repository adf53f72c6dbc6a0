package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// NotBlankValidation rejects string values that are empty or whitespace only.
// The built-in required tag accepts strings like "   ", which read as blank
// names in the admin UI.
func NotBlankValidation(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

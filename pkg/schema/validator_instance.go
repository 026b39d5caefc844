package schema

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	identifierPattern   = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)
	variantValuePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance
// used by Lint.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
			return identifierPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("variant_value", func(fl validator.FieldLevel) bool {
			return variantValuePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance for use outside the
// schema package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

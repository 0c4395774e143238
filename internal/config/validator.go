package config

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	atomkiterrors "github.com/atomkit/atomkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// validatorInstance configures and returns the shared validator instance
// used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			return themeNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// ValidateThemeFile checks a parsed theme file against its declared rules
// and converts the first failure into a typed ValidationError.
func ValidateThemeFile(file *ThemeFile) error {
	err := validatorInstance().Struct(file)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if ok := asValidationErrors(err, &fieldErrors); ok && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		return atomkiterrors.NewValidationError(fieldPath(first), failureMessage(first), err)
	}
	return atomkiterrors.NewValidationError("", err.Error(), err)
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = fieldErrors
	return true
}

// fieldPath strips the root struct name from the namespace, leaving a
// reader-friendly dotted path like "Palette.Primary.Base.Light".
func fieldPath(fe validator.FieldError) string {
	namespace := fe.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func failureMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "hexcolor":
		return "must be a hex colour such as #81a1c1"
	case "theme_name":
		return "must contain only lowercase letters, digits, hyphens, and underscores"
	case "len":
		return "must list exactly " + fe.Param() + " values"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "failed rule " + fe.Tag()
	}
}

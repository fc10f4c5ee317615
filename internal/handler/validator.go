package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Despensa_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// customTags are the domain checks available in `validate` struct tags
var customTags = map[string]validator.Func{
	"category":     validateCategory,
	"daykey":       validateDayKey,
	"preparescope": validatePrepareScope,
}

// GetValidator returns the shared validator, building it on first use
func GetValidator() *Validator {
	validateOnce.Do(func() {
		v := validator.New()
		for tag, fn := range customTags {
			if err := v.RegisterValidation(tag, fn); err != nil {
				panic(fmt.Sprintf("register validation %q: %v", tag, err))
			}
		}
		validate = &Validator{validate: v}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "category":
			errs[field] = "Invalid category"
		case "daykey":
			errs[field] = "Invalid day, use mon..sun"
		case "preparescope":
			errs[field] = "Invalid scope, use all, weekdays or days"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be greater than or equal to %s", e.Param())
		case "lte":
			errs[field] = fmt.Sprintf("Must be less than or equal to %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// Empty values pass; use 'required' where the field is mandatory
func validateCategory(fl validator.FieldLevel) bool {
	category := fl.Field().String()
	if category == "" {
		return true
	}
	return domain.PantryCategory(category).Valid()
}

func validateDayKey(fl validator.FieldLevel) bool {
	day := fl.Field().String()
	if day == "" {
		return true
	}
	_, err := domain.ParseDayKey(day)
	return err == nil
}

func validatePrepareScope(fl validator.FieldLevel) bool {
	_, err := domain.ParsePrepareScope(fl.Field().String())
	return err == nil
}

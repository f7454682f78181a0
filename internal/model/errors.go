package model

import "fmt"

// Validation error kinds surfaced verbatim to callers.
const (
	ValidationMissingField     = "missing_field"
	ValidationInvalidCategory  = "invalid_category"
	ValidationInvalidNutrition = "invalid_nutrition"
)

// ValidationError is a terminal, caller-visible input error.
type ValidationError struct {
	Kind    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missingField(field string) error {
	return &ValidationError{
		Kind:    ValidationMissingField,
		Field:   field,
		Message: fmt.Sprintf("please add a %s", field),
	}
}

func invalidCategory(category string) error {
	return &ValidationError{
		Kind:    ValidationInvalidCategory,
		Field:   "category",
		Message: fmt.Sprintf("category %q is not allowed", category),
	}
}

func invalidNutrition() error {
	return &ValidationError{
		Kind:    ValidationInvalidNutrition,
		Field:   "nutrition_info",
		Message: "nutrition values must not be negative",
	}
}

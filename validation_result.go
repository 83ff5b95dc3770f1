package bindkit

import "github.com/dmitrymomot/bindkit/validator"

// ValidationResult is the structured outcome of validating a bound
// model. Validation failures are data, not errors: bind-and-validate
// always returns a usable model and callers inspect the stored result.
type ValidationResult struct {
	Errors validator.ValidationErrors
}

// IsValid reports whether validation found no problems. A nil result
// (no validation ran) counts as valid.
func (r *ValidationResult) IsValid() bool {
	return r == nil || len(r.Errors) == 0
}

// Has checks if a field has any errors.
func (r *ValidationResult) Has(field string) bool {
	return r != nil && r.Errors.Has(field)
}

// Get returns the error messages recorded for a field.
func (r *ValidationResult) Get(field string) []string {
	if r == nil {
		return nil
	}
	return r.Errors.Get(field)
}

// newValidationResult converts a validator's return value into a
// result. Errors that carry no field-level details become a single
// unattributed entry so the failure is never silently dropped.
func newValidationResult(err error) *ValidationResult {
	if err == nil {
		return &ValidationResult{}
	}
	if ve := validator.ExtractValidationErrors(err); ve != nil {
		return &ValidationResult{Errors: ve}
	}
	return &ValidationResult{Errors: validator.ValidationErrors{{Message: err.Error()}}}
}

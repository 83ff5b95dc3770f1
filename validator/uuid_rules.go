package validator

import (
	"strings"

	"github.com/google/uuid"
)

// ValidUUID validates standard UUID format with pre-validation to avoid expensive parsing.
func ValidUUID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			// Fast rejection: check length and hyphen positions before parsing
			if len(value) != 36 {
				return false
			}
			if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
				return false
			}

			_, err := uuid.Parse(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid UUID",
			TranslationKey: "validation.uuid",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NonNilUUID rejects the zero UUID.
func NonNilUUID(field string, value uuid.UUID) Rule {
	return Rule{
		Check: func() bool {
			return value != uuid.Nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "UUID cannot be nil",
			TranslationKey: "validation.uuid_not_nil",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

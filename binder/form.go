package binder

import (
	"fmt"
	"net/http"
	"strings"
)

// mediaType extracts the media type from a Content-Type header value,
// dropping parameters such as charset.
func mediaType(contentType string) string {
	if idx := strings.Index(contentType, ";"); idx != -1 {
		return strings.TrimSpace(contentType[:idx])
	}
	return contentType
}

// Form creates a form data binder for application/x-www-form-urlencoded
// and multipart/form-data content.
//
// It supports struct tags for custom field names:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"` - skips the field
//   - `form:"name,omitempty"` - same as form:"name" for parsing
//
// Supported types:
//   - Basic types: string, int, int64, uint, uint64, float32, float64, bool
//   - encoding.TextUnmarshaler implementations (uuid.UUID, time.Time)
//   - Slices of basic types for multi-value fields
//   - Pointers for optional fields
//
// Example:
//
//	type LoginRequest struct {
//		Username string   `form:"username"`
//		Password string   `form:"password"`
//		Remember bool     `form:"remember"`
//		Roles    []string `form:"roles"`    // Multiple checkbox values
//		Ref      *string  `form:"ref"`      // Optional field
//		Internal string   `form:"-"`        // Skipped
//	}
func Form() Func {
	return func(r *http.Request, v any, opts Options) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/x-www-form-urlencoded", ErrMissingContentType)
		}

		mt := mediaType(contentType)
		if mt != "application/x-www-form-urlencoded" && mt != "multipart/form-data" {
			return fmt.Errorf("%w: got %s, expected form content", ErrUnsupportedMediaType, mt)
		}

		if mt == "multipart/form-data" {
			if err := parseMultipartForm(r, LoadLimits().MaxMultipartMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
		} else if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}

		return bindToStruct(v, "form", r.Form, opts, ErrInvalidForm)
	}
}

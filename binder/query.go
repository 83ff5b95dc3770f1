package binder

import (
	"net/http"
)

// Query creates a query parameter binder.
//
// It supports struct tags for custom parameter names:
//   - `query:"name"` - binds to query parameter "name"
//   - `query:"-"` - skips the field
//   - `query:"name,omitempty"` - same as query:"name" for parsing
//
// Supported types match Form: basic types, TextUnmarshaler
// implementations, slices for multi-value parameters (?tags=go&tags=web
// or ?tags=go,web), and pointers for optional fields.
//
// Example:
//
//	type SearchRequest struct {
//		Query    string   `query:"q"`
//		Page     int      `query:"page"`
//		PageSize int      `query:"page_size"`
//		Tags     []string `query:"tags"`
//		Active   *bool    `query:"active"`
//		Internal string   `query:"-"`
//	}
func Query() Func {
	return func(r *http.Request, v any, opts Options) error {
		return bindToStruct(v, "query", r.URL.Query(), opts, ErrInvalidQuery)
	}
}

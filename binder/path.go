package binder

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PathExtractor returns the raw value of a named route parameter for
// the request, or "" when the parameter is absent.
type PathExtractor func(r *http.Request, name string) string

// ChiPathExtractor reads route parameters from the chi route context.
func ChiPathExtractor(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// Path creates a path parameter binder using the provided extractor.
// The extractor is called once per struct field to get its value; a nil
// extractor defaults to chi route parameters.
//
// It supports struct tags for custom parameter names:
//   - `path:"name"` - binds to path parameter "name"
//   - `path:"-"` - skips the field
//
// Example with chi router:
//
//	type ProfileRequest struct {
//		UserID   string `path:"id"`
//		Username string `path:"username"`
//		Expand   bool   `query:"expand"`
//	}
//
//	r := chi.NewRouter()
//	r.Get("/users/{id}/profile/{username}", handler)
//
// Example with gorilla/mux:
//
//	muxExtractor := func(r *http.Request, name string) string {
//		return mux.Vars(r)[name]
//	}
//	pathBinder := binder.Path(muxExtractor)
func Path(extractor PathExtractor) Func {
	if extractor == nil {
		extractor = ChiPathExtractor
	}
	return func(r *http.Request, v any, opts Options) error {
		rv, err := checkTarget(v)
		if err != nil {
			return err
		}
		rt := rv.Type()

		for i := 0; i < rv.NumField(); i++ {
			field := rv.Field(i)
			fieldType := rt.Field(i)

			if !field.CanSet() {
				continue
			}
			if opts.excluded(fieldType.Name) {
				continue
			}

			paramName, skip := parseFieldTag(fieldType, "path")
			if skip {
				continue
			}

			value := extractor(r, paramName)
			if value == "" {
				// No value provided, leave as zero value
				continue
			}

			if !opts.Config.OverwriteExisting && !field.IsZero() {
				continue
			}

			if err := setFieldValue(field, fieldType.Type, []string{value}); err != nil {
				if opts.Config.IgnoreErrors {
					continue
				}
				return fmt.Errorf("%w: field %s: %v", ErrInvalidPath, fieldType.Name, err)
			}
		}

		return nil
	}
}

package binder

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlMediaTypes lists accepted YAML content types. application/yaml is
// the RFC 9512 registration; the x- variants remain common in the wild.
var yamlMediaTypes = map[string]bool{
	"application/yaml":   true,
	"application/x-yaml": true,
	"text/yaml":          true,
	"text/x-yaml":        true,
}

// YAML creates a YAML body binder, the sibling of JSON for
// application/yaml request bodies.
//
// The body must hold a single YAML mapping; unknown keys are rejected.
// Field names are matched against the `yaml` tag, falling back to the
// lowercased field name (the yaml.v3 default).
//
// Example:
//
//	type DeployRequest struct {
//		Service  string `yaml:"service"`
//		Replicas int    `yaml:"replicas"`
//	}
func YAML() Func {
	return func(r *http.Request, v any, opts Options) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/yaml", ErrMissingContentType)
		}
		if mt := mediaType(contentType); !yamlMediaTypes[mt] {
			return fmt.Errorf("%w: got %s, expected application/yaml", ErrUnsupportedMediaType, mt)
		}

		raw, err := readBody(r)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
		if len(raw) == 0 {
			return fmt.Errorf("%w: empty body", ErrInvalidYAML)
		}

		var body map[string]yaml.Node
		if err := yaml.Unmarshal(raw, &body); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}

		rv, err := checkTarget(v)
		if err != nil {
			return err
		}
		rt := rv.Type()

		byKey := make(map[string]int, rt.NumField())
		for i := 0; i < rt.NumField(); i++ {
			fieldType := rt.Field(i)
			if !rv.Field(i).CanSet() {
				continue
			}
			key, skip := yamlFieldKey(fieldType)
			if skip {
				continue
			}
			byKey[strings.ToLower(key)] = i
		}

		for key := range body {
			if _, ok := byKey[strings.ToLower(key)]; !ok {
				return fmt.Errorf("%w: unknown field %q", ErrInvalidYAML, key)
			}
		}

		for key, node := range body {
			i := byKey[strings.ToLower(key)]
			field := rv.Field(i)
			fieldType := rt.Field(i)

			if opts.excluded(fieldType.Name) {
				continue
			}
			if !opts.Config.OverwriteExisting && !field.IsZero() {
				continue
			}
			if err := node.Decode(field.Addr().Interface()); err != nil {
				if opts.Config.IgnoreErrors {
					continue
				}
				return fmt.Errorf("%w: field %s: %v", ErrInvalidYAML, fieldType.Name, err)
			}
		}

		return nil
	}
}

// yamlFieldKey resolves the YAML mapping key for a struct field.
func yamlFieldKey(field reflect.StructField) (key string, skip bool) {
	tag := field.Tag.Get("yaml")
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}
	parts := strings.Split(tag, ",")
	if parts[0] == "" {
		return strings.ToLower(field.Name), false
	}
	return parts[0], false
}

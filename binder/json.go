package binder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
)

// JSON creates a JSON body binder.
//
// Decoding is strict: the body must hold a single JSON object, unknown
// keys are rejected, and trailing data after the object is an error.
// Field names are matched against the `json` tag, falling back to a
// case-insensitive match on the field name.
//
// Unlike a plain json.Unmarshal into the target, values for
// blacklisted fields are dropped before decoding, so malformed data
// under a blacklisted key never fails the bind.
//
// Example:
//
//	type CreateUserRequest struct {
//		Name  string `json:"name"`
//		Email string `json:"email"`
//	}
func JSON() Func {
	return func(r *http.Request, v any, opts Options) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}
		if mt := mediaType(contentType); mt != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mt)
		}

		raw, err := readBody(r)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		if len(raw) == 0 {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}

		decoder := json.NewDecoder(bytes.NewReader(raw))
		var body map[string]json.RawMessage
		if err := decoder.Decode(&body); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		// Ensure entire body was consumed
		var extra json.RawMessage
		if err := decoder.Decode(&extra); err != io.EOF {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
		}

		rv, err := checkTarget(v)
		if err != nil {
			return err
		}
		rt := rv.Type()

		// Index fields by their JSON key. Keys of blacklisted fields are
		// still known to the decoder; they are just never decoded.
		byKey := make(map[string]int, rt.NumField())
		for i := 0; i < rt.NumField(); i++ {
			fieldType := rt.Field(i)
			if !rv.Field(i).CanSet() {
				continue
			}
			key, skip := jsonFieldKey(fieldType)
			if skip {
				continue
			}
			byKey[strings.ToLower(key)] = i
		}

		// Strict mode: reject keys that match no field at all.
		for key := range body {
			if _, ok := byKey[strings.ToLower(key)]; !ok {
				return fmt.Errorf("%w: unknown field %q", ErrInvalidJSON, key)
			}
		}

		for key, value := range body {
			i := byKey[strings.ToLower(key)]
			field := rv.Field(i)
			fieldType := rt.Field(i)

			if opts.excluded(fieldType.Name) {
				continue
			}
			if !opts.Config.OverwriteExisting && !field.IsZero() {
				continue
			}
			if err := json.Unmarshal(value, field.Addr().Interface()); err != nil {
				if opts.Config.IgnoreErrors {
					continue
				}
				return fmt.Errorf("%w: field %s: %v", ErrInvalidJSON, fieldType.Name, err)
			}
		}

		return nil
	}
}

// jsonFieldKey resolves the JSON object key for a struct field.
func jsonFieldKey(field reflect.StructField) (key string, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name, false
	}
	if tag == "-" {
		return "", true
	}
	parts := strings.Split(tag, ",")
	if parts[0] == "" {
		return field.Name, false
	}
	return parts[0], false
}

// readBody drains the request body up to the configured size limit.
func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	limit := LoadLimits().MaxBodyBytes
	data, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("request body exceeds %d bytes", limit)
	}
	return data, nil
}

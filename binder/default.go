package binder

import (
	"net/http"
	"reflect"
)

// DefaultBinder binds a struct from every request source under a single
// configuration and blacklist: the body first (negotiated by content
// type, including form fields and uploaded files), then route
// parameters, then the query string. When several sources feed the same
// field, the later source wins under the default configuration; with
// OverwriteExisting disabled the first non-zero value sticks.
type DefaultBinder struct {
	path  Func
	form  Func
	query Func
	json  Func
	yaml  Func
	file  Func
}

// DefaultOption configures the default composite binder.
type DefaultOption func(*DefaultBinder)

// WithPathExtractor replaces the chi route parameter extractor.
func WithPathExtractor(extractor PathExtractor) DefaultOption {
	return func(d *DefaultBinder) {
		d.path = Path(extractor)
	}
}

// NewDefault creates the composite binder used by a fresh Registry.
func NewDefault(opts ...DefaultOption) *DefaultBinder {
	d := &DefaultBinder{
		path:  Path(nil),
		form:  Form(),
		query: Query(),
		json:  JSON(),
		yaml:  YAML(),
		file:  File(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// CanBind accepts any struct type.
func (d *DefaultBinder) CanBind(t reflect.Type, _ *http.Request) bool {
	return t.Kind() == reflect.Struct
}

// Bind implements Binder.
func (d *DefaultBinder) Bind(r *http.Request, v any, opts Options) error {
	if _, err := checkTarget(v); err != nil {
		return err
	}

	if err := d.bindBody(r, v, opts); err != nil {
		return err
	}
	if err := d.path(r, v, opts); err != nil {
		return err
	}
	if err := d.query(r, v, opts); err != nil {
		return err
	}
	return nil
}

// bindBody dispatches on the request content type. Requests without a
// body-bearing content type (typically GET) are fine: path and query
// sources still apply.
func (d *DefaultBinder) bindBody(r *http.Request, v any, opts Options) error {
	mt := mediaType(r.Header.Get("Content-Type"))
	switch {
	case mt == "application/json":
		return d.json(r, v, opts)
	case yamlMediaTypes[mt]:
		return d.yaml(r, v, opts)
	case mt == "application/x-www-form-urlencoded":
		return d.form(r, v, opts)
	case mt == "multipart/form-data":
		if err := d.form(r, v, opts); err != nil {
			return err
		}
		return d.file(r, v, opts)
	default:
		return nil
	}
}

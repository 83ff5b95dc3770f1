package binder

import (
	"net/http"
	"reflect"
)

// Binder populates a typed value from HTTP request data.
//
// Bind receives the target as a non-nil pointer. When the caller passed
// an existing instance the same pointer arrives here and the binder
// mutates it in place according to opts.Config; otherwise the pointer
// refers to a freshly allocated zero value. Fields listed in
// opts.Blacklist must be neither read from request data nor written.
type Binder interface {
	// CanBind reports whether this binder can produce a value of type t
	// for the given request. t is the model type, not a pointer to it.
	CanBind(t reflect.Type, r *http.Request) bool

	// Bind populates *v from the request.
	Bind(r *http.Request, v any, opts Options) error
}

// Func adapts a bind function to the Binder interface. Functional
// binders accept any struct type; content negotiation is the caller's
// concern.
type Func func(r *http.Request, v any, opts Options) error

func (f Func) CanBind(t reflect.Type, _ *http.Request) bool {
	return t.Kind() == reflect.Struct
}

func (f Func) Bind(r *http.Request, v any, opts Options) error {
	return f(r, v, opts)
}

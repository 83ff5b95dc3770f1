package bindkit

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Context wraps http.Request and http.ResponseWriter with context.Context
// and carries per-request binding state. The validation-result slot is
// the single source of truth for the outcome of the last
// bind-and-validate call on this request; when several calls race, the
// last write wins.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter

	// Param returns the named route parameter, or "" when absent.
	Param(name string) string

	// ValidationResult returns the result stored by the last
	// bind-and-validate call, or nil when none ran yet.
	ValidationResult() *ValidationResult
	SetValidationResult(res *ValidationResult)
}

// NewContext creates a new Context from HTTP request and response writer.
// Route parameters are resolved through the chi route context when the
// request passed through a chi router.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{
		w: w,
		r: r,
	}
}

// httpContext is the default implementation of Context.
type httpContext struct {
	w          http.ResponseWriter
	r          *http.Request
	validation *ValidationResult
}

func (c *httpContext) Request() *http.Request {
	return c.r
}

func (c *httpContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

func (c *httpContext) Param(name string) string {
	return chi.URLParam(c.r, name)
}

func (c *httpContext) ValidationResult() *ValidationResult {
	return c.validation
}

func (c *httpContext) SetValidationResult(res *ValidationResult) {
	c.validation = res
}

// Delegate context.Context methods to the request's context
func (c *httpContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *httpContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *httpContext) Err() error {
	return c.r.Context().Err()
}

func (c *httpContext) Value(key any) any {
	return c.r.Context().Value(key)
}

// ContextKey provides type-safe context keys to prevent key collisions.
// Should be created as package-level variables for consistent access.
type ContextKey struct{ name string }

// String returns a string representation of the context key for debugging.
func (c *ContextKey) String() string {
	return c.name
}

// NewContextKey creates a new context key.
// The name should be unique within your application.
//
// Example:
//
//	var userKey = bindkit.NewContextKey("user")
func NewContextKey(name string) *ContextKey {
	return &ContextKey{name}
}

// ContextValue retrieves a typed value from the context.
// Returns the zero value of T if the key is not present or has a different type.
func ContextValue[T any](ctx context.Context, key any) T {
	val, _ := ctx.Value(key).(T)
	return val
}

// ContextValueOK retrieves a typed value from the context with an ok bool.
// The bool distinguishes a missing key from a stored zero value.
func ContextValueOK[T any](ctx context.Context, key any) (T, bool) {
	val, ok := ctx.Value(key).(T)
	return val, ok
}

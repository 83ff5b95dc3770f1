package validator

import (
	"reflect"
	"sync"
)

// Validatable is implemented by models that validate themselves.
// Validate returns nil or a ValidationErrors value; any other error is
// treated as a single unattributed validation failure.
type Validatable interface {
	Validate() error
}

// registry maps model types to registered validator functions. A
// registered validator takes precedence over the model's own Validate
// method, which lets callers attach validation to types they do not own.
var registry = struct {
	mu     sync.RWMutex
	byType map[reflect.Type]func(any) error
}{byType: make(map[reflect.Type]func(any) error)}

// Register associates a validator function with the model type T.
// Register on the value type (Person, not *Person); lookups during
// bind-and-validate dereference the bound pointer first. A later
// Register for the same type replaces the earlier one.
//
// Example:
//
//	validator.Register(func(p Person) error {
//		return validator.Apply(
//			validator.Required("Name", p.Name),
//			validator.Between("Age", p.Age, 0, 150),
//		)
//	})
func Register[T any](fn func(T) error) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.byType[t] = func(v any) error {
		return fn(v.(T))
	}
}

// For returns the validator registered for the given model type.
func For(t reflect.Type) (func(any) error, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	fn, ok := registry.byType[t]
	return fn, ok
}

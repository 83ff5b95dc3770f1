package binder

import (
	"fmt"
	"net/http"
	"reflect"
	"sync"
)

// Locator selects a Binder capable of producing the target type from
// the given request. Implementations must be deterministic for a
// (type, request) pair and must fail with ErrBinderNotFound instead of
// substituting a default-constructed model.
type Locator interface {
	Locate(t reflect.Type, r *http.Request) (Binder, error)
}

// Registry is the default Locator. Lookup order: a binder registered
// for the exact model type, then the chain of general binders in
// registration order. Registration is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byType map[reflect.Type]Binder
	chain  []Binder
}

// NewRegistry creates a Registry with the given general binders. With
// no arguments the chain holds the default composite binder, which
// covers body, path, query, form, and file sources.
func NewRegistry(binders ...Binder) *Registry {
	if len(binders) == 0 {
		binders = []Binder{NewDefault()}
	}
	return &Registry{
		byType: make(map[reflect.Type]Binder),
		chain:  binders,
	}
}

// Register associates a binder with the concrete model type. model may
// be a value or a pointer; either way the binder is keyed by the
// element type. A later Register for the same type replaces the
// earlier one.
func (reg *Registry) Register(model any, b Binder) {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.byType[t] = b
}

// Append adds a general binder to the end of the chain.
func (reg *Registry) Append(b Binder) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.chain = append(reg.chain, b)
}

// Locate implements Locator.
func (reg *Registry) Locate(t reflect.Type, r *http.Request) (Binder, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	if b, ok := reg.byType[t]; ok {
		return b, nil
	}
	for _, b := range reg.chain {
		if b.CanBind(t, r) {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrBinderNotFound, t)
}

// Package validator provides composable, type-safe validation rules and
// the per-type validator registry used by bind-and-validate.
//
// Rules pair a boolean Check function with translation-friendly error
// metadata. Apply evaluates rules and aggregates failures into a
// ValidationErrors slice that satisfies the error interface, so several
// field-level problems travel in a single error value.
//
// There are two ways to attach validation to a model:
//
//   - implement Validatable on the model itself:
//
//     func (p Person) Validate() error {
//     	return validator.Apply(
//     		validator.Required("Name", p.Name),
//     		validator.Min("Age", p.Age, 0),
//     	)
//     }
//
//   - or register a standalone function, which also works for types you
//     do not own and takes precedence over the method:
//
//     validator.Register(func(p Person) error { ... })
//
// The rule helpers hold no hidden state and are safe for concurrent
// use. ValidationErrors supports errors.Is/As, and individual field
// failures can be inspected with Has, Get, and Fields.
package validator

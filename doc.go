// Package bindkit converts incoming HTTP request data into statically
// typed Go structs: route parameters, query string, form fields, JSON
// and YAML bodies, and uploaded files, with optional validation whose
// structured result lives on the per-request context.
//
// The target type is always stated at the call site through a generic
// entry point; there is no untyped bind. A Module ties the binder
// locator to one request:
//
//	type Person struct {
//		Name string `form:"name" json:"name"`
//		Age  int    `form:"age" json:"age"`
//	}
//
//	func handle(w http.ResponseWriter, r *http.Request) {
//		m := bindkit.NewModule(bindkit.NewContext(w, r))
//
//		person, err := bindkit.BindAndValidate[Person](m)
//		if err != nil {
//			http.Error(w, err.Error(), http.StatusBadRequest)
//			return
//		}
//		if !m.ValidationResult().IsValid() {
//			// person is still populated; react to the stored result
//		}
//		_ = person
//	}
//
// Binding into an existing instance preserves identity, and the
// configuration's overwrite policy controls whether non-zero fields are
// replaced:
//
//	draft := &Person{Age: 10}
//	draft, _ = bindkit.BindTo(m, draft,
//		bindkit.WithConfig(binder.Config{OverwriteExisting: false}))
//
// Fields can be excluded from binding by name or by typed reference;
// excluded fields are neither read from request data nor written:
//
//	bindkit.Bind[Person](m, bindkit.Exclude("Age"))
//	bindkit.Bind[Person](m, bindkit.ExcludeFields(func(p *Person) []any {
//		return []any{&p.Age}
//	}))
//
// Custom binders register on the locator per model type; types no
// binder can produce fail with binder.ErrBinderNotFound rather than
// silently defaulting.
package bindkit

package bindkit

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotModelField reports a field reference that does not resolve to a
// declared field of the model type. This is a programmer error (a
// method result, a local, a computed value), so it surfaces at the call
// site instead of being silently ignored.
var ErrNotModelField = errors.New("reference does not resolve to a model field")

// FieldNames resolves typed field references into their declared names.
// The selector receives a zero model and returns pointers to the fields
// of interest:
//
//	names, err := bindkit.FieldNames(func(p *Person) []any {
//		return []any{&p.Name, &p.Age}
//	})
//	// names == []string{"Name", "Age"}
//
// Order and length of the input are preserved; duplicates are allowed.
// Returning anything that is not a pointer into the model's fields
// fails with ErrNotModelField.
func FieldNames[T any](sel func(*T) []any) ([]string, error) {
	model := new(T)
	rv := reflect.ValueOf(model).Elem()
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrNotModelField, rv.Type())
	}
	rt := rv.Type()

	refs := sel(model)
	names := make([]string, 0, len(refs))

	for i, ref := range refs {
		pv := reflect.ValueOf(ref)
		if pv.Kind() != reflect.Ptr || pv.IsNil() {
			return nil, fmt.Errorf("%w: reference %d is not a field pointer", ErrNotModelField, i)
		}

		name, ok := fieldNameByAddr(rv, rt, pv)
		if !ok {
			return nil, fmt.Errorf("%w: reference %d points outside the model", ErrNotModelField, i)
		}
		names = append(names, name)
	}

	return names, nil
}

// MustFieldNames is FieldNames that panics on a bad reference, for use
// in package-level variable initialization.
func MustFieldNames[T any](sel func(*T) []any) []string {
	names, err := FieldNames(sel)
	if err != nil {
		panic(err)
	}
	return names
}

// fieldNameByAddr matches a pointer against the addresses of the
// struct's settable fields. The type comparison disambiguates zero-size
// neighbors and a pointer to an embedded struct's first field.
func fieldNameByAddr(rv reflect.Value, rt reflect.Type, ptr reflect.Value) (string, bool) {
	target := ptr.Pointer()
	elem := ptr.Type().Elem()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		if !field.CanAddr() {
			continue
		}
		if field.Addr().Pointer() == target && rt.Field(i).Type == elem {
			return rt.Field(i).Name, true
		}
	}
	return "", false
}

// Package reflectread provides a uniform, panic-safe member resolution layer
// over reflect values.
//
// Every accessor reports failure through an explicit error return rather
// than letting a reflect panic escape: the tree builder turns those errors
// into visible nodes instead of aborting a traversal. A hostile String()
// method or a map mutated mid-enumeration therefore costs one marked node,
// never the whole inspection.
package reflectread

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotTextual indicates AsText was called on a value that implements
// neither error nor fmt.Stringer.
var ErrNotTextual = errors.New("reflectread: value is not textual")

var (
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// guard converts a recovered panic into an error so callers see a normal
// failure return.
func guard(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("reflectread: %v", r)
	}
}

// Field returns the i'th field of a struct value.
func Field(rv reflect.Value, i int) (v reflect.Value, err error) {
	defer guard(&err)
	return rv.Field(i), nil
}

// Index returns the i'th element of a slice or array value.
func Index(rv reflect.Value, i int) (v reflect.Value, err error) {
	defer guard(&err)
	return rv.Index(i), nil
}

// MapKeys returns the keys of a map value in unspecified order.
func MapKeys(rv reflect.Value) (keys []reflect.Value, err error) {
	defer guard(&err)
	return rv.MapKeys(), nil
}

// MapValue looks up key in a map value. A missing entry returns an invalid
// value with a nil error: entries can vanish between enumeration and lookup
// (NaN keys never match again by construction), and that absence is data,
// not a failure.
func MapValue(rv, key reflect.Value) (v reflect.Value, err error) {
	defer guard(&err)
	return rv.MapIndex(key), nil
}

// IsTextual reports whether t implements error or fmt.Stringer.
func IsTextual(t reflect.Type) bool {
	return t.Implements(errorType) || t.Implements(stringerType)
}

// AsText invokes the error or fmt.Stringer contract on rv and returns the
// result. error takes precedence over fmt.Stringer when both are present.
// Types whose methods live on the pointer receiver are called through an
// addressable copy. A panicking method surfaces as an error.
func AsText(rv reflect.Value) (s string, err error) {
	defer guard(&err)

	v := rv
	if !IsTextual(v.Type()) {
		pt := reflect.PointerTo(v.Type())
		if !IsTextual(pt) {
			return "", ErrNotTextual
		}
		pv := reflect.New(v.Type())
		pv.Elem().Set(v)
		v = pv
	}

	switch x := v.Interface().(type) {
	case error:
		return x.Error(), nil
	case fmt.Stringer:
		return x.String(), nil
	}
	return "", ErrNotTextual
}

// Identity returns the referential identity of a map, slice or pointer
// value, or 0 for values that have none. Two values share an identity only
// if mutating one is visible through the other, which is exactly the
// property cycle detection needs.
func Identity(rv reflect.Value) uintptr {
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.UnsafePointer:
		return rv.Pointer()
	default:
		return 0
	}
}

/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package reflect

import (
	"reflect"
)

// NilCategory is the category name of an untyped nil.
const NilCategory = "nil"

// Category returns the runtime category name of v: the reflect.Kind name of
// its dynamic type ("int", "string", "struct", "ptr", ...), or NilCategory.
func Category(v any) string {
	if v == nil {
		return NilCategory
	}
	return reflect.TypeOf(v).Kind().String()
}

// IsNil reports whether v is an untyped nil or a typed nil of a nilable kind
// (pointer, map, slice, func, chan, interface).
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// IsNumber reports whether v is an integer or float. Complex numbers count
// only when withComplex is set.
func IsNumber(v any, withComplex bool) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Complex64, reflect.Complex128:
		return withComplex
	default:
		return false
	}
}

// IsFunc reports whether v is a non-nil function.
func IsFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func && !IsNil(v)
}

// IsList reports whether v is a slice or an array.
func IsList(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// IsObject reports whether v is a non-nil reference or composite value:
// struct, map, slice, array, pointer, func or chan. Scalars and nils are not
// objects.
func IsObject(v any) bool {
	if IsNil(v) {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array, reflect.Ptr, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

// IsIterable reports whether v can be ranged over as a sequence: slices,
// arrays, pointers to arrays, maps, strings, channels, and range-over-func
// iterators. Integers are excluded even though Go can range over them.
func IsIterable(v any) bool {
	if IsNil(v) {
		return false
	}
	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
		return true
	case reflect.Ptr:
		return t.Elem().Kind() == reflect.Array
	case reflect.Func:
		return isSeqFunc(t)
	default:
		return false
	}
}

// isSeqFunc matches func(yield func(...) bool) with at most two yielded values.
func isSeqFunc(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}
	y := t.In(0)
	return y.Kind() == reflect.Func &&
		y.NumIn() <= 2 &&
		y.NumOut() == 1 &&
		y.Out(0).Kind() == reflect.Bool
}

// Unwrap follows non-nil pointers starting at v, at most maxUnwrap times, and
// calls visit with every type it reaches (v's own type first). It stops as
// soon as visit returns true and reports whether that happened.
//
// Unwrapping policy:
//   - ptr (non-nil) -> Elem()
//   - anything else stops the walk.
//
// If maxUnwrap <= 0, only v's own type is visited.
func Unwrap(v any, maxUnwrap int, visit func(reflect.Type) bool) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	for i := 0; ; i++ {
		if visit(rv.Type()) {
			return true
		}
		if i >= maxUnwrap || rv.Kind() != reflect.Ptr || rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
}

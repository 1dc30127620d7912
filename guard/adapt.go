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

package guard

import (
	"fmt"
	"reflect"

	"dirpx.dev/typed/describe"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Adapt converts fn to a Func. It reports false when fn is not a function
// or is a nil function.
//
// Func-shaped values and the receiver-less forms func(...any) any and
// func(...any) (any, error) are wrapped directly. Any other function is
// called through reflection: the arguments must fit its parameters (a nil
// argument fits any nilable parameter) or the call fails with ErrCallShape.
// A trailing error result becomes the call's error; the remaining results
// become the value (nil for none, the value itself for one, []any for more).
func Adapt(fn any) (Func, bool) {
	switch f := fn.(type) {
	case nil:
		return nil, false
	case Func:
		return f, f != nil
	case func(any, ...any) (any, error):
		return Func(f), f != nil
	case func(...any) any:
		if f == nil {
			return nil, false
		}
		return Lift(f), true
	case func(...any) (any, error):
		if f == nil {
			return nil, false
		}
		return func(_ any, args ...any) (any, error) { return f(args...) }, true
	}
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, false
	}
	return reflectFunc(fv), true
}

func reflectFunc(fv reflect.Value) Func {
	ft := fv.Type()
	return func(_ any, args ...any) (any, error) {
		in, ok := callArgs(ft, args)
		if !ok {
			return nil, fmt.Errorf("%w: %s called with %s", ErrCallShape, describe.TypeName(ft), describe.Values(args))
		}
		return callResults(ft, fv.Call(in))
	}
}

func callArgs(ft reflect.Type, args []any) ([]reflect.Value, bool) {
	n := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, false
		}
	} else if len(args) != n {
		return nil, false
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		pt := ft.In(min(i, n-1))
		if ft.IsVariadic() && i >= n-1 {
			pt = pt.Elem()
		}
		v, ok := argValue(a, pt)
		if !ok {
			return nil, false
		}
		in[i] = v
	}
	return in, true
}

func argValue(a any, t reflect.Type) (reflect.Value, bool) {
	if a == nil {
		switch t.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
			return reflect.Zero(t), true
		default:
			return reflect.Value{}, false
		}
	}
	v := reflect.ValueOf(a)
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, false
	}
	return v, true
}

func callResults(ft reflect.Type, out []reflect.Value) (any, error) {
	var err error
	if n := len(out); n > 0 && ft.Out(n-1) == errorType {
		if e := out[n-1]; !e.IsNil() {
			err = e.Interface().(error)
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	}
	vals := make([]any, len(out))
	for i, v := range out {
		vals[i] = v.Interface()
	}
	return vals, err
}

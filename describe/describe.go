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

// Package describe renders descriptors and argument values as short,
// human-readable names for error messages and logs.
//
// Named types are rendered as "pkg.Type" (last package path element plus
// the type name without generic instantiation parameters); builtin types
// keep their Go name. Composite descriptors are rendered recursively:
//
//	Either(String, Number)
//	Rest(*shapes.Circle)
//	[String, Number, Rest(Any)]
package describe

import (
	"fmt"
	"path"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"dirpx.dev/typed/apis"
	"dirpx.dev/typed/descriptor"
)

// Descriptor returns the name of d.
func Descriptor(d apis.Descriptor) string {
	switch x := d.(type) {
	case nil:
		return "nil"
	case *descriptor.EitherType:
		if x == nil {
			return "Either()"
		}
		return "Either(" + join(x.Types()) + ")"
	case descriptor.RestType:
		return "Rest(" + Descriptor(x.Elem()) + ")"
	case *descriptor.RestType:
		if x == nil {
			return "Rest()"
		}
		return "Rest(" + Descriptor(x.Elem()) + ")"
	case *descriptor.MatcherType:
		if x == nil {
			return "Matcher()"
		}
		return x.DescribeType()
	case apis.Describer:
		return x.DescribeType()
	case reflect.Type:
		return TypeName(x)
	case string:
		return strconv.Quote(x)
	default:
		return TypeName(reflect.TypeOf(d))
	}
}

// List returns the bracketed, comma-separated names of types.
func List(types []apis.Descriptor) string {
	return "[" + join(types) + "]"
}

// Value returns the name of v's dynamic type, or "nil".
func Value(v any) string {
	if v == nil {
		return "nil"
	}
	return TypeName(reflect.TypeOf(v))
}

// Values returns the bracketed, comma-separated type names of vs.
func Values(vs []any) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = Value(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func join(types []apis.Descriptor) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = Descriptor(t)
	}
	return strings.Join(parts, ", ")
}

// typeNameCache caches rendered type names.
var typeNameCache sync.Map // key: reflect.Type, val: string

// TypeName renders t with memoization.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	if v, ok := typeNameCache.Load(t); ok {
		return v.(string)
	}
	name := typeName(t)
	typeNameCache.Store(t, name)
	return name
}

func typeName(t reflect.Type) string {
	if t.Name() != "" {
		name := stripTypeParams(t.Name())
		if p := t.PkgPath(); p != "" {
			return path.Base(p) + "." + name
		}
		return name
	}
	switch t.Kind() {
	case reflect.Ptr:
		return "*" + TypeName(t.Elem())
	case reflect.Slice:
		return "[]" + TypeName(t.Elem())
	case reflect.Array:
		return fmt.Sprintf("[%d]%s", t.Len(), TypeName(t.Elem()))
	case reflect.Map:
		return "map[" + TypeName(t.Key()) + "]" + TypeName(t.Elem())
	case reflect.Chan:
		return t.ChanDir().String() + " " + TypeName(t.Elem())
	default:
		// func, unnamed struct and interface literals.
		return t.String()
	}
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}

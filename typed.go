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

package typed

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/typed/apis"
	"dirpx.dev/typed/check"
	"dirpx.dev/typed/config"
	"dirpx.dev/typed/descriptor"
	"dirpx.dev/typed/guard"
	"dirpx.dev/typed/overload"
)

// init publishes the default namespace.
func init() {
	ns := Build()
	Any = ns.Any
	Iterable = ns.Iterable
	st.Store(ns)
}

// Descriptor is an abstract description of acceptable values.
type Descriptor = apis.Descriptor

// Types is an argument type list.
type Types = []apis.Descriptor

// Func is an implementation taking an explicit receiver and arguments.
type Func = guard.Func

// Primitive tags.
const (
	Function = descriptor.Function
	Boolean  = descriptor.Boolean
	Number   = descriptor.Number
	Array    = descriptor.Array
	Date     = descriptor.Date
	RegExp   = descriptor.RegExp
	Object   = descriptor.Object
	String   = descriptor.String
)

var (
	// Any is the default namespace's Any descriptor. It stays a valid Any
	// descriptor for every namespace, including after SetDefault.
	Any *descriptor.AnyType
	// Iterable is the default namespace's Iterable descriptor.
	Iterable *descriptor.MatcherType
)

// Either builds an Either descriptor.
func Either(types ...Descriptor) *descriptor.EitherType { return descriptor.EitherOf(types) }

// Rest builds a Rest descriptor.
func Rest(d Descriptor) descriptor.RestType { return descriptor.Rest(d) }

// Matcher builds a Matcher descriptor.
func Matcher(p func(v any) bool) *descriptor.MatcherType { return descriptor.Matcher(p) }

// TypeOf returns the nominal descriptor for T.
func TypeOf[T any]() reflect.Type { return descriptor.TypeOf[T]() }

// Default returns the default namespace.
func Default() *Namespace { return st.Load() }

// SetDefault replaces the default namespace. Nil is ignored.
func SetDefault(ns *Namespace) {
	if ns == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()
	st.Store(ns)
}

// Reconfigure rebuilds the default namespace with opts applied on top of its
// current configuration. Custom rules and vocabulary instances carry over.
func Reconfigure(opts ...config.Option) {
	buildMu.Lock()
	defer buildMu.Unlock()
	st.Store(st.Load().Rebuild(opts...))
}

// MatchType returns the default namespace's predicate for d.
func MatchType(d Descriptor) apis.Predicate { return Default().MatchType(d) }

// Match reports whether v satisfies d in the default namespace.
func Match(d Descriptor, v any) bool { return Default().Match(d, v) }

// AddTypeMatchCase appends a rule to the default namespace.
func AddTypeMatchCase(rule any) error { return Default().AddTypeMatchCase(rule) }

// CheckTypes reports whether values satisfy types in the default namespace.
func CheckTypes(types Types, values []any) (bool, error) { return Default().CheckTypes(types, values) }

// TypeChecked wraps fn in the default namespace.
func TypeChecked(types Types, fn Func, opts ...guard.Option) (*guard.Guarded, error) {
	return Default().TypeChecked(types, fn, opts...)
}

// MustTypeChecked wraps fn in the default namespace and panics on a
// malformed type list.
func MustTypeChecked(types Types, fn Func, opts ...guard.Option) *guard.Guarded {
	return Default().MustTypeChecked(types, fn, opts...)
}

// Overload creates a dispatcher with an untyped default in the default namespace.
func Overload(def any, opts ...overload.Option) *overload.Dispatcher {
	return Default().Overload(def, opts...)
}

// OverloadTyped creates a dispatcher with a typed default in the default namespace.
func OverloadTyped(types Types, fn Func, opts ...overload.Option) (*overload.Dispatcher, error) {
	return Default().OverloadTyped(types, fn, opts...)
}

// IsConfigError reports whether err comes from a malformed type list.
func IsConfigError(err error) bool { return errors.Is(err, check.ErrRestNotLast) }

// IsMismatch reports whether err is an argument type mismatch.
func IsMismatch(err error) bool { return errors.Is(err, guard.ErrTypeMismatch) }

func describeRule(rule any) string { return fmt.Sprintf("%T", rule) }

// buildMu serializes writers of the default namespace so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st holds the default namespace.
var st atomic.Pointer[Namespace]

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

// Package typed provides runtime type matching and multiple dispatch.
//
// typed gives dynamically-shaped call sites (handlers taking []any, plugin
// entry points, scripting bridges, message routers) the discipline of static
// overloading: a function declares the argument shapes it accepts, calls
// are checked before they run, and a family of implementations can be
// selected by the runtime shape of the arguments.
//
// # Descriptors
//
// A descriptor says which values are acceptable at one position:
//
//   - Primitive tags: Function, Boolean, Number, Array, Date, RegExp,
//     Object, String.
//
//   - Any: every value.
//
//   - Either(d1, d2, ...): any value accepted by one of the members,
//     tested in order.
//
//   - Rest(d): zero or more trailing arguments matching d. Only valid as the
//     last element of a type list.
//
//   - Matcher(func(any) bool): an arbitrary predicate. A panic inside the
//     predicate counts as a non-match. Iterable is a ready-made Matcher.
//
//   - A string: the runtime category of the value ("int", "string",
//     "struct", "ptr", "nil", ...).
//
//   - A reflect.Type (see TypeOf): values of that type, or pointers to it.
//     Interface types match their implementations.
//
//   - nil: only nil.
//
// # Resolution
//
// A Namespace owns an ordered, append-only list of resolution rules. To
// interpret a descriptor, the resolver walks the list and the first rule
// that applies builds the predicate. The built-in rules come first, in the
// order listed above (primitive, Any, Either, Matcher, string, type, nil);
// rules added with AddTypeMatchCase are appended and therefore only see
// descriptors no built-in rule claims. A descriptor no rule claims matches
// nothing.
//
//	typed.Match(typed.String, "abcd") // true
//	typed.Match(typed.String, 2)      // false
//	isNum := typed.MatchType(typed.Number)
//	isNum(4.2)                        // true
//
// # Guarded functions
//
// TypeChecked wraps a function with an argument check:
//
//	repeat := typed.MustTypeChecked(typed.Types{typed.String, typed.Number, typed.Rest(typed.Any)},
//		func(_ any, args ...any) (any, error) {
//			return strings.Repeat(args[0].(string), args[1].(int)), nil
//		})
//
//	repeat.Invoke("ab", 3)       // "ababab", nil
//	repeat.Invoke("ab", "three") // nil, *guard.MismatchError
//
// The mismatch is handed to the guard's error handler. The default handler
// returns it; OnError installs another one, and OnError(nil) restores the
// default.
//
// # Dispatch
//
// Overload builds a dispatch table:
//
//	fn := typed.Overload("no match").
//		When(typed.Types{typed.Number}, inc).
//		When(typed.Types{typed.Number, typed.Number}, mul).
//		WhenNamed("join", typed.Types{typed.String, typed.String}, join)
//
//	fn.Invoke(42)         // inc
//	fn.Invoke("2", "57")  // join
//	fn.Invoke(true)       // "no match"
//	fn.CallAlias("join", nil, "a", "b") // join, without dispatch
//
// Clauses are tried in registration order and the first match wins. The
// receiver passed to Call is handed unchanged to the selected clause.
//
// # Namespaces and the default instance
//
// Build creates an isolated Namespace. The package-level helpers operate on
// a default namespace created at init, published through an atomic pointer
// like a read-mostly snapshot: reads never lock, while SetDefault and
// Reconfigure take a short build mutex and swap the pointer.
//
// # Concurrency model
//
// Rule registries and clause lists are copy-on-write: readers load the
// current snapshot without locking, writers copy under a mutex and publish
// atomically. Matching and dispatch are therefore safe to run while rules
// or clauses are being added; a call sees the list as it was when the call
// started.
//
// # Configuration
//
// Config knobs (see the config package) tune the built-in rules: how many
// pointers a type descriptor follows, whether Number accepts complex
// values, whether nil matches typed nils, and which zap logger receives
// debug events. Configuration can be loaded from YAML with config.Load.
package typed

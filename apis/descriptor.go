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

package apis

// Descriptor is an abstract description of the values acceptable at some
// position. A descriptor may be a primitive tag, Any, Either, Rest, a Matcher,
// a category name (string), a nominal type (reflect.Type), the literal nil, or
// anything a custom Rule knows how to interpret.
type Descriptor = any

// Predicate is a boolean test over a single value.
type Predicate func(v any) bool

// Describer lets a descriptor choose the name it is rendered with in errors
// and logs. Descriptors that do not implement it are named by describe.
type Describer interface {
	// DescribeType returns a short, stable, human-readable name.
	DescribeType() string
}

// Callable is anything that can be invoked with an explicit receiver value
// (self) and an argument list. Guarded functions and dispatchers implement it,
// so they compose as defaults of other dispatchers.
type Callable interface {
	Call(self any, args ...any) (any, error)
}

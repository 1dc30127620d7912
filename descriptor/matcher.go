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

package descriptor

import (
	uref "dirpx.dev/typed/utils/reflect"
)

// MatcherType wraps an arbitrary predicate. A panic raised by the predicate
// is treated as a non-match.
type MatcherType struct {
	name string
	pred func(v any) bool
}

// Matcher wraps p as a descriptor.
func Matcher(p func(v any) bool) *MatcherType {
	return &MatcherType{name: "Matcher", pred: p}
}

// Validator wraps fn as a descriptor: a value matches when fn returns nil.
func Validator(fn func(v any) error) *MatcherType {
	return &MatcherType{
		name: "Validator",
		pred: func(v any) bool { return fn(v) == nil },
	}
}

// NewIterable returns a Matcher accepting any value that can be ranged over
// as a sequence.
func NewIterable() *MatcherType {
	return Matcher(uref.IsIterable).Named("Iterable")
}

// Named returns a copy of m that describes itself as name.
func (m *MatcherType) Named(name string) *MatcherType {
	return &MatcherType{name: name, pred: m.pred}
}

// Test runs the predicate against v.
func (m *MatcherType) Test(v any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return m.pred(v)
}

// DescribeType implements apis.Describer.
func (m *MatcherType) DescribeType() string {
	if m == nil {
		return "Matcher()"
	}
	return m.name
}

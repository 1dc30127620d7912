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

package rules

import (
	"dirpx.dev/typed/apis"
	"dirpx.dev/typed/descriptor"
	uref "dirpx.dev/typed/utils/reflect"
)

// Func adapts a pair of functions to apis.Rule. Both fields are required.
type Func struct {
	// Case reports whether the rule applies to a descriptor.
	Case func(d apis.Descriptor) bool
	// Match builds the predicate for a descriptor Case accepted.
	Match func(d apis.Descriptor, res apis.Resolver) apis.Predicate
}

var _ apis.Rule = Func{}

// Applies calls f.Case.
func (f Func) Applies(d apis.Descriptor) bool { return f.Case(d) }

// Build calls f.Match.
func (f Func) Build(d apis.Descriptor, res apis.Resolver) apis.Predicate { return f.Match(d, res) }

// Shape returns the Matcher a value must satisfy to be accepted as a rule:
// it implements apis.Rule and, when it is a Func, carries both functions.
func Shape() *descriptor.MatcherType {
	return descriptor.Matcher(func(v any) bool {
		switch r := v.(type) {
		case Func:
			return r.Case != nil && r.Match != nil
		case *Func:
			return r != nil && r.Case != nil && r.Match != nil
		case apis.Rule:
			return !uref.IsNil(r)
		default:
			return false
		}
	}).Named("Rule")
}

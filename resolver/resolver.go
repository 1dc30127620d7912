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

package resolver

import (
	"dirpx.dev/typed/apis"
)

// New constructs an apis.Resolver over reg. Every lookup reads the current
// registry snapshot, so rules appended after construction are honored.
// The returned resolver is safe for concurrent use provided the rules
// themselves are safe for concurrent calls.
func New(reg apis.Registry) apis.Resolver {
	return chain{reg: reg}
}

// chain resolves descriptors against an ordered rule list.
type chain struct {
	reg apis.Registry
}

// never is the predicate for descriptors no rule applies to.
func never(any) bool { return false }

// MatchType runs rules in order until one applies to d and returns the
// predicate it builds. Fails closed when no rule applies or the applicable
// rule builds a nil predicate.
func (r chain) MatchType(d apis.Descriptor) apis.Predicate {
	if r.reg == nil {
		return never
	}
	for _, rule := range r.reg.Rules() {
		if rule.Applies(d) {
			if p := rule.Build(d, r); p != nil {
				return p
			}
			return never
		}
	}
	return never
}

// Match reports whether v satisfies d.
func (r chain) Match(d apis.Descriptor, v any) bool {
	return r.MatchType(d)(v)
}

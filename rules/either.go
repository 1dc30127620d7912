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
)

// NewEitherRule creates an apis.Rule for Either descriptors.
// Members are resolved through the owning resolver each time the predicate
// runs, so rules appended later are visible to existing Either predicates.
func NewEitherRule() apis.Rule {
	return eitherRule{}
}

type eitherRule struct{}

var _ apis.Rule = eitherRule{}

func (eitherRule) Applies(d apis.Descriptor) bool {
	e, ok := d.(*descriptor.EitherType)
	return ok && e != nil
}

// Build short-circuits on the first member that accepts the value.
func (eitherRule) Build(d apis.Descriptor, res apis.Resolver) apis.Predicate {
	e := d.(*descriptor.EitherType)
	return func(v any) bool {
		for i := 0; i < e.Len(); i++ {
			if res.Match(e.At(i), v) {
				return true
			}
		}
		return false
	}
}

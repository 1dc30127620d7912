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

// NewMatcherRule creates an apis.Rule for Matcher descriptors.
func NewMatcherRule() apis.Rule {
	return matcherRule{}
}

type matcherRule struct{}

var _ apis.Rule = matcherRule{}

func (matcherRule) Applies(d apis.Descriptor) bool {
	m, ok := d.(*descriptor.MatcherType)
	return ok && m != nil
}

func (matcherRule) Build(d apis.Descriptor, _ apis.Resolver) apis.Predicate {
	return d.(*descriptor.MatcherType).Test
}

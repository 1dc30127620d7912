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

// NewAnyRule creates an apis.Rule for Any descriptors.
func NewAnyRule() apis.Rule {
	return anyRule{}
}

type anyRule struct{}

var _ apis.Rule = anyRule{}

func (anyRule) Applies(d apis.Descriptor) bool {
	a, ok := d.(*descriptor.AnyType)
	return ok && a != nil
}

func (anyRule) Build(apis.Descriptor, apis.Resolver) apis.Predicate {
	return func(any) bool { return true }
}

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
	uref "dirpx.dev/typed/utils/reflect"
)

// NewCategoryRule creates an apis.Rule for string descriptors. A string
// names a runtime category (see utils/reflect.Category), e.g. "int",
// "struct" or "nil".
func NewCategoryRule() apis.Rule {
	return categoryRule{}
}

type categoryRule struct{}

var _ apis.Rule = categoryRule{}

func (categoryRule) Applies(d apis.Descriptor) bool {
	_, ok := d.(string)
	return ok
}

func (categoryRule) Build(d apis.Descriptor, _ apis.Resolver) apis.Predicate {
	name := d.(string)
	return func(v any) bool { return uref.Category(v) == name }
}

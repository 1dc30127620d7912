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

import "dirpx.dev/typed/apis"

// Builtin returns the built-in rules in evaluation order:
// primitive, Any, Either, Matcher, category, nominal, nil literal.
func Builtin(cfg apis.Config) []apis.Rule {
	return []apis.Rule{
		NewPrimitiveRule(cfg),
		NewAnyRule(),
		NewEitherRule(),
		NewMatcherRule(),
		NewCategoryRule(),
		NewNominalRule(cfg),
		NewLiteralRule(cfg),
	}
}

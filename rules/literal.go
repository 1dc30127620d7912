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

// NewLiteralRule creates an apis.Rule for the nil literal descriptor.
// By default only an untyped nil matches; cfg.NilMatchesTypedNil widens it
// to typed nils.
func NewLiteralRule(cfg apis.Config) apis.Rule {
	return literalRule{typed: cfg.NilMatchesTypedNil}
}

type literalRule struct {
	typed bool
}

var _ apis.Rule = literalRule{}

func (literalRule) Applies(d apis.Descriptor) bool {
	return d == nil
}

func (r literalRule) Build(apis.Descriptor, apis.Resolver) apis.Predicate {
	if r.typed {
		return uref.IsNil
	}
	return func(v any) bool { return v == nil }
}

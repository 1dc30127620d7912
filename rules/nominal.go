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
	"reflect"

	"dirpx.dev/typed/apis"
	uref "dirpx.dev/typed/utils/reflect"
)

// NewNominalRule creates an apis.Rule for reflect.Type descriptors.
// A value matches when its type, or the type reached by following up to
// cfg.MaxUnwrap non-nil pointers, is assignable to the descriptor. Interface
// descriptors therefore match their implementations.
func NewNominalRule(cfg apis.Config) apis.Rule {
	return nominalRule{maxUnwrap: cfg.MaxUnwrap}
}

type nominalRule struct {
	maxUnwrap int
}

var _ apis.Rule = nominalRule{}

func (nominalRule) Applies(d apis.Descriptor) bool {
	t, ok := d.(reflect.Type)
	return ok && t != nil
}

func (r nominalRule) Build(d apis.Descriptor, _ apis.Resolver) apis.Predicate {
	want := d.(reflect.Type)
	return func(v any) bool {
		return uref.Unwrap(v, r.maxUnwrap, func(t reflect.Type) bool {
			return t.AssignableTo(want)
		})
	}
}

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
	"regexp"
	"time"

	"dirpx.dev/typed/apis"
	"dirpx.dev/typed/descriptor"
	uref "dirpx.dev/typed/utils/reflect"
)

// NewPrimitiveRule creates an apis.Rule resolving the primitive tags through
// a fixed lookup table.
func NewPrimitiveRule(cfg apis.Config) apis.Rule {
	withComplex := cfg.NumberIncludesComplex
	return &primitiveRule{table: map[descriptor.Primitive]apis.Predicate{
		descriptor.Function: uref.IsFunc,
		descriptor.Boolean:  isBool,
		descriptor.Number:   func(v any) bool { return uref.IsNumber(v, withComplex) },
		descriptor.Array:    uref.IsList,
		descriptor.Date:     isDate,
		descriptor.RegExp:   isRegExp,
		descriptor.Object:   uref.IsObject,
		descriptor.String:   isString,
	}}
}

// primitiveRule is the first rule in every registry.
type primitiveRule struct {
	table map[descriptor.Primitive]apis.Predicate
}

// Ensure primitiveRule implements apis.Rule.
var _ apis.Rule = (*primitiveRule)(nil)

// Applies reports whether d is a known primitive tag.
func (r *primitiveRule) Applies(d apis.Descriptor) bool {
	p, ok := d.(descriptor.Primitive)
	if !ok {
		return false
	}
	_, ok = r.table[p]
	return ok
}

// Build returns the table predicate for d.
func (r *primitiveRule) Build(d apis.Descriptor, _ apis.Resolver) apis.Predicate {
	return r.table[d.(descriptor.Primitive)]
}

// isBool and isString accept named types too (type Flag bool).
func isBool(v any) bool { return uref.Category(v) == "bool" }

func isString(v any) bool { return uref.Category(v) == "string" }

func isDate(v any) bool {
	switch d := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return d != nil
	default:
		return false
	}
}

func isRegExp(v any) bool {
	switch re := v.(type) {
	case *regexp.Regexp:
		return re != nil
	case regexp.Regexp:
		return true
	default:
		return false
	}
}

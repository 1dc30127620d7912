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

package descriptor

import (
	"reflect"
	"slices"

	"github.com/google/uuid"

	"dirpx.dev/typed/apis"
)

// AnyType matches every value. Each namespace owns its own instance.
type AnyType struct {
	owner uuid.UUID
}

// NewAny returns a fresh Any descriptor owned by the namespace with the given id.
func NewAny(owner uuid.UUID) *AnyType {
	return &AnyType{owner: owner}
}

// Owner returns the id of the namespace that created a.
func (a *AnyType) Owner() uuid.UUID { return a.owner }

// DescribeType implements apis.Describer.
func (*AnyType) DescribeType() string { return "Any" }

// EitherType is a logical OR over its members, tested in order.
type EitherType struct {
	types []apis.Descriptor
}

// Either builds an EitherType from its members.
func Either(types ...apis.Descriptor) *EitherType {
	return EitherOf(types)
}

// EitherOf builds an EitherType from a member list. The list is copied.
func EitherOf(types []apis.Descriptor) *EitherType {
	return &EitherType{types: slices.Clone(types)}
}

// Types returns a copy of the members.
func (e *EitherType) Types() []apis.Descriptor { return slices.Clone(e.types) }

// Len returns the number of members.
func (e *EitherType) Len() int { return len(e.types) }

// At returns member i.
func (e *EitherType) At(i int) apis.Descriptor { return e.types[i] }

// RestType marks "zero or more trailing values matching Elem". It only has a
// meaning as the last element of an argument type list.
type RestType struct {
	elem apis.Descriptor
}

// Rest wraps d as a trailing variadic descriptor.
func Rest(d apis.Descriptor) RestType {
	return RestType{elem: d}
}

// Elem returns the descriptor every trailing value must match.
func (r RestType) Elem() apis.Descriptor { return r.elem }

// IsRest reports whether d is a Rest descriptor and returns it.
func IsRest(d apis.Descriptor) (RestType, bool) {
	switch r := d.(type) {
	case RestType:
		return r, true
	case *RestType:
		if r != nil {
			return *r, true
		}
	}
	return RestType{}, false
}

// TypeOf returns the nominal descriptor for T. For interface types the
// descriptor matches every implementation.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

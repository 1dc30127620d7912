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

package describe_test

import (
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/typed/apis"
	"dirpx.dev/typed/describe"
	"dirpx.dev/typed/descriptor"
)

type point struct{}

type box[T any] struct{ v T }

func TestDescriptor(t *testing.T) {
	r := descriptor.Rest(descriptor.String)
	var nilEither *descriptor.EitherType

	cases := []struct {
		d    apis.Descriptor
		want string
	}{
		{nil, "nil"},
		{descriptor.Number, "Number"},
		{descriptor.Either(descriptor.String, nil), "Either(String, nil)"},
		{nilEither, "Either()"},
		{r, "Rest(String)"},
		{&r, "Rest(String)"},
		{descriptor.Rest(descriptor.Either(descriptor.Number, "int")), `Rest(Either(Number, "int"))`},
		{descriptor.Matcher(func(any) bool { return true }).Named("Even"), "Even"},
		{(*descriptor.MatcherType)(nil), "Matcher()"},
		{descriptor.TypeOf[point](), "describe_test.point"},
		{descriptor.TypeOf[*time.Time](), "*time.Time"},
		{descriptor.TypeOf[box[int]](), "describe_test.box"},
		{"int", `"int"`},
		{42, "int"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, describe.Descriptor(tc.d))
	}
}

func TestList(t *testing.T) {
	assert.Equal(t, "[]", describe.List(nil))
	assert.Equal(t, "[String, Rest(Number)]",
		describe.List([]apis.Descriptor{descriptor.String, descriptor.Rest(descriptor.Number)}))
}

func TestValues(t *testing.T) {
	assert.Equal(t, "[string, int, nil, *regexp.Regexp]",
		describe.Values([]any{"a", 1, nil, regexp.MustCompile("")}))
	assert.Equal(t, "[]", describe.Values(nil))
}

func TestTypeName(t *testing.T) {
	cases := []struct {
		t    reflect.Type
		want string
	}{
		{nil, "nil"},
		{reflect.TypeOf([]point{}), "[]describe_test.point"},
		{reflect.TypeOf([3]int{}), "[3]int"},
		{reflect.TypeOf(map[string]*point{}), "map[string]*describe_test.point"},
		{reflect.TypeOf(make(chan int)), "chan int"},
		{reflect.TypeOf(make(<-chan int)), "<-chan int"},
		{reflect.TypeOf(func(int) error { return nil }), "func(int) error"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, describe.TypeName(tc.t))
		// Cached path returns the same.
		assert.Equal(t, tc.want, describe.TypeName(tc.t))
	}
}

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

package reflect_test

import (
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	uref "dirpx.dev/typed/utils/reflect"
)

// Local test types.
type A struct{}
type Num int

func TestCategory(t *testing.T) {
	cases := []struct {
		name string
		v    any
		want string
	}{
		{"nil", nil, uref.NilCategory},
		{"int", 1, "int"},
		{"named int", Num(1), "int"},
		{"string", "x", "string"},
		{"struct", A{}, "struct"},
		{"ptr", &A{}, "ptr"},
		{"typed nil ptr", (*A)(nil), "ptr"},
		{"slice", []int{}, "slice"},
		{"map", map[string]int{}, "map"},
		{"func", func() {}, "func"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, uref.Category(tc.v))
		})
	}
}

func TestIsNil(t *testing.T) {
	var m map[string]int
	var s []int
	var f func()
	var c chan int

	for _, v := range []any{nil, (*A)(nil), m, s, f, c} {
		assert.True(t, uref.IsNil(v), "%T", v)
	}
	for _, v := range []any{0, "", A{}, &A{}, []int{}, false} {
		assert.False(t, uref.IsNil(v), "%T", v)
	}
}

func TestIsNumber(t *testing.T) {
	for _, v := range []any{1, int8(1), uint64(1), uintptr(1), 1.5, float32(1), Num(3)} {
		assert.True(t, uref.IsNumber(v, false), "%T", v)
	}
	for _, v := range []any{nil, "1", true, []int{1}} {
		assert.False(t, uref.IsNumber(v, false), "%T", v)
	}
	assert.False(t, uref.IsNumber(complex(1, 2), false))
	assert.True(t, uref.IsNumber(complex(1, 2), true))
}

func TestIsFuncAndList(t *testing.T) {
	var nilFn func()
	assert.True(t, uref.IsFunc(func() {}))
	assert.True(t, uref.IsFunc(uref.Category))
	assert.False(t, uref.IsFunc(nilFn))
	assert.False(t, uref.IsFunc("f"))

	assert.True(t, uref.IsList([]int{}))
	assert.True(t, uref.IsList([2]int{}))
	assert.False(t, uref.IsList(map[int]int{}))
	assert.False(t, uref.IsList(nil))
}

func TestIsObject(t *testing.T) {
	for _, v := range []any{A{}, &A{}, map[string]int{}, []int{}, [1]int{}, func() {}, make(chan int), time.Now(), regexp.MustCompile(".*")} {
		assert.True(t, uref.IsObject(v), "%T", v)
	}
	for _, v := range []any{nil, 2, "", true, 1.5, (*A)(nil)} {
		assert.False(t, uref.IsObject(v), "%T", v)
	}
}

func TestIsIterable(t *testing.T) {
	seq := func(yield func(int) bool) {}
	seq2 := func(yield func(string, int) bool) {}
	seq0 := func(yield func() bool) {}

	for _, v := range []any{[]int{}, [2]int{}, &[2]int{}, map[string]int{}, "", make(chan int), seq, seq2, seq0} {
		assert.True(t, uref.IsIterable(v), "%T", v)
	}

	notSeq := func(yield func(int)) {}
	for _, v := range []any{nil, 2, A{}, &A{}, true, notSeq, func() {}, ([]int)(nil)} {
		assert.False(t, uref.IsIterable(v), "%T", v)
	}
}

func TestUnwrap(t *testing.T) {
	target := reflect.TypeOf(A{})
	is := func(rt reflect.Type) bool { return rt == target }

	a := &A{}
	aa := &a

	assert.True(t, uref.Unwrap(A{}, 0, is))
	assert.False(t, uref.Unwrap(a, 0, is), "MaxUnwrap=0 does not follow pointers")
	assert.True(t, uref.Unwrap(a, 1, is))
	assert.False(t, uref.Unwrap(aa, 1, is), "**A needs two steps")
	assert.True(t, uref.Unwrap(aa, 8, is))
	assert.False(t, uref.Unwrap((*A)(nil), 8, is), "nil pointers are not followed")
	assert.False(t, uref.Unwrap(nil, 8, is))

	var seen []reflect.Type
	uref.Unwrap(aa, 8, func(rt reflect.Type) bool {
		seen = append(seen, rt)
		return false
	})
	assert.Equal(t, []reflect.Type{reflect.TypeOf(aa), reflect.TypeOf(a), target}, seen)
}

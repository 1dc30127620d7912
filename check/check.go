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

// Package check matches argument lists against type lists.
//
// A type list matches positionally and with exact arity, unless its last
// element is a Rest descriptor, in which case every remaining value (zero
// or more) must match the Rest element. A Rest anywhere else is a
// configuration error, reported regardless of the values.
package check

import (
	"errors"
	"fmt"

	"dirpx.dev/typed/apis"
	"dirpx.dev/typed/descriptor"
)

var (
	// ErrRestNotLast is returned when a Rest descriptor is followed by other
	// descriptors in a type list.
	ErrRestNotLast = errors.New("typed(check): nothing may follow Rest in a type list")
)

// ConfigError reports a malformed type list.
type ConfigError struct {
	// Index is the position of the misplaced Rest.
	Index int
	// Len is the length of the type list.
	Len int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s (Rest at position %d of %d)", ErrRestNotLast, e.Index, e.Len)
}

func (e *ConfigError) Unwrap() error { return ErrRestNotLast }

// Signature validates a type list: a Rest descriptor may only be last.
func Signature(types []apis.Descriptor) error {
	for i, t := range types {
		if _, ok := descriptor.IsRest(t); ok && i != len(types)-1 {
			return &ConfigError{Index: i, Len: len(types)}
		}
	}
	return nil
}

// Types reports whether values satisfy types. The signature is validated
// first, so a misplaced Rest is an error whatever the values are.
func Types(res apis.Resolver, types []apis.Descriptor, values []any) (bool, error) {
	if err := Signature(types); err != nil {
		return false, err
	}
	return Valid(res, types, values), nil
}

// Valid is Types for a type list already known to pass Signature.
// Both lists are consumed in lockstep from the front.
func Valid(res apis.Resolver, types []apis.Descriptor, values []any) bool {
	for {
		if len(types) == 0 {
			return len(values) == 0
		}
		if r, ok := descriptor.IsRest(types[0]); ok {
			p := res.MatchType(r.Elem())
			for _, v := range values {
				if !p(v) {
					return false
				}
			}
			return true
		}
		if len(values) == 0 {
			return false
		}
		if !res.Match(types[0], values[0]) {
			return false
		}
		types, values = types[1:], values[1:]
	}
}

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

package check

import (
	"fmt"
	"strings"

	"dirpx.dev/typed/apis"
	"dirpx.dev/typed/describe"
	"dirpx.dev/typed/descriptor"
)

// Issue codes.
const (
	CodeInvalidType = "invalid_type"
	CodeTooFew      = "too_few_arguments"
	CodeTooMany     = "too_many_arguments"
)

// Issue describes one position where an argument list fails its type list.
type Issue struct {
	// Position is the zero-based argument index.
	Position int `json:"position"`
	// Code is one of the codes listed above.
	Code string `json:"code"`
	// Expected names the descriptor at Position ("" past the end of a
	// fixed-arity list).
	Expected string `json:"expected,omitempty"`
	// Got names the argument type at Position ("" past the end of the
	// argument list).
	Got string `json:"got,omitempty"`
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %d", iss[i].Code, iss[i].Position)
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// Diagnose lists every position where values fail types. The result is
// empty exactly when Valid(res, types, values) is true. types must pass
// Signature.
func Diagnose(res apis.Resolver, types []apis.Descriptor, values []any) Issues {
	var iss Issues

	fixed := types
	var rest *descriptor.RestType
	if n := len(types); n > 0 {
		if r, ok := descriptor.IsRest(types[n-1]); ok {
			fixed, rest = types[:n-1], &r
		}
	}

	for i, t := range fixed {
		if i >= len(values) {
			iss = append(iss, Issue{Position: i, Code: CodeTooFew, Expected: describe.Descriptor(t)})
			return iss
		}
		if !res.Match(t, values[i]) {
			iss = append(iss, Issue{Position: i, Code: CodeInvalidType, Expected: describe.Descriptor(t), Got: describe.Value(values[i])})
		}
	}

	tail := values[len(fixed):]
	if rest != nil {
		p := res.MatchType(rest.Elem())
		for j, v := range tail {
			if !p(v) {
				iss = append(iss, Issue{Position: len(fixed) + j, Code: CodeInvalidType, Expected: describe.Descriptor(rest.Elem()), Got: describe.Value(v)})
			}
		}
		return iss
	}
	if len(tail) > 0 {
		iss = append(iss, Issue{Position: len(fixed), Code: CodeTooMany, Got: describe.Value(tail[0])})
	}
	return iss
}

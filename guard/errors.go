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

package guard

import (
	"errors"
	"strings"

	json "github.com/goccy/go-json"

	"dirpx.dev/typed/apis"
	"dirpx.dev/typed/check"
	"dirpx.dev/typed/describe"
)

var (
	// ErrTypeMismatch is wrapped by every MismatchError.
	ErrTypeMismatch = errors.New("typed(guard): arguments do not match the declared types")
	// ErrNilFunc is returned when a nil implementation is provided.
	ErrNilFunc = errors.New("typed(guard): nil function provided")
	// ErrNilResolver is returned when a nil resolver is provided.
	ErrNilResolver = errors.New("typed(guard): nil resolver provided")
	// ErrCallShape is returned by adapted functions called with arguments
	// their parameters cannot take.
	ErrCallShape = errors.New("typed(guard): arguments do not fit the function parameters")
)

// MismatchError is produced when a guarded call's arguments fail its type
// list. It carries the expected types and a snapshot of the arguments.
type MismatchError struct {
	// Expected is the declared type list.
	Expected []apis.Descriptor
	// Arguments is a copy of the arguments of the failed call.
	Arguments []any
	// Issues lists the failing positions.
	Issues check.Issues
}

func (e *MismatchError) Error() string {
	b := &strings.Builder{}
	b.WriteString(ErrTypeMismatch.Error())
	b.WriteString(": expected ")
	b.WriteString(describe.List(e.Expected))
	b.WriteString(", got ")
	b.WriteString(describe.Values(e.Arguments))
	if len(e.Issues) > 0 {
		b.WriteString(" (")
		b.WriteString(e.Issues.Error())
		b.WriteString(")")
	}
	return b.String()
}

func (e *MismatchError) Unwrap() error { return ErrTypeMismatch }

// mismatchJSON is the wire form of a MismatchError. Descriptors and
// arguments are rendered by name; argument values are not serialized.
type mismatchJSON struct {
	Error     string       `json:"error"`
	Expected  []string     `json:"expected"`
	Arguments []string     `json:"arguments"`
	Issues    check.Issues `json:"issues,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (e *MismatchError) MarshalJSON() ([]byte, error) {
	out := mismatchJSON{
		Error:     ErrTypeMismatch.Error(),
		Expected:  make([]string, len(e.Expected)),
		Arguments: make([]string, len(e.Arguments)),
		Issues:    e.Issues,
	}
	for i, d := range e.Expected {
		out.Expected[i] = describe.Descriptor(d)
	}
	for i, v := range e.Arguments {
		out.Arguments[i] = describe.Value(v)
	}
	return json.Marshal(out)
}

// AsMismatch extracts a MismatchError from err.
func AsMismatch(err error) (*MismatchError, bool) {
	var me *MismatchError
	if errors.As(err, &me) {
		return me, true
	}
	return nil, false
}

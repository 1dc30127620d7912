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

package apis

import "go.uber.org/zap"

// Config carries read-only matching knobs that influence the built-in rules.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// MaxUnwrap limits how many non-nil pointers a nominal descriptor follows
	// when testing a value (so T matches both T and *T).
	MaxUnwrap int `yaml:"max_unwrap"`

	// NumberIncludesComplex makes the Number primitive accept complex64 and
	// complex128 values in addition to integers and floats.
	NumberIncludesComplex bool `yaml:"number_includes_complex"`

	// NilMatchesTypedNil makes the nil literal descriptor accept typed nils
	// (nil pointers, maps, slices, funcs, channels) and not only untyped nil.
	NilMatchesTypedNil bool `yaml:"nil_matches_typed_nil"`

	// Logger receives debug events from registries, guards and dispatchers.
	// A nil Logger disables logging.
	Logger *zap.Logger `yaml:"-"`
}

// Log returns the configured logger, or a no-op logger.
func (c Config) Log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

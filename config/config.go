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

package config

import (
	"go.uber.org/zap"

	"dirpx.dev/typed/apis"
)

const (
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
	// DefaultNumberIncludesComplex represents the default for NumberIncludesComplex.
	DefaultNumberIncludesComplex = false
	// DefaultNilMatchesTypedNil represents the default for NilMatchesTypedNil.
	// When false, only an untyped nil matches the nil literal.
	DefaultNilMatchesTypedNil = false
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap is valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		MaxUnwrap:             DefaultMaxUnwrap,
		NumberIncludesComplex: DefaultNumberIncludesComplex,
		NilMatchesTypedNil:    DefaultNilMatchesTypedNil,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithConfig replaces every knob with the ones in cfg. Options that follow it
// still apply on top.
func WithConfig(cfg apis.Config) Option {
	return func(c *apis.Config) {
		*c = cfg
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithNumberIncludesComplex sets the NumberIncludesComplex option.
func WithNumberIncludesComplex(include bool) Option {
	return func(c *apis.Config) {
		c.NumberIncludesComplex = include
	}
}

// WithNilMatchesTypedNil sets the NilMatchesTypedNil option.
func WithNilMatchesTypedNil(match bool) Option {
	return func(c *apis.Config) {
		c.NilMatchesTypedNil = match
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = l
	}
}

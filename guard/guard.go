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

// Package guard wraps functions with argument type checks.
//
// A guarded function validates its arguments against a type list before
// delegating. On mismatch it builds a *MismatchError and hands it to the
// current ErrorHandler; the default handler returns the error unchanged.
//
//	repeat, err := guard.New(res, []apis.Descriptor{descriptor.String, descriptor.Number},
//		func(_ any, args ...any) (any, error) {
//			return strings.Repeat(args[0].(string), args[1].(int)), nil
//		})
//	out, err := repeat.Invoke("ab", 3) // "ababab", nil
//	_, err = repeat.Invoke("ab", "3")  // nil, *MismatchError
package guard

import (
	"slices"
	"sync/atomic"

	"go.uber.org/zap"

	"dirpx.dev/typed/apis"
	"dirpx.dev/typed/check"
	"dirpx.dev/typed/describe"
	uref "dirpx.dev/typed/utils/reflect"
)

// Func is an implementation invoked with an explicit receiver (self) and an
// argument list.
type Func func(self any, args ...any) (any, error)

// Call implements apis.Callable.
func (f Func) Call(self any, args ...any) (any, error) { return f(self, args...) }

// Lift adapts a function that ignores its receiver and cannot fail.
func Lift(fn func(args ...any) any) Func {
	return func(_ any, args ...any) (any, error) { return fn(args...), nil }
}

// ErrorHandler receives the mismatch error of a failed call together with
// the arguments and the declared types. Its return value becomes the error
// of the call, so returning nil swallows the mismatch.
type ErrorHandler func(err *MismatchError, args []any, types []apis.Descriptor) error

// Raise is the default ErrorHandler: it returns err unchanged.
func Raise(err *MismatchError, _ []any, _ []apis.Descriptor) error { return err }

// Option configures a Guarded.
type Option func(*Guarded)

// WithLogger sets the logger used for debug events.
func WithLogger(l *zap.Logger) Option {
	return func(g *Guarded) {
		if l != nil {
			g.log = l
		}
	}
}

// WithName labels the guarded function in logs.
func WithName(name string) Option {
	return func(g *Guarded) { g.name = name }
}

// WithErrorHandler installs h at construction time.
func WithErrorHandler(h ErrorHandler) Option {
	return func(g *Guarded) { g.OnError(h) }
}

// Guarded is a function wrapped with precondition enforcement.
type Guarded struct {
	res   apis.Resolver
	types []apis.Descriptor
	fn    Func
	name  string
	log   *zap.Logger
	// onError is the single handler slot; nil means Raise.
	onError atomic.Pointer[ErrorHandler]
}

// Ensure Guarded implements apis.Callable.
var _ apis.Callable = (*Guarded)(nil)

// New wraps fn so that it only runs when its arguments satisfy types.
// The type list is validated and copied here; a misplaced Rest is reported
// as a *check.ConfigError.
func New(res apis.Resolver, types []apis.Descriptor, fn Func, opts ...Option) (*Guarded, error) {
	if res == nil || uref.IsNil(res) {
		return nil, ErrNilResolver
	}
	if fn == nil {
		return nil, ErrNilFunc
	}
	if err := check.Signature(types); err != nil {
		return nil, err
	}
	g := &Guarded{
		res:   res,
		types: slices.Clone(types),
		fn:    fn,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Call checks args and invokes the wrapped function with self and args.
// On mismatch the function is not called; the result is nil and the error
// is whatever the current handler returns.
func (g *Guarded) Call(self any, args ...any) (any, error) {
	if check.Valid(g.res, g.types, args) {
		return g.fn(self, args...)
	}

	snapshot := slices.Clone(args)
	err := &MismatchError{
		Expected:  g.Types(),
		Arguments: snapshot,
		Issues:    check.Diagnose(g.res, g.types, snapshot),
	}

	var h ErrorHandler = Raise
	custom := g.onError.Load()
	if custom != nil {
		h = *custom
	}
	g.log.Debug("argument mismatch",
		zap.String("func", g.name),
		zap.String("expected", describe.List(g.types)),
		zap.String("got", describe.Values(snapshot)),
		zap.Bool("custom_handler", custom != nil),
	)
	return nil, h(err, snapshot, err.Expected)
}

// Invoke is Call with a nil receiver.
func (g *Guarded) Invoke(args ...any) (any, error) {
	return g.Call(nil, args...)
}

// OnError replaces the error handler. A nil handler restores Raise.
// It returns g for chaining.
func (g *Guarded) OnError(h ErrorHandler) *Guarded {
	if h == nil {
		g.onError.Store(nil)
		return g
	}
	g.onError.Store(&h)
	return g
}

// Types returns a copy of the declared type list.
func (g *Guarded) Types() []apis.Descriptor {
	return slices.Clone(g.types)
}

// Func returns the wrapped, unchecked implementation.
func (g *Guarded) Func() Func { return g.fn }

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

// Package overload implements multiple dispatch over ordered, typed clauses.
//
// A Dispatcher holds clauses in registration order. A call runs the first
// clause whose type list accepts the arguments; registration order is the
// only tie-break. When no clause matches, the default runs: a callable
// default is invoked with the same receiver and arguments, anything else is
// returned as a literal result.
//
//	area := overload.New(res, 0.0).
//		When([]apis.Descriptor{circleT}, circleArea).
//		WhenNamed("rect", []apis.Descriptor{descriptor.Number, descriptor.Number}, rectArea)
//
// Clauses may be added at any time, including between calls.
package overload

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"dirpx.dev/typed/apis"
	"dirpx.dev/typed/check"
	"dirpx.dev/typed/describe"
	"dirpx.dev/typed/guard"
	uref "dirpx.dev/typed/utils/reflect"
)

var (
	// ErrUnknownAlias is returned by CallAlias for names no clause registered.
	ErrUnknownAlias = errors.New("typed(overload): unknown alias")
)

// Clause is one (type list, implementation) pair of a dispatch table.
type Clause struct {
	// Name is the alias the clause was registered under, or "".
	Name string
	// Types is the clause's argument type list.
	Types []apis.Descriptor
	// Fn is the implementation.
	Fn guard.Func
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for debug events.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// WithName labels the dispatcher in logs.
func WithName(name string) Option {
	return func(d *Dispatcher) { d.name = name }
}

// Dispatcher is an ordered dispatch table plus a default.
type Dispatcher struct {
	res  apis.Resolver
	def  any
	name string
	log  *zap.Logger
	// mu serializes writers of clauses and aliases.
	mu sync.Mutex
	// clauses holds the current snapshot. Published slices are never mutated.
	clauses atomic.Pointer[[]Clause]
	// aliases maps names to implementations.
	aliases sync.Map // map[string]guard.Func
}

// Ensure Dispatcher implements apis.Callable.
var _ apis.Callable = (*Dispatcher)(nil)

// New creates a Dispatcher with an untyped default. def may be any
// apis.Callable, any function (adapted with guard.Adapt), or a literal value
// returned as is. A nil function counts as a nil default. An untyped default
// never validates its arguments.
//
// New panics with guard.ErrNilResolver when res is nil.
func New(res apis.Resolver, def any, opts ...Option) *Dispatcher {
	if res == nil || uref.IsNil(res) {
		panic(guard.ErrNilResolver)
	}
	if _, ok := def.(apis.Callable); !ok && uref.Category(def) == "func" {
		if fn, ok := guard.Adapt(def); ok {
			def = fn
		} else {
			def = nil
		}
	}
	d := &Dispatcher{res: res, def: def, log: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	empty := []Clause{}
	d.clauses.Store(&empty)
	return d
}

// NewTyped creates a Dispatcher whose default is fn guarded by types. A call
// that matches no clause reaches the guarded default and therefore fails with
// a *guard.MismatchError unless it matches the default's own types.
func NewTyped(res apis.Resolver, types []apis.Descriptor, fn guard.Func, opts ...Option) (*Dispatcher, error) {
	if res == nil || uref.IsNil(res) {
		return nil, guard.ErrNilResolver
	}
	d := New(res, nil, opts...)
	g, err := guard.New(res, types, fn, guard.WithLogger(d.log), guard.WithName(d.name+".default"))
	if err != nil {
		return nil, err
	}
	d.def = g
	return d, nil
}

// When appends a clause and returns d for chaining. Like http.ServeMux.Handle,
// it panics on a malformed type list or a nil fn.
func (d *Dispatcher) When(types []apis.Descriptor, fn guard.Func) *Dispatcher {
	return d.WhenNamed("", types, fn)
}

// WhenNamed appends a clause and, when name is not empty, registers fn as a
// directly callable alias (see Alias). A later clause with the same name
// replaces the alias but not the earlier clause. It panics like When.
func (d *Dispatcher) WhenNamed(name string, types []apis.Descriptor, fn guard.Func) *Dispatcher {
	if err := d.Add(name, types, fn); err != nil {
		panic(err)
	}
	return d
}

// Add is the non-panicking form of WhenNamed.
func (d *Dispatcher) Add(name string, types []apis.Descriptor, fn guard.Func) error {
	if fn == nil {
		return guard.ErrNilFunc
	}
	if err := check.Signature(types); err != nil {
		return err
	}
	c := Clause{Name: name, Types: slices.Clone(types), Fn: fn}

	d.mu.Lock()
	defer d.mu.Unlock()

	// Clip forces append to allocate, so running calls keep their snapshot.
	next := append(slices.Clip(*d.clauses.Load()), c)
	d.clauses.Store(&next)

	if name != "" {
		if _, replaced := d.aliases.Swap(name, fn); replaced {
			d.log.Debug("alias replaced", zap.String("dispatcher", d.name), zap.String("alias", name))
		}
	}
	d.log.Debug("clause registered",
		zap.String("dispatcher", d.name),
		zap.Int("position", len(next)-1),
		zap.String("alias", name),
		zap.String("types", describe.List(c.Types)),
	)
	return nil
}

// Call dispatches args to the first matching clause, passing self through.
// Without a match it falls back to the default.
func (d *Dispatcher) Call(self any, args ...any) (any, error) {
	for _, c := range *d.clauses.Load() {
		if check.Valid(d.res, c.Types, args) {
			return c.Fn(self, args...)
		}
	}
	d.log.Debug("no clause matched, using default",
		zap.String("dispatcher", d.name),
		zap.String("got", describe.Values(args)),
	)
	if c, ok := d.def.(apis.Callable); ok {
		if uref.IsNil(c) {
			return nil, nil
		}
		return c.Call(self, args...)
	}
	return d.def, nil
}

// Invoke is Call with a nil receiver.
func (d *Dispatcher) Invoke(args ...any) (any, error) {
	return d.Call(nil, args...)
}

// Func returns d.Call as a guard.Func, e.g. to register one dispatcher as a
// clause of another.
func (d *Dispatcher) Func() guard.Func { return d.Call }

// Alias returns the implementation registered under name. Calling it
// bypasses dispatch and type checks.
func (d *Dispatcher) Alias(name string) (guard.Func, bool) {
	v, ok := d.aliases.Load(name)
	if !ok {
		return nil, false
	}
	return v.(guard.Func), true
}

// CallAlias invokes the implementation registered under name directly.
func (d *Dispatcher) CallAlias(name string, self any, args ...any) (any, error) {
	fn, ok := d.Alias(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlias, name)
	}
	return fn(self, args...)
}

// Default returns the default implementation: a *guard.Guarded for typed
// dispatchers, otherwise the value given to New.
func (d *Dispatcher) Default() any { return d.def }

// Clauses returns a copy of the clauses in registration order.
func (d *Dispatcher) Clauses() []Clause {
	snap := *d.clauses.Load()
	out := make([]Clause, len(snap))
	for i, c := range snap {
		out[i] = Clause{Name: c.Name, Types: slices.Clone(c.Types), Fn: c.Fn}
	}
	return out
}

// Len returns the number of clauses.
func (d *Dispatcher) Len() int { return len(*d.clauses.Load()) }

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

package typed

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dirpx.dev/typed/apis"
	"dirpx.dev/typed/builder"
	"dirpx.dev/typed/check"
	"dirpx.dev/typed/config"
	"dirpx.dev/typed/descriptor"
	"dirpx.dev/typed/guard"
	"dirpx.dev/typed/overload"
	"dirpx.dev/typed/rules"
)

var (
	// ErrNilRegistry is raised when a builder returns a nil registry.
	ErrNilRegistry = errors.New("typed: builder returned nil registry")
	// ErrNilResolver is raised when a builder returns a nil resolver.
	ErrNilResolver = errors.New("typed: builder returned nil resolver")
	// ErrInvalidRule is returned by AddTypeMatchCase for values that are not
	// usable resolution rules.
	ErrInvalidRule = errors.New("typed: value is not a resolution rule")
)

// Namespace is an isolated instance of the vocabulary, the rule registry,
// the resolver and the guard/dispatch constructors bound to them. Rules
// added to one namespace are invisible to every other namespace.
type Namespace struct {
	id    uuid.UUID
	cfg   apis.Config
	bld   apis.Builder
	reg   apis.Registry
	res   apis.Resolver
	log   *zap.Logger
	shape *descriptor.MatcherType

	// Any matches every value.
	Any *descriptor.AnyType
	// Iterable matches values that can be ranged over as a sequence.
	Iterable *descriptor.MatcherType
}

// Build creates a namespace from options using the default builder.
func Build(opts ...config.Option) *Namespace {
	return BuildWith(config.NewConfig(opts...), nil)
}

// BuildWith creates a namespace from cfg and b. A nil builder means the
// default builder. It panics if b returns a nil registry or resolver.
func BuildWith(cfg apis.Config, b apis.Builder) *Namespace {
	if b == nil {
		b = builder.New()
	}
	id := uuid.New()
	ns := &Namespace{
		id:       id,
		cfg:      cfg,
		bld:      b,
		log:      cfg.Log().With(zap.Stringer("namespace", id)),
		shape:    rules.Shape(),
		Any:      descriptor.NewAny(id),
		Iterable: descriptor.NewIterable(),
	}
	ns.assemble(nil, nil)
	ns.log.Debug("namespace built", zap.Int("rules", ns.reg.Count()))
	return ns
}

// Rebuild returns a namespace with the same identity, vocabulary instances
// and custom rules, under a configuration derived from ns's by opts. ns is
// left unchanged.
func (ns *Namespace) Rebuild(opts ...config.Option) *Namespace {
	next := &Namespace{
		id:       ns.id,
		cfg:      config.NewConfig(append([]config.Option{config.WithConfig(ns.cfg)}, opts...)...),
		bld:      ns.bld,
		shape:    ns.shape,
		Any:      ns.Any,
		Iterable: ns.Iterable,
	}
	next.log = next.cfg.Log().With(zap.Stringer("namespace", next.id))
	next.assemble(ns.reg, ns.res)
	next.log.Debug("namespace rebuilt", zap.Int("rules", next.reg.Count()))
	return next
}

// assemble builds the registry and resolver, migrating from prev*.
func (ns *Namespace) assemble(preg apis.Registry, pres apis.Resolver) {
	reg := ns.bld.BuildRegistry(ns.cfg, preg, nil)
	if reg == nil {
		panic(ErrNilRegistry)
	}
	res := ns.bld.BuildResolver(ns.cfg, reg, pres, nil)
	if res == nil {
		panic(ErrNilResolver)
	}
	ns.reg, ns.res = reg, res
}

// ID returns the namespace identity.
func (ns *Namespace) ID() uuid.UUID { return ns.id }

// Config returns the namespace configuration.
func (ns *Namespace) Config() apis.Config { return ns.cfg }

// Registry returns the namespace rule registry.
func (ns *Namespace) Registry() apis.Registry { return ns.reg }

// Resolver returns the namespace resolver.
func (ns *Namespace) Resolver() apis.Resolver { return ns.res }

// Builder returns the builder the namespace was assembled with.
func (ns *Namespace) Builder() apis.Builder { return ns.bld }

// Either builds an Either descriptor.
func (ns *Namespace) Either(types ...apis.Descriptor) *descriptor.EitherType {
	return descriptor.EitherOf(types)
}

// Rest builds a Rest descriptor.
func (ns *Namespace) Rest(d apis.Descriptor) descriptor.RestType {
	return descriptor.Rest(d)
}

// Matcher builds a Matcher descriptor.
func (ns *Namespace) Matcher(p func(v any) bool) *descriptor.MatcherType {
	return descriptor.Matcher(p)
}

// MatchType returns the predicate for d.
func (ns *Namespace) MatchType(d apis.Descriptor) apis.Predicate {
	return ns.res.MatchType(d)
}

// Match reports whether v satisfies d.
func (ns *Namespace) Match(d apis.Descriptor, v any) bool {
	return ns.res.Match(d, v)
}

// AddTypeMatchCase appends rule to the registry. rule must satisfy the rule
// shape: implement apis.Rule and, for a rules.Func, carry both functions.
// Appended rules run after the built-in ones, so they only see descriptors
// no built-in rule claims.
func (ns *Namespace) AddTypeMatchCase(rule any) error {
	if !ns.res.Match(ns.shape, rule) {
		ns.log.Debug("rule rejected", zap.String("rule", describeRule(rule)))
		return ErrInvalidRule
	}
	return ns.reg.Add(rule.(apis.Rule))
}

// CheckTypes reports whether values satisfy types.
func (ns *Namespace) CheckTypes(types []apis.Descriptor, values []any) (bool, error) {
	return check.Types(ns.res, types, values)
}

// TypeChecked wraps fn with a check of its arguments against types.
func (ns *Namespace) TypeChecked(types []apis.Descriptor, fn guard.Func, opts ...guard.Option) (*guard.Guarded, error) {
	return guard.New(ns.res, types, fn, append([]guard.Option{guard.WithLogger(ns.log)}, opts...)...)
}

// MustTypeChecked is like TypeChecked but panics on a malformed type list.
func (ns *Namespace) MustTypeChecked(types []apis.Descriptor, fn guard.Func, opts ...guard.Option) *guard.Guarded {
	g, err := ns.TypeChecked(types, fn, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Overload creates a dispatcher with an untyped default.
func (ns *Namespace) Overload(def any, opts ...overload.Option) *overload.Dispatcher {
	return overload.New(ns.res, def, append([]overload.Option{overload.WithLogger(ns.log)}, opts...)...)
}

// OverloadTyped creates a dispatcher whose default is fn guarded by types.
func (ns *Namespace) OverloadTyped(types []apis.Descriptor, fn guard.Func, opts ...overload.Option) (*overload.Dispatcher, error) {
	return overload.NewTyped(ns.res, types, fn, append([]overload.Option{overload.WithLogger(ns.log)}, opts...)...)
}

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

package builder_test

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/typed/apis"
	"dirpx.dev/typed/builder"
	"dirpx.dev/typed/config"
	"dirpx.dev/typed/descriptor"
	"dirpx.dev/typed/registry"
	"dirpx.dev/typed/rules"
)

// userType is a plain named type used as a nominal descriptor.
type userType struct{}

// tagRule claims one exact string-keyed marker.
type tagRule struct{ tag *string }

func (r tagRule) Applies(d apis.Descriptor) bool { return d == r.tag }
func (r tagRule) Build(apis.Descriptor, apis.Resolver) apis.Predicate {
	return func(v any) bool { return v == *r.tag }
}

func newTag(s string) (*string, tagRule) { return &s, tagRule{tag: &s} }

// plainRegistry implements apis.Registry without Custom.
type plainRegistry struct{ rules []apis.Rule }

func (p *plainRegistry) Add(r apis.Rule) error { p.rules = append(p.rules, r); return nil }
func (p *plainRegistry) Rules() []apis.Rule    { return p.rules }
func (p *plainRegistry) Count() int            { return len(p.rules) }

func TestBuildRegistry_SeedsBuiltins(t *testing.T) {
	b := builder.New()
	cfg := config.NewConfig()

	reg := b.BuildRegistry(cfg, nil, nil)
	require.NotNil(t, reg)
	assert.Equal(t, len(rules.Builtin(cfg)), reg.Count())

	ext, ok := reg.(registry.Extensible)
	require.True(t, ok)
	assert.Empty(t, ext.Custom())
}

func TestBuildRegistry_MigratesCustomRules(t *testing.T) {
	b := builder.New()
	cfg := config.NewConfig()
	d1, r1 := newTag("one")
	d2, r2 := newTag("two")

	prev := b.BuildRegistry(cfg, nil, nil)
	require.NoError(t, prev.Add(r1))
	require.NoError(t, prev.Add(r2))

	next := b.BuildRegistry(config.NewConfig(config.WithMaxUnwrap(1)), prev, nil)
	assert.Equal(t, prev.Count(), next.Count())

	res := b.BuildResolver(cfg, next, nil, nil)
	assert.True(t, res.Match(d1, "one"))
	assert.True(t, res.Match(d2, "two"))
	assert.Equal(t, []apis.Rule{r1, r2}, next.(registry.Extensible).Custom())
}

func TestBuildRegistry_ForeignPreviousRegistry(t *testing.T) {
	b := builder.New()
	cfg := config.NewConfig()
	d, r := newTag("x")

	prev := &plainRegistry{rules: append(rules.Builtin(cfg), r)}
	next := b.BuildRegistry(cfg, prev, nil)

	res := b.BuildResolver(cfg, next, nil, nil)
	assert.True(t, res.Match(d, "x"))
	assert.True(t, res.Match(descriptor.String, "s"))
}

func TestBuildRegistry_ExtensionRules(t *testing.T) {
	b := builder.New()
	cfg := config.NewConfig()
	d, r := newTag("ext")

	reg := b.BuildRegistry(cfg, nil, []apis.Rule{r})
	res := b.BuildResolver(cfg, reg, nil, nil)
	assert.True(t, res.Match(d, "ext"))

	// Anything but a rule list is ignored.
	reg = b.BuildRegistry(cfg, nil, "ignored")
	assert.Equal(t, len(rules.Builtin(cfg)), reg.Count())
}

func TestBuildResolver_SeesLaterRules(t *testing.T) {
	b := builder.New()
	cfg := config.NewConfig()
	reg := b.BuildRegistry(cfg, nil, nil)
	res := b.BuildResolver(cfg, reg, nil, nil)

	d, r := newTag("late")
	assert.False(t, res.Match(d, "late"))
	require.NoError(t, reg.Add(r))
	assert.True(t, res.Match(d, "late"))
}

// TestBuildResolver_Concurrency_Smoke hammers the resolver in parallel while
// rules are appended.
func TestBuildResolver_Concurrency_Smoke(t *testing.T) {
	b := builder.New()
	cfg := config.NewConfig()
	reg := b.BuildRegistry(cfg, nil, nil)
	res := b.BuildResolver(cfg, reg, nil, nil)

	descs := []apis.Descriptor{
		descriptor.String,
		descriptor.Either(descriptor.Number, descriptor.TypeOf[userType]()),
		descriptor.TypeOf[userType](),
		"struct",
		nil,
	}
	values := []any{"s", 1, userType{}, &userType{}, nil}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers + 1)

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_, r := newTag("w")
			_ = reg.Add(r)
		}
	}()
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				_ = res.Match(descs[(i+id)%len(descs)], values[i%len(values)])
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, len(rules.Builtin(cfg))+100, reg.Count())
	assert.True(t, res.Match(descs[1], &userType{}))
}

// Compile-time check: builder.New() must satisfy apis.Builder.
var _ apis.Builder = builder.New()

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

package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"dirpx.dev/typed/apis"
	uref "dirpx.dev/typed/utils/reflect"
)

var (
	// ErrNilRule is returned when a nil rule is provided.
	ErrNilRule = errors.New("typed(registry): nil rule provided")
)

// Extensible is implemented by registries that can tell rules added at
// runtime apart from the ones they were seeded with.
type Extensible interface {
	apis.Registry
	// Custom returns the rules added after construction, in order.
	Custom() []apis.Rule
}

// New constructs a Registry whose first rules are seed, in order. Seed rules
// are reported as built-in; everything added later is custom.
func New(cfg apis.Config, seed ...apis.Rule) Extensible {
	r := &registry{log: cfg.Log().Named("registry")}
	initial := make([]apis.Rule, 0, len(seed))
	for _, s := range seed {
		if s != nil && !uref.IsNil(s) {
			initial = append(initial, s)
		}
	}
	initial = slices.Clip(initial)
	r.builtin = len(initial)
	r.rules.Store(&initial)
	return r
}

// registry is an append-only rule list. Readers load an immutable snapshot
// without locking; writers copy the list under mu and publish it atomically.
type registry struct {
	// log receives debug events.
	log *zap.Logger
	// mu serializes writers.
	mu sync.Mutex
	// rules holds the current snapshot. Published slices are never mutated.
	rules atomic.Pointer[[]apis.Rule]
	// builtin is the number of seed rules at the front of the list.
	builtin int
}

// Add appends rule at the end of the list.
func (r *registry) Add(rule apis.Rule) error {
	if rule == nil || uref.IsNil(rule) {
		return ErrNilRule
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Clip forces append to allocate, so older snapshots stay untouched.
	next := append(slices.Clip(*r.rules.Load()), rule)
	r.rules.Store(&next)

	r.log.Debug("rule appended",
		zap.Int("position", len(next)-1),
		zap.String("rule", fmt.Sprintf("%T", rule)),
	)
	return nil
}

// Rules returns the current snapshot in evaluation order. The slice is shared
// and must not be modified.
func (r *registry) Rules() []apis.Rule {
	return *r.rules.Load()
}

// Count returns the number of rules.
func (r *registry) Count() int {
	return len(*r.rules.Load())
}

// Custom returns the rules added after construction.
func (r *registry) Custom() []apis.Rule {
	return slices.Clone(r.Rules()[r.builtin:])
}

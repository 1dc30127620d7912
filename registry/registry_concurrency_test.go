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

package registry_test

import (
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/typed/apis"
	"dirpx.dev/typed/config"
	"dirpx.dev/typed/registry"
	"dirpx.dev/typed/rules"
)

// TestConcurrentAddAndRead verifies that Add/Rules/Count are race-free and
// that readers only ever observe complete, ordered snapshots.
func TestConcurrentAddAndRead(t *testing.T) {
	cfg := config.DefaultConfig()
	builtin := rules.Builtin(cfg)
	reg := registry.New(cfg, builtin...)

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4
	const perWriter = 200

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				snap := reg.Rules()
				if len(snap) < len(builtin) {
					t.Errorf("snapshot lost built-in rules: %d", len(snap))
					return
				}
				for j := range builtin {
					if snap[j] != builtin[j] {
						t.Errorf("built-in rule %d moved", j)
						return
					}
				}
				_ = reg.Count()
			}
		}()
	}

	// Writers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				if err := reg.Add(&tagRule{"x"}); err != nil {
					t.Errorf("add: %v", err)
					return
				}
			}
		}()
	}

	wg.Wait()

	if got, want := reg.Count(), len(builtin)+workers*perWriter; got != want {
		t.Fatalf("count mismatch: got %d want %d", got, want)
	}
	if got, want := len(reg.Custom()), workers*perWriter; got != want {
		t.Fatalf("custom mismatch: got %d want %d", got, want)
	}
}

// This ensures the interface is satisfied; not a test but a compile-time check.
var _ apis.Registry = registry.New(config.DefaultConfig())

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

package builder

import (
	"dirpx.dev/typed/apis"
	"dirpx.dev/typed/registry"
	"dirpx.dev/typed/resolver"
	"dirpx.dev/typed/rules"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds a registry seeded with the built-in rules for cfg.
// If a previous registry is provided, its custom rules are appended in their
// original order. If ext is a []apis.Rule, those rules are appended last.
func (b *builder) BuildRegistry(cfg apis.Config, preg apis.Registry, ext any) apis.Registry {
	nreg := registry.New(cfg, rules.Builtin(cfg)...)
	if preg != nil {
		for _, r := range customRules(preg) {
			_ = nreg.Add(r)
		}
	}
	if extra, ok := ext.([]apis.Rule); ok {
		for _, r := range extra {
			_ = nreg.Add(r)
		}
	}
	return nreg
}

// BuildResolver builds and returns a new apis.Resolver over reg. The previous
// resolver holds no state worth keeping.
func (b *builder) BuildResolver(_ apis.Config, reg apis.Registry, _ apis.Resolver, _ any) apis.Resolver {
	return resolver.New(reg)
}

// customRules returns the runtime-added rules of reg. Registries that cannot
// tell them apart have every rule migrated; re-added built-ins are harmless
// because the fresh built-ins in front of them always win.
func customRules(reg apis.Registry) []apis.Rule {
	if ext, ok := reg.(registry.Extensible); ok {
		return ext.Custom()
	}
	return reg.Rules()
}

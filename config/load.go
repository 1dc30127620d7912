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
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dirpx.dev/typed/apis"
)

// document is the on-disk layout: knobs live under a top-level "typed" key so
// the file can be shared with other settings.
type document struct {
	Typed apis.Config `yaml:"typed"`
}

// Load reads a YAML configuration file.
// If the file doesn't exist, it returns the default configuration.
func Load(path string, opts ...Option) (apis.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewConfig(opts...), nil
	}
	if err != nil {
		return apis.Config{}, fmt.Errorf("typed(config): read %s: %w", path, err)
	}
	return Parse(data, opts...)
}

// Parse decodes a YAML document. Keys that are absent keep their defaults,
// and opts are applied after the document.
func Parse(data []byte, opts ...Option) (apis.Config, error) {
	doc := document{Typed: DefaultConfig()}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return apis.Config{}, fmt.Errorf("typed(config): parse: %w", err)
	}
	return NewConfig(append([]Option{WithConfig(doc.Typed)}, opts...)...), nil
}

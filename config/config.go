// Copyright 2026 The Axiolotl Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config defines the on-disk configuration format. The format is
// strict JSON: unknown fields are errors, to catch typos in hand-edited
// files early rather than silently running with defaults.
package config

// Axiolotl is the root of the configuration.
type Axiolotl struct {
	// Input names the statement file to load. The CLI's positional
	// argument overrides it.
	Input string `json:"input,omitempty"`

	// Output names the file to write derived statements to. Empty means
	// print to stdout.
	Output string `json:"output,omitempty"`

	// Rules lists the production rules to run, by name. Empty or absent
	// means the full catalogue. Unknown names are ignored.
	Rules []string `json:"rules,omitempty"`

	// ChunkSize caps statements per result chunk in the built-in
	// evaluator. Zero picks the evaluator's default.
	ChunkSize int `json:"chunkSize,omitempty"`

	Logging *Logging `json:"logging,omitempty"`
}

// Logging configures log output for the binaries.
type Logging struct {
	// Level is a logrus level name such as "debug" or "warning".
	// Empty means info.
	Level string `json:"level,omitempty"`
}

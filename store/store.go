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

// Package store defines go interfaces for the persisted statement store,
// this decouples the inference engine from the actual storage implementation,
// allowing for easier testing. The engine loads the statement set once at
// the start of a run and optionally persists its output afterwards; it never
// reads or writes the store mid-run.
package store

import (
	"context"

	"github.com/jonathanvajda/axiolotl/rdf"
)

// Loader exposes a one-shot read of the entire statement set.
type Loader interface {
	LoadAll(ctx context.Context) ([]rdf.Statement, error)
}

// Writer persists statements. Statements already present (by key) are
// overwritten, not duplicated.
type Writer interface {
	WriteAll(ctx context.Context, stmts []rdf.Statement) error
}

// Store contains the collection of capabilities a fully functional
// statement store provides.
type Store interface {
	Loader
	Writer
}

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

// Package memstore provides an in-memory statement store keyed by the
// canonical statement key. It is the storage implementation used by the
// tests and the CLI, and the reference for what any durable store must do.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/jonathanvajda/axiolotl/rdf"
)

// A Store is an in-memory set of statements deduplicated by statement key.
// It is safe for concurrent use, though the inference engine itself only
// touches it from a single goroutine.
type Store struct {
	lock  sync.RWMutex
	stmts map[string]rdf.Statement
}

// New returns a new empty Store.
func New() *Store {
	return &Store{stmts: make(map[string]rdf.Statement)}
}

// NewWithStatements returns a Store seeded with the given statements. The
// caller is free to modify 'stmts' after this returns.
func NewWithStatements(stmts []rdf.Statement) *Store {
	s := New()
	s.Add(stmts...)
	return s
}

// Add inserts statements, last write wins for statements that share a key.
func (s *Store) Add(stmts ...rdf.Statement) {
	s.lock.Lock()
	defer s.lock.Unlock()
	for _, st := range stmts {
		s.stmts[st.Key()] = st
	}
}

// Size returns the number of distinct statements in the store.
func (s *Store) Size() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.stmts)
}

// LoadAll implements store.Loader. The returned statements are sorted by key
// so that runs over the same store contents are deterministic.
func (s *Store) LoadAll(ctx context.Context) ([]rdf.Statement, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	keys := make([]string, 0, len(s.stmts))
	for k := range s.stmts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	res := make([]rdf.Statement, 0, len(keys))
	for _, k := range keys {
		res = append(res, s.stmts[k])
	}
	return res, nil
}

// WriteAll implements store.Writer.
func (s *Store) WriteAll(ctx context.Context, stmts []rdf.Statement) error {
	s.Add(stmts...)
	return nil
}

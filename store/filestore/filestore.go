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

// Package filestore persists statements to a single file in the parser's
// line syntax. It is a small durable store for the CLI; it makes no attempt
// at indexing or incremental writes.
package filestore

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/jonathanvajda/axiolotl/parser"
	"github.com/jonathanvajda/axiolotl/rdf"
)

// A Store reads and writes the statement file at Path.
type Store struct {
	path string
}

// New returns a Store backed by the file at path. The file doesn't need to
// exist yet; LoadAll on a missing file returns an empty set.
func New(path string) *Store {
	return &Store{path: path}
}

// LoadAll implements store.Loader. It returns an error, which already
// includes the filename, if the file exists but can't be read or parsed.
func (s *Store) LoadAll(ctx context.Context) ([]rdf.Statement, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	stmts, err := parser.ParseDocument(string(data))
	if err != nil {
		return nil, fmt.Errorf("error parsing %v: %v", s.path, err)
	}
	return stmts, nil
}

// WriteAll implements store.Writer. It merges the given statements with the
// file's current contents and rewrites the whole file, sorted by statement
// key, deduplicated. It returns an error, which already includes the
// filename, on any failure.
func (s *Store) WriteAll(ctx context.Context, stmts []rdf.Statement) error {
	existing, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}
	merged := make(map[string]rdf.Statement, len(existing)+len(stmts))
	for _, st := range existing {
		merged[st.Key()] = st
	}
	for _, st := range stmts {
		merged[st.Key()] = st
	}
	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	writer := bufio.NewWriter(f)
	for _, k := range keys {
		if _, err := writer.WriteString(parser.Format(merged[k]) + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("failed to write %v: %v", s.path, err)
		}
	}
	if err := writer.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %v: %v", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %v: %v", s.path, err)
	}
	return nil
}

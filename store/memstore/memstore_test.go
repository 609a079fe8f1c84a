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

package memstore

import (
	"context"
	"testing"

	"github.com/jonathanvajda/axiolotl/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stmt(s, p, o string) rdf.Statement {
	return rdf.Statement{
		Subject:   rdf.AIRI("http://example.com/" + s),
		Predicate: "http://example.com/" + p,
		Object:    rdf.AIRI("http://example.com/" + o),
	}
}

func Test_AddDedupes(t *testing.T) {
	s := New()
	s.Add(stmt("a", "p", "b"), stmt("a", "p", "b"))
	assert.Equal(t, 1, s.Size())

	inGraph := stmt("a", "p", "b")
	inGraph.Graph = "http://example.com/g"
	s.Add(inGraph)
	assert.Equal(t, 1, s.Size(), "graph is not part of the statement identity")
}

func Test_LoadAllSorted(t *testing.T) {
	s := NewWithStatements([]rdf.Statement{
		stmt("c", "p", "d"), stmt("a", "p", "b"), stmt("b", "p", "c"),
	})
	first, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	second, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, len(first))
	assert.Equal(t, first, second, "LoadAll should be deterministic")
}

func Test_WriteAll(t *testing.T) {
	s := New()
	require.NoError(t, s.WriteAll(context.Background(), []rdf.Statement{
		stmt("a", "p", "b"), stmt("b", "p", "c"),
	}))
	require.NoError(t, s.WriteAll(context.Background(), []rdf.Statement{
		stmt("a", "p", "b"),
	}))
	assert.Equal(t, 2, s.Size())
}

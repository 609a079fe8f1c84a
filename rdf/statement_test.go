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

package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StatementKey(t *testing.T) {
	base := Statement{
		Subject:   AIRI("http://example.com/alice"),
		Predicate: "http://example.com/knows",
		Object:    AIRI("http://example.com/bob"),
	}
	inGraph := base
	inGraph.Graph = "http://example.com/g1"
	assert.Equal(t, base.Key(), inGraph.Key(),
		"graph must be excluded from the dedup key")

	other := base
	other.Object = AString("bob", "")
	assert.NotEqual(t, base.Key(), other.Key())

	// A literal whose lexical form looks like an IRI must not collide with
	// the IRI object.
	tricky := base
	tricky.Object = AString("http://example.com/bob", "")
	assert.NotEqual(t, base.Key(), tricky.Key())
}

func Test_StatementKeyDeterministic(t *testing.T) {
	mk := func() Statement {
		return Statement{
			Subject:   ABlank("n3"),
			Predicate: "http://example.com/age",
			Object:    ALiteral("39", NSXSD+"integer"),
		}
	}
	assert.Equal(t, mk().Key(), mk().Key())
}

func Test_KeySet(t *testing.T) {
	a := Statement{Subject: AIRI("e:a"), Predicate: "e:p", Object: AIRI("e:b")}
	b := Statement{Subject: AIRI("e:b"), Predicate: "e:p", Object: AIRI("e:a")}
	ks := KeysOf([]Statement{a, a})
	assert.Equal(t, 1, len(ks))
	assert.True(t, ks.Has(a.Key()))
	assert.False(t, ks.Has(b.Key()))
	ks.Add(b.Key())
	assert.True(t, ks.Has(b.Key()))
}

func Test_StatementString(t *testing.T) {
	s := Statement{
		Subject:   AIRI("http://example.com/a"),
		Predicate: "http://example.com/p",
		Object:    AString("v", "en"),
	}
	assert.Equal(t, `{s:<http://example.com/a> p:<http://example.com/p> o:"v"@en}`, s.String())
	s.Graph = "http://example.com/g"
	assert.Equal(t, `{s:<http://example.com/a> p:<http://example.com/p> o:"v"@en g:<http://example.com/g>}`, s.String())
}

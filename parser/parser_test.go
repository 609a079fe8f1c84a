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

package parser

import (
	"testing"

	"github.com/jonathanvajda/axiolotl/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseStatement(t *testing.T) {
	tests := []struct {
		in  string
		exp rdf.Statement
	}{
		{
			in: "<http://example.com/alice> <http://example.com/knows> <http://example.com/bob> .",
			exp: rdf.Statement{
				Subject:   rdf.AIRI("http://example.com/alice"),
				Predicate: "http://example.com/knows",
				Object:    rdf.AIRI("http://example.com/bob"),
			},
		},
		{
			in: "ex:alice rdf:type ex:Person",
			exp: rdf.Statement{
				Subject:   rdf.AIRI("http://example.com/alice"),
				Predicate: rdf.Type,
				Object:    rdf.AIRI("http://example.com/Person"),
			},
		},
		{
			in: `_:b1 rdfs:label "anonymous"@en`,
			exp: rdf.Statement{
				Subject:   rdf.ABlank("b1"),
				Predicate: rdf.NSRDFS + "label",
				Object:    rdf.AString("anonymous", "en"),
			},
		},
		{
			in: `ex:alice ex:age "39"^^xsd:integer`,
			exp: rdf.Statement{
				Subject:   rdf.AIRI("http://example.com/alice"),
				Predicate: "http://example.com/age",
				Object:    rdf.ALiteral("39", rdf.NSXSD+"integer"),
			},
		},
		{
			in: `ex:alice ex:nick "ali"`,
			exp: rdf.Statement{
				Subject:   rdf.AIRI("http://example.com/alice"),
				Predicate: "http://example.com/nick",
				Object:    rdf.AString("ali", ""),
			},
		},
		{
			in: "ex:alice ex:knows ex:bob ex:graph1 .",
			exp: rdf.Statement{
				Subject:   rdf.AIRI("http://example.com/alice"),
				Predicate: "http://example.com/knows",
				Object:    rdf.AIRI("http://example.com/bob"),
				Graph:     "http://example.com/graph1",
			},
		},
		{
			in: "  ex:a \t ex:p  ex:b  ", // forgiving about whitespace
			exp: rdf.Statement{
				Subject:   rdf.AIRI("http://example.com/a"),
				Predicate: "http://example.com/p",
				Object:    rdf.AIRI("http://example.com/b"),
			},
		},
	}
	for _, test := range tests {
		got, err := ParseStatement(test.in)
		if assert.NoError(t, err, "input: %s", test.in) {
			assert.Equal(t, test.exp, got, "input: %s", test.in)
		}
	}
}

func Test_ParseStatementErrors(t *testing.T) {
	bad := []string{
		"",
		"ex:a ex:p",                  // too few terms
		`"lit" ex:p ex:b`,            // literal subject
		"ex:a _:b1 ex:b",             // blank node predicate
		`ex:a "p" ex:b`,              // literal predicate
		"nope:a ex:p ex:b",           // unknown prefix
		`ex:a ex:p "x"^^nope:int`,    // unknown prefix in datatype
		"<http://a> <http://p>",      // missing object
		"ex:a ex:p ex:b ex:g junk .", // trailing garbage
	}
	for _, in := range bad {
		_, err := ParseStatement(in)
		assert.Error(t, err, "input: %s", in)
	}
}

func Test_ParseDocument(t *testing.T) {
	doc := `
# people
ex:alice rdf:type ex:Person .
ex:bob rdf:type ex:Person

ex:alice ex:knows ex:bob .
`
	stmts, err := ParseDocument(doc)
	require.NoError(t, err)
	require.Equal(t, 3, len(stmts))
	assert.Equal(t, rdf.Type, stmts[0].Predicate)
	assert.Equal(t, "http://example.com/knows", stmts[2].Predicate)
}

func Test_ParseDocumentError(t *testing.T) {
	_, err := ParseDocument("ex:a ex:p ex:b\nbroken line here\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func Test_FormatRoundTrip(t *testing.T) {
	stmts := []rdf.Statement{
		{
			Subject:   rdf.AIRI("http://example.com/alice"),
			Predicate: rdf.Type,
			Object:    rdf.AIRI("http://example.com/Person"),
		},
		{
			Subject:   rdf.ABlank("b7"),
			Predicate: "http://example.com/label",
			Object:    rdf.AString("hello world", "en"),
		},
		{
			Subject:   rdf.AIRI("http://example.com/alice"),
			Predicate: "http://example.com/age",
			Object:    rdf.ALiteral("39", rdf.NSXSD+"integer"),
			Graph:     "http://example.com/g1",
		},
	}
	parsed, err := ParseDocument(FormatDocument(stmts))
	require.NoError(t, err)
	assert.Equal(t, stmts, parsed)
}

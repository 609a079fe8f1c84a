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

func Test_TermKinds(t *testing.T) {
	var nilTerm Term
	assert.Equal(t, KtNil, nilTerm.Kind())
	assert.False(t, nilTerm.IsIRI())
	assert.False(t, nilTerm.IsLiteral())

	iri := AIRI("http://example.com/alice")
	assert.Equal(t, KtIRI, iri.Kind())
	assert.True(t, iri.IsIRI())
	assert.Equal(t, "http://example.com/alice", iri.ValIRI())
	assert.Equal(t, "", iri.ValString())

	blank := ABlank("b42")
	assert.Equal(t, KtBlank, blank.Kind())
	assert.True(t, blank.IsBlank())
	assert.Equal(t, "b42", blank.ValBlank())

	str := AString("hello", "en")
	assert.Equal(t, KtString, str.Kind())
	assert.True(t, str.IsLiteral())
	assert.Equal(t, "hello", str.ValString())
	assert.Equal(t, "en", str.Lang())
	assert.Equal(t, "", str.Datatype())

	lit := ALiteral("42", NSXSD+"integer")
	assert.Equal(t, KtLiteral, lit.Kind())
	assert.True(t, lit.IsLiteral())
	assert.Equal(t, "42", lit.ValString())
	assert.Equal(t, NSXSD+"integer", lit.Datatype())
	assert.Equal(t, "", lit.Lang())
}

func Test_TermEquality(t *testing.T) {
	assert.Equal(t, AIRI("http://example.com/a"), AIRI("http://example.com/a"))
	assert.NotEqual(t, AIRI("http://example.com/a"), ABlank("http://example.com/a"))
	assert.NotEqual(t, AString("a", ""), AString("a", "en"))
	assert.NotEqual(t, AString("a", ""), ALiteral("a", XSDString))
	// Terms are comparable, so usable as map keys.
	m := map[Term]int{AString("x", "en"): 1}
	assert.Equal(t, 1, m[AString("x", "en")])
}

func Test_TermString(t *testing.T) {
	assert.Equal(t, "<http://example.com/a>", AIRI("http://example.com/a").String())
	assert.Equal(t, "_:n1", ABlank("n1").String())
	assert.Equal(t, `"hi"`, AString("hi", "").String())
	assert.Equal(t, `"hi"@en`, AString("hi", "en").String())
	assert.Equal(t,
		`"5"^^<http://www.w3.org/2001/XMLSchema#integer>`,
		ALiteral("5", NSXSD+"integer").String())
	var nilTerm Term
	assert.Equal(t, "(nil)", nilTerm.String())
}

func Test_IsAbsoluteIRI(t *testing.T) {
	valid := []string{
		"http://example.com/a",
		"https://example.com/a#frag",
		"urn:uuid:1234",
		"tag:x",
		Type, SubClassOf, SymmetricProperty,
	}
	for _, s := range valid {
		assert.True(t, IsAbsoluteIRI(s), "expected valid: %q", s)
	}
	invalid := []string{
		"",
		"noscheme",
		":missing",
		"1http://example.com", // scheme must start with a letter
		"http://exa mple.com",
		"http://example.com/<x>",
		"rel/path",
		"http:",
	}
	for _, s := range invalid {
		assert.False(t, IsAbsoluteIRI(s), "expected invalid: %q", s)
	}
}

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

// Package rdf defines the core statement model that the rest of the
// repository operates on: terms (IRIs, blank nodes, literals), statements
// (subject, predicate, object, optional graph) and the canonical keys used
// to deduplicate them.
package rdf

import (
	"fmt"
	"strings"
)

// TermKind describes which kind of value a Term holds.
type TermKind byte

// The possible TermKind values. The zero Term has kind KtNil.
const (
	KtNil TermKind = iota
	KtIRI
	KtBlank
	KtString
	KtLiteral
)

// A Term is a single node in a statement: an IRI, a blank node reference, a
// plain string literal with an optional language tag, or a literal with an
// explicit datatype IRI. The value is stored in a single encoded string so
// that Terms are directly comparable and usable as map keys.
//
// The encoding is a kind byte followed by the kind-specific payload. For
// KtString the payload is lang + 0x00 + text, for KtLiteral it is
// datatypeIRI + 0x00 + lexical form. IRIs and blank node labels never
// contain a 0x00 byte, so the split points are unambiguous.
type Term struct {
	value string
}

// AIRI returns a Term holding the supplied IRI.
func AIRI(iri string) Term {
	return Term{value: string(rune(KtIRI)) + iri}
}

// ABlank returns a Term referencing the anonymous node with the given label
// (the label excludes any "_:" prefix).
func ABlank(label string) Term {
	return Term{value: string(rune(KtBlank)) + label}
}

// AString returns a Term holding a plain string literal with an optional
// language tag ("" for none).
func AString(s, lang string) Term {
	return Term{value: string(rune(KtString)) + lang + "\x00" + s}
}

// ALiteral returns a Term holding a literal with an explicit datatype IRI.
func ALiteral(lexical, datatype string) Term {
	return Term{value: string(rune(KtLiteral)) + datatype + "\x00" + lexical}
}

// Kind returns which kind of value this Term holds.
func (t Term) Kind() TermKind {
	if t.value == "" {
		return KtNil
	}
	return TermKind(t.value[0])
}

// IsIRI returns true if the Term holds an IRI.
func (t Term) IsIRI() bool { return t.Kind() == KtIRI }

// IsBlank returns true if the Term references a blank node.
func (t Term) IsBlank() bool { return t.Kind() == KtBlank }

// IsLiteral returns true if the Term holds any literal value (plain string
// or datatyped).
func (t Term) IsLiteral() bool {
	k := t.Kind()
	return k == KtString || k == KtLiteral
}

// ValIRI returns the IRI held by this Term, or "" if it isn't an IRI.
func (t Term) ValIRI() string {
	if t.Kind() != KtIRI {
		return ""
	}
	return t.value[1:]
}

// ValBlank returns the blank node label, or "" if this isn't a blank node.
func (t Term) ValBlank() string {
	if t.Kind() != KtBlank {
		return ""
	}
	return t.value[1:]
}

// ValString returns the lexical form of the literal held by this Term, or ""
// if it isn't a literal.
func (t Term) ValString() string {
	k := t.Kind()
	if k != KtString && k != KtLiteral {
		return ""
	}
	return t.value[strings.IndexByte(t.value, 0)+1:]
}

// Lang returns the language tag of a plain string literal, or "".
func (t Term) Lang() string {
	if t.Kind() != KtString {
		return ""
	}
	return t.value[1:strings.IndexByte(t.value, 0)]
}

// Datatype returns the datatype IRI of a datatyped literal, or "".
func (t Term) Datatype() string {
	if t.Kind() != KtLiteral {
		return ""
	}
	return t.value[1:strings.IndexByte(t.value, 0)]
}

// Encoded returns the raw encoded value, it is only useful for building
// compound keys, see Statement.Key.
func (t Term) Encoded() string {
	return t.value
}

func (t Term) String() string {
	switch t.Kind() {
	case KtNil:
		return "(nil)"
	case KtIRI:
		return "<" + t.ValIRI() + ">"
	case KtBlank:
		return "_:" + t.ValBlank()
	case KtString:
		if lang := t.Lang(); lang != "" {
			return fmt.Sprintf("%q@%s", t.ValString(), lang)
		}
		return fmt.Sprintf("%q", t.ValString())
	case KtLiteral:
		return fmt.Sprintf("%q^^<%s>", t.ValString(), t.Datatype())
	}
	return fmt.Sprintf("(invalid:%x)", t.value)
}

// IsAbsoluteIRI reports whether s is a well formed absolute identifier, i.e.
// it starts with a scheme ("xxx:") and contains none of the characters that
// can't appear in an IRI. It deliberately stops well short of full RFC 3987
// validation, the caller only needs to reject the obviously broken values
// that show up in malformed hierarchy data.
func IsAbsoluteIRI(s string) bool {
	colon := strings.IndexByte(s, ':')
	if colon < 1 {
		return false
	}
	for i := 0; i < colon; i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	if colon == len(s)-1 {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool {
		return r <= ' ' || r == '<' || r == '>' || r == '"' || r == '{' || r == '}' || r == '|' || r == '\\' || r == '^' || r == '`'
	}) == -1
}

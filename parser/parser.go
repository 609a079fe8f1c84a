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

// Package parser parses the line-oriented statement syntax used by the CLI,
// the file store and the test fixtures. One statement per line:
//
//	<http://example.com/alice> <http://example.com/knows> <http://example.com/bob> .
//	<http://example.com/alice> rdf:type ex:Person
//	_:b1 rdfs:label "anonymous"@en
//	ex:alice ex:age "39"^^xsd:integer ex:graph1 .
//
// Subjects are IRIs (angle-bracketed or qname) or blank nodes, predicates
// are IRIs, objects can additionally be literals with an optional language
// tag or datatype, and an optional fourth IRI names the graph. The trailing
// dot is optional. This is the repository's own interchange format; parsing
// external RDF syntaxes is deliberately out of scope.
package parser

import (
	"fmt"
	"strings"

	"github.com/jonathanvajda/axiolotl/rdf"
	p "github.com/vektah/goparsify"
)

// wellKnownPrefixes is the qname prefix table. The syntax has no prefix
// declarations; only these are recognized.
var wellKnownPrefixes = map[string]string{
	"rdf":  rdf.NSRDF,
	"rdfs": rdf.NSRDFS,
	"owl":  rdf.NSOWL,
	"xsd":  rdf.NSXSD,
	"ex":   "http://example.com/",
}

// statementLine is the parser function called by ParseStatement. It extracts
// one whole statement.
var statementLine p.Parser

func init() {
	// If you need to debug what the parser is doing, you can enable
	// goparsify's built in debug support by building with -tags debug. See
	// https://github.com/vektah/goparsify#debugging-parsers
	iriChars := p.Chars(`A-Za-z0-9:/#?&=%._~+()'*,;@!\-`, 1)
	localChars := p.Chars(`A-Za-z0-9%()_\-`, 1)
	prefixID := p.Chars("A-Za-z", 1)
	blankID := p.Chars(`A-Za-z0-9_\-`, 1)
	langID := p.Chars(`a-zA-Z\-`, 1)
	// character sequence separating statement terms
	termSep := p.Chars(" \t", 1)
	optWS := p.Maybe(termSep)

	iri := p.Seq("<", p.Cut(), iriChars, ">").Map(func(n *p.Result) { // <http://...>
		n.Result = rdf.AIRI(n.Child[2].Token)
	})
	qname := p.Seq(prefixID, ":", localChars).Map(mapQName) // rdfs:label
	blank := p.Seq("_:", p.Cut(), blankID).Map(func(n *p.Result) { // _:b1
		n.Result = rdf.ABlank(n.Child[2].Token)
	})

	lang := p.Seq("@", langID).Map(func(n *p.Result) { // @en
		n.Result = langTag(n.Child[1].Token)
	})
	datatype := p.Seq("^^", p.Any(iri, qname)).Map(mapDatatype) // ^^xsd:integer
	literal := p.Seq(p.StringLit(`"`), p.Maybe(p.Any(lang, datatype))).Map(mapLiteral)

	subject := p.Any(iri, blank, qname)
	predicate := p.Any(iri, qname)
	object := p.Any(iri, blank, literal, qname)
	graph := p.Seq(termSep, p.Any(iri, qname)).Map(func(n *p.Result) {
		n.Result = n.Child[1].Result
	})

	// terms are separated by explicit whitespace, so the whole line parser
	// manages whitespace manually.
	statementLine = p.NoAutoWS(p.Seq(
		optWS, subject, termSep, predicate, termSep, object,
		p.Maybe(graph), p.Maybe(p.Seq(optWS, ".")), optWS,
	)).Map(mapStatement)
}

// ParseStatement parses a single statement line.
func ParseStatement(line string) (rdf.Statement, error) {
	res, err := p.Run(statementLine, line, p.ASCIIWhitespace)
	if err != nil {
		return rdf.Statement{}, fmt.Errorf("parser: %v", err)
	}
	switch v := res.(type) {
	case rdf.Statement:
		return v, nil
	case error:
		return rdf.Statement{}, v
	}
	return rdf.Statement{}, fmt.Errorf("parser: unexpected parse result %T", res)
}

// ParseDocument parses a multi-line document with one statement per line.
// Blank lines and lines starting with # are skipped. The returned error
// includes the 1-based line number of the first broken line.
func ParseDocument(input string) ([]rdf.Statement, error) {
	var stmts []rdf.Statement
	for i, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		stmt, err := ParseStatement(trimmed)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", i+1, err)
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// Format renders a statement in the syntax ParseStatement accepts.
func Format(stmt rdf.Statement) string {
	var str strings.Builder
	str.WriteString(stmt.Subject.String())
	str.WriteString(" <")
	str.WriteString(stmt.Predicate)
	str.WriteString("> ")
	str.WriteString(stmt.Object.String())
	if stmt.Graph != "" {
		str.WriteString(" <")
		str.WriteString(stmt.Graph)
		str.WriteString(">")
	}
	str.WriteString(" .")
	return str.String()
}

// FormatDocument renders statements one per line, in the order given.
func FormatDocument(stmts []rdf.Statement) string {
	var str strings.Builder
	for _, stmt := range stmts {
		str.WriteString(Format(stmt))
		str.WriteByte('\n')
	}
	return str.String()
}

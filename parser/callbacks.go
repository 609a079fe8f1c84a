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
	"fmt"

	"github.com/jonathanvajda/axiolotl/rdf"
	p "github.com/vektah/goparsify"
)

// The Map callbacks below set n.Result to either an rdf.Term, an
// intermediate marker type, or an error. goparsify callbacks can't fail, so
// errors ride along as results and mapStatement surfaces the first one.

// langTag marks a parsed @lang annotation.
type langTag string

// datatypeIRI marks a parsed ^^type annotation.
type datatypeIRI string

func mapQName(n *p.Result) {
	prefix := n.Child[0].Token
	ns, known := wellKnownPrefixes[prefix]
	if !known {
		n.Result = fmt.Errorf("parser: unknown qname prefix %q", prefix)
		return
	}
	n.Result = rdf.AIRI(ns + n.Child[2].Token)
}

func mapDatatype(n *p.Result) {
	switch v := n.Child[1].Result.(type) {
	case rdf.Term:
		n.Result = datatypeIRI(v.ValIRI())
	default:
		// unknown qname prefix in the datatype position
		n.Result = v
	}
}

func mapLiteral(n *p.Result) {
	text := n.Child[0].Token
	switch annot := n.Child[1].Result.(type) {
	case nil:
		n.Result = rdf.AString(text, "")
	case langTag:
		n.Result = rdf.AString(text, string(annot))
	case datatypeIRI:
		n.Result = rdf.ALiteral(text, string(annot))
	default:
		// an error from a nested parser
		n.Result = annot
	}
}

func mapStatement(n *p.Result) {
	// children: 0 ws, 1 subject, 2 sep, 3 predicate, 4 sep, 5 object,
	// 6 optional graph, 7 optional dot, 8 ws
	terms := make([]rdf.Term, 3)
	for i, child := range []int{1, 3, 5} {
		switch v := n.Child[child].Result.(type) {
		case rdf.Term:
			terms[i] = v
		default:
			n.Result = v
			return
		}
	}
	subject, predTerm, object := terms[0], terms[1], terms[2]
	if subject.IsLiteral() {
		n.Result = fmt.Errorf("parser: subject can't be a literal")
		return
	}
	if !predTerm.IsIRI() {
		n.Result = fmt.Errorf("parser: predicate must be an IRI")
		return
	}
	stmt := rdf.Statement{
		Subject:   subject,
		Predicate: predTerm.ValIRI(),
		Object:    object,
	}
	switch g := n.Child[6].Result.(type) {
	case nil:
	case rdf.Term:
		stmt.Graph = g.ValIRI()
	default:
		n.Result = g
		return
	}
	n.Result = stmt
}

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

package infer

import "github.com/jonathanvajda/axiolotl/rdf"

// warnFunc is called for every malformed identifier dropped during
// expansion. Dropping is advisory: the run continues, the drop is counted
// and logged, never turned into an error.
type warnFunc func(reason, value string)

// The expander functions below are pure: batch plus frozen indices in,
// candidate statements out. They emit duplicates freely; filtering for
// global novelty happens on enqueue, nowhere else.

// expandTypesWithClosure lifts each type assertion in the batch through the
// frozen class closure: for (x, type, C) and every superclass S of C it
// emits (x, type, S). Superclass names that aren't well formed absolute
// identifiers are dropped with a warning.
func expandTypesWithClosure(batch []rdf.Statement, hier *Hierarchy, warn warnFunc) []rdf.Statement {
	var out []rdf.Statement
	for _, stmt := range batch {
		class := stmt.Object.ValIRI()
		if class == "" {
			continue
		}
		for super := range hier.ClassSupers(class) {
			if !rdf.IsAbsoluteIRI(super) {
				warn("malformed superclass", super)
				continue
			}
			out = append(out, rdf.Statement{
				Subject:   stmt.Subject,
				Predicate: rdf.Type,
				Object:    rdf.AIRI(super),
			})
		}
	}
	return out
}

// expandPropsWithClosure lifts each property assertion in the batch through
// the frozen property closure: for (x, p, y) and every superproperty P' of
// p it emits (x, P', y).
func expandPropsWithClosure(batch []rdf.Statement, hier *Hierarchy, warn warnFunc) []rdf.Statement {
	var out []rdf.Statement
	for _, stmt := range batch {
		for super := range hier.PropSupers(stmt.Predicate) {
			if !rdf.IsAbsoluteIRI(super) {
				warn("malformed superproperty", super)
				continue
			}
			out = append(out, rdf.Statement{
				Subject:   stmt.Subject,
				Predicate: super,
				Object:    stmt.Object,
			})
		}
	}
	return out
}

// applyInverseAndSymmetric flips each (x, p, y) in the batch to (y, p, x)
// when p is symmetric, and to (y, inv, x) for every declared inverse of p.
// Flips whose new subject would be a literal are dropped with a warning;
// literals can't be subjects.
func applyInverseAndSymmetric(batch []rdf.Statement, schema *Schema, warn warnFunc) []rdf.Statement {
	var out []rdf.Statement
	for _, stmt := range batch {
		flippable := !stmt.Object.IsLiteral() && stmt.Object.Kind() != rdf.KtNil
		if schema.IsSymmetric(stmt.Predicate) {
			if flippable {
				out = append(out, rdf.Statement{
					Subject:   stmt.Object,
					Predicate: stmt.Predicate,
					Object:    stmt.Subject,
				})
			} else {
				warn("literal subject from symmetric flip", stmt.Object.String())
			}
		}
		for inv := range schema.InverseOf(stmt.Predicate) {
			if !flippable {
				warn("literal subject from inverse flip", stmt.Object.String())
				continue
			}
			if !rdf.IsAbsoluteIRI(inv) {
				warn("malformed inverse property", inv)
				continue
			}
			out = append(out, rdf.Statement{
				Subject:   stmt.Object,
				Predicate: inv,
				Object:    stmt.Subject,
			})
		}
	}
	return out
}

// applyDomainRange emits the type assertions implied by domain and range
// declarations: for (x, p, y), (x, type, D) for every domain D of p and
// (y, type, R) for every range R of p. Range typing only applies when y can
// be typed, i.e. isn't a literal.
func applyDomainRange(batch []rdf.Statement, schema *Schema, warn warnFunc) []rdf.Statement {
	var out []rdf.Statement
	for _, stmt := range batch {
		for class := range schema.Domain(stmt.Predicate) {
			if !rdf.IsAbsoluteIRI(class) {
				warn("malformed domain class", class)
				continue
			}
			out = append(out, rdf.Statement{
				Subject:   stmt.Subject,
				Predicate: rdf.Type,
				Object:    rdf.AIRI(class),
			})
		}
		if stmt.Object.IsLiteral() || stmt.Object.Kind() == rdf.KtNil {
			continue
		}
		for class := range schema.Range(stmt.Predicate) {
			if !rdf.IsAbsoluteIRI(class) {
				warn("malformed range class", class)
				continue
			}
			out = append(out, rdf.Statement{
				Subject:   stmt.Object,
				Predicate: rdf.Type,
				Object:    rdf.AIRI(class),
			})
		}
	}
	return out
}

// applyTransitiveProps composes each transitive (x, p, y) in the batch with
// the current full working set: (y, p, z) in the working set yields
// (x, p, z), and (w, p, x) yields (w, p, y). This is the only expander that
// reads beyond its batch; transitivity composes with existing edges, not
// only with other newly arrived ones.
func applyTransitiveProps(batch []rdf.Statement, working []rdf.Statement, schema *Schema) []rdf.Statement {
	var out []rdf.Statement
	for _, stmt := range batch {
		if !schema.IsTransitive(stmt.Predicate) {
			continue
		}
		for _, existing := range working {
			if existing.Predicate != stmt.Predicate {
				continue
			}
			if existing.Subject == stmt.Object {
				out = append(out, rdf.Statement{
					Subject:   stmt.Subject,
					Predicate: stmt.Predicate,
					Object:    existing.Object,
				})
			}
			if existing.Object == stmt.Subject {
				out = append(out, rdf.Statement{
					Subject:   existing.Subject,
					Predicate: stmt.Predicate,
					Object:    stmt.Object,
				})
			}
		}
	}
	return out
}

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

// A Schema holds the property metadata declared in one statement snapshot:
// which properties are symmetric or transitive, their domains and ranges,
// and the inverse-of pairing. Like Hierarchy it is built once per run and
// frozen; property declarations derived mid-run don't take effect until the
// next run.
type Schema struct {
	symmetric  IRISet
	transitive IRISet
	domain     map[string]IRISet
	ranges     map[string]IRISet
	inverseOf  map[string]IRISet
}

// NewSchema scans the snapshot for owl:SymmetricProperty and
// owl:TransitiveProperty type declarations and for rdfs:domain, rdfs:range
// and owl:inverseOf statements. The inverse map is symmetric by
// construction: a single (p owl:inverseOf q) statement records q as an
// inverse of p and p as an inverse of q.
func NewSchema(snapshot []rdf.Statement) *Schema {
	s := &Schema{
		symmetric:  make(IRISet),
		transitive: make(IRISet),
		domain:     make(map[string]IRISet),
		ranges:     make(map[string]IRISet),
		inverseOf:  make(map[string]IRISet),
	}
	for _, stmt := range snapshot {
		subject := stmt.Subject.ValIRI()
		object := stmt.Object.ValIRI()
		switch stmt.Predicate {
		case rdf.Type:
			if subject == "" {
				continue
			}
			switch object {
			case rdf.SymmetricProperty:
				s.symmetric.Add(subject)
			case rdf.TransitiveProperty:
				s.transitive.Add(subject)
			}
		case rdf.Domain:
			addTo(s.domain, subject, object)
		case rdf.Range:
			addTo(s.ranges, subject, object)
		case rdf.InverseOf:
			addTo(s.inverseOf, subject, object)
			addTo(s.inverseOf, object, subject)
		}
	}
	return s
}

func addTo(m map[string]IRISet, key, value string) {
	if key == "" || value == "" {
		return
	}
	if _, exists := m[key]; !exists {
		m[key] = make(IRISet)
	}
	m[key].Add(value)
}

// IsSymmetric returns true if prop was declared an owl:SymmetricProperty.
func (s *Schema) IsSymmetric(prop string) bool {
	return s.symmetric.Has(prop)
}

// IsTransitive returns true if prop was declared an owl:TransitiveProperty.
func (s *Schema) IsTransitive(prop string) bool {
	return s.transitive.Has(prop)
}

// Domain returns the declared domain classes of prop, nil if none.
func (s *Schema) Domain(prop string) IRISet {
	return s.domain[prop]
}

// Range returns the declared range classes of prop, nil if none.
func (s *Schema) Range(prop string) IRISet {
	return s.ranges[prop]
}

// InverseOf returns the declared inverses of prop, nil if none.
func (s *Schema) InverseOf(prop string) IRISet {
	return s.inverseOf[prop]
}

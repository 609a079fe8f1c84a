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

// The namespace prefixes the vocabulary below (and the parser's qname table)
// are built from.
const (
	NSRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSRDFS = "http://www.w3.org/2000/01/rdf-schema#"
	NSOWL  = "http://www.w3.org/2002/07/owl#"
	NSXSD  = "http://www.w3.org/2001/XMLSchema#"
)

const (
	// Type is the well known rdf:type predicate, it declares that the
	// subject is an instance of the class named by the object. Statements
	// with this predicate are the "type assertions" the inference engine
	// routes separately from everything else.
	Type = NSRDF + "type"

	// SubClassOf declares a direct subclass edge in the class hierarchy.
	SubClassOf = NSRDFS + "subClassOf"

	// SubPropertyOf declares a direct subproperty edge in the property
	// hierarchy.
	SubPropertyOf = NSRDFS + "subPropertyOf"

	// Domain declares that any subject of the subject property is an
	// instance of the class named by the object.
	Domain = NSRDFS + "domain"

	// Range declares that any object of the subject property is an
	// instance of the class named by the object.
	Range = NSRDFS + "range"

	// InverseOf declares two properties as each other's inverse. The
	// relation is symmetric even when only declared in one direction.
	InverseOf = NSOWL + "inverseOf"

	// SymmetricProperty is the class whose instances are symmetric
	// properties: (x p y) implies (y p x).
	SymmetricProperty = NSOWL + "SymmetricProperty"

	// TransitiveProperty is the class whose instances are transitive
	// properties: (x p y), (y p z) implies (x p z).
	TransitiveProperty = NSOWL + "TransitiveProperty"

	// XSDString is the implicit datatype of plain literals.
	XSDString = NSXSD + "string"
)

var (
	// TypeKGO is a Term instance for the rdf:type predicate IRI.
	TypeKGO = AIRI(Type)

	// SymmetricPropertyKGO is a Term instance for owl:SymmetricProperty.
	SymmetricPropertyKGO = AIRI(SymmetricProperty)

	// TransitivePropertyKGO is a Term instance for owl:TransitiveProperty.
	TransitivePropertyKGO = AIRI(TransitiveProperty)
)

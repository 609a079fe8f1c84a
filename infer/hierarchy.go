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

// An IRISet is a set of identifiers.
type IRISet map[string]struct{}

// Has returns true if iri is in the set.
func (s IRISet) Has(iri string) bool {
	_, exists := s[iri]
	return exists
}

// Add records iri in the set.
func (s IRISet) Add(iri string) {
	s[iri] = struct{}{}
}

// A Hierarchy holds the class and property hierarchies from one statement
// snapshot, expanded into full transitive closures. It is built once at the
// start of a run and never updated afterwards, even if further subclass or
// subproperty statements are derived mid-run: the hierarchy is frozen at
// run start.
type Hierarchy struct {
	// child class -> all reachable superclasses
	classSupers map[string]IRISet
	// child property -> all reachable superproperties
	propSupers map[string]IRISet
}

// NewHierarchy scans the snapshot for rdfs:subClassOf and rdfs:subPropertyOf
// statements and computes both transitive closures. Cycles in the input are
// tolerated: traversal stops at already-visited nodes, and a node that is
// reachable from itself through a cycle will appear in its own closure.
// That is the declared behavior, not a bug to correct.
func NewHierarchy(snapshot []rdf.Statement) *Hierarchy {
	classEdges := make(map[string]IRISet)
	propEdges := make(map[string]IRISet)
	for _, stmt := range snapshot {
		var edges map[string]IRISet
		switch stmt.Predicate {
		case rdf.SubClassOf:
			edges = classEdges
		case rdf.SubPropertyOf:
			edges = propEdges
		default:
			continue
		}
		child := stmt.Subject.ValIRI()
		parent := stmt.Object.ValIRI()
		if child == "" || parent == "" {
			// blank or literal endpoints don't participate in the
			// hierarchy
			continue
		}
		if _, exists := edges[child]; !exists {
			edges[child] = make(IRISet)
		}
		edges[child].Add(parent)
	}
	return &Hierarchy{
		classSupers: closeOver(classEdges),
		propSupers:  closeOver(propEdges),
	}
}

// ClassSupers returns every superclass reachable from class via one or more
// subclass edges. The result is nil for classes with no superclasses.
func (h *Hierarchy) ClassSupers(class string) IRISet {
	return h.classSupers[class]
}

// PropSupers returns every superproperty reachable from prop via one or
// more subproperty edges.
func (h *Hierarchy) PropSupers(prop string) IRISet {
	return h.propSupers[prop]
}

// closeOver computes the transitive closure of each node in the direct-edge
// adjacency map.
func closeOver(edges map[string]IRISet) map[string]IRISet {
	closures := make(map[string]IRISet, len(edges))
	for child := range edges {
		closure := make(IRISet)
		// iterative depth first walk with a per-node visited set so that
		// cycles terminate
		visited := IRISet{child: struct{}{}}
		stack := make([]string, 0, len(edges[child]))
		for parent := range edges[child] {
			stack = append(stack, parent)
		}
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			// the start node is marked visited up front but still belongs
			// in its own closure when a cycle leads back to it
			closure.Add(node)
			if node != child && visited.Has(node) {
				continue
			}
			visited.Add(node)
			for parent := range edges[node] {
				if !closure.Has(parent) {
					stack = append(stack, parent)
				}
			}
		}
		closures[child] = closure
	}
	return closures
}

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

import "fmt"

// A Statement is a single subject, predicate, object fact, optionally scoped
// to a named graph. Subjects are IRIs or blank nodes, predicates are always
// absolute IRIs, objects can additionally be literals. The Graph field is
// informational only and never participates in deduplication.
type Statement struct {
	Subject   Term
	Predicate string
	Object    Term
	Graph     string
}

// Key returns the canonical deduplication key for this statement. Two
// statements with the same key are the same fact regardless of which graph
// they were asserted in. The key is the encoded subject and predicate
// followed by the encoded object; subject and predicate encodings can't
// contain a 0x00 byte so the key is unambiguous even for literal objects.
func (s Statement) Key() string {
	return s.Subject.Encoded() + "\x00" + s.Predicate + "\x00" + s.Object.Encoded()
}

func (s Statement) String() string {
	if s.Graph != "" {
		return fmt.Sprintf("{s:%v p:<%s> o:%v g:<%s>}", s.Subject, s.Predicate, s.Object, s.Graph)
	}
	return fmt.Sprintf("{s:%v p:<%s> o:%v}", s.Subject, s.Predicate, s.Object)
}

// KeySet tracks the set of statement keys seen so far. It only ever grows.
type KeySet map[string]struct{}

// Has returns true if key was previously added.
func (ks KeySet) Has(key string) bool {
	_, exists := ks[key]
	return exists
}

// Add records the key in the set.
func (ks KeySet) Add(key string) {
	ks[key] = struct{}{}
}

// KeysOf returns the key set covering every statement in stmts.
func KeysOf(stmts []Statement) KeySet {
	ks := make(KeySet, len(stmts))
	for _, s := range stmts {
		ks.Add(s.Key())
	}
	return ks
}

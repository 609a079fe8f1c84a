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

import (
	"github.com/jonathanvajda/axiolotl/rdf"
	log "github.com/sirupsen/logrus"
)

// runContext holds all mutable state of a single materialization run.
// Nothing in here outlives the run: the hierarchy and schema are frozen
// from the input snapshot at construction time, so schema statements
// derived mid-run do not change which rules fire until the next run.
type runContext struct {
	hierarchy *Hierarchy
	schema    *Schema

	// working is the input snapshot plus everything derived so far. seen
	// indexes it (and the queues) by statement key, it is the single
	// novelty gate of the run.
	working []rdf.Statement
	seen    rdf.KeySet

	// Unprocessed novel statements, split by assertion kind. Type
	// assertions only ever feed the class closure expander, everything
	// else feeds the property expanders.
	typeQueue []rdf.Statement
	propQueue []rdf.Statement

	overlay    []rdf.Statement
	totalAdded int
	malformed  int
}

func newRunContext(snapshot []rdf.Statement) *runContext {
	return &runContext{
		hierarchy: NewHierarchy(snapshot),
		schema:    NewSchema(snapshot),
		working:   append([]rdf.Statement(nil), snapshot...),
		seen:      rdf.KeysOf(snapshot),
	}
}

// warn drops one malformed candidate, for accounting and the log.
func (rc *runContext) warn(reason, value string) {
	rc.malformed++
	metrics.malformedDropped.Inc()
	log.WithFields(log.Fields{
		"reason": reason,
		"value":  value,
	}).Warn("Dropped malformed statement candidate")
}

// seed runs the one-shot hierarchy lift over the initial snapshot. The
// lifted statements are recorded straight into the working set and overlay
// without queueing: the closures are already transitive, so feeding their
// output back through the expanders cannot produce anything new.
func (rc *runContext) seed(snapshot []rdf.Statement) {
	var typeStmts, propStmts []rdf.Statement
	for _, stmt := range snapshot {
		if stmt.Predicate == rdf.Type {
			typeStmts = append(typeStmts, stmt)
		} else {
			propStmts = append(propStmts, stmt)
		}
	}
	lifted := expandPropsWithClosure(propStmts, rc.hierarchy, rc.warn)
	lifted = append(lifted, expandTypesWithClosure(typeStmts, rc.hierarchy, rc.warn)...)
	for _, stmt := range lifted {
		rc.record(stmt)
	}
}

// record admits one statement through the novelty gate without queueing it.
func (rc *runContext) record(stmt rdf.Statement) bool {
	key := stmt.Key()
	if rc.seen.Has(key) {
		return false
	}
	rc.seen.Add(key)
	rc.working = append(rc.working, stmt)
	rc.overlay = append(rc.overlay, stmt)
	rc.totalAdded++
	metrics.statementsAdded.Inc()
	return true
}

// enqueue admits candidates through the novelty gate and routes the novel
// ones onto the queues. Returns how many were novel.
func (rc *runContext) enqueue(candidates []rdf.Statement) int {
	added := 0
	for _, stmt := range candidates {
		if !rc.record(stmt) {
			continue
		}
		if stmt.Predicate == rdf.Type {
			rc.typeQueue = append(rc.typeQueue, stmt)
		} else {
			rc.propQueue = append(rc.propQueue, stmt)
		}
		added++
	}
	return added
}

// drain runs the local expanders over the queued statements until both
// queues are empty. Each cycle takes whole batches off the queues, expands
// them, and enqueues whatever passes the novelty gate; since the gate only
// ever admits a given key once, the drain terminates as soon as expansion
// stops producing unseen statements.
func (rc *runContext) drain() {
	for len(rc.typeQueue) > 0 || len(rc.propQueue) > 0 {
		types := rc.typeQueue
		props := rc.propQueue
		rc.typeQueue = nil
		rc.propQueue = nil

		var candidates []rdf.Statement
		candidates = append(candidates, expandTypesWithClosure(types, rc.hierarchy, rc.warn)...)
		candidates = append(candidates, expandPropsWithClosure(props, rc.hierarchy, rc.warn)...)
		candidates = append(candidates, applyInverseAndSymmetric(props, rc.schema, rc.warn)...)
		candidates = append(candidates, applyDomainRange(props, rc.schema, rc.warn)...)
		candidates = append(candidates, applyTransitiveProps(props, rc.working, rc.schema)...)
		rc.enqueue(candidates)
	}
}

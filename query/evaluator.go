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

// Package query provides the built-in rule evaluator. It answers one rule
// at a time by pattern matching over the snapshot it is handed, streaming
// results back in chunks. It holds no state between calls, every call
// rebuilds its view of the schema from the snapshot.
package query

import (
	"context"
	"fmt"

	"github.com/jonathanvajda/axiolotl/infer"
	"github.com/jonathanvajda/axiolotl/rdf"
	opentracing "github.com/opentracing/opentracing-go"
)

// Engine is a self-contained infer.Evaluator. Useful on its own for
// answering single-rule questions about a statement set, and as the default
// evaluator wired into the materializer by the CLI.
type Engine struct {
	// ChunkSize caps the statements per result chunk. Zero means a
	// reasonable default.
	ChunkSize int
}

const defaultChunkSize = 128

// Evaluate streams every statement the given rule derives from the
// snapshot in a single step, minus statements the snapshot already
// contains. It closes resCh before returning.
func (e *Engine) Evaluate(ctx context.Context, req *infer.EvalRequest, resCh chan<- *rdf.Chunk) error {
	defer close(resCh)
	span, ctx := opentracing.StartSpanFromContext(ctx, "query.Evaluate")
	span.SetTag("rule", req.Rule.String())
	span.SetTag("snapshot", len(req.Snapshot))
	defer span.Finish()

	asserted := rdf.KeysOf(req.Snapshot)
	sink := rdf.NewStatementSink(func(chunk *rdf.Chunk) error {
		select {
		case resCh <- chunk:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}, e.chunkSize())
	emit := func(stmt rdf.Statement) error {
		key := stmt.Key()
		if asserted.Has(key) {
			return nil
		}
		asserted.Add(key)
		return sink.Write(stmt)
	}

	var err error
	switch req.Rule {
	case infer.RuleSubClassOf:
		err = evalSubClassOf(req.Snapshot, emit)
	case infer.RuleSubPropertyOf:
		err = evalSubPropertyOf(req.Snapshot, emit)
	case infer.RuleInverse:
		err = evalInverse(req.Snapshot, emit)
	case infer.RuleSymmetric:
		err = evalSymmetric(req.Snapshot, emit)
	case infer.RuleDomain:
		err = evalDomainRange(req.Snapshot, emit, true)
	case infer.RuleRange:
		err = evalDomainRange(req.Snapshot, emit, false)
	case infer.RuleTransitive:
		err = evalTransitive(req.Snapshot, emit)
	default:
		return fmt.Errorf("query: unsupported rule %v", req.Rule)
	}
	if err != nil {
		return err
	}
	return sink.Flush()
}

func (e *Engine) chunkSize() int {
	if e.ChunkSize > 0 {
		return e.ChunkSize
	}
	return defaultChunkSize
}

func evalSubClassOf(snapshot []rdf.Statement, emit func(rdf.Statement) error) error {
	hier := infer.NewHierarchy(snapshot)
	for _, stmt := range snapshot {
		if stmt.Predicate != rdf.Type {
			continue
		}
		class := stmt.Object.ValIRI()
		if class == "" {
			continue
		}
		for super := range hier.ClassSupers(class) {
			if !rdf.IsAbsoluteIRI(super) {
				continue
			}
			err := emit(rdf.Statement{
				Subject:   stmt.Subject,
				Predicate: rdf.Type,
				Object:    rdf.AIRI(super),
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func evalSubPropertyOf(snapshot []rdf.Statement, emit func(rdf.Statement) error) error {
	hier := infer.NewHierarchy(snapshot)
	for _, stmt := range snapshot {
		for super := range hier.PropSupers(stmt.Predicate) {
			if !rdf.IsAbsoluteIRI(super) {
				continue
			}
			err := emit(rdf.Statement{
				Subject:   stmt.Subject,
				Predicate: super,
				Object:    stmt.Object,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func evalInverse(snapshot []rdf.Statement, emit func(rdf.Statement) error) error {
	schema := infer.NewSchema(snapshot)
	for _, stmt := range snapshot {
		if stmt.Object.IsLiteral() || stmt.Object.Kind() == rdf.KtNil {
			continue
		}
		for inv := range schema.InverseOf(stmt.Predicate) {
			if !rdf.IsAbsoluteIRI(inv) {
				continue
			}
			err := emit(rdf.Statement{
				Subject:   stmt.Object,
				Predicate: inv,
				Object:    stmt.Subject,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func evalSymmetric(snapshot []rdf.Statement, emit func(rdf.Statement) error) error {
	schema := infer.NewSchema(snapshot)
	for _, stmt := range snapshot {
		if !schema.IsSymmetric(stmt.Predicate) {
			continue
		}
		if stmt.Object.IsLiteral() || stmt.Object.Kind() == rdf.KtNil {
			continue
		}
		err := emit(rdf.Statement{
			Subject:   stmt.Object,
			Predicate: stmt.Predicate,
			Object:    stmt.Subject,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func evalDomainRange(snapshot []rdf.Statement, emit func(rdf.Statement) error, domain bool) error {
	schema := infer.NewSchema(snapshot)
	for _, stmt := range snapshot {
		var classes infer.IRISet
		subject := stmt.Subject
		if domain {
			classes = schema.Domain(stmt.Predicate)
		} else {
			if stmt.Object.IsLiteral() || stmt.Object.Kind() == rdf.KtNil {
				continue
			}
			classes = schema.Range(stmt.Predicate)
			subject = stmt.Object
		}
		for class := range classes {
			if !rdf.IsAbsoluteIRI(class) {
				continue
			}
			err := emit(rdf.Statement{
				Subject:   subject,
				Predicate: rdf.Type,
				Object:    rdf.AIRI(class),
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// evalTransitive does one composition step: the full fixpoint emerges over
// successive calls as earlier derivations land back in the snapshot.
func evalTransitive(snapshot []rdf.Statement, emit func(rdf.Statement) error) error {
	schema := infer.NewSchema(snapshot)
	// bucket edges by predicate so the join stays linear in edges times
	// fanout rather than quadratic in the whole snapshot
	bySubject := map[string]map[rdf.Term][]rdf.Term{}
	for _, stmt := range snapshot {
		if !schema.IsTransitive(stmt.Predicate) {
			continue
		}
		edges := bySubject[stmt.Predicate]
		if edges == nil {
			edges = map[rdf.Term][]rdf.Term{}
			bySubject[stmt.Predicate] = edges
		}
		edges[stmt.Subject] = append(edges[stmt.Subject], stmt.Object)
	}
	for _, stmt := range snapshot {
		edges := bySubject[stmt.Predicate]
		if edges == nil {
			continue
		}
		for _, next := range edges[stmt.Object] {
			err := emit(rdf.Statement{
				Subject:   stmt.Subject,
				Predicate: stmt.Predicate,
				Object:    next,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

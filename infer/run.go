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
	"context"
	"fmt"

	"github.com/jonathanvajda/axiolotl/rdf"
	"github.com/jonathanvajda/axiolotl/util/clocks"
	"github.com/jonathanvajda/axiolotl/util/parallel"
	opentracing "github.com/opentracing/opentracing-go"
	log "github.com/sirupsen/logrus"
)

// An EvalRequest asks the external evaluator for the statements implied by
// one rule over a snapshot of the current working set.
type EvalRequest struct {
	Rule Rule
	// Snapshot is the full working set at the time of the call. The
	// evaluator must not mutate it.
	Snapshot []rdf.Statement
}

// Evaluator is the external query evaluator the engine calls once per
// active rule per outer pass. Implementations stream result chunks to
// 'resCh' and must close it before returning, error or not. The evaluator
// is expected to do its own "not already asserted" filtering; the engine's
// novelty gate is a second, authoritative layer on top, so returning a few
// already-known statements is wasteful but harmless.
type Evaluator interface {
	Evaluate(ctx context.Context, req *EvalRequest, resCh chan<- *rdf.Chunk) error
}

// Options contains various settings that affect a materialization run.
type Options struct {
	// Clock is used for run timing. Defaults to clocks.Wall if not set.
	Clock clocks.Source
}

// Metrics is the externally observable progress signal of a run.
type Metrics struct {
	// TotalAdded is the number of statements that passed the novelty gate,
	// i.e. len(Result.Overlay).
	TotalAdded int
	// MalformedDropped counts candidate statements dropped because of a
	// malformed identifier. Advisory only.
	MalformedDropped int
	// Passes is the number of outer passes over the active rule list,
	// including the final pass that added nothing.
	Passes int
}

// Result is the output of one materialization run.
type Result struct {
	// Overlay collects every statement newly derived during the run,
	// including seed-phase lifts, in derivation order. It is independent of
	// the (mutated) working set the run operated on.
	Overlay []rdf.Statement
	Metrics Metrics
}

// Engine runs materialization. The zero value is not usable, call New.
// An Engine holds no per-run state and can be reused for any number of
// sequential runs.
type Engine struct {
	evaluator Evaluator
}

// New creates an Engine that uses the supplied evaluator for the rules that
// aren't expressed as local closures.
func New(evaluator Evaluator) *Engine {
	return &Engine{evaluator: evaluator}
}

// Materialize computes the closure of 'snapshot' under the given rules and
// returns the newly derived statements. Unknown rule names have already
// been dropped by ParseRules; passing nil runs the whole catalogue. The
// snapshot itself is not modified.
//
// The run is single threaded: rules are evaluated strictly one at a time
// and local expansion never overlaps an evaluator call. If the evaluator
// fails, the error propagates out of the entire run; statements derived
// before the failure are simply discarded with the run context, there is no
// partial result.
func (e *Engine) Materialize(ctx context.Context, snapshot []rdf.Statement, rules []Rule, opt Options) (*Result, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "Materialize")
	defer span.Finish()
	clock := opt.Clock
	if clock == nil {
		clock = clocks.Wall
	}
	start := clock.Now()
	defer func() {
		metrics.runDurationSeconds.Observe(clock.Now().Sub(start).Seconds())
	}()

	if rules == nil {
		rules = Rules()
	}
	rc := newRunContext(snapshot)
	rc.seed(snapshot)
	span.SetTag("seeded", rc.totalAdded)

	// Subclass and subproperty lifting is fully covered by the seed plus
	// the closure expanders that run during every drain, so re-running
	// those two rules as external queries would only re-derive what the
	// closures already produced.
	active := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		if rule == RuleSubClassOf || rule == RuleSubPropertyOf {
			continue
		}
		active = append(active, rule)
	}

	passes := 0
	for {
		passes++
		addedThisPass := 0
		for _, rule := range active {
			added, err := e.applyRule(ctx, rc, rule)
			if err != nil {
				return nil, err
			}
			addedThisPass += added
		}
		metrics.passes.Inc()
		if addedThisPass == 0 {
			break
		}
	}

	log.WithFields(log.Fields{
		"input":     len(snapshot),
		"added":     rc.totalAdded,
		"malformed": rc.malformed,
		"passes":    passes,
		"duration":  clock.Now().Sub(start),
	}).Info("Materialization reached fixpoint")
	span.SetTag("added", rc.totalAdded)
	return &Result{
		Overlay: rc.overlay,
		Metrics: Metrics{
			TotalAdded:       rc.totalAdded,
			MalformedDropped: rc.malformed,
			Passes:           passes,
		},
	}, nil
}

// applyRule runs one evaluator query and drains the queues to a local
// fixpoint. It returns how many statements the rule (and the expansion it
// triggered) added to the working set.
func (e *Engine) applyRule(ctx context.Context, rc *runContext, rule Rule) (int, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "ApplyRule")
	span.SetTag("rule", rule.String())
	defer span.Finish()

	metrics.evaluatorCalls.Inc()
	req := &EvalRequest{
		Rule:     rule,
		Snapshot: append([]rdf.Statement(nil), rc.working...),
	}
	resCh := make(chan *rdf.Chunk, 4)
	wait := parallel.GoCaptureError(func() error {
		return e.evaluator.Evaluate(ctx, req, resCh)
	})
	var results []rdf.Statement
	// resCh gets closed when the evaluator has sent all its results
	for chunk := range resCh {
		results = append(results, chunk.Statements...)
	}
	if err := wait(); err != nil {
		return 0, fmt.Errorf("infer: evaluating rule %v: %v", rule, err)
	}

	before := rc.totalAdded
	rc.enqueue(dedupeBatch(results))
	rc.drain()
	added := rc.totalAdded - before
	span.SetTag("added", added)
	return added, nil
}

// dedupeBatch removes key-level duplicates within one evaluator result
// batch, keeping first occurrences. The global seen index is consulted
// separately on enqueue.
func dedupeBatch(batch []rdf.Statement) []rdf.Statement {
	if len(batch) < 2 {
		return batch
	}
	seen := make(rdf.KeySet, len(batch))
	out := batch[:0]
	for _, stmt := range batch {
		key := stmt.Key()
		if seen.Has(key) {
			continue
		}
		seen.Add(key)
		out = append(out, stmt)
	}
	return out
}

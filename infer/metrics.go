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
	metricsutil "github.com/jonathanvajda/axiolotl/util/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type inferMetrics struct {
	statementsAdded    prometheus.Counter
	malformedDropped   prometheus.Counter
	evaluatorCalls     prometheus.Counter
	passes             prometheus.Counter
	runDurationSeconds prometheus.Summary
}

var metrics inferMetrics

func init() {
	mr := metricsutil.Registry{R: prometheus.DefaultRegisterer}
	metrics = inferMetrics{
		statementsAdded: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "axiolotl",
			Subsystem: "infer",
			Name:      "statements_added_total",
			Help:      `The number of newly derived statements that passed the novelty gate.`,
		}),
		malformedDropped: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "axiolotl",
			Subsystem: "infer",
			Name:      "malformed_dropped_total",
			Help:      `The number of candidate statements dropped because of a malformed identifier.`,
		}),
		evaluatorCalls: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "axiolotl",
			Subsystem: "infer",
			Name:      "evaluator_calls_total",
			Help:      `The number of calls made to the external query evaluator.`,
		}),
		passes: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "axiolotl",
			Subsystem: "infer",
			Name:      "passes_total",
			Help:      `The number of completed outer passes over the active rule list.`,
		}),
		runDurationSeconds: mr.NewSummary(prometheus.SummaryOpts{
			Namespace: "axiolotl",
			Subsystem: "infer",
			Name:      "run_duration_seconds",
			Help:      `How long materialization runs took, successful or not.`,
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		}),
	}
}

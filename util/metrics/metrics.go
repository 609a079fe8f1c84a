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

// Package metrics has helpers for constructing and registering Prometheus
// collectors. Each package builds its metrics struct once in init() through
// a Registry; re-registration (which happens when tests import overlapping
// packages) resolves to the already registered collector rather than a
// panic.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Registry creates and registers Prometheus collectors against R.
type Registry struct {
	R prometheus.Registerer
}

// NewCounter constructs, registers and returns a Counter.
func (r Registry) NewCounter(opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	return register(r.R, c).(prometheus.Counter)
}

// NewGauge constructs, registers and returns a Gauge.
func (r Registry) NewGauge(opts prometheus.GaugeOpts) prometheus.Gauge {
	g := prometheus.NewGauge(opts)
	return register(r.R, g).(prometheus.Gauge)
}

// NewSummary constructs, registers and returns a Summary.
func (r Registry) NewSummary(opts prometheus.SummaryOpts) prometheus.Summary {
	s := prometheus.NewSummary(opts)
	return register(r.R, s).(prometheus.Summary)
}

func register(r prometheus.Registerer, c prometheus.Collector) prometheus.Collector {
	if err := r.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector
		}
		panic(err)
	}
	return c
}

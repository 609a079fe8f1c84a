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

// Package tracing sets up the global OpenTracing tracer. Binaries that
// never call New still get the default no-op tracer, so span creation
// elsewhere is always safe.
package tracing

import (
	"fmt"
	"io"

	opentracing "github.com/opentracing/opentracing-go"
	log "github.com/sirupsen/logrus"
	jaeger "github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// New installs a Jaeger tracer reporting to the given collector as the
// process-wide OpenTracing tracer. The caller owns the returned closer and
// should close it before exit to flush buffered spans.
func New(serviceName, collector string) (io.Closer, error) {
	cfg := jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: collector,
		},
	}
	tracer, closer, err := cfg.NewTracer(jaegercfg.Logger(logAdapter{}))
	if err != nil {
		return nil, fmt.Errorf("tracing: creating tracer for %v: %v", serviceName, err)
	}
	opentracing.SetGlobalTracer(tracer)
	return closer, nil
}

// logAdapter routes the Jaeger client's own logging through logrus.
type logAdapter struct{}

func (logAdapter) Error(msg string) {
	log.Error(msg)
}

func (logAdapter) Infof(msg string, args ...interface{}) {
	log.Debugf(msg, args...)
}

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

// Command entail-client runs materialization over a statement file.
package main

import (
	"context"
	"fmt"
	"strings"

	docopt "github.com/docopt/docopt-go"
	"github.com/jonathanvajda/axiolotl/config"
	"github.com/jonathanvajda/axiolotl/infer"
	"github.com/jonathanvajda/axiolotl/parser"
	"github.com/jonathanvajda/axiolotl/query"
	"github.com/jonathanvajda/axiolotl/rdf"
	"github.com/jonathanvajda/axiolotl/store"
	"github.com/jonathanvajda/axiolotl/store/filestore"
	"github.com/jonathanvajda/axiolotl/util/debuglog"
	"github.com/jonathanvajda/axiolotl/util/tracing"
	opentracing "github.com/opentracing/opentracing-go"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var fmtr = message.NewPrinter(language.English)

const usage = `entail-client materializes the statements implied by a statement file.

Usage:
  entail-client [--config=CFG --trace=HOST] parse FILE
  entail-client [--config=CFG --trace=HOST --rules=RULES --output=OUT --full] infer FILE
  entail-client [--config=CFG --rules=RULES] rules

Options:
  --config=CFG      Read defaults from this JSON config file.
  --rules=RULES     Comma-separated rule names to run; unknown names are
                    ignored [default: all].
  --output=OUT      Write derived statements to this file instead of stdout.
  --full            Write the input statements along with the derived ones.
  --trace=HOST      Send OpenTracing traces to this collector.

Examples:
  # Check a statement file for syntax errors.
  entail-client parse family.axl

  # Materialize everything the file implies and print it.
  entail-client infer family.axl

  # Only chase symmetric and inverse properties, keep the result.
  entail-client --rules=symmetric,inverse --output=closed.axl --full infer family.axl
`

type options struct {
	ConfigFile string `docopt:"--config"`
	RuleNames  string `docopt:"--rules"`
	Output     string `docopt:"--output"`
	Full       bool   `docopt:"--full"`
	Trace      string `docopt:"--trace"`
	Filename   string `docopt:"FILE"`

	Parse bool `docopt:"parse"`
	Infer bool `docopt:"infer"`
	Rules bool `docopt:"rules"`
}

func parseArgs() *options {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		log.Fatalf("Error parsing command-line arguments: %v", err)
	}
	var options options
	err = opts.Bind(&options)
	if err != nil {
		log.Fatalf("Error binding command-line arguments: %v\nfrom: %+v", err, opts)
	}
	return &options
}

// resolve folds the config file, if any, under the command-line options.
// Flags win over config values.
func resolve(options *options) *config.Axiolotl {
	cfg := &config.Axiolotl{}
	if options.ConfigFile != "" {
		loaded, err := config.Load(options.ConfigFile)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
		cfg = loaded
	}
	if options.Filename != "" {
		cfg.Input = options.Filename
	}
	if options.Output != "" {
		cfg.Output = options.Output
	}
	if options.RuleNames != "" && options.RuleNames != "all" {
		cfg.Rules = strings.Split(options.RuleNames, ",")
	}
	return cfg
}

func main() {
	debuglog.Configure(debuglog.Options{})
	options := parseArgs()
	cfg := resolve(options)
	if cfg.Logging != nil && cfg.Logging.Level != "" {
		level, err := log.ParseLevel(cfg.Logging.Level)
		if err != nil {
			log.Fatalf("Unrecognized log level in config: %v", err)
		}
		log.SetLevel(level)
	}
	ctx := context.Background()
	if options.Trace != "" {
		closer, err := tracing.New("entail-client", options.Trace)
		if err != nil {
			log.WithError(err).Warn("Could not initialize OpenTracing tracer")
		} else {
			defer closer.Close()
		}
	}
	span, ctx := opentracing.StartSpanFromContext(ctx, "entail-client run")
	defer span.Finish()

	switch {
	case options.Parse:
		if err := parseCmd(ctx, cfg); err != nil {
			log.Fatalf("Error executing parse: %v", err)
		}
	case options.Infer:
		if err := inferCmd(ctx, cfg, options.Full); err != nil {
			log.Fatalf("Error executing infer: %v", err)
		}
	case options.Rules:
		rulesCmd(cfg)
	default:
		log.Fatalf("command not implemented")
	}
}

func parseCmd(ctx context.Context, cfg *config.Axiolotl) error {
	var input store.Loader = filestore.New(cfg.Input)
	stmts, err := input.LoadAll(ctx)
	if err != nil {
		return err
	}
	fmtr.Printf("Parsed %d statements from %v\n", len(stmts), cfg.Input)
	return nil
}

func inferCmd(ctx context.Context, cfg *config.Axiolotl, full bool) error {
	var input store.Loader = filestore.New(cfg.Input)
	stmts, err := input.LoadAll(ctx)
	if err != nil {
		return err
	}
	engine := infer.New(&query.Engine{ChunkSize: cfg.ChunkSize})
	res, err := engine.Materialize(ctx, stmts, ruleList(cfg), infer.Options{})
	if err != nil {
		return err
	}
	fmtr.Printf("Derived %d statements from %d in %d passes",
		res.Metrics.TotalAdded, len(stmts), res.Metrics.Passes)
	if res.Metrics.MalformedDropped > 0 {
		fmtr.Printf(" (%d malformed candidates dropped)",
			res.Metrics.MalformedDropped)
	}
	fmt.Println()

	out := res.Overlay
	if cfg.Output == "" {
		fmt.Print(parser.FormatDocument(out))
		return nil
	}
	if full {
		out = append(append([]rdf.Statement(nil), stmts...), out...)
	}
	var dest store.Writer = filestore.New(cfg.Output)
	if err := dest.WriteAll(ctx, out); err != nil {
		return err
	}
	fmtr.Printf("Wrote %v\n", cfg.Output)
	return nil
}

func rulesCmd(cfg *config.Axiolotl) {
	selected := make(map[infer.Rule]bool)
	for _, rule := range ruleListOrAll(cfg) {
		selected[rule] = true
	}
	for _, rule := range infer.Rules() {
		marker := " "
		if selected[rule] {
			marker = "*"
		}
		fmt.Printf("%s %v\n", marker, rule)
	}
}

func ruleList(cfg *config.Axiolotl) []infer.Rule {
	if len(cfg.Rules) == 0 {
		return nil
	}
	return infer.ParseRules(cfg.Rules)
}

func ruleListOrAll(cfg *config.Axiolotl) []infer.Rule {
	if rules := ruleList(cfg); rules != nil {
		return rules
	}
	return infer.Rules()
}

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

// Package debuglog configures Logrus for the binaries in this repository.
package debuglog

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Options control how the logging output is formatted.
type Options struct {
	// ForceColors makes Logrus emit ANSI colors even when stdout is not a
	// terminal.
	ForceColors bool
	// Level overrides the default logging level of Info.
	Level logrus.Level
}

// Configure sets up the Logrus standard logger with the repository-wide
// defaults: full UTC timestamps in a text format suitable for reading in a
// terminal or scraping from a container log.
func Configure(options Options) {
	logrus.SetFormatter(&utcFormatter{inner: &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000000 MST",
		ForceColors:     options.ForceColors,
	}})
	level := options.Level
	if level == 0 {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.WithFields(logrus.Fields{
		"forceColors": options.ForceColors,
		"level":       level,
	}).Info("Initialized Logrus")
}

// utcFormatter rewrites entry timestamps into UTC before handing off to the
// wrapped formatter, so that logs from differently-zoned hosts interleave.
type utcFormatter struct {
	inner logrus.Formatter
}

func (f *utcFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	entry.Time = entry.Time.In(time.UTC)
	return f.inner.Format(entry)
}

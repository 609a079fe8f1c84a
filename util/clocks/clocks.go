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

// Package clocks provides a mockable way to measure time.
package clocks

import (
	"sync"
	"time"
)

// Time is a convenient alias for time.Time.
type Time = time.Time

// A Source tells the passage of time. This package provides two sources:
// Wall and NewMock.
type Source interface {
	// Now returns the current time.
	Now() Time
}

type wallClock struct{}

// Wall is the normal clock, as provided by time.Now().
var Wall Source = wallClock{}

func (wallClock) Now() Time {
	return time.Now()
}

// A Mock is a Source whose time only moves when the test tells it to. The
// zero value is not usable, call NewMock.
type Mock struct {
	lock sync.Mutex
	now  Time
}

// NewMock returns a Mock clock set to an arbitrary but fixed start time.
func NewMock() *Mock {
	return &Mock{now: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now implements Source.
func (m *Mock) Now() Time {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.now
}

// Advance moves the mock time forward by d.
func (m *Mock) Advance(d time.Duration) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.now = m.now.Add(d)
}

// Set moves the mock time to the given instant.
func (m *Mock) Set(t Time) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.now = t
}

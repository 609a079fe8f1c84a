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

package cmp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Int(t *testing.T) {
	ints := []int{-1, 0, 1, 1234, math.MaxInt32 - 1, math.MaxInt32}
	for _, a := range ints {
		for _, b := range ints {
			max := MaxInt(a, b)
			min := MinInt(a, b)
			assert.True(t, max >= a && max >= b)
			assert.True(t, min <= a && min <= b)
			assert.True(t, max == a || max == b)
			assert.True(t, min == a || min == b)
		}
	}
}

func Test_String(t *testing.T) {
	strs := []string{"", "a", "abba", "alice", "bob", "eve", "zebra", "zzzzzz"}
	for _, a := range strs {
		for _, b := range strs {
			max := MaxString(a, b)
			min := MinString(a, b)
			assert.True(t, max >= a && max >= b)
			assert.True(t, min <= a && min <= b)
			assert.True(t, max == a || max == b)
			assert.True(t, min == a || min == b)
		}
	}
}

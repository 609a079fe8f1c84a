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
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RuleString(t *testing.T) {
	assert.Equal(t, "inverse", RuleInverse.String())
	assert.Equal(t, "transitive", RuleTransitive.String())
	assert.Equal(t, "unknown", Rule(99).String())
}

func Test_RulesCatalogue(t *testing.T) {
	all := Rules()
	assert.Len(t, all, int(numRules))
	// every catalogue entry has a name and round-trips through parsing
	for _, r := range all {
		name := r.String()
		assert.NotEqual(t, "unknown", name)
		parsed, ok := ParseRule(name)
		assert.True(t, ok)
		assert.Equal(t, r, parsed)
	}
}

func Test_ParseRules(t *testing.T) {
	assert.Equal(t, []Rule{RuleSymmetric, RuleInverse},
		ParseRules([]string{"symmetric", "inverse"}))
	// duplicates collapse, order of first occurrence wins
	assert.Equal(t, []Rule{RuleDomain, RuleRange},
		ParseRules([]string{"domain", "range", "domain"}))
	// unknown names are dropped without complaint
	assert.Equal(t, []Rule{RuleTransitive},
		ParseRules([]string{"bogus", "transitive", "sameas"}))
	assert.Empty(t, ParseRules(nil))
}

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

// A Rule identifies one production rule from the fixed catalogue. The
// catalogue is closed; there is deliberately no way to register new rules.
type Rule int

// The rule catalogue.
const (
	// RuleInverse derives (y, q, x) from (x, p, y) when p and q are
	// declared inverses.
	RuleInverse Rule = iota
	// RuleSubPropertyOf derives (x, q, y) from (x, p, y) when q is a
	// (transitive) superproperty of p.
	RuleSubPropertyOf
	// RuleSubClassOf derives (x, type, D) from (x, type, C) when D is a
	// (transitive) superclass of C.
	RuleSubClassOf
	// RuleDomain derives (x, type, D) from (x, p, y) when D is a declared
	// domain of p.
	RuleDomain
	// RuleRange derives (y, type, R) from (x, p, y) when R is a declared
	// range of p.
	RuleRange
	// RuleTransitive derives (x, p, z) from (x, p, y) and (y, p, z) when p
	// is declared transitive.
	RuleTransitive
	// RuleSymmetric derives (y, p, x) from (x, p, y) when p is declared
	// symmetric.
	RuleSymmetric

	numRules
)

var ruleNames = map[Rule]string{
	RuleInverse:       "inverse",
	RuleSubPropertyOf: "subpropertyof",
	RuleSubClassOf:    "subclassof",
	RuleDomain:        "domain",
	RuleRange:         "range",
	RuleTransitive:    "transitive",
	RuleSymmetric:     "symmetric",
}

func (r Rule) String() string {
	if name, exists := ruleNames[r]; exists {
		return name
	}
	return "unknown"
}

// Rules returns the full catalogue in its canonical order.
func Rules() []Rule {
	all := make([]Rule, 0, numRules)
	for r := Rule(0); r < numRules; r++ {
		all = append(all, r)
	}
	return all
}

// ParseRule maps a rule name back to its Rule. It returns false for names
// outside the catalogue.
func ParseRule(name string) (Rule, bool) {
	for r, n := range ruleNames {
		if n == name {
			return r, true
		}
	}
	return 0, false
}

// ParseRules maps rule names to Rules, preserving order and dropping
// duplicates. Unknown names are ignored without error.
func ParseRules(names []string) []Rule {
	seen := make(map[Rule]struct{}, len(names))
	res := make([]Rule, 0, len(names))
	for _, name := range names {
		r, ok := ParseRule(name)
		if !ok {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		res = append(res, r)
	}
	return res
}

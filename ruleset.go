// Copyright 2026 The Rulekit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validation

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/goccy/go-yaml"
)

// RuleSet maps field names to rule specs. It is the declarative
// counterpart of struct tags for data that arrives as maps, such as
// decoded JSON bodies or form posts.
type RuleSet map[string]string

// ValidateMap evaluates each field's rule chain in rules against
// data[field]. A field absent from data validates as nil, so its
// required rule fails while its format rules behave as they do for
// missing values. Fields are evaluated in sorted name order to keep
// results deterministic.
//
// The return contract matches [Validator.Validate]: nil, a
// [*Result] with field-carrying entries, or a [*RuleError].
func (v *Validator) ValidateMap(data map[string]any, rules RuleSet, opts ...Option) error {
	cfg := applyOptions(v.cfg, opts...)
	var result Result
	for _, field := range slices.Sorted(maps.Keys(rules)) {
		if err := evalSpec(&result, field, data[field], rules[field], cfg); err != nil {
			return err
		}
	}
	if result.Empty() {
		return nil
	}
	return &result
}

// LoadRuleSet reads a rule set from a YAML file mapping field names
// to specs. JSON files load too, being a YAML subset.
//
//	name:  required|alpha|minLength:2
//	email: required|email
//	age:   integer|between:17:131
func LoadRuleSet(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule set: %w", err)
	}
	rs, err := ParseRuleSet(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

// ParseRuleSet parses an in-memory YAML rule-set document.
func ParseRuleSet(data []byte) (RuleSet, error) {
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parse rule set: %w", err)
	}
	return rs, nil
}

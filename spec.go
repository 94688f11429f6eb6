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

import "strings"

// Invocation is one parsed rule call: the rule name and its
// positional arguments exactly as written in the spec string. Args
// are raw substrings with no trimming or type conversion.
type Invocation struct {
	Name string
	Args []string
}

// ParseSpec splits a rule-spec string into its ordered invocations.
//
// The grammar is deliberately tiny: '|' separates rules, ':'
// separates a rule's name from its arguments and the arguments from
// each other. There is no escaping or quoting, so neither names nor
// arguments can contain a delimiter.
//
//	ParseSpec("required|between:1:10")
//	// [{required []} {between [1 10]}]
//
// Parsing never fails. An empty spec yields no invocations, and
// degenerate segments survive as written: "name:" carries a single
// empty argument, "a||b" carries an empty-named invocation between a
// and b. Whether such invocations mean anything is the registry's
// problem, not the parser's.
func ParseSpec(spec string) []Invocation {
	if spec == "" {
		return nil
	}
	segments := strings.Split(spec, "|")
	invocations := make([]Invocation, 0, len(segments))
	for _, segment := range segments {
		parts := strings.Split(segment, ":")
		invocations = append(invocations, Invocation{Name: parts[0], Args: parts[1:]})
	}
	return invocations
}

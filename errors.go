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
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is the sentinel every rule-failure aggregate unwraps
// to. Use errors.Is(err, ErrValidation) to tell data that failed its
// rules apart from specs that could not be evaluated at all.
var ErrValidation = errors.New("validation failed")

var (
	// ErrUnknownRule is wrapped by a [*RuleError] when strict rules
	// are enabled and a spec names a rule the registry cannot
	// resolve.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrRuleArgs is wrapped by rule factories when a spec supplies
	// arguments the rule cannot be constructed from.
	ErrRuleArgs = errors.New("invalid rule arguments")

	// ErrNotStruct is returned by struct validation when the value
	// is neither a struct nor a pointer to one.
	ErrNotStruct = errors.New("not a struct")

	// ErrNilValue is returned by struct validation when the value is
	// nil or a nil pointer.
	ErrNilValue = errors.New("cannot validate nil value")

	// ErrUnknownField is wrapped when a [Schema] names a field the
	// struct does not expose.
	ErrUnknownField = errors.New("unknown field")
)

// RuleError reports an invocation that could not be evaluated: the
// named rule's factory rejected the spec's arguments, or, with
// strict rules enabled, the name resolved to nothing. A RuleError
// aborts the call that produced it; nothing is recorded in a
// [Result].
type RuleError struct {
	Rule string   // rule name as written in the spec
	Args []string // positional arguments handed to the factory
	Err  error    // underlying cause
}

// Error formats the rule name, its arguments and the cause.
func (e *RuleError) Error() string {
	if len(e.Args) == 0 {
		return fmt.Sprintf("rule %q: %v", e.Rule, e.Err)
	}
	return fmt.Sprintf("rule %q (args %s): %v", e.Rule, strings.Join(e.Args, ", "), e.Err)
}

// Unwrap returns the underlying cause so errors.Is can match
// [ErrRuleArgs], [ErrUnknownRule] and friends through the wrapper.
func (e *RuleError) Unwrap() error { return e.Err }

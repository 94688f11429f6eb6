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

// Rule is the capability contract every validation rule satisfies:
// test a value, report a failure message. The engine never looks at
// a rule beyond these two methods.
//
// Rules are built by a [Factory] from the positional string arguments
// of a spec segment, so implementations own whatever argument or
// value coercion they need ("3" becomes 3 for minLength, numeric
// strings compare as numbers for min and max).
//
// Example:
//
//	type evenRule struct{}
//
//	func (evenRule) Passes(value any) bool {
//	    n, err := cast.ToIntE(value)
//	    return err == nil && n%2 == 0
//	}
//
//	func (evenRule) Message() string { return "must be even" }
type Rule interface {
	// Passes reports whether value satisfies the rule.
	Passes(value any) bool

	// Message returns the failure message recorded when Passes
	// returns false.
	Message() string
}

// Factory builds a runnable [Rule] from the positional string
// arguments of a spec segment.
//
// Returning an error marks the invocation as unconstructible (a
// missing argument, an argument that doesn't parse), which aborts
// the Validate call with a [*RuleError]. Factories should wrap
// [ErrRuleArgs] in such errors so callers can classify them.
//
// A factory may return (nil, nil) to declare itself inert; the
// engine skips such invocations the same way it skips names the
// registry cannot resolve.
type Factory func(args []string) (Rule, error)

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

// Package validation evaluates rule-spec strings against values.
//
// A rule spec is a compact chain of rule invocations: names
// separated by '|', each name optionally followed by ':'-separated
// arguments. "required|string|minLength:3" runs three rules in
// order; every rule that fails contributes one message to the
// result, keyed by the rule's name.
//
// # Getting Started
//
// The package-level [Validate] function covers the common case:
//
//	if err := validation.Validate(email, "required|email"); err != nil {
//	    var result *validation.Result
//	    if errors.As(err, &result) {
//	        for rule, msg := range result.Messages() {
//	            fmt.Printf("%s: %s\n", rule, msg)
//	        }
//	    }
//	}
//
// For your own catalog, message overrides or strict name resolution,
// build a [Validator] with [New] or [MustNew]:
//
//	v := validation.MustNew(
//	    validation.WithRule("even", evenFactory),
//	    validation.WithStrictRules(true),
//	    validation.WithMessages(map[string]string{"required": "cannot be blank"}),
//	)
//
//	err := v.Validate(input, "required|even")
//
// # Rules and the Catalog
//
// Rules implement the two-method [Rule] interface and are built from
// spec arguments by a [Factory]. The built-in catalog (see
// [Builtins]) covers presence, string shape, length, numeric bounds,
// comparison and common formats; [Extras] has opt-in additions like
// uuid and date. Registering a factory under an existing name
// replaces it, built-ins included, so projects can reshape the
// catalog freely.
//
// Names a catalog cannot resolve are skipped by default, which keeps
// shared specs portable across catalogs with different custom rules.
// [WithStrictRules] turns such names into errors instead. A rule
// that cannot be constructed from its arguments is always an error:
// "minLength:x" is a broken spec, not a failed validation.
//
// # Validation Outcomes
//
// Validate returns nil on success, a [*Result] when rules failed, or
// a [*RuleError] when the spec itself is unusable. Both error types
// unwrap for errors.Is and errors.As: results match [ErrValidation],
// rule errors match their cause ([ErrRuleArgs], [ErrUnknownRule]).
//
// # Structs, Schemas and Maps
//
// [ValidateStruct] reads rule specs from struct tags and validates
// the instance it is given:
//
//	type Signup struct {
//	    Name  string `validate:"required|alpha|minLength:2"`
//	    Email string `validate:"required|email"`
//	}
//
// [Schema] declares the same constraints in code for structs you
// cannot tag, [Validator.ValidateMap] applies a [RuleSet] to map
// data, and [LoadRuleSet] reads rule sets from YAML. [ValidateZero]
// checks which constraints a type's zero value already violates.
//
// # Accumulating Across Calls
//
// A [Checker] folds failures from many Validate calls into one
// running result:
//
//	c := validation.NewChecker()
//	c.Validate(form.Name, "required|alpha")
//	c.Validate(form.Age, "integer|between:17:131")
//	if c.Fails() {
//	    return c.Errors()
//	}
//
// Its verdict covers everything since the last Reset, so a passing
// call after a failing one still reports failure. Use a [Validator]
// when calls must stand alone.
//
// # Thread Safety
//
// [Validator] instances are immutable after construction and safe
// for concurrent use; per-call options apply to a copy. [Checker]
// and [Registry] are single-goroutine types.
package validation

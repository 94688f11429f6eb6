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
	"sync"
)

// Validator evaluates rule specs against values. Its catalog and
// options are fixed at construction, which makes a Validator safe
// for concurrent use; per-call options are applied to a copy and
// never touch the validator itself.
//
// Each call stands alone and reports only its own failures. For the
// accumulating variant that folds failures across calls into one
// running result, see [Checker].
type Validator struct {
	cfg *config
}

// New creates a Validator with the built-in catalog and the given
// options applied.
func New(opts ...Option) (*Validator, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Validator{cfg: cfg}, nil
}

// MustNew is like [New] but panics on invalid options. For
// package-level variables and other places where construction cannot
// reasonably fail.
func MustNew(opts ...Option) *Validator {
	v, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("validation: MustNew: %v", err))
	}
	return v
}

// Validate evaluates the rule chain in spec against value, left to
// right.
//
// It returns nil when every rule passes, a [*Result] carrying one
// entry per failed rule when any fail, or a [*RuleError] when an
// invocation cannot be evaluated at all (a factory rejecting its
// arguments, or an unresolved name under [WithStrictRules]). A rule
// failure never stops the chain; a construction error does.
//
// Without strict rules, names the catalog cannot resolve are skipped
// as if the spec never mentioned them.
func (v *Validator) Validate(value any, spec string, opts ...Option) error {
	cfg := applyOptions(v.cfg, opts...)
	var result Result
	if err := evalSpec(&result, "", value, spec, cfg); err != nil {
		return err
	}
	if result.Empty() {
		return nil
	}
	return &result
}

// Rules returns the names in this validator's catalog, sorted.
func (v *Validator) Rules() []string {
	return v.cfg.registry.Names()
}

// evalSpec runs one parsed chain against value, recording failures
// under field (empty for plain values). Construction errors abort
// the chain; entries recorded before the abort stay recorded.
func evalSpec(result *Result, field string, value any, spec string, cfg *config) error {
	for _, inv := range ParseSpec(spec) {
		factory, ok := cfg.registry.Resolve(inv.Name)
		if !ok {
			if cfg.strict {
				return &RuleError{Rule: inv.Name, Args: inv.Args, Err: ErrUnknownRule}
			}
			continue
		}
		rule, err := factory(inv.Args)
		if err != nil {
			return &RuleError{Rule: inv.Name, Args: inv.Args, Err: err}
		}
		if rule == nil {
			// Inert factory, treated like an unknown name.
			continue
		}
		if !rule.Passes(value) {
			result.set(field, inv.Name, cfg.messageFor(inv.Name, rule))
		}
	}
	return nil
}

var (
	defaultValidator     *Validator
	defaultValidatorOnce sync.Once
)

// getDefaultValidator lazily builds the validator behind the
// package-level functions.
func getDefaultValidator() *Validator {
	defaultValidatorOnce.Do(func() {
		defaultValidator = MustNew()
	})
	return defaultValidator
}

// Validate evaluates spec against value using a shared default
// [Validator]. See [Validator.Validate] for the contract.
//
//	if err := validation.Validate(email, "required|email"); err != nil {
//	    return err
//	}
func Validate(value any, spec string, opts ...Option) error {
	return getDefaultValidator().Validate(value, spec, opts...)
}

// ValidateStruct validates a struct against its tag-declared rules
// using the shared default [Validator]. See
// [Validator.ValidateStruct] for the contract.
func ValidateStruct(s any, opts ...Option) error {
	return getDefaultValidator().ValidateStruct(s, opts...)
}

// ValidateMap validates map data against a [RuleSet] using the
// shared default [Validator]. See [Validator.ValidateMap] for the
// contract.
func ValidateMap(data map[string]any, rules RuleSet, opts ...Option) error {
	return getDefaultValidator().ValidateMap(data, rules, opts...)
}

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

import "slices"

// Checker is the accumulating counterpart of [Validator]: every
// Validate call folds its failures into one running [Result], which
// survives until [Checker.Reset]. That makes a Checker the right
// shape for form-style flows that check many values and then ask
// "did anything fail?" once.
//
// The accumulation is the point and the trap: a passing call after a
// failing one still reports failure, because the verdict covers
// everything since the last Reset. Use a [Validator] when each call
// should stand alone.
//
// A Checker owns its catalog and its state and is not safe for
// concurrent use.
type Checker struct {
	cfg    *config
	result Result
}

// NewChecker creates a Checker with the built-in catalog and the
// given options applied.
func NewChecker(opts ...Option) *Checker {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Checker{cfg: cfg}
}

// Validate evaluates spec against value and merges any failures into
// the accumulated result.
//
// The boolean is the accumulated verdict, not the call's: true only
// while nothing has failed since the last Reset. The error reports
// construction problems only; rule failures are data, available via
// [Checker.Errors]. Failures recorded before a construction error
// aborts a chain stay recorded.
func (c *Checker) Validate(value any, spec string) (bool, error) {
	if err := evalSpec(&c.result, "", value, spec, c.cfg); err != nil {
		return c.result.Empty(), err
	}
	return c.result.Empty(), nil
}

// Passes reports whether nothing has failed since the last Reset.
func (c *Checker) Passes() bool { return c.result.Empty() }

// Fails reports whether anything has failed since the last Reset.
func (c *Checker) Fails() bool { return !c.result.Empty() }

// Errors returns a snapshot of the accumulated result. The snapshot
// is independent: later Validate or Reset calls do not change it.
func (c *Checker) Errors() *Result {
	return &Result{Entries: slices.Clone(c.result.Entries)}
}

// Messages returns the accumulated failures as a map of rule name to
// message.
func (c *Checker) Messages() map[string]string {
	return c.result.Messages()
}

// Reset clears the accumulated result. The catalog is untouched.
func (c *Checker) Reset() {
	c.result = Result{}
}

// AddRule binds a rule factory on this checker's catalog, overriding
// built-ins and earlier bindings of the same name. Later Validate
// calls resolve against the updated catalog.
func (c *Checker) AddRule(name string, factory Factory) {
	c.cfg.registry.Register(name, factory)
}

// AddRules binds every factory in the map. Equivalent to AddRule per
// entry.
func (c *Checker) AddRules(factories map[string]Factory) {
	c.cfg.registry.RegisterAll(factories)
}

// Rules returns the names in this checker's catalog, sorted.
func (c *Checker) Rules() []string {
	return c.cfg.registry.Names()
}

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
	"maps"
)

// defaultTagName is the struct tag key rule specs are read from.
const defaultTagName = "validate"

// config carries everything a validation pass depends on. Validators
// hold one fixed at construction; per-call options work on a clone,
// so a call can never mutate its validator.
type config struct {
	registry *Registry
	strict   bool
	tagName  string
	messages map[string]string
}

func newConfig() *config {
	return &config{
		registry: NewRegistry(),
		tagName:  defaultTagName,
	}
}

func (c *config) validate() error {
	if c.tagName == "" {
		return errors.New("tag name must not be empty")
	}
	return nil
}

func (c *config) clone() *config {
	clone := *c
	clone.registry = c.registry.clone()
	if c.messages != nil {
		clone.messages = maps.Clone(c.messages)
	}
	return &clone
}

// applyOptions layers per-call options over a base config. The base
// is cloned first, and not at all when there is nothing to apply.
func applyOptions(base *config, opts ...Option) *config {
	if len(opts) == 0 {
		return base
	}
	cfg := base.clone()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// messageFor resolves the failure message for a rule: a configured
// override when one exists, the rule's own message otherwise.
func (c *config) messageFor(name string, rule Rule) string {
	if msg, ok := c.messages[name]; ok {
		return msg
	}
	return rule.Message()
}

// Option configures a [Validator], [Checker] or [Schema] at
// construction, or a single Validate call when passed per call.
type Option func(*config)

// WithRule binds one rule factory, overriding any built-in or
// earlier binding of the same name.
//
//	v := validation.MustNew(validation.WithRule("even", evenFactory))
//	err := v.Validate(n, "required|even")
func WithRule(name string, factory Factory) Option {
	return func(c *config) {
		c.registry.Register(name, factory)
	}
}

// WithRules binds every factory in the map over the current catalog.
// Later options win over earlier ones, and all of them win over
// built-ins.
func WithRules(factories map[string]Factory) Option {
	return func(c *config) {
		c.registry.RegisterAll(factories)
	}
}

// WithRegistry swaps in a whole rule catalog. The registry is cloned
// immediately, so registrations made on it afterwards do not reach
// the validator, and vice versa.
func WithRegistry(registry *Registry) Option {
	return func(c *config) {
		c.registry = registry.clone()
	}
}

// WithStrictRules makes unresolved rule names fatal instead of
// silently skipped: Validate returns a [*RuleError] wrapping
// [ErrUnknownRule] for the first name the catalog cannot resolve.
// Useful for catching spec typos that would otherwise validate
// nothing.
func WithStrictRules(strict bool) Option {
	return func(c *config) {
		c.strict = strict
	}
}

// WithTagName changes the struct tag key rule specs are read from.
// The default is "validate".
func WithTagName(name string) Option {
	return func(c *config) {
		c.tagName = name
	}
}

// WithMessages overrides failure messages per rule name. Rules not
// listed keep the message their implementation reports.
//
//	validation.MustNew(validation.WithMessages(map[string]string{
//	    "required": "cannot be blank",
//	}))
func WithMessages(messages map[string]string) Option {
	return func(c *config) {
		if c.messages == nil {
			c.messages = make(map[string]string, len(messages))
		}
		maps.Copy(c.messages, messages)
	}
}

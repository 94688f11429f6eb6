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
	"sync"

	"github.com/go-playground/validator/v10"
)

// The format rules delegate matching to go-playground/validator
// instead of maintaining yet another set of e-mail and URL patterns.
// One shared instance, built on first use; Var is safe for
// concurrent use.
var (
	formatOnce sync.Once
	formatVal  *validator.Validate
)

func formatValidator() *validator.Validate {
	formatOnce.Do(func() {
		formatVal = validator.New()
	})
	return formatVal
}

type formatRule struct {
	tag     string
	message string
}

func (r formatRule) Passes(value any) bool {
	s, ok := stringValue(value)
	if !ok {
		return false
	}
	return formatValidator().Var(s, r.tag) == nil
}

func (r formatRule) Message() string { return r.message }

func emailFactory([]string) (Rule, error) {
	return formatRule{tag: "email", message: "must be a valid email address"}, nil
}

func urlFactory([]string) (Rule, error) {
	return formatRule{tag: "url", message: "must be a valid URL"}, nil
}

func domainFactory([]string) (Rule, error) {
	return formatRule{tag: "fqdn", message: "must be a valid domain name"}, nil
}

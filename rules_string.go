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
	"reflect"
	"regexp"
	"unicode"

	"github.com/spf13/cast"
)

// required fails on nil, empty strings, empty collections and nil
// pointers. Numeric zero is a present value and passes; emptiness is
// about absence, not about zero.
type requiredRule struct{}

func requiredFactory([]string) (Rule, error) { return requiredRule{}, nil }

func (requiredRule) Passes(value any) bool {
	if value == nil {
		return false
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		return v.String() != ""
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !v.IsNil()
	}
	return true
}

func (requiredRule) Message() string { return "is required" }

// string passes any value of string kind, the empty string included.
// Emptiness is required's business.
type stringRule struct{}

func stringFactory([]string) (Rule, error) { return stringRule{}, nil }

func (stringRule) Passes(value any) bool {
	_, ok := stringValue(value)
	return ok
}

func (stringRule) Message() string { return "must be a string" }

type alphaRule struct{}

func alphaFactory([]string) (Rule, error) { return alphaRule{}, nil }

func (alphaRule) Passes(value any) bool {
	s, ok := stringValue(value)
	if !ok {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func (alphaRule) Message() string { return "must contain only letters" }

type alphaNumRule struct{}

func alphaNumFactory([]string) (Rule, error) { return alphaNumRule{}, nil }

func (alphaNumRule) Passes(value any) bool {
	s, ok := stringValue(value)
	if !ok {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func (alphaNumRule) Message() string { return "must contain only letters and digits" }

type minLengthRule struct{ min int }

func minLengthFactory(args []string) (Rule, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: want a minimum length, got none", ErrRuleArgs)
	}
	n, err := cast.ToIntE(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a whole number", ErrRuleArgs, args[0])
	}
	return minLengthRule{min: n}, nil
}

func (r minLengthRule) Passes(value any) bool {
	n, ok := lengthOf(value)
	return ok && n >= r.min
}

func (r minLengthRule) Message() string {
	return fmt.Sprintf("must be at least %d characters", r.min)
}

type maxLengthRule struct{ max int }

func maxLengthFactory(args []string) (Rule, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: want a maximum length, got none", ErrRuleArgs)
	}
	n, err := cast.ToIntE(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a whole number", ErrRuleArgs, args[0])
	}
	return maxLengthRule{max: n}, nil
}

func (r maxLengthRule) Passes(value any) bool {
	n, ok := lengthOf(value)
	return ok && n <= r.max
}

func (r maxLengthRule) Message() string {
	return fmt.Sprintf("must be at most %d characters", r.max)
}

// regex compiles its pattern at construction time, so a bad pattern
// is a construction error, not a silent mismatch. Patterns cannot
// contain ':' or '|' because the spec grammar has no escaping.
type regexRule struct{ pattern *regexp.Regexp }

func regexFactory(args []string) (Rule, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: want a pattern, got none", ErrRuleArgs)
	}
	pattern, err := regexp.Compile(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRuleArgs, err)
	}
	return regexRule{pattern: pattern}, nil
}

func (r regexRule) Passes(value any) bool {
	s, ok := stringValue(value)
	return ok && r.pattern.MatchString(s)
}

func (r regexRule) Message() string {
	return fmt.Sprintf("must match %s", r.pattern)
}

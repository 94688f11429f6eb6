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
	"strconv"

	"github.com/spf13/cast"
)

type numericRule struct{}

func numericFactory([]string) (Rule, error) { return numericRule{}, nil }

func (numericRule) Passes(value any) bool {
	_, ok := numericValue(value)
	return ok
}

func (numericRule) Message() string { return "must be numeric" }

// integer accepts integer kinds and strings that parse as base-10
// integers. Floats fail even when their value is whole: 5.0 is not
// an integer, it is a float that happens to land on one.
type integerRule struct{}

func integerFactory([]string) (Rule, error) { return integerRule{}, nil }

func (integerRule) Passes(value any) bool {
	if value == nil {
		return false
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	case reflect.String:
		_, err := strconv.ParseInt(v.String(), 10, 64)
		return err == nil
	}
	return false
}

func (integerRule) Message() string { return "must be an integer" }

// The bound rules keep the argument as written for their messages,
// so "min:18" complains about 18, not 18.000000.

type minRule struct {
	min float64
	arg string
}

func minFactory(args []string) (Rule, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: want a minimum, got none", ErrRuleArgs)
	}
	min, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrRuleArgs, args[0])
	}
	return minRule{min: min, arg: args[0]}, nil
}

func (r minRule) Passes(value any) bool {
	f, ok := numericValue(value)
	return ok && f >= r.min
}

func (r minRule) Message() string {
	return fmt.Sprintf("must be at least %s", r.arg)
}

type maxRule struct {
	max float64
	arg string
}

func maxFactory(args []string) (Rule, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: want a maximum, got none", ErrRuleArgs)
	}
	max, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrRuleArgs, args[0])
	}
	return maxRule{max: max, arg: args[0]}, nil
}

func (r maxRule) Passes(value any) bool {
	f, ok := numericValue(value)
	return ok && f <= r.max
}

func (r maxRule) Message() string {
	return fmt.Sprintf("must be at most %s", r.arg)
}

// between is strict on both ends: the bounds themselves fail. Use
// min and max together for an inclusive range.
type betweenRule struct {
	low, high       float64
	lowArg, highArg string
}

func betweenFactory(args []string) (Rule, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: want a lower and an upper bound, got %d argument(s)", ErrRuleArgs, len(args))
	}
	low, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrRuleArgs, args[0])
	}
	high, err := cast.ToFloat64E(args[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrRuleArgs, args[1])
	}
	return betweenRule{low: low, high: high, lowArg: args[0], highArg: args[1]}, nil
}

func (r betweenRule) Passes(value any) bool {
	f, ok := numericValue(value)
	return ok && f > r.low && f < r.high
}

func (r betweenRule) Message() string {
	return fmt.Sprintf("must be between %s and %s", r.lowArg, r.highArg)
}

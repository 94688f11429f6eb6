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
	"slices"
	"strings"

	"github.com/spf13/cast"
)

// The comparison rules compare string forms, because spec arguments
// only exist as strings. cast gives values their canonical string
// form, so equalTo:5 matches the int 5, the string "5" and the
// uint8 5 alike.

type equalToRule struct{ want string }

func equalToFactory(args []string) (Rule, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: want a value to compare against, got none", ErrRuleArgs)
	}
	return equalToRule{want: args[0]}, nil
}

func (r equalToRule) Passes(value any) bool {
	s, err := cast.ToStringE(value)
	return err == nil && s == r.want
}

func (r equalToRule) Message() string {
	return fmt.Sprintf("must equal %s", r.want)
}

type notEqualToRule struct{ want string }

func notEqualToFactory(args []string) (Rule, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: want a value to compare against, got none", ErrRuleArgs)
	}
	return notEqualToRule{want: args[0]}, nil
}

func (r notEqualToRule) Passes(value any) bool {
	s, err := cast.ToStringE(value)
	return err != nil || s != r.want
}

func (r notEqualToRule) Message() string {
	return fmt.Sprintf("must not equal %s", r.want)
}

// inList with an empty list rejects everything; the list is the
// whole point.
type inListRule struct{ list []string }

func inListFactory(args []string) (Rule, error) {
	return inListRule{list: args}, nil
}

func (r inListRule) Passes(value any) bool {
	s, err := cast.ToStringE(value)
	return err == nil && slices.Contains(r.list, s)
}

func (r inListRule) Message() string {
	return fmt.Sprintf("must be one of [%s]", strings.Join(r.list, ", "))
}

type notInListRule struct{ list []string }

func notInListFactory(args []string) (Rule, error) {
	return notInListRule{list: args}, nil
}

func (r notInListRule) Passes(value any) bool {
	s, err := cast.ToStringE(value)
	return err != nil || !slices.Contains(r.list, s)
}

func (r notInListRule) Message() string {
	return fmt.Sprintf("must not be one of [%s]", strings.Join(r.list, ", "))
}

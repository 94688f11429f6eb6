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
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Extras returns optional rules that are not part of the default
// catalog. Register the ones you need, under these names or your
// own:
//
//	v := validation.MustNew(validation.WithRules(validation.Extras()))
//	err := v.Validate(id, "required|uuid")
//
// The extra catalog:
//
//	uuid         RFC 4122 UUID, any version
//	json         well-formed JSON document
//	date         parseable date, see below
//	phone        E.164 phone number
func Extras() map[string]Factory {
	return map[string]Factory{
		"uuid":  uuidFactory,
		"json":  jsonFactory,
		"date":  dateFactory,
		"phone": phoneFactory,
	}
}

type uuidRule struct{}

func uuidFactory([]string) (Rule, error) { return uuidRule{}, nil }

func (uuidRule) Passes(value any) bool {
	s, ok := stringValue(value)
	if !ok {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func (uuidRule) Message() string { return "must be a valid UUID" }

type jsonRule struct{}

func jsonFactory([]string) (Rule, error) { return jsonRule{}, nil }

func (jsonRule) Passes(value any) bool {
	s, ok := stringValue(value)
	return ok && json.Valid([]byte(s))
}

func (jsonRule) Message() string { return "must be valid JSON" }

// date accepts a time.Time as-is and tries reference layouts on
// strings. With no argument the common layouts below are tried; with
// one, only that layout. The arguments are rejoined with ':' before
// use, so layouts with a time component ("2006-01-02 15:04:05")
// survive the spec grammar.
var commonDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

type dateRule struct{ layouts []string }

func dateFactory(args []string) (Rule, error) {
	if len(args) == 0 {
		return dateRule{layouts: commonDateLayouts}, nil
	}
	return dateRule{layouts: []string{strings.Join(args, ":")}}, nil
}

func (r dateRule) Passes(value any) bool {
	if _, ok := value.(time.Time); ok {
		return true
	}
	s, ok := stringValue(value)
	if !ok {
		return false
	}
	for _, layout := range r.layouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func (r dateRule) Message() string { return "must be a valid date" }

var phonePattern = regexp.MustCompile(`^\+?[1-9][0-9]{1,14}$`)

type phoneRule struct{}

func phoneFactory([]string) (Rule, error) { return phoneRule{}, nil }

func (phoneRule) Passes(value any) bool {
	s, ok := stringValue(value)
	if !ok {
		return false
	}
	s = strings.NewReplacer(" ", "", "-", "").Replace(s)
	return phonePattern.MatchString(s)
}

func (phoneRule) Message() string { return "must be a valid phone number" }

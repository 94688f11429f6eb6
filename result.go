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
	"strings"
)

// Entry is a single recorded rule failure. Field is empty for plain
// value validation and carries the field name for struct, schema and
// map validation.
type Entry struct {
	Field   string `json:"field,omitempty"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (e Entry) describe() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Rule, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Field, e.Rule, e.Message)
}

// Result aggregates rule failures in evaluation order: one entry per
// (field, rule) pair that failed, and no entry for anything that
// passed. Re-recording an existing pair replaces the message in
// place, so an entry keeps the position of its first failure.
//
// Result implements error and unwraps to [ErrValidation]; recover it
// from an error with errors.As:
//
//	if err := validation.Validate(v, spec); err != nil {
//	    var result *validation.Result
//	    if errors.As(err, &result) {
//	        for rule, msg := range result.Messages() {
//	            fmt.Println(rule, msg)
//	        }
//	    }
//	}
//
// The struct marshals to JSON as {"errors": [...]}, ready for API
// responses.
type Result struct {
	Entries []Entry `json:"errors"`
}

// Error formats the failures for logs: the single entry's text when
// there is one, a joined summary otherwise.
func (r *Result) Error() string {
	switch len(r.Entries) {
	case 0:
		return "validation failed"
	case 1:
		return "validation failed: " + r.Entries[0].describe()
	}
	parts := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		parts = append(parts, e.describe())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap returns [ErrValidation] so errors.Is(err, ErrValidation)
// matches any Result.
func (r *Result) Unwrap() error { return ErrValidation }

// Empty reports whether no failure is recorded. A nil Result is
// empty.
func (r *Result) Empty() bool { return r == nil || len(r.Entries) == 0 }

// Len returns the number of recorded failures.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Entries)
}

// Has reports whether the named rule recorded a failure for any
// field.
func (r *Result) Has(rule string) bool {
	_, ok := r.Get(rule)
	return ok
}

// Get returns the first recorded message for the named rule.
func (r *Result) Get(rule string) (string, bool) {
	if r == nil {
		return "", false
	}
	for _, e := range r.Entries {
		if e.Rule == rule {
			return e.Message, true
		}
	}
	return "", false
}

// Messages returns the failures as a map of rule name to message.
// When several fields failed the same rule the last one wins; use
// Entries or [Result.FieldMessages] when fields matter.
func (r *Result) Messages() map[string]string {
	if r == nil {
		return nil
	}
	messages := make(map[string]string, len(r.Entries))
	for _, e := range r.Entries {
		messages[e.Rule] = e.Message
	}
	return messages
}

// Fields returns the distinct field names that recorded failures, in
// first-failure order.
func (r *Result) Fields() []string {
	if r == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(r.Entries))
	fields := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		if _, ok := seen[e.Field]; ok {
			continue
		}
		seen[e.Field] = struct{}{}
		fields = append(fields, e.Field)
	}
	return fields
}

// FieldMessages groups failure messages by field name, each field's
// messages in evaluation order.
func (r *Result) FieldMessages() map[string][]string {
	if r == nil {
		return nil
	}
	grouped := make(map[string][]string)
	for _, e := range r.Entries {
		grouped[e.Field] = append(grouped[e.Field], e.Message)
	}
	return grouped
}

// set records a failure. An existing (field, rule) entry keeps its
// position and takes the new message.
func (r *Result) set(field, rule, message string) {
	for i, e := range r.Entries {
		if e.Field == field && e.Rule == rule {
			r.Entries[i].Message = message
			return
		}
	}
	r.Entries = append(r.Entries, Entry{Field: field, Rule: rule, Message: message})
}

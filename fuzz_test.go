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
	"strings"
	"testing"
)

// FuzzParseSpec checks the parser against arbitrary spec strings. It
// must never panic, and rejoining the invocations with the grammar's
// own delimiters must reproduce the input exactly: the parser keeps
// every byte, it only splits.
func FuzzParseSpec(f *testing.F) {
	f.Add("")
	f.Add("required")
	f.Add("required|string|minLength:3")
	f.Add("between:1:10")
	f.Add("inList:red:green:blue")
	f.Add("min:")
	f.Add(":")
	f.Add("|")
	f.Add("a||b")
	f.Add("regex:^[a-z]+$")
	f.Add("unicode|équalTo:héllo")
	f.Add("emoji:🎉|required")
	f.Add("name with spaces:arg with spaces")
	f.Add(strings.Repeat("required|", 100))

	f.Fuzz(func(t *testing.T, spec string) {
		invocations := ParseSpec(spec)

		if spec == "" {
			if len(invocations) != 0 {
				t.Fatalf("empty spec produced %d invocations", len(invocations))
			}
			return
		}

		segments := make([]string, 0, len(invocations))
		for _, inv := range invocations {
			segment := inv.Name
			if len(inv.Args) > 0 {
				segment += ":" + strings.Join(inv.Args, ":")
			}
			segments = append(segments, segment)
		}
		if rejoined := strings.Join(segments, "|"); rejoined != spec {
			t.Errorf("rejoined %q, want %q", rejoined, spec)
		}
	})
}

// FuzzValidate throws arbitrary values and specs at the engine. It
// must never panic, and every error it returns must be one of the
// documented kinds: a *Result or a *RuleError.
func FuzzValidate(f *testing.F) {
	f.Add("hello", "required|string|minLength:3")
	f.Add("", "required")
	f.Add("5", "between:1:10")
	f.Add("x", "bogusRule|alpha")
	f.Add("v", "minLength:x")
	f.Add("v", "regex:(")
	f.Add("user@example.com", "email")
	f.Add("日本語", "minLength:3|maxLength:3")
	f.Add("🎉", "alpha")
	f.Add("", "")
	f.Add("a", "equalTo:a|notEqualTo:b|inList:a:b")
	f.Add("1e300", "numeric|max:1e400")
	f.Add("x", "|||")
	f.Add("x", strings.Repeat(":", 50))

	f.Fuzz(func(t *testing.T, value, spec string) {
		err := Validate(value, spec)
		if err == nil {
			return
		}

		var result *Result
		var ruleErr *RuleError
		switch {
		case errors.As(err, &result):
			if result.Empty() {
				t.Error("returned an empty result as an error")
			}
			if !errors.Is(err, ErrValidation) {
				t.Error("result does not unwrap to ErrValidation")
			}
		case errors.As(err, &ruleErr):
			if errors.Is(err, ErrValidation) {
				t.Error("rule error reads as a validation failure")
			}
		default:
			t.Errorf("unexpected error type: %T", err)
		}
	})
}

// FuzzChecker exercises the accumulating engine with pairs of calls
// and checks that the verdict is consistent with the accumulated
// result.
func FuzzChecker(f *testing.F) {
	f.Add("", "required", "ok", "required")
	f.Add("a", "alpha", "1", "alpha")
	f.Add("x", "bogus", "y", "bogus")
	f.Add("", "minLength:2", "", "maxLength:2")

	f.Fuzz(func(t *testing.T, firstValue, firstSpec, secondValue, secondSpec string) {
		c := NewChecker()

		firstOK, err := c.Validate(firstValue, firstSpec)
		if err != nil {
			return
		}
		secondOK, err := c.Validate(secondValue, secondSpec)
		if err != nil {
			return
		}

		if !firstOK && secondOK {
			t.Error("verdict recovered without Reset")
		}
		if secondOK != c.Passes() {
			t.Error("Validate verdict and Passes disagree")
		}
		if c.Passes() == c.Fails() {
			t.Error("Passes and Fails agree")
		}
	})
}

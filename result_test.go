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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Set(t *testing.T) {
	t.Parallel()

	t.Run("keeps evaluation order", func(t *testing.T) {
		t.Parallel()

		var r Result
		r.set("", "required", "is required")
		r.set("", "minLength", "must be at least 3 characters")

		require.Len(t, r.Entries, 2)
		assert.Equal(t, "required", r.Entries[0].Rule)
		assert.Equal(t, "minLength", r.Entries[1].Rule)
	})

	t.Run("same rule replaces message in place", func(t *testing.T) {
		t.Parallel()

		var r Result
		r.set("", "min", "must be at least 1")
		r.set("", "max", "must be at most 9")
		r.set("", "min", "must be at least 2")

		require.Len(t, r.Entries, 2)
		assert.Equal(t, "min", r.Entries[0].Rule)
		assert.Equal(t, "must be at least 2", r.Entries[0].Message)
		assert.Equal(t, "max", r.Entries[1].Rule)
	})

	t.Run("same rule on different fields stays distinct", func(t *testing.T) {
		t.Parallel()

		var r Result
		r.set("Name", "required", "is required")
		r.set("Email", "required", "is required")

		assert.Equal(t, 2, r.Len())
		assert.Equal(t, []string{"Name", "Email"}, r.Fields())
	})
}

func TestResult_Accessors(t *testing.T) {
	t.Parallel()

	var r Result
	r.set("Name", "required", "is required")
	r.set("Name", "minLength", "must be at least 2 characters")
	r.set("Age", "integer", "must be an integer")

	t.Run("has and get", func(t *testing.T) {
		t.Parallel()

		assert.True(t, r.Has("required"))
		assert.False(t, r.Has("email"))

		msg, ok := r.Get("integer")
		require.True(t, ok)
		assert.Equal(t, "must be an integer", msg)

		_, ok = r.Get("email")
		assert.False(t, ok)
	})

	t.Run("messages keys by rule", func(t *testing.T) {
		t.Parallel()

		messages := r.Messages()
		assert.Len(t, messages, 3)
		assert.Equal(t, "is required", messages["required"])
	})

	t.Run("field messages group in order", func(t *testing.T) {
		t.Parallel()

		grouped := r.FieldMessages()
		assert.Equal(t, []string{"is required", "must be at least 2 characters"}, grouped["Name"])
		assert.Equal(t, []string{"must be an integer"}, grouped["Age"])
	})

	t.Run("empty and len", func(t *testing.T) {
		t.Parallel()

		assert.False(t, r.Empty())
		assert.Equal(t, 3, r.Len())

		var nilResult *Result
		assert.True(t, nilResult.Empty())
		assert.Equal(t, 0, nilResult.Len())
	})
}

func TestResult_ErrorString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []Entry
		want    string
	}{
		{
			name: "no entries",
			want: "validation failed",
		},
		{
			name:    "single plain entry",
			entries: []Entry{{Rule: "required", Message: "is required"}},
			want:    "validation failed: required: is required",
		},
		{
			name: "multiple entries joined",
			entries: []Entry{
				{Field: "Name", Rule: "required", Message: "is required"},
				{Field: "Age", Rule: "min", Message: "must be at least 18"},
			},
			want: "validation failed: Name: required: is required; Age: min: must be at least 18",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := &Result{Entries: tt.entries}
			assert.Equal(t, tt.want, r.Error())
		})
	}
}

func TestResult_Unwrap(t *testing.T) {
	t.Parallel()

	var r Result
	r.set("", "required", "is required")

	var err error = &r
	assert.ErrorIs(t, err, ErrValidation)

	var target *Result
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 1, target.Len())
}

func TestResult_JSON(t *testing.T) {
	t.Parallel()

	var r Result
	r.set("Email", "email", "must be a valid email address")

	data, err := json.Marshal(&r)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"errors":[{"field":"Email","rule":"email","message":"must be a valid email address"}]}`,
		string(data))

	t.Run("field omitted for plain values", func(t *testing.T) {
		t.Parallel()

		var plain Result
		plain.set("", "required", "is required")

		data, err := json.Marshal(&plain)
		require.NoError(t, err)
		assert.JSONEq(t, `{"errors":[{"rule":"required","message":"is required"}]}`, string(data))
	})
}

func TestRuleError(t *testing.T) {
	t.Parallel()

	t.Run("formats args and cause", func(t *testing.T) {
		t.Parallel()

		err := &RuleError{Rule: "minLength", Args: []string{"x"}, Err: ErrRuleArgs}
		assert.Contains(t, err.Error(), `"minLength"`)
		assert.Contains(t, err.Error(), "x")
		assert.ErrorIs(t, err, ErrRuleArgs)
	})

	t.Run("no args variant", func(t *testing.T) {
		t.Parallel()

		err := &RuleError{Rule: "bogus", Err: ErrUnknownRule}
		assert.Equal(t, `rule "bogus": unknown rule`, err.Error())
	})

	t.Run("is not a validation failure", func(t *testing.T) {
		t.Parallel()

		err := &RuleError{Rule: "regex", Args: []string{"("}, Err: ErrRuleArgs}
		assert.False(t, errors.Is(err, ErrValidation))
	})
}

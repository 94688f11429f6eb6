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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passRule and failRule are fixed-verdict rules for engine tests.
type passRule struct{}

func (passRule) Passes(any) bool { return true }
func (passRule) Message() string { return "never shown" }

type failRule struct{ msg string }

func (r failRule) Passes(any) bool { return false }
func (r failRule) Message() string { return r.msg }

func passFactory([]string) (Rule, error) { return passRule{}, nil }

func failFactory(msg string) Factory {
	return func([]string) (Rule, error) { return failRule{msg: msg}, nil }
}

func TestNewRegistry_SeededWithBuiltins(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	builtins := []string{
		"alpha", "alphaNum", "between", "domain", "email", "equalTo",
		"inList", "integer", "maxLength", "max", "minLength", "min",
		"notEqualTo", "notInList", "numeric", "regex", "required",
		"string", "url",
	}
	for _, name := range builtins {
		_, ok := r.Resolve(name)
		assert.True(t, ok, "builtin %q missing", name)
	}
	assert.Len(t, r.Names(), len(builtins))
}

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	_, ok := r.Resolve("required")
	assert.True(t, ok)

	_, ok = r.Resolve("bogusRule")
	assert.False(t, ok)

	// Names are case-sensitive.
	_, ok = r.Resolve("Required")
	assert.False(t, ok)
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("new name", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		r.Register("even", passFactory)

		factory, ok := r.Resolve("even")
		require.True(t, ok)

		rule, err := factory(nil)
		require.NoError(t, err)
		assert.True(t, rule.Passes(2))
	})

	t.Run("last registration wins", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		r.Register("check", failFactory("first"))
		r.Register("check", failFactory("second"))

		factory, ok := r.Resolve("check")
		require.True(t, ok)

		rule, err := factory(nil)
		require.NoError(t, err)
		assert.Equal(t, "second", rule.Message())
	})

	t.Run("overrides a builtin", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		r.Register("string", failFactory("replaced"))

		factory, _ := r.Resolve("string")
		rule, err := factory(nil)
		require.NoError(t, err)
		assert.False(t, rule.Passes("still a string"))
	})
}

func TestRegistry_RegisterAll(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.RegisterAll(map[string]Factory{
		"even": passFactory,
		"odd":  passFactory,
	})

	_, ok := r.Resolve("even")
	assert.True(t, ok)
	_, ok = r.Resolve("odd")
	assert.True(t, ok)
}

func TestRegistry_Names_Sorted(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("zebra", passFactory)
	r.Register("aardvark", passFactory)

	names := r.Names()
	assert.True(t, slices.IsSorted(names))
	assert.Contains(t, names, "aardvark")
	assert.Contains(t, names, "zebra")
}

func TestRegistry_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	original := NewRegistry()
	copied := original.clone()

	copied.Register("even", passFactory)
	_, ok := original.Resolve("even")
	assert.False(t, ok, "registration on the clone reached the original")

	original.Register("odd", passFactory)
	_, ok = copied.Resolve("odd")
	assert.False(t, ok, "registration on the original reached the clone")
}

func TestBuiltins_FreshCopies(t *testing.T) {
	t.Parallel()

	a := Builtins()
	b := Builtins()

	delete(a, "required")
	_, ok := b["required"]
	assert.True(t, ok, "mutating one copy affected another")
}

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
	"maps"
	"slices"
)

// Registry resolves rule names to their [Factory]. A fresh registry
// starts with the built-in catalog; Register and RegisterAll replace
// bindings wholesale, so the most recent registration for a name
// wins, built-ins included.
//
// A Registry is not synchronized. Validators clone the registry they
// are configured with at construction time, so the usual pattern of
// registering everything up front and validating from many goroutines
// needs no locking.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry seeded with [Builtins].
func NewRegistry() *Registry {
	return &Registry{factories: Builtins()}
}

// Register binds name to factory, replacing any existing binding of
// that name.
func (r *Registry) Register(name string, factory Factory) {
	r.factories[name] = factory
}

// RegisterAll binds every entry in factories. Equivalent to calling
// Register once per entry.
func (r *Registry) RegisterAll(factories map[string]Factory) {
	maps.Copy(r.factories, factories)
}

// Resolve looks up the factory bound to name. Resolution is a pure
// table lookup; an absent name is not an error here. The engine
// decides whether to skip it or fail, depending on strict mode.
func (r *Registry) Resolve(name string) (Factory, bool) {
	factory, ok := r.factories[name]
	return factory, ok
}

// Names returns the registered rule names, sorted.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.factories))
}

// clone returns an independent copy so per-validator registrations
// never leak back into the source registry.
func (r *Registry) clone() *Registry {
	return &Registry{factories: maps.Clone(r.factories)}
}

// Builtins returns a fresh copy of the default rule catalog. The
// returned map is the caller's to mutate; registries seeded with it
// stay independent of each other.
//
// The catalog (names are case-sensitive):
//
//	alpha              letters only
//	alphaNum           letters and digits only
//	between:low:high   numeric, strictly between the bounds
//	domain             fully qualified domain name
//	email              e-mail address
//	equalTo:want       equals want (compared as strings)
//	inList:a:b:...     member of the listed values
//	integer            integer value or integer string
//	maxLength:n        at most n characters or elements
//	max:n              numeric, at most n
//	minLength:n        at least n characters or elements
//	min:n              numeric, at least n
//	notEqualTo:want    differs from want
//	notInList:a:b:...  not a member of the listed values
//	numeric            numeric value or numeric string
//	regex:pattern      matches the pattern
//	required           present and non-empty
//	string             value of string kind
//	url                absolute URL
func Builtins() map[string]Factory {
	return map[string]Factory{
		"alpha":      alphaFactory,
		"alphaNum":   alphaNumFactory,
		"between":    betweenFactory,
		"domain":     domainFactory,
		"email":      emailFactory,
		"equalTo":    equalToFactory,
		"inList":     inListFactory,
		"integer":    integerFactory,
		"maxLength":  maxLengthFactory,
		"max":        maxFactory,
		"minLength":  minLengthFactory,
		"min":        minFactory,
		"notEqualTo": notEqualToFactory,
		"notInList":  notInListFactory,
		"numeric":    numericFactory,
		"regex":      regexFactory,
		"required":   requiredFactory,
		"string":     stringFactory,
		"url":        urlFactory,
	}
}

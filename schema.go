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
)

// ValidateStruct evaluates the rule specs declared in s's struct
// tags against the field values of s itself.
//
//	type Signup struct {
//	    Name  string `validate:"required|alpha|minLength:2"`
//	    Email string `validate:"required|email"`
//	    Age   int    `validate:"integer|between:17:131"`
//	}
//
//	err := v.ValidateStruct(&Signup{Name: "Ada", Email: "ada@example.org", Age: 36})
//
// Failures aggregate into one [*Result] in field declaration order,
// each entry carrying the field name. Unexported and untagged fields
// are skipped; a spec that cannot be evaluated surfaces as a
// [*RuleError] exactly as in [Validator.Validate]. s must be a
// struct or a non-nil pointer to one.
func (v *Validator) ValidateStruct(s any, opts ...Option) error {
	cfg := applyOptions(v.cfg, opts...)
	rv, err := structValue(s)
	if err != nil {
		return err
	}
	var result Result
	rt := rv.Type()
	for i := range rt.NumField() {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		spec, ok := field.Tag.Lookup(cfg.tagName)
		if !ok || spec == "" {
			continue
		}
		if err := evalSpec(&result, field.Name, rv.Field(i).Interface(), spec, cfg); err != nil {
			return err
		}
	}
	if result.Empty() {
		return nil
	}
	return &result
}

// ValidateZero evaluates T's tag-declared rules against a zero T. It
// answers a question about the type, not about data: which
// constraints does an unpopulated T already violate? Any field
// reported here (required strings, lower bounds above zero) must be
// populated before a real instance can pass.
//
// To validate actual data, use [ValidateStruct], which reads the
// instance you give it.
func ValidateZero[T any](opts ...Option) error {
	var zero T
	return getDefaultValidator().ValidateStruct(&zero, opts...)
}

// structValue unwraps s to its struct value.
func structValue(s any) (reflect.Value, error) {
	if s == nil {
		return reflect.Value{}, ErrNilValue
	}
	v := reflect.ValueOf(s)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, ErrNilValue
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %T", ErrNotStruct, s)
	}
	return v, nil
}

// Schema declares field constraints in code instead of struct tags:
// rule specs, or ready rule instances, attached to field names.
// Declaration order is evaluation order. Useful when the struct is
// not yours to tag, or when rules are assembled at runtime.
//
//	schema := validation.NewSchema().
//	    Field("Email", "required|email").
//	    Field("Age", "integer|min:18").
//	    FieldRules("Plan", planRule{})
//
//	err := schema.Validate(&signup)
//
// A Schema owns its catalog; build it, then share it. Validate does
// not mutate.
type Schema struct {
	cfg    *config
	fields []schemaField
}

type schemaField struct {
	name  string
	spec  string
	rules []Rule
}

// NewSchema creates an empty schema with the built-in catalog and
// the given options applied.
func NewSchema(opts ...Option) *Schema {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Schema{cfg: cfg}
}

// Field appends a rule-spec chain for the named struct field.
func (s *Schema) Field(name, spec string) *Schema {
	s.fields = append(s.fields, schemaField{name: name, spec: spec})
	return s
}

// FieldRules appends ready rule instances for the named struct
// field. Instances bypass the catalog entirely, which suits one-off
// rules that never earn a registered name. Result entries are keyed
// by the rule's Name() method when it has one, by its Go type name
// otherwise.
func (s *Schema) FieldRules(name string, rules ...Rule) *Schema {
	s.fields = append(s.fields, schemaField{name: name, rules: rules})
	return s
}

// Validate evaluates the declared constraints against the field
// values of value. Unlike tag validation, naming a field the struct
// does not expose is an error wrapping [ErrUnknownField]; schema
// drift is a bug to surface, not a case to skip.
func (s *Schema) Validate(value any) error {
	rv, err := structValue(value)
	if err != nil {
		return err
	}
	var result Result
	for _, f := range s.fields {
		sf, ok := rv.Type().FieldByName(f.name)
		if !ok || !sf.IsExported() {
			return fmt.Errorf("field %q: %w", f.name, ErrUnknownField)
		}
		fieldValue := rv.FieldByIndex(sf.Index).Interface()
		if f.spec != "" {
			if err := evalSpec(&result, f.name, fieldValue, f.spec, s.cfg); err != nil {
				return err
			}
		}
		for _, rule := range f.rules {
			if !rule.Passes(fieldValue) {
				key := ruleKey(rule)
				result.set(f.name, key, s.cfg.messageFor(key, rule))
			}
		}
	}
	if result.Empty() {
		return nil
	}
	return &result
}

// ruleKey names a rule for result entries: the rule's own Name()
// when it provides one, its Go type name otherwise.
func ruleKey(rule Rule) string {
	if named, ok := rule.(interface{ Name() string }); ok {
		return named.Name()
	}
	t := reflect.TypeOf(rule)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

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
	"reflect"
	"unicode/utf8"

	"github.com/spf13/cast"
)

// Coercion helpers shared by the built-in rules. Rules see values as
// any and decide per rule how liberal to be: string rules accept any
// string kind (named string types included), numeric rules accept
// numeric kinds plus numeric strings, and everything else fails the
// rule rather than erroring.

// stringValue returns the string form of value when its dynamic kind
// is a string.
func stringValue(value any) (string, bool) {
	if value == nil {
		return "", false
	}
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.String {
		return "", false
	}
	return v.String(), true
}

// numericValue returns value as a float64 when it is of a numeric
// kind, or a string that parses as a number. Booleans deliberately
// do not count, even though they cast.
func numericValue(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		f, err := cast.ToFloat64E(value)
		return f, err == nil
	}
	return 0, false
}

// lengthOf returns the length of value: rune count for strings,
// element count for slices, arrays and maps. Anything else has no
// length and fails length rules.
func lengthOf(value any) (int, bool) {
	if value == nil {
		return 0, false
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(v.String()), true
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len(), true
	}
	return 0, false
}

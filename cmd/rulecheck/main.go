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

// Rulecheck evaluates rule specs against values and documents from
// the command line.
//
// Usage:
//
//	# Validate values against a spec
//	rulecheck check --spec "required|email" ada@example.org nope
//
//	# Validate a JSON document against a YAML rule set
//	rulecheck data --rules rules.yaml input.json
//
//	# Same, reading the document from stdin, reporting as JSON
//	cat input.json | rulecheck data --rules rules.yaml --format json -
//
//	# List the rule catalog
//	rulecheck list
//
//	# Show version information
//	rulecheck version
package main

func main() {
	Execute()
}

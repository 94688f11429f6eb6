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

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"rulekit.dev/validation"
)

var dataFlags struct {
	rules  string
	format string
	strict bool
	extras bool
}

var dataCmd = &cobra.Command{
	Use:   "data --rules RULES DATA",
	Short: "Validate a document against a rule set",
	Long: `Validate the fields of a JSON or YAML document against a rule set.

The rule set maps field names to rule specs:

  name:  required|alpha|minLength:2
  email: required|email
  age:   integer|between:17:131

Fields the rule set names but the document lacks validate as absent,
so their required rules fail. Document fields without rules pass
untouched.

Examples:
  # Validate a file
  rulecheck data --rules rules.yaml input.json

  # Read the document from stdin
  cat input.json | rulecheck data --rules rules.yaml -

  # Machine-readable report
  rulecheck data --rules rules.yaml --format json input.json`,
	Args: cobra.ExactArgs(1),
	RunE: runData,
}

func init() {
	rootCmd.AddCommand(dataCmd)

	dataCmd.Flags().StringVarP(&dataFlags.rules, "rules", "r", "", "rule set file (YAML)")
	dataCmd.Flags().StringVar(&dataFlags.format, "format", "text", "output format: text, json")
	dataCmd.Flags().BoolVar(&dataFlags.strict, "strict", false, "fail on rule names the catalog cannot resolve")
	dataCmd.Flags().BoolVar(&dataFlags.extras, "extras", false, "register the extra rule catalog")
	_ = dataCmd.MarkFlagRequired("rules")
}

func runData(cmd *cobra.Command, args []string) error {
	rules, err := validation.LoadRuleSet(dataFlags.rules)
	if err != nil {
		return err
	}
	slog.Debug("loaded rule set", "path", dataFlags.rules, "fields", len(rules))

	raw, err := readDocument(args[0])
	if err != nil {
		return err
	}
	data, err := decodeDocument(raw, args[0])
	if err != nil {
		return err
	}

	v, err := buildValidator(dataFlags.strict, dataFlags.extras)
	if err != nil {
		return err
	}

	err = v.ValidateMap(data, rules)
	if err == nil {
		if dataFlags.format == "json" {
			fmt.Println(`{"valid":true}`)
		} else {
			fmt.Println("ok")
		}
		return nil
	}

	var result *validation.Result
	if !errors.As(err, &result) {
		return err
	}

	if dataFlags.format == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return err
		}
	} else {
		for _, entry := range result.Entries {
			fmt.Printf("FAIL  %s: %s (%s)\n", entry.Field, entry.Message, entry.Rule)
		}
	}
	return fmt.Errorf("%d field(s) failed validation", len(result.Fields()))
}

// decodeDocument parses the document's top-level mapping. YAML is a
// JSON superset, so one decoder covers both formats.
func decodeDocument(raw []byte, source string) (map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}
	return data, nil
}

// readDocument reads the positional document argument, with "-"
// meaning stdin.
func readDocument(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return data, nil
}

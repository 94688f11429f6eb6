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
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"rulekit.dev/validation"
)

var checkFlags struct {
	spec   string
	strict bool
	extras bool
}

var checkCmd = &cobra.Command{
	Use:   "check --spec SPEC VALUE...",
	Short: "Validate values against a rule spec",
	Long: `Validate one or more values against a single rule spec.

Values arrive as strings; numeric rules coerce them, so "18" satisfies
min:18 and between:17:131 alike.

Examples:
  # One value, one spec
  rulecheck check --spec "required|email" ada@example.org

  # Several values at once
  rulecheck check --spec "integer|between:17:131" 36 150 abc

  # Fail on unknown rule names
  rulecheck check --spec "required|emial" --strict ada@example.org

  # Include the extra catalog (uuid, json, date, phone)
  rulecheck check --spec uuid --extras 6ba7b810-9dad-11d1-80b4-00c04fd430c8`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFlags.spec, "spec", "s", "", `rule spec, e.g. "required|email"`)
	checkCmd.Flags().BoolVar(&checkFlags.strict, "strict", false, "fail on rule names the catalog cannot resolve")
	checkCmd.Flags().BoolVar(&checkFlags.extras, "extras", false, "register the extra rule catalog")
	_ = checkCmd.MarkFlagRequired("spec")
}

func runCheck(cmd *cobra.Command, args []string) error {
	v, err := buildValidator(checkFlags.strict, checkFlags.extras)
	if err != nil {
		return err
	}
	slog.Debug("checking values", "spec", checkFlags.spec, "count", len(args))

	failed := 0
	for _, value := range args {
		err := v.Validate(value, checkFlags.spec)
		if err == nil {
			fmt.Printf("ok    %s\n", value)
			continue
		}

		var result *validation.Result
		if !errors.As(err, &result) {
			// The spec itself is broken; no point trying more values.
			return err
		}
		failed++
		fmt.Printf("FAIL  %s\n", value)
		for _, entry := range result.Entries {
			fmt.Printf("      %s: %s\n", entry.Rule, entry.Message)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d value(s) failed validation", failed, len(args))
	}
	return nil
}

// buildValidator assembles the validator the subcommands share,
// honoring the strict and extras flags.
func buildValidator(strict, extras bool) (*validation.Validator, error) {
	opts := []validation.Option{
		validation.WithStrictRules(strict),
	}
	if extras {
		opts = append(opts, validation.WithRules(validation.Extras()))
	}
	return validation.New(opts...)
}

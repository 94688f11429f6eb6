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
	"fmt"

	"github.com/spf13/cobra"
)

var listFlags struct {
	extras bool
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the rules in the catalog",
	Long: `List the rule names check and data resolve against, one per line.

Examples:
  # The default catalog
  rulecheck list

  # Including the extra catalog
  rulecheck list --extras`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listFlags.extras, "extras", false, "include the extra rule catalog")
}

func runList(cmd *cobra.Command, args []string) error {
	v, err := buildValidator(false, listFlags.extras)
	if err != nil {
		return err
	}
	for _, name := range v.Rules() {
		fmt.Println(name)
	}
	return nil
}

// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
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

	"github.com/db47h/intcode/vm"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find [flags] program",
	Short: "Find the noun and verb producing a given output.",
	Args:  cobra.ExactArgs(1),
	RunE:  findNounVerb,
}

func init() {
	findCmd.Flags().Int64("target", 0, "expected `value` at address 0 once the program halts")
	findCmd.Flags().Int("max", 100, "search nouns and verbs in [0, `n`)")
	findCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(findCmd)
}

func findNounVerb(cmd *cobra.Command, args []string) error {
	mem, err := vm.Load(args[0])
	if err != nil {
		return err
	}
	opts, err := vmOptions(cmd)
	if err != nil {
		return err
	}
	target, _ := cmd.Flags().GetInt64("target")
	max, _ := cmd.Flags().GetInt("max")
	noun, verb, err := vm.FindNounVerb(mem, vm.Cell(target), max, opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), noun, verb)
	return err
}

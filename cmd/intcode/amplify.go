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
	"strconv"
	"strings"

	"github.com/db47h/intcode/amp"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var amplifyCmd = &cobra.Command{
	Use:   "amplify [flags] program",
	Short: "Find the phase settings producing the highest amplifier output.",
	Args:  cobra.ExactArgs(1),
	RunE:  amplify,
}

func init() {
	amplifyCmd.Flags().String("phases", "", "phase settings `lo-hi` (default 0-4, or 5-9 with --feedback)")
	amplifyCmd.Flags().Bool("feedback", false, "run amplifiers in a feedback loop")
	rootCmd.AddCommand(amplifyCmd)
}

// parsePhases parses a lo-hi phase range.
func parsePhases(s string) ([]vm.Cell, error) {
	l, h, ok := strings.Cut(s, "-")
	if !ok {
		return nil, errors.Errorf("invalid phase range %q: expected lo-hi", s)
	}
	lo, err := strconv.ParseInt(strings.TrimSpace(l), 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid phase range %q", s)
	}
	hi, err := strconv.ParseInt(strings.TrimSpace(h), 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid phase range %q", s)
	}
	if hi < lo {
		return nil, errors.Errorf("invalid phase range %q: empty range", s)
	}
	return amp.PhaseRange(vm.Cell(lo), vm.Cell(hi)), nil
}

func amplify(cmd *cobra.Command, args []string) error {
	mem, err := vm.Load(args[0])
	if err != nil {
		return err
	}
	opts, err := vmOptions(cmd)
	if err != nil {
		return err
	}
	feedback := getFlag(cmd, "feedback")
	s, _ := cmd.Flags().GetString("phases")
	if s == "" {
		s = "0-4"
		if feedback {
			s = "5-9"
		}
	}
	phases, err := parsePhases(s)
	if err != nil {
		return err
	}
	r, err := amp.Search(mem, phases, feedback, opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), r)
	return err
}

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
	"os"
	"strconv"
	"strings"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "intcode",
	Short:         "An Intcode virtual machine and toolbox.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging and full error stack traces")
	rootCmd.PersistentFlags().Int64("max-steps", 0, "abort after executing `n` instructions in a single run (0 = no limit)")
}

func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return r
}

// vmOptions returns the VM options set by global flags.
func vmOptions(cmd *cobra.Command) ([]vm.Option, error) {
	n, err := cmd.Flags().GetInt64("max-steps")
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return []vm.Option{vm.MaxSteps(n)}, nil
}

// parsePatch parses an addr=value memory patch.
func parsePatch(s string) (vm.Option, error) {
	a, v, ok := strings.Cut(s, "=")
	if !ok {
		return nil, errors.Errorf("invalid patch %q: expected addr=value", s)
	}
	addr, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid patch %q", s)
	}
	val, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid patch %q", s)
	}
	return vm.Patch(addr, vm.Cell(val)), nil
}

func atExit(err error) {
	if err == nil {
		return
	}
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Errorf("%+v", err)
	} else {
		log.Error(err)
	}
	os.Exit(1)
}

func main() {
	atExit(rootCmd.Execute())
}

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
	"bufio"
	"io"
	"os"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] program",
	Short: "Run an Intcode program.",
	Args:  cobra.ExactArgs(1),
	RunE:  runProgram,
}

func init() {
	runCmd.Flags().String("input", "", "run in batch mode with the given comma separated input `values`")
	runCmd.Flags().StringArray("set", nil, "set memory cell `addr=value` before running (can be specified multiple times)")
	runCmd.Flags().Bool("dump", false, "dump memory as program text upon exit")
	runCmd.Flags().Bool("prompt", false, "prompt for input even if stdin is not a terminal")
	rootCmd.AddCommand(runCmd)
}

// isTerminal returns the file descriptor of r and whether it is a terminal.
func isTerminal(r io.Reader) (uintptr, bool) {
	f, ok := r.(*os.File)
	if !ok {
		return 0, false
	}
	return f.Fd(), term.IsTerminal(int(f.Fd()))
}

func runProgram(cmd *cobra.Command, args []string) (err error) {
	mem, err := vm.Load(args[0])
	if err != nil {
		return err
	}
	opts, err := vmOptions(cmd)
	if err != nil {
		return err
	}
	patches, err := cmd.Flags().GetStringArray("set")
	if err != nil {
		return err
	}
	for _, s := range patches {
		p, err := parsePatch(s)
		if err != nil {
			return err
		}
		opts = append(opts, p)
	}

	stdout := bufio.NewWriter(cmd.OutOrStdout())
	defer func() {
		if e := stdout.Flush(); err == nil {
			err = errors.Wrap(e, "flush output")
		}
	}()

	batch := cmd.Flags().Changed("input")
	if batch {
		in, _ := cmd.Flags().GetString("input")
		if in != "" {
			values, err := vm.ParseString(in)
			if err != nil {
				return errors.Wrap(err, "invalid input")
			}
			opts = append(opts, vm.Input(values.Cells()...))
		}
	} else {
		stdin := cmd.InOrStdin()
		fd, tty := isTerminal(stdin)
		if tty {
			restore, err := setLineIO(fd)
			if err != nil {
				log.WithError(err).Debug("line mode not available")
			} else {
				defer restore()
			}
		}
		opts = append(opts, vm.InteractiveInput(stdin), vm.Output(stdout))
		if tty || getFlag(cmd, "prompt") {
			opts = append(opts, vm.Prompt(stdout))
		}
	}

	i, err := vm.New(mem, opts...)
	if err != nil {
		return err
	}
	err = i.Run()
	log.WithFields(log.Fields{
		"status": i.Status(),
		"pc":     i.PC(),
		"steps":  i.InstructionCount(),
	}).Debug("run done")
	if !batch && errors.Is(err, io.EOF) {
		// end of interactive input
		err = nil
	}

	// print whatever got logged, even if the run failed
	ew := ici.NewErrWriter(stdout)
	for _, v := range i.Output() {
		ew.WriteInt(int64(v))
		ew.WriteString("\n")
	}
	if err != nil {
		return err
	}
	if ew.Err != nil {
		return ew.Err
	}
	if getFlag(cmd, "dump") {
		return i.Mem().Dump(stdout)
	}
	return nil
}

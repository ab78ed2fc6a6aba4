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

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var asmCmd = &cobra.Command{
	Use:   "asm [-o file] source",
	Short: "Assemble a program.",
	Args:  cobra.ExactArgs(1),
	RunE:  assemble,
}

var disasmCmd = &cobra.Command{
	Use:   "disasm program",
	Short: "Disassemble a program.",
	Args:  cobra.ExactArgs(1),
	RunE:  disassemble,
}

func init() {
	asmCmd.Flags().StringP("output", "o", "", "write program text to `file`")
	rootCmd.AddCommand(asmCmd, disasmCmd)
}

func assemble(cmd *cobra.Command, args []string) (err error) {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	cells, err := asm.Assemble(args[0], f)
	if err != nil {
		if ea, ok := err.(asm.ErrAsm); ok {
			for _, e := range ea {
				log.Error(e)
			}
			return errors.Errorf("%s: assembly failed", args[0])
		}
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if name, _ := cmd.Flags().GetString("output"); name != "" {
		out, err := os.Create(name)
		if err != nil {
			return err
		}
		defer func() {
			if e := out.Close(); err == nil && e != nil {
				err = errors.Wrap(e, "close output")
			}
		}()
		w = out
	}
	bw := bufio.NewWriter(w)
	if err = vm.NewMemory(cells...).Dump(bw); err != nil {
		return err
	}
	return bw.Flush()
}

func disassemble(cmd *cobra.Command, args []string) error {
	mem, err := vm.Load(args[0])
	if err != nil {
		return err
	}
	w := bufio.NewWriter(cmd.OutOrStdout())
	if err = asm.DisassembleAll(mem.Cells(), 0, w); err != nil {
		return err
	}
	return w.Flush()
}

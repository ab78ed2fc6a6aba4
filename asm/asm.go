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

package asm

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// Error is an assembly error at a given position in the source.
type Error struct {
	Pos scanner.Position
	Msg string
}

func (e Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm is the error type returned by Assemble. It holds up to 10 errors.
type ErrAsm []Error

func (e ErrAsm) Error() string {
	var b strings.Builder
	for i, err := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) ([]vm.Cell, error) {
	p := newParser()
	return p.Parse(name, r)
}

// validModes checks that the parameter modes of ins are valid for its opcode.
func validModes(ins vm.Instruction) bool {
	n := ins.Op.Params()
	for p := 0; p < n; p++ {
		switch ins.Modes[p] {
		case vm.Position, vm.Relative:
		case vm.Immediate:
			if ins.Op.Stores() && p == n-1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Disassemble writes a disassembly of the cells in the given slice at position
// pc to the specified io.Writer and returns the position of the next
// instruction and any write error.
//
// Cells that do not decode to a valid instruction, or whose arguments lie past
// the end of the slice, are written as a .dat directive. If pc is out of the
// slice bounds, nothing is written and an error is returned.
func Disassemble(mem []vm.Cell, pc int, w io.Writer) (next int, err error) {
	if pc < 0 || pc >= len(mem) {
		return pc, errors.Errorf("address %d out of range [0, %d)", pc, len(mem))
	}
	ew := ici.NewErrWriter(w)
	v := mem[pc]
	ins, err := vm.Decode(v)
	if err != nil || ins.Encode() != v || !validModes(ins) || pc+ins.Len() > len(mem) {
		ew.WriteString(".dat ")
		ew.WriteInt(int64(v))
		return pc + 1, ew.Err
	}
	ew.WriteString(ins.Op.String())
	for p := 1; p <= ins.Op.Params(); p++ {
		switch ins.Modes[p-1] {
		case vm.Immediate:
			ew.WriteString(" #")
		case vm.Relative:
			ew.WriteString(" ~")
		default:
			ew.WriteString(" ")
		}
		ew.WriteInt(int64(mem[pc+p]))
	}
	return pc + ins.Len(), ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (mem[0]). It will return any write error.
func DisassembleAll(mem []vm.Cell, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(mem); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(mem, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}

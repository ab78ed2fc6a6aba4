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

package vm

import (
	"strconv"

	"github.com/pkg/errors"
)

// Opcode is an Intcode operation code, the two lower decimal digits of an
// instruction cell.
type Opcode Cell

// Intcode opcodes.
const (
	OpAdd Opcode = iota + 1
	OpMul
	OpIn
	OpOut
	OpJumpTrue
	OpJumpFalse
	OpLess
	OpEqual
	OpAdjustBase
	OpHalt Opcode = 99
)

var opcodes = [...]struct {
	name string
	len  int
}{
	OpAdd:        {"add", 4},
	OpMul:        {"mul", 4},
	OpIn:         {"in", 2},
	OpOut:        {"out", 2},
	OpJumpTrue:   {"jt", 3},
	OpJumpFalse:  {"jf", 3},
	OpLess:       {"lt", 4},
	OpEqual:      {"eq", 4},
	OpAdjustBase: {"arb", 2},
	OpHalt:       {"hlt", 1},
}

var opcodeIndex = make(map[string]Opcode)

func init() {
	for op, v := range opcodes {
		if v.name != "" {
			opcodeIndex[v.name] = Opcode(op)
		}
	}
}

// Valid returns true if op is a defined opcode.
func (op Opcode) Valid() bool {
	return op > 0 && int(op) < len(opcodes) && opcodes[op].len > 0
}

// Len returns the length in cells of an instruction with opcode op, including
// the opcode cell itself. It returns 0 for undefined opcodes.
func (op Opcode) Len() int {
	if !op.Valid() {
		return 0
	}
	return opcodes[op].len
}

// Params returns the number of parameters of op.
func (op Opcode) Params() int {
	if !op.Valid() {
		return 0
	}
	return opcodes[op].len - 1
}

// Stores returns true if the last parameter of op is a store address.
func (op Opcode) Stores() bool {
	switch op {
	case OpAdd, OpMul, OpIn, OpLess, OpEqual:
		return true
	}
	return false
}

func (op Opcode) String() string {
	if op.Valid() {
		return opcodes[op].name
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// LookupOpcode returns the opcode for the given assembler mnemonic.
func LookupOpcode(name string) (Opcode, bool) {
	op, ok := opcodeIndex[name]
	return op, ok
}

// Mode is a parameter addressing mode.
type Mode int

// Parameter modes.
const (
	Position Mode = iota
	Immediate
	Relative
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// Instruction is a decoded instruction cell.
type Instruction struct {
	Op    Opcode
	Modes [3]Mode
}

// Len returns the length in cells of the instruction.
func (ins Instruction) Len() int {
	return ins.Op.Len()
}

// Encode returns the instruction cell value for ins. Modes of parameters beyond
// ins.Op.Params() are ignored.
func (ins Instruction) Encode() Cell {
	v := Cell(0)
	for p := ins.Op.Params() - 1; p >= 0; p-- {
		v = v*10 + Cell(ins.Modes[p])
	}
	return v*100 + Cell(ins.Op)
}

// Decode decodes an instruction cell. The returned error wraps ErrInvalidOpcode
// if the two lower decimal digits of v are not a valid opcode.
//
// Mode digits are not validated here: an invalid mode is reported only when the
// corresponding parameter is accessed.
func Decode(v Cell) (Instruction, error) {
	var ins Instruction
	if v < 0 {
		return ins, errors.Wrapf(ErrInvalidOpcode, "negative instruction %d", v)
	}
	ins.Op = Opcode(v % 100)
	if !ins.Op.Valid() {
		return ins, errors.Wrapf(ErrInvalidOpcode, "opcode %d", int(ins.Op))
	}
	m := v / 100
	for p := range ins.Modes {
		ins.Modes[p] = Mode(m % 10)
		m /= 10
	}
	return ins, nil
}

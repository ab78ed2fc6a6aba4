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
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Errors returned by the VM. Use errors.Is to test for them: errors returned by
// Instance methods usually wrap them with context.
var (
	// ErrInvalidOpcode is returned when an instruction cell does not decode to
	// a defined opcode.
	ErrInvalidOpcode = errors.New("invalid opcode")
	// ErrParameterMode is returned when a parameter mode is not one of
	// Position, Immediate or Relative, or when Immediate mode is used for a
	// store address.
	ErrParameterMode = errors.New("unrecognized parameter mode")
	// ErrNegativeAddress is returned when an instruction tries to access a
	// negative memory address.
	ErrNegativeAddress = errors.New("negative address")
	// ErrMalformedProgram is returned when program text cannot be parsed.
	ErrMalformedProgram = errors.New("malformed program text")
	// ErrMalformedInput is returned when an interactive input line is not an
	// integer.
	ErrMalformedInput = errors.New("malformed input")
	// ErrInputExhausted is returned by Run when an input instruction is reached
	// with an empty input queue and no interactive input. The instance is
	// suspended, not failed: feed it more input and run it again.
	ErrInputExhausted = errors.New("input exhausted")
	// ErrStepLimit is returned when a run method stops because the step budget
	// set with MaxSteps ran out. The instance can be resumed.
	ErrStepLimit = errors.New("step limit reached")
	// ErrHalted is returned when trying to run or feed a halted instance.
	ErrHalted = errors.New("instance halted")
)

// InstructionError is the error type for faults detected while executing an
// instruction.
type InstructionError struct {
	PC    int   // address of the faulty instruction
	Value Cell  // raw instruction cell
	Param int   // 1-based index of the faulty parameter, 0 if not parameter specific
	Err   error // underlying error
}

func (e *InstructionError) Error() string {
	var op string
	if ins, err := Decode(e.Value); err == nil {
		op = ins.Op.String() + " "
	}
	if e.Param > 0 {
		return fmt.Sprintf("%s@pc=%d (%d): parameter %d: %v", op, e.PC, e.Value, e.Param, e.Err)
	}
	return fmt.Sprintf("%s@pc=%d (%d): %v", op, e.PC, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *InstructionError) Unwrap() error { return e.Err }

// Cause implements the causer interface of github.com/pkg/errors.
func (e *InstructionError) Cause() error { return e.Err }

// Format implements fmt.Formatter. The %+v verb prints the stack trace of the
// underlying error if available.
func (e *InstructionError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		io.WriteString(s, e.Error())
		fmt.Fprintf(s, "\n%+v", e.Err)
		return
	}
	io.WriteString(s, e.Error())
}

// IsFatal returns false if err is nil or if it signals a condition after which
// the instance can be resumed (ErrInputExhausted or ErrStepLimit).
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrInputExhausted) && !errors.Is(err, ErrStepLimit)
}

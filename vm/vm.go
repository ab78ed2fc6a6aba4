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
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// Status is the execution status of an Instance.
type Status int

// Instance status values.
const (
	Running   Status = iota // ready to run, or running
	Suspended               // waiting for input
	Halted                  // halt instruction reached
	Failed                  // stopped on a fatal error
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Suspended:
		return "suspended"
	case Halted:
		return "halted"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Instance represents an Intcode VM instance.
type Instance struct {
	mem      *Memory
	pc       int
	base     int
	input    []Cell
	output   []Cell
	status   Status
	err      error
	insCount int64
	maxSteps int64
	in       *bufio.Reader
	out      io.Writer
	prompt   io.Writer
}

// Option interface
type Option func(*Instance) error

// Input appends the given values to the input queue.
func Input(values ...Cell) Option {
	return func(i *Instance) error {
		i.input = append(i.input, values...)
		return nil
	}
}

// InteractiveInput configures r as the interactive input. When an input
// instruction finds the input queue empty, Run will read a line from r and
// parse it as a decimal integer. RunUntilInput never reads from r.
func InteractiveInput(r io.Reader) Option {
	return func(i *Instance) error {
		switch br := r.(type) {
		case nil:
			i.in = nil
		case *bufio.Reader:
			i.in = br
		default:
			i.in = bufio.NewReader(r)
		}
		return nil
	}
}

// Output configures w as the interactive output. Output values are written to
// w as decimal integers, one per line, instead of being logged. If w has a
// Flush method, it is called before each interactive read.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		i.out = w
		return nil
	}
}

// Prompt sets the writer where a prompt is written before each interactive
// read.
func Prompt(w io.Writer) Option {
	return func(i *Instance) error {
		i.prompt = w
		return nil
	}
}

// MaxSteps sets the maximum number of instructions executed by a single call to
// Run or RunUntilInput. The default is 0, meaning no limit.
func MaxSteps(n int64) Option {
	return func(i *Instance) error {
		if n < 0 {
			return errors.Errorf("invalid step budget %d", n)
		}
		i.maxSteps = n
		return nil
	}
}

// Patch stores v at address addr before execution starts.
func Patch(addr int, v Cell) Option {
	return func(i *Instance) error {
		if addr < 0 {
			return errors.Wrapf(ErrNegativeAddress, "patch address %d", addr)
		}
		i.mem.Store(addr, v)
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode VM instance.
//
// The instance works on a private copy of mem, so the same Memory can be used
// to create any number of instances.
//
// Options will be set by calling SetOptions.
func New(mem *Memory, opts ...Option) (*Instance, error) {
	if mem == nil {
		return nil, errors.New("nil memory")
	}
	i := &Instance{
		mem: mem.Clone(),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Feed appends values to the input queue. It returns ErrHalted if the instance
// is halted and the fatal error if the instance failed.
func (i *Instance) Feed(values ...Cell) error {
	switch i.status {
	case Halted:
		return ErrHalted
	case Failed:
		return i.err
	}
	i.input = append(i.input, values...)
	return nil
}

// PC returns the current Program Counter (aka. Instruction Pointer).
func (i *Instance) PC() int {
	return i.pc
}

// RelativeBase returns the current relative base.
func (i *Instance) RelativeBase() int {
	return i.base
}

// Mem returns the instance memory. Changes will be reflected in the instance.
func (i *Instance) Mem() *Memory {
	return i.mem
}

// Status returns the current execution status.
func (i *Instance) Status() Status {
	return i.status
}

// Halted returns true if the instance reached a halt instruction.
func (i *Instance) Halted() bool {
	return i.status == Halted
}

// Suspended returns true if the instance is waiting for input.
func (i *Instance) Suspended() bool {
	return i.status == Suspended
}

// Err returns the fatal error that stopped the instance, if any.
func (i *Instance) Err() error {
	return i.err
}

// Pending returns the number of values in the input queue.
func (i *Instance) Pending() int {
	return len(i.input)
}

// Output returns a copy of the output log.
func (i *Instance) Output() []Cell {
	return append([]Cell(nil), i.output...)
}

// LastOutput returns the most recent value in the output log. ok is false if
// the log is empty.
func (i *Instance) LastOutput() (v Cell, ok bool) {
	if len(i.output) == 0 {
		return 0, false
	}
	return i.output[len(i.output)-1], true
}

// TakeOutput returns the output log and clears it.
func (i *Instance) TakeOutput() []Cell {
	o := i.output
	i.output = nil
	return o
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

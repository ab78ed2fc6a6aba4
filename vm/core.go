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

import "github.com/pkg/errors"

// fault aborts execution of the current instruction. Run recovers from it.
func (i *Instance) fault(param int, err error) {
	panic(&InstructionError{PC: i.pc, Value: i.mem.Load(i.pc), Param: param, Err: err})
}

// addr returns the effective address of the 1-based parameter p of ins.
func (i *Instance) addr(ins Instruction, p int, store bool) int {
	var a int
	switch m := ins.Modes[p-1]; m {
	case Position:
		a = int(i.mem.Load(i.pc + p))
	case Immediate:
		if store {
			i.fault(p, errors.Wrap(ErrParameterMode, "immediate mode store"))
		}
		a = i.pc + p
	case Relative:
		a = i.base + int(i.mem.Load(i.pc+p))
	default:
		i.fault(p, errors.Wrapf(ErrParameterMode, "mode %d", int(m)))
	}
	if a < 0 {
		i.fault(p, errors.Wrapf(ErrNegativeAddress, "address %d", a))
	}
	return a
}

// load returns the value of parameter p.
func (i *Instance) load(ins Instruction, p int) Cell {
	return i.mem.Load(i.addr(ins, p, false))
}

// store stores v at the address given by parameter p.
func (i *Instance) store(ins Instruction, p int, v Cell) {
	i.mem.Store(i.addr(ins, p, true), v)
}

func (i *Instance) fail(err error) error {
	i.status = Failed
	i.err = err
	return err
}

// Run runs the instance to completion.
//
// If an input instruction is reached with an empty input queue, Run reads a
// value from the interactive input if one is configured. Otherwise it returns
// an error wrapping ErrInputExhausted, the instance is suspended and the PC
// points to the input instruction.
//
// If a fatal error occurs, the PC will point to the instruction that triggered
// the error and the instance cannot be resumed.
//
// Calling Run on a halted instance returns ErrHalted.
func (i *Instance) Run() error {
	if err := i.exec(false, i.maxSteps); err != nil {
		return err
	}
	switch i.status {
	case Suspended:
		return errors.Wrapf(ErrInputExhausted, "@pc=%d", i.pc)
	case Running:
		return errors.Wrapf(ErrStepLimit, "@pc=%d", i.pc)
	}
	return nil
}

// RunUntilInput runs the instance until it halts or until an input instruction
// is reached with an empty input queue. In the latter case, RunUntilInput
// returns nil, the instance is suspended and the PC points to the input
// instruction. Feed the instance and call RunUntilInput again to resume it.
//
// Error handling is the same as for Run.
func (i *Instance) RunUntilInput() error {
	if err := i.exec(true, i.maxSteps); err != nil {
		return err
	}
	if i.status == Running {
		return errors.Wrapf(ErrStepLimit, "@pc=%d", i.pc)
	}
	return nil
}

// Step executes a single instruction. It never reads interactive input: if
// the instruction is an input instruction and the input queue is empty, the
// instance is suspended and Step returns nil.
func (i *Instance) Step() error {
	return i.exec(true, 1)
}

// exec executes up to n instructions, or until the instance halts or gets
// suspended if n is 0. If yield is true, exec returns with the instance
// suspended as soon as it needs input that is not in the input queue.
func (i *Instance) exec(yield bool, n int64) (err error) {
	switch i.status {
	case Halted:
		return ErrHalted
	case Failed:
		return i.err
	}
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case *InstructionError:
				err = i.fail(e)
			case error:
				err = i.fail(errors.Wrapf(e, "recovered error @pc=%d", i.pc))
			default:
				panic(e)
			}
		}
	}()
	i.status = Running
	for c := int64(0); n == 0 || c < n; c++ {
		if i.pc < 0 {
			return i.fail(errors.Wrapf(ErrNegativeAddress, "pc=%d", i.pc))
		}
		v := i.mem.Load(i.pc)
		ins, err := Decode(v)
		if err != nil {
			return i.fail(&InstructionError{PC: i.pc, Value: v, Err: err})
		}
		switch ins.Op {
		case OpAdd:
			i.store(ins, 3, i.load(ins, 1)+i.load(ins, 2))
			i.pc += 4
		case OpMul:
			i.store(ins, 3, i.load(ins, 1)*i.load(ins, 2))
			i.pc += 4
		case OpIn:
			if len(i.input) == 0 {
				if yield || i.in == nil {
					i.status = Suspended
					return nil
				}
				v, err := i.readInput()
				if err != nil {
					i.fault(0, err)
				}
				i.input = append(i.input, v)
			}
			i.store(ins, 1, i.input[0])
			i.input = i.input[1:]
			i.pc += 2
		case OpOut:
			if err := i.emit(i.load(ins, 1)); err != nil {
				i.fault(0, err)
			}
			i.pc += 2
		case OpJumpTrue:
			if i.load(ins, 1) != 0 {
				i.pc = int(i.load(ins, 2))
			} else {
				i.pc += 3
			}
		case OpJumpFalse:
			if i.load(ins, 1) == 0 {
				i.pc = int(i.load(ins, 2))
			} else {
				i.pc += 3
			}
		case OpLess:
			var r Cell
			if i.load(ins, 1) < i.load(ins, 2) {
				r = 1
			}
			i.store(ins, 3, r)
			i.pc += 4
		case OpEqual:
			var r Cell
			if i.load(ins, 1) == i.load(ins, 2) {
				r = 1
			}
			i.store(ins, 3, r)
			i.pc += 4
		case OpAdjustBase:
			i.base += int(i.load(ins, 1))
			i.pc += 2
		case OpHalt:
			i.insCount++
			i.status = Halted
			return nil
		}
		i.insCount++
	}
	return nil
}

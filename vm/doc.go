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

// Package vm implements an Intcode virtual machine.
//
// An Intcode program is a list of signed integers loaded into memory starting
// at address 0. The machine fetches the cell at the instruction pointer (PC),
// decodes it into an opcode and up to three parameter modes, executes it and
// moves on. There is no stack: instructions read and write memory directly,
// using position, immediate or relative addressing.
//
// Memory is sparse and unbounded. Reading an address that was never written
// returns 0.
//
// An Instance can run in one of two I/O configurations:
//
//	- batch: input values are queued with the Input option or Feed, output
//	  values are appended to an in-memory log (see Output and TakeOutput).
//	- interactive: the InteractiveInput and Output options bind an io.Reader
//	  and an io.Writer; input instructions read one integer per line and output
//	  instructions print one integer per line.
//
// Execution is cooperative. RunUntilInput returns control to the caller as soon
// as an input instruction finds the input queue empty, leaving the PC on that
// instruction. Feeding more input and calling a run method again resumes
// execution exactly where it stopped. This is how several instances are chained
// together in package amp without any goroutines.
//
// Instruction set:
//
//	opcode	asm	len	description
//	------	---	---	------------------------------------------------
//	1	add	4	p3 = p1 + p2
//	2	mul	4	p3 = p1 * p2
//	3	in	2	p1 = next input value
//	4	out	2	output p1
//	5	jt	3	if p1 != 0, jump to p2
//	6	jf	3	if p1 == 0, jump to p2
//	7	lt	4	p3 = 1 if p1 < p2, else 0
//	8	eq	4	p3 = 1 if p1 == p2, else 0
//	9	arb	2	relative base += p1
//	99	hlt	1	halt
//
// Parameter modes are given by the decimal digits above the two opcode digits,
// the hundreds digit being the mode of the first parameter:
//
//	0	position: the parameter is the address of the value
//	1	immediate: the parameter is the value itself (never valid for a store)
//	2	relative: the parameter plus the relative base is the address of the value
//
// Note that there is no limit on the number of instructions executed by default.
// A program that never halts will run forever unless a step budget is set with
// the MaxSteps option.
package vm

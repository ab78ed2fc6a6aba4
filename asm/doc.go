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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	opcode	asm	args	description
//	------	---	----	------------------------------------------------
//	1	add	a b c	c = a + b
//	2	mul	a b c	c = a * b
//	3	in	a	a = next input value
//	4	out	a	output a
//	5	jt	a b	if a != 0, jump to b
//	6	jf	a b	if a == 0, jump to b
//	7	lt	a b c	c = 1 if a < b, else 0
//	8	eq	a b c	c = 1 if a == b, else 0
//	9	arb	a	relative base += a
//	99	hlt		halt
//
// Arguments are position mode by default: the argument is the address of the
// value. Prefix an argument with '#' for immediate mode (the argument is the
// value itself) or with '~' for relative mode (the argument is an offset from
// the relative base). Immediate mode cannot be used for the store argument of
// add, mul, in, lt and eq.
//
// Argument values can be decimal, octal (0 prefix) or hexadecimal (0x
// prefix) integers, char literals like 'x', constants defined with .equ or
// labels. A label used as an argument evaluates to the label address.
//
// Comments:
//
// Comments are placed between parentheses, which must be separated from other
// tokens by white space:
//
//	( this is a comment )
//
// Labels:
//
// Labels are defined with a ':' prefix:
//
//	:loop	add x #1 x
//		jt #1 #loop
//
// Directives:
//
//	.org n		set the compilation address to n
//	.dat v		compile the value v as is
//	.equ NAME v	define the constant NAME with value v
//
// A value on its own (that is, not following an instruction or directive) is
// compiled as if preceded by .dat.
package asm

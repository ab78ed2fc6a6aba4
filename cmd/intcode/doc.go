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

// The intcode command line tool runs, assembles and disassembles Intcode
// programs, and searches amplifier phase settings.
//
// Usage:
//
//	intcode [command] [flags] file
//
// Commands:
//
//	run       run a program
//	amplify   find the phase settings producing the highest amplifier output
//	find      find the noun and verb producing a given output
//	asm       assemble a program
//	disasm    disassemble a program
//
// Global flags:
//
//	-v, --verbose
//		  enable debug logging and full error stack traces
//	--max-steps n
//		  abort after executing n instructions in a single run (0 = no limit)
//
// run: by default, the program runs interactively. Input values are read one
// per line from stdin and output values are written one per line to stdout.
// If stdin is a terminal, a prompt is displayed before each read and the
// terminal is switched to line mode (canonical mode with echo) for the
// duration of the run. Use --prompt to always display a prompt.
//
// With --input 1,2,3 the program runs in batch mode: it gets the given input
// values and its output values are printed once it halts. Running out of input
// is an error.
//
// --set addr=value patches memory before running. It can be specified
// multiple times. --dump prints the final memory contents as program text upon
// exit.
//
// amplify: runs a chain of amplifiers for each permutation of the phase
// settings given with --phases lo-hi, the input of the first amplifier being 0.
// With --feedback, the output of the last amplifier is fed back to the first
// one until the last amplifier halts. The default phase settings are 0-4, or
// 5-9 in feedback mode.
//
// find: runs the program with every noun and verb in [0, --max) stored at
// addresses 1 and 2 until address 0 holds the --target value once the program
// halts, and prints the noun and verb.
//
// asm: assembles the given source file to program text. See the package
// github.com/db47h/intcode/asm for the assembly syntax. The output goes to
// stdout unless -o is specified.
package main

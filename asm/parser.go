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
	"io"
	"sort"
	"strconv"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
)

const maxErrors = 10

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

// parser states
const (
	stAny     = iota // accept anything
	stOperand        // need instruction argument
	stOrg            // need integer or const (.org)
	stDat            // need value (.dat)
	stEqu            // need integer or const (.equ value)
)

type parser struct {
	mem     []vm.Cell
	pc      int
	size    int
	s       scanner.Scanner
	labels  map[string]*label
	consts  map[string]labelSite
	cstName string
	cstPos  scanner.Position
	ins     vm.Instruction
	insPC   int
	param   int
	errs    ErrAsm
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	return p
}

func (p *parser) error(pos scanner.Position, msg string) {
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, Error{pos, msg})
	}
}

func (p *parser) write(v vm.Cell) {
	for p.pc >= len(p.mem) {
		p.mem = append(p.mem, make([]vm.Cell, 256)...)
	}
	p.mem[p.pc] = v
	p.pc++
	if p.pc > p.size {
		p.size = p.pc
	}
}

func (p *parser) useLabel(name string) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{
			// use current position as valid temp position
			labelSite{p.s.Position, -1},
			nil,
		}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Position, p.pc})
}

func (p *parser) defineLabel(name string) {
	pos := p.s.Position
	if !isName(name) {
		p.error(pos, "Invalid label name: "+name)
		return
	}
	if cst, ok := p.consts[name]; ok {
		p.error(pos, "Label redefinition: "+name+", previously defined as a constant here: "+cst.pos.String())
		return
	}
	if l, ok := p.labels[name]; ok {
		if l.address != -1 {
			p.error(pos, "Label redefinition: "+name+", previous definition here: "+l.pos.String())
			return
		}
		l.address = p.pc
		l.pos = pos
		return
	}
	p.labels[name] = &label{labelSite{pos, p.pc}, nil}
}

// isName returns true if s can be used as a label or constant name.
func isName(s string) bool {
	if s == "" {
		return false
	}
	switch c := s[0]; {
	case c >= '0' && c <= '9', c == '-', c == '+', c == '#', c == '~', c == ':', c == '.', c == '\'', c == '(', c == ')':
		return false
	}
	return true
}

// number parses s as an integer, char literal or constant.
func (p *parser) number(s string) (vm.Cell, bool) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return vm.Cell(n), true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err == nil && tail == "" {
			return vm.Cell(r), true
		}
	}
	if c, ok := p.consts[s]; ok {
		return vm.Cell(c.address), true
	}
	return 0, false
}

// value compiles a value or label reference.
func (p *parser) value(s string) {
	if v, ok := p.number(s); ok {
		p.write(v)
		return
	}
	if !isName(s) {
		p.error(p.s.Position, "Invalid value: "+s)
		p.write(0)
		return
	}
	p.useLabel(s)
	p.write(0)
}

func (p *parser) beginInstruction(op vm.Opcode) {
	p.ins = vm.Instruction{Op: op}
	p.insPC = p.pc
	p.param = 0
	p.write(vm.Cell(op))
}

func (p *parser) operand(s string) {
	mode := vm.Position
	switch s[0] {
	case '#':
		mode = vm.Immediate
		s = s[1:]
	case '~':
		mode = vm.Relative
		s = s[1:]
	}
	if s == "" {
		p.error(p.s.Position, "Missing argument value")
	}
	if mode == vm.Immediate && p.ins.Op.Stores() && p.param == p.ins.Op.Params()-1 {
		p.error(p.s.Position, "Immediate mode store argument for "+p.ins.Op.String())
	}
	p.ins.Modes[p.param] = mode
	if s != "" {
		p.value(s)
	} else {
		p.write(0)
	}
	p.param++
	if p.param == p.ins.Op.Params() {
		p.mem[p.insPC] = p.ins.Encode()
	}
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) ([]vm.Cell, error) {
	var state = stAny

	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.error(s.Position, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF && len(p.errs) < maxErrors; tok = p.s.Scan() {
		if tok != scanner.Ident {
			p.error(p.s.Position, "Unexpected character "+strconv.QuoteRune(tok))
			continue
		}
		s := p.s.TokenText()

		if s == "(" {
			// skip comments
			for ; tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
			if tok == scanner.EOF {
				p.error(p.s.Position, "Unterminated comment")
				break
			}
			continue
		}

		switch state {
		case stOperand:
			if _, ok := vm.LookupOpcode(s); ok || s[0] == ':' || s[0] == '.' {
				p.error(p.s.Position, "Missing argument for "+p.ins.Op.String()+", got "+s)
				state = stAny
				break
			}
			p.operand(s)
			if p.param == p.ins.Op.Params() {
				state = stAny
			}
			continue
		case stOrg:
			if v, ok := p.number(s); ok && v >= 0 {
				p.pc = int(v)
			} else {
				p.error(p.s.Position, ".org: expected non-negative integer or constant, got "+s)
			}
			state = stAny
			continue
		case stDat:
			p.value(s)
			state = stAny
			continue
		case stEqu:
			if v, ok := p.number(s); ok {
				p.consts[p.cstName] = labelSite{p.cstPos, int(v)}
			} else {
				p.error(p.s.Position, ".equ: expected integer or constant, got "+s)
			}
			state = stAny
			continue
		}

		switch s[0] {
		case ':':
			p.defineLabel(s[1:])
		case '.':
			switch s {
			case ".org":
				state = stOrg
			case ".dat":
				state = stDat
			case ".equ":
				if p.s.Scan() != scanner.Ident {
					p.error(p.s.Position, ".equ: expected identifier, got "+p.s.TokenText())
					break
				}
				p.cstName = p.s.TokenText()
				p.cstPos = p.s.Position
				if !isName(p.cstName) {
					p.error(p.cstPos, ".equ: invalid constant name "+p.cstName)
					break
				}
				if l, ok := p.labels[p.cstName]; ok {
					p.error(p.cstPos, ".equ: redefinition of "+p.cstName+", previously defined/used as a label here: "+l.pos.String())
					break
				}
				state = stEqu
			default:
				p.error(p.s.Position, "Unknown dot directive: "+s)
			}
		default:
			if op, ok := vm.LookupOpcode(s); ok {
				p.beginInstruction(op)
				if op.Params() > 0 {
					state = stOperand
				}
				break
			}
			// implicit .dat
			p.value(s)
		}
	}

	if state != stAny && len(p.errs) == 0 {
		p.error(p.s.Position, "Unexpected end of input")
	}

	// write labels
	names := make([]string, 0, len(p.labels))
	for n := range p.labels {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		l := p.labels[n]
		if l.address == -1 {
			p.error(l.uses[0].pos, "Undefined label "+n)
			continue
		}
		for _, u := range l.uses {
			p.mem[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return p.mem[:p.size], nil
}

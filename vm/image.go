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
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse parses Intcode program text read from r: a single line of comma
// separated decimal integers. Blanks around values and trailing line
// terminators are ignored. The values are loaded in memory at addresses 0, 1,
// 2...
//
// The returned error wraps ErrMalformedProgram if any value is not a valid
// integer.
func Parse(r io.Reader) (*Memory, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "Parse")
	}
	text := string(bytes.TrimSpace(b))
	if text == "" {
		return nil, errors.Wrap(ErrMalformedProgram, "empty program")
	}
	tokens := strings.Split(text, ",")
	m := &Memory{cells: make(map[int]Cell, len(tokens))}
	for addr, tok := range tokens {
		tok = strings.TrimSpace(tok)
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedProgram, "value %d: %q", addr, tok)
		}
		m.Store(addr, Cell(v))
	}
	return m, nil
}

// ParseString parses Intcode program text. See Parse.
func ParseString(s string) (*Memory, error) {
	return Parse(strings.NewReader(s))
}

// Load loads Intcode program text from file fileName.
func Load(fileName string) (*Memory, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	m, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Load %s", fileName)
	}
	return m, nil
}

// MaxDumpLen is the highest memory length Dump will write out.
const MaxDumpLen = 1 << 24

// Dump writes the cells at addresses [0, m.Len()) to w as program text, i.e.
// comma separated and terminated by a new line. The output can be read back
// with Parse.
//
// Program text is dense: a single store to a far address makes it huge. Dump
// returns an error without writing anything if m.Len() > MaxDumpLen.
func (m *Memory) Dump(w io.Writer) error {
	if m.size > MaxDumpLen {
		return errors.Errorf("Dump: memory length %d exceeds %d cells", m.size, MaxDumpLen)
	}
	var err error
	b := make([]byte, 0, 32)
	for addr := 0; addr < m.size; addr++ {
		if addr > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(m.cells[addr]), 10)
		if len(b) >= 24 {
			if _, err = w.Write(b); err != nil {
				return errors.Wrap(err, "Dump")
			}
			b = b[:0]
		}
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return errors.Wrap(err, "Dump")
}

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

// Memory is a sparse, unbounded Cell memory. Addresses that were never written
// read as 0.
//
// Addresses must be non-negative. Load and Store will panic with an error
// wrapping ErrNegativeAddress otherwise; Instance.Run recovers from such panics.
type Memory struct {
	cells map[int]Cell
	size  int
}

// NewMemory returns a new Memory with the given cells loaded at addresses 0, 1,
// 2...
func NewMemory(cells ...Cell) *Memory {
	m := &Memory{cells: make(map[int]Cell, len(cells))}
	for addr, v := range cells {
		m.Store(addr, v)
	}
	return m
}

func checkAddr(addr int) {
	if addr < 0 {
		panic(errors.Wrapf(ErrNegativeAddress, "address %d", addr))
	}
}

// Load returns the value stored at address addr.
func (m *Memory) Load(addr int) Cell {
	checkAddr(addr)
	return m.cells[addr]
}

// Store stores v at address addr.
func (m *Memory) Store(addr int, v Cell) {
	checkAddr(addr)
	if m.cells == nil {
		m.cells = make(map[int]Cell)
	}
	m.cells[addr] = v
	if addr >= m.size {
		m.size = addr + 1
	}
}

// Len returns 1 + the highest address ever written to, or 0 for an empty memory.
func (m *Memory) Len() int {
	return m.size
}

// Slice returns a copy of the cells at addresses [from, to). Unallocated
// addresses are returned as 0. The returned slice is dense and always holds
// to-from cells, regardless of how many are actually allocated.
func (m *Memory) Slice(from, to int) []Cell {
	checkAddr(from)
	if to < from {
		return nil
	}
	s := make([]Cell, to-from)
	// iterate over whichever is smaller
	if len(m.cells) < len(s) {
		for addr, v := range m.cells {
			if addr >= from && addr < to {
				s[addr-from] = v
			}
		}
		return s
	}
	for k := range s {
		s[k] = m.cells[from+k]
	}
	return s
}

// Cells returns a copy of the cells at addresses [0, Len()). See Slice. Use
// Load to inspect a memory with far apart cells.
func (m *Memory) Cells() []Cell {
	return m.Slice(0, m.size)
}

// Clone returns a deep copy of m.
func (m *Memory) Clone() *Memory {
	c := &Memory{cells: make(map[int]Cell, len(m.cells)), size: m.size}
	for addr, v := range m.cells {
		c.cells[addr] = v
	}
	return c
}

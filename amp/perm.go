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

package amp

import "github.com/db47h/intcode/vm"

// PhaseRange returns the phase settings lo, lo+1, ... hi.
func PhaseRange(lo, hi vm.Cell) []vm.Cell {
	if hi < lo {
		return nil
	}
	s := make([]vm.Cell, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		s = append(s, v)
	}
	return s
}

// Permutations returns all permutations of set using the Johnson-Trotter
// algorithm. The first permutation is set itself and each subsequent one
// differs from the previous by a single swap of adjacent elements.
//
// The values in set should be distinct. The input slice is not modified.
func Permutations(set []vm.Cell) [][]vm.Cell {
	var perms [][]vm.Cell
	Permute(set, func(p []vm.Cell) bool {
		perms = append(perms, append([]vm.Cell(nil), p...))
		return true
	})
	return perms
}

// Permute calls fn for each permutation of set, in the same order as
// Permutations, until fn returns false. The slice passed to fn is reused
// between calls.
func Permute(set []vm.Cell, fn func([]vm.Cell) bool) {
	n := len(set)
	// Elements are tracked by their index in set, so that any values can be
	// permuted: idx[k] is the index in set of the k-th element of the current
	// permutation, and left[e] is the direction of element e.
	idx := make([]int, n)
	left := make([]bool, n)
	p := make([]vm.Cell, n)
	for k := range idx {
		idx[k] = k
		left[k] = true
	}
	copy(p, set)
	if !fn(p) {
		return
	}
	for {
		// find the largest mobile element
		m := -1
		for k, e := range idx {
			if left[e] && k > 0 && idx[k-1] < e || !left[e] && k < n-1 && idx[k+1] < e {
				if m == -1 || e > idx[m] {
					m = k
				}
			}
		}
		if m == -1 {
			return
		}
		e := idx[m]
		o := m + 1
		if left[e] {
			o = m - 1
		}
		idx[m], idx[o] = idx[o], idx[m]
		p[m], p[o] = p[o], p[m]
		// reverse direction of all elements larger than e
		for k := e + 1; k < n; k++ {
			left[k] = !left[k]
		}
		if !fn(p) {
			return
		}
	}
}

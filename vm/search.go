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

// ErrNotFound is returned by FindNounVerb when no noun/verb pair produces the
// requested output.
var ErrNotFound = errors.New("not found")

// FindNounVerb searches the noun and verb producing target. For each pair
// (noun, verb) in [0, limit)², the program in mem is run with noun stored at
// address 1 and verb at address 2. The first pair for which address 0 holds
// target once the program halts is returned, nouns varying slowest.
//
// Pairs for which the program does not halt cleanly are skipped. The given
// options are applied to every run, before patching.
func FindNounVerb(mem *Memory, target Cell, limit int, opts ...Option) (noun, verb Cell, err error) {
	if mem == nil {
		return 0, 0, errors.New("nil memory")
	}
	opts = append(opts[:len(opts):len(opts)], nil, nil)
	for n := 0; n < limit; n++ {
		for v := 0; v < limit; v++ {
			opts[len(opts)-2] = Patch(1, Cell(n))
			opts[len(opts)-1] = Patch(2, Cell(v))
			i, err := New(mem, opts...)
			if err != nil {
				return 0, 0, err
			}
			if err = i.Run(); err != nil {
				continue
			}
			if i.mem.Load(0) == target {
				return Cell(n), Cell(v), nil
			}
		}
	}
	return 0, 0, errors.Wrapf(ErrNotFound, "output %d", target)
}

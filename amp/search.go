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

import (
	"fmt"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Result is the result of a Search.
type Result struct {
	Output vm.Cell   // highest output
	Phases []vm.Cell // phase settings producing Output
}

func (r Result) String() string {
	return fmt.Sprintf("%d %v", r.Output, r.Phases)
}

// Search evaluates a network for every permutation of the phase settings in
// set and returns the highest output along with the phase settings producing
// it. The seed value is 0. If several permutations produce the same highest
// output, the first one in Permute order is returned.
//
// Any instance error aborts the search.
func Search(mem *vm.Memory, set []vm.Cell, feedback bool, opts ...vm.Option) (Result, error) {
	var (
		best  Result
		found bool
		err   error
		count int
	)
	Permute(set, func(p []vm.Cell) bool {
		var out vm.Cell
		if feedback {
			out, err = Loop(mem, p, 0, opts...)
		} else {
			out, err = Chain(mem, p, 0, opts...)
		}
		if err != nil {
			err = errors.Wrapf(err, "phases %v", p)
			return false
		}
		count++
		if !found || out > best.Output {
			best = Result{out, append([]vm.Cell(nil), p...)}
			found = true
		}
		return true
	})
	if err != nil {
		return Result{}, err
	}
	log.WithFields(log.Fields{
		"permutations": count,
		"output":       best.Output,
		"phases":       best.Phases,
	}).Debug("search done")
	return best, nil
}

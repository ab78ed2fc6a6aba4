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

package vm_test

import (
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/require"
)

func TestFindNounVerb(t *testing.T) {
	// mem[0] = mem[noun] + mem[verb]
	mem, err := vm.ParseString("1,0,0,0,99")
	require.NoError(t, err)

	tests := []struct {
		target     vm.Cell
		noun, verb vm.Cell
	}{
		{2, 0, 0},
		{100, 0, 4},
		{198, 4, 4},
	}
	for _, test := range tests {
		n, v, err := vm.FindNounVerb(mem, test.target, 5)
		require.NoError(t, err, "target %d", test.target)
		require.Equal(t, test.noun, n, "target %d", test.target)
		require.Equal(t, test.verb, v, "target %d", test.target)
	}
	require.Equal(t, vm.Cell(1), mem.Load(0), "program modified")

	_, _, err = vm.FindNounVerb(mem, 1000, 5)
	require.ErrorIs(t, err, vm.ErrNotFound)

	// pairs that fault or never halt are skipped
	mem, err = vm.ParseString("1106,0,0,99")
	require.NoError(t, err)
	n, v, err := vm.FindNounVerb(mem, 1106, 4, vm.MaxSteps(10))
	require.NoError(t, err)
	require.Equal(t, vm.Cell(0), n)
	require.Equal(t, vm.Cell(3), v)
}

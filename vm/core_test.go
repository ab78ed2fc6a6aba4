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
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type C []vm.Cell

func setup(t testing.TB, code string, opts ...vm.Option) *vm.Instance {
	t.Helper()
	mem, err := vm.ParseString(code)
	require.NoError(t, err)
	i, err := vm.New(mem, opts...)
	require.NoError(t, err)
	return i
}

var memTests = [...]struct {
	name string
	code string
	mem  C
}{
	{"add", "1,0,0,0,99", C{2, 0, 0, 0, 99}},
	{"mul", "2,3,0,3,99", C{2, 3, 0, 6, 99}},
	{"mul_past_end", "2,4,4,5,99,0", C{2, 4, 4, 5, 99, 9801}},
	{"self_modifying", "1,1,1,4,99,5,6,0,99", C{30, 1, 1, 4, 2, 5, 6, 0, 99}},
	{"add_mul", "1,9,10,3,2,3,11,0,99,30,40,50", C{3500, 9, 10, 70, 2, 3, 11, 0, 99, 30, 40, 50}},
	{"immediate", "1002,4,3,4,33", C{1002, 4, 3, 4, 99}},
	{"negative", "1101,100,-1,4,0", C{1101, 100, -1, 4, 99}},
	{"relative_store", "109,10,21101,3,4,0,99,0,0,0,0", C{109, 10, 21101, 3, 4, 0, 99, 0, 0, 0, 7}},
	{"sparse_store", "1101,5,6,20,99", C{1101, 5, 6, 20, 99, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 11}},
}

func TestCore_Memory(t *testing.T) {
	for _, test := range memTests {
		t.Run(test.name, func(t *testing.T) {
			i := setup(t, test.code)
			require.NoError(t, i.Run())
			require.True(t, i.Halted())
			if diff := cmp.Diff(test.mem, C(i.Mem().Cells())); diff != "" {
				t.Errorf("%s: memory mismatch (-want +got):\n%s", test.name, diff)
			}
		})
	}
}

const (
	cmpPos8 = "3,9,8,9,10,9,4,9,99,-1,8"
	ltPos8  = "3,9,7,9,10,9,4,9,99,-1,8"
	cmpImm8 = "3,3,1108,-1,8,3,4,3,99"
	ltImm8  = "3,3,1107,-1,8,3,4,3,99"
	jmpPos  = "3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9"
	jmpImm  = "3,3,1105,-1,9,1101,0,0,12,4,12,99,1"
	cmp8    = "3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31,1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104,999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99"
	quine   = "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"
)

var ioTests = [...]struct {
	name   string
	code   string
	input  C
	output C
}{
	{"eq_pos_8", cmpPos8, C{8}, C{1}},
	{"eq_pos_7", cmpPos8, C{7}, C{0}},
	{"eq_pos_neg", cmpPos8, C{-8}, C{0}},
	{"lt_pos_5", ltPos8, C{5}, C{1}},
	{"lt_pos_8", ltPos8, C{8}, C{0}},
	{"eq_imm_8", cmpImm8, C{8}, C{1}},
	{"eq_imm_9", cmpImm8, C{9}, C{0}},
	{"lt_imm_7", ltImm8, C{7}, C{1}},
	{"lt_imm_9", ltImm8, C{9}, C{0}},
	{"jmp_pos_0", jmpPos, C{0}, C{0}},
	{"jmp_pos_3", jmpPos, C{3}, C{1}},
	{"jmp_imm_0", jmpImm, C{0}, C{0}},
	{"jmp_imm_-1", jmpImm, C{-1}, C{1}},
	{"cmp8_below", cmp8, C{7}, C{999}},
	{"cmp8_equal", cmp8, C{8}, C{1000}},
	{"cmp8_above", cmp8, C{9}, C{1001}},
	{"quine", quine, nil, C{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}},
	{"large_mul", "1102,34915192,34915192,7,4,7,99,0", nil, C{1219070632396864}},
	{"large_out", "104,1125899906842624,99", nil, C{1125899906842624}},
	{"echo_twice", "3,0,4,0,3,0,4,0,99", C{-5, 12}, C{-5, 12}},
}

func TestCore_IO(t *testing.T) {
	for _, test := range ioTests {
		t.Run(test.name, func(t *testing.T) {
			i := setup(t, test.code, vm.Input(test.input...))
			require.NoError(t, i.Run())
			require.Equal(t, vm.Halted, i.Status())
			require.Equal(t, []vm.Cell(test.output), i.Output())
		})
	}
}

func TestCore_RelativeBase(t *testing.T) {
	// 109,19 with a relative base of 2000 makes it 2019, 204,-34 then outputs
	// the value at 1985.
	i := setup(t, "109,2000,109,19,204,-34,99", vm.Patch(1985, 42))
	require.NoError(t, i.Run())
	require.Equal(t, 2019, i.RelativeBase())
	require.Equal(t, []vm.Cell{42}, i.Output())
}

func TestCore_Deterministic(t *testing.T) {
	mem, err := vm.ParseString(cmp8)
	require.NoError(t, err)
	var outputs [][]vm.Cell
	for n := 0; n < 2; n++ {
		i, err := vm.New(mem, vm.Input(8))
		require.NoError(t, err)
		require.NoError(t, i.Run())
		outputs = append(outputs, i.Output())
	}
	require.Equal(t, outputs[0], outputs[1])
	// the source memory must not have been touched
	require.Equal(t, vm.Cell(0), mem.Load(21))
	require.Equal(t, 47, mem.Len())
}

func TestCore_SuspendResume(t *testing.T) {
	i := setup(t, "3,11,3,12,1,11,12,13,4,13,99,0,0,0")

	require.NoError(t, i.RunUntilInput())
	require.True(t, i.Suspended())
	require.Equal(t, 0, i.PC())

	// running again without input must not move
	require.NoError(t, i.RunUntilInput())
	require.True(t, i.Suspended())
	require.Equal(t, 0, i.PC())

	require.NoError(t, i.Feed(3))
	require.NoError(t, i.RunUntilInput())
	require.True(t, i.Suspended())
	require.Equal(t, 2, i.PC())
	require.Equal(t, 0, i.Pending())

	require.NoError(t, i.Feed(4))
	require.NoError(t, i.RunUntilInput())
	require.True(t, i.Halted())
	require.Equal(t, []vm.Cell{7}, i.Output())

	require.ErrorIs(t, i.RunUntilInput(), vm.ErrHalted)
	require.ErrorIs(t, i.Run(), vm.ErrHalted)
	require.ErrorIs(t, i.Feed(1), vm.ErrHalted)
}

func TestCore_RunInputExhausted(t *testing.T) {
	i := setup(t, "3,0,4,0,99")
	err := i.Run()
	require.ErrorIs(t, err, vm.ErrInputExhausted)
	require.False(t, vm.IsFatal(err))
	require.True(t, i.Suspended())
	require.Equal(t, 0, i.PC())
	require.Equal(t, vm.Cell(3), i.Mem().Load(0))

	require.NoError(t, i.Feed(77))
	require.NoError(t, i.Run())
	require.True(t, i.Halted())
	require.Equal(t, []vm.Cell{77}, i.TakeOutput())
	require.Empty(t, i.Output())
}

func TestCore_Step(t *testing.T) {
	i := setup(t, "1101,1,2,5,99,0")
	require.NoError(t, i.Step())
	require.Equal(t, 4, i.PC())
	require.Equal(t, vm.Cell(3), i.Mem().Load(5))
	require.Equal(t, vm.Running, i.Status())
	require.NoError(t, i.Step())
	require.True(t, i.Halted())
	require.Equal(t, 4, i.PC())
	require.Equal(t, int64(2), i.InstructionCount())
	require.ErrorIs(t, i.Step(), vm.ErrHalted)

	// Step does not consume missing input
	i = setup(t, "3,0,99")
	require.NoError(t, i.Step())
	require.True(t, i.Suspended())
	require.Equal(t, 0, i.PC())
}

func TestCore_StepLimit(t *testing.T) {
	// jump to self, forever
	i := setup(t, "1105,1,0", vm.MaxSteps(100))
	err := i.Run()
	require.ErrorIs(t, err, vm.ErrStepLimit)
	require.False(t, vm.IsFatal(err))
	require.Equal(t, vm.Running, i.Status())
	require.Equal(t, int64(100), i.InstructionCount())

	require.ErrorIs(t, i.RunUntilInput(), vm.ErrStepLimit)
	require.Equal(t, int64(200), i.InstructionCount())

	_, err = vm.New(vm.NewMemory(99), vm.MaxSteps(-1))
	require.Error(t, err)
}

func TestCore_Errors(t *testing.T) {
	tests := [...]struct {
		name  string
		code  string
		err   error
		pc    int
		param int
	}{
		{"invalid_opcode", "98,0,0", vm.ErrInvalidOpcode, 0, 0},
		{"zero_opcode", "1101,1,1,5,0,0", vm.ErrInvalidOpcode, 4, 0},
		{"negative_opcode", "-1", vm.ErrInvalidOpcode, 0, 0},
		{"bad_mode", "301,0,0,0,99", vm.ErrParameterMode, 0, 1},
		{"bad_mode_2", "4101,0,0,0,99", vm.ErrParameterMode, 0, 2},
		{"immediate_store", "11101,1,1,0,99", vm.ErrParameterMode, 0, 3},
		{"immediate_input", "103,0,99", vm.ErrParameterMode, 0, 1},
		{"negative_load", "1,-1,0,0,99", vm.ErrNegativeAddress, 0, 1},
		{"negative_relative", "109,-5,22201,0,0,0,99", vm.ErrNegativeAddress, 2, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			i := setup(t, test.code, vm.Input(1))
			err := i.Run()
			require.ErrorIs(t, err, test.err)
			require.True(t, vm.IsFatal(err))
			var ie *vm.InstructionError
			require.ErrorAs(t, err, &ie)
			require.Equal(t, test.pc, ie.PC)
			require.Equal(t, test.param, ie.Param)
			require.Equal(t, test.pc, i.PC())
			require.Equal(t, vm.Failed, i.Status())
			require.Equal(t, err, i.Err())
			// failed instances stay failed
			require.Equal(t, err, i.Run())
			require.Equal(t, err, i.Feed(1))
		})
	}
}

func TestCore_NegativeJump(t *testing.T) {
	i := setup(t, "1105,1,-4")
	err := i.Run()
	require.ErrorIs(t, err, vm.ErrNegativeAddress)
	require.Equal(t, vm.Failed, i.Status())
}

func TestCore_Patch(t *testing.T) {
	mem, err := vm.ParseString("1,0,0,0,99")
	require.NoError(t, err)
	i, err := vm.New(mem, vm.Patch(1, 4), vm.Patch(2, 4))
	require.NoError(t, err)
	require.NoError(t, i.Run())
	require.Equal(t, vm.Cell(198), i.Mem().Load(0))
	require.Equal(t, vm.Cell(1), mem.Load(0))

	_, err = vm.New(mem, vm.Patch(-1, 0))
	require.ErrorIs(t, err, vm.ErrNegativeAddress)
}

func BenchmarkCore_Cmp8(b *testing.B) {
	mem, err := vm.ParseString(cmp8)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		i, _ := vm.New(mem, vm.Input(vm.Cell(n%16)))
		if err := i.Run(); err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

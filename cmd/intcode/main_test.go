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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

// resetFlags restores the default values of all flags of cmd and its
// subcommands, since commands are package globals shared by all tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if s, ok := f.Value.(pflag.SliceValue); ok {
			s.Replace(nil)
		} else {
			f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(bytes.NewReader(nil))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParsePatch(t *testing.T) {
	for _, s := range []string{"1=12", " 2 = -3 "} {
		_, err := parsePatch(s)
		require.NoError(t, err, s)
	}
	for _, s := range []string{"1", "a=1", "1=b", "=", "-1=0"} {
		p, err := parsePatch(s)
		if err == nil {
			// negative addresses are caught by vm.New
			_, err = vm.New(vm.NewMemory(99), p)
		}
		require.Error(t, err, s)
	}
}

func TestParsePhases(t *testing.T) {
	p, err := parsePhases("5-9")
	require.NoError(t, err)
	require.Equal(t, []vm.Cell{5, 6, 7, 8, 9}, p)
	for _, s := range []string{"", "5", "9-5", "a-2", "1-b"} {
		_, err = parsePhases(s)
		require.Error(t, err, s)
	}
}

func TestCommands(t *testing.T) {
	t.Run("run", func(t *testing.T) {
		fn := writeFile(t, "eq8.txt", "3,9,8,9,10,9,4,9,99,-1,8\n")
		out, err := execute(t, "run", "--input", "8", "--set", "10=7", "--dump", fn)
		require.NoError(t, err)
		require.Equal(t, "0\n3,9,8,9,10,9,4,9,99,0,7\n", out)
	})
	t.Run("run_partial", func(t *testing.T) {
		// output logged before running out of input is still printed
		fn := writeFile(t, "partial.txt", "104,7,3,0,99")
		out, err := execute(t, "run", "--input", "", fn)
		require.ErrorIs(t, err, vm.ErrInputExhausted)
		require.Equal(t, "7\n", out)

		// same for fatal errors
		fn = writeFile(t, "fault.txt", "104,7,98")
		out, err = execute(t, "run", "--input", "1", "--dump", fn)
		require.ErrorIs(t, err, vm.ErrInvalidOpcode)
		require.Equal(t, "7\n", out)
	})
	t.Run("find", func(t *testing.T) {
		fn := writeFile(t, "add.txt", "1,0,0,0,99")
		out, err := execute(t, "find", "--target", "100", "--max", "5", fn)
		require.NoError(t, err)
		require.Equal(t, "0 4\n", out)

		_, err = execute(t, "find", "--target", "1000", "--max", "5", fn)
		require.ErrorIs(t, err, vm.ErrNotFound)
		_, err = execute(t, "find", fn)
		require.Error(t, err, "missing --target")
	})
	t.Run("amplify", func(t *testing.T) {
		fn := writeFile(t, "amp.txt", "3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0")
		out, err := execute(t, "amplify", fn)
		require.NoError(t, err)
		require.Equal(t, "43210 [4 3 2 1 0]\n", out)
	})
	t.Run("asm", func(t *testing.T) {
		src := writeFile(t, "countdown.asm", "in n :loop out n add n #-1 n jt n #loop hlt :n .dat 0\n")
		dst := filepath.Join(filepath.Dir(src), "countdown.txt")
		_, err := execute(t, "asm", "-o", dst, src)
		require.NoError(t, err)
		b, err := os.ReadFile(dst)
		require.NoError(t, err)
		require.Equal(t, "3,12,4,12,1001,12,-1,12,1005,12,2,99,0\n", string(b))

		out, err := execute(t, "disasm", dst)
		require.NoError(t, err)
		require.Contains(t, out, "\tjt 12 #2\n")
		require.Contains(t, out, "\thlt\n")
	})
	t.Run("errors", func(t *testing.T) {
		_, err := execute(t, "disasm", filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)
		bad := writeFile(t, "bad.asm", "add #1 #2 #3")
		_, err = execute(t, "asm", bad)
		require.Error(t, err)
	})
}

// This file is part of AdventOfCode2019 - https://github.com/alanbriolat/AdventOfCode2019
//
// Copyright 2019 The AdventOfCode2019 Authors
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
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alanbriolat/AdventOfCode2019/vm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0644))
	return fn
}

func TestParsePatch(t *testing.T) {
	data := []struct {
		in   string
		addr int
		v    vm.Word
		ok   bool
	}{
		{"1=12", 1, 12, true},
		{" 2 = -2 ", 2, -2, true},
		{"0=9223372036854775807", 0, 9223372036854775807, true},
		{"1", 0, 0, false},
		{"-1=3", 0, 0, false},
		{"x=3", 0, 0, false},
		{"1=y", 0, 0, false},
	}
	for _, test := range data {
		addr, v, err := parsePatch(test.in)
		if !test.ok {
			assert.Error(t, err, test.in)
			continue
		}
		require.NoError(t, err, test.in)
		assert.Equal(t, test.addr, addr, test.in)
		assert.Equal(t, test.v, v, test.in)
	}
}

func TestRunCommand(t *testing.T) {
	data := []struct {
		name    string
		code    string
		patches []string
		inputs  []int64
		dump    bool
		out     string
		err     error
	}{
		{"dump", "1,9,10,3,2,3,11,0,99,30,40,50", nil, nil, true,
			"3500,9,10,70,2,3,11,0,99,30,40,50\n", nil},
		{"patch", "1,0,0,0,99,7,8", []string{"1=5", "2=6"}, nil, true,
			"15,5,6,0,99,7,8\n", nil},
		{"io", "3,0,4,0,99", nil, []int64{42}, false, "42\n", nil},
		{"waiting", "3,0,4,0,3,0,99", nil, []int64{1}, false, "1\n", errWaiting},
		{"failure", "104,5,77", nil, nil, false, "5\n", vm.ErrUnknownOpcode},
	}
	for _, test := range data {
		t.Run(test.name, func(t *testing.T) {
			cmd := RunCommand{
				MachineOptions: MachineOptions{Patches: test.patches},
				Inputs:         test.inputs,
				Dump:           test.dump,
			}
			cmd.Args.Program = writeFile(t, "prog.txt", test.code+"\n")
			var b bytes.Buffer
			err := cmd.run(&b)
			assert.Equal(t, test.err, errors.Cause(err), "%+v", err)
			assert.Equal(t, test.out, b.String())
		})
	}

	cmd := RunCommand{MachineOptions: MachineOptions{Patches: []string{"bogus"}}}
	cmd.Args.Program = writeFile(t, "prog.txt", "99")
	assert.Error(t, cmd.run(io.Discard))
	cmd.Args.Program = filepath.Join(t.TempDir(), "missing")
	assert.Error(t, cmd.run(io.Discard))
}

func TestAmpCommand(t *testing.T) {
	var cmd AmpCommand
	cmd.Args.Program = writeFile(t, "amp.txt", "3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0")
	var b bytes.Buffer
	require.NoError(t, cmd.run(&b))
	assert.Equal(t, "43210 4,3,2,1,0\n", b.String())

	cmd.Feedback = true
	cmd.Args.Program = writeFile(t, "amp.txt", "3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5")
	b.Reset()
	require.NoError(t, cmd.run(&b))
	assert.Equal(t, "139629729 9,8,7,6,5\n", b.String())
}

func TestAsmCommand(t *testing.T) {
	src := writeFile(t, "echo.s", "; echo one value\n\tin x\n\tout x\n\thlt\nx: 0\n")
	cmd := AsmCommand{Run: true, Inputs: []int64{7}}
	cmd.Args.Source = src
	var b bytes.Buffer
	require.NoError(t, cmd.run(&b))
	assert.Equal(t, "3,5,4,5,99,0\n7\n", b.String())

	cmd = AsmCommand{Output: filepath.Join(t.TempDir(), "echo.txt")}
	cmd.Args.Source = src
	b.Reset()
	require.NoError(t, cmd.run(&b))
	assert.Empty(t, b.String())
	p, err := vm.Load(cmd.Output)
	require.NoError(t, err)
	assert.Equal(t, vm.Program{3, 5, 4, 5, 99, 0}, p)

	cmd.Args.Source = writeFile(t, "bad.s", "jt #1, nowhere\n")
	assert.Error(t, cmd.run(io.Discard))
}

func TestASCIICommand(t *testing.T) {
	var cmd ASCIICommand
	cmd.Args.Program = writeFile(t, "echo.txt", "3,7,4,7,1105,1,0,0")
	cmd.Scripts = []string{writeFile(t, "script.txt", "hello\nto\n")}
	var b bytes.Buffer
	require.NoError(t, cmd.run(scanLines(strings.NewReader("you\n")), &b))
	assert.Equal(t, "hello\nto\nyou\n", b.String())

	cmd.Scripts = []string{filepath.Join(t.TempDir(), "missing")}
	assert.Error(t, cmd.run(scanLines(strings.NewReader("")), io.Discard))
}

func TestReport(t *testing.T) {
	i, err := vm.New(vm.Program{1101, 1, 1, 5, 77, 0})
	require.NoError(t, err)
	_, err = i.Run()
	require.Error(t, err)

	var b bytes.Buffer
	report(&b, errors.Wrap(err, "run"))
	assert.Contains(t, b.String(), "intcode: pc=4 word=77: unknown opcode")

	b.Reset()
	report(&b, errors.New("plain"))
	assert.True(t, strings.HasPrefix(b.String(), "plain\n"))
}

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
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/alanbriolat/AdventOfCode2019/internal/logging"
	"github.com/alanbriolat/AdventOfCode2019/vm"
	"github.com/pkg/errors"
)

var errWaiting = errors.New("program is waiting for input")

// MachineOptions are shared by the commands that run a program.
type MachineOptions struct {
	Patches []string `short:"p" long:"patch" value-name:"ADDR=VALUE" description:"Set memory at ADDR to VALUE before running"`
	MemSize int      `short:"m" long:"memsize" value-name:"WORDS" description:"Initial memory size"`
	Trace   bool     `long:"trace" description:"Log every instruction executed"`
}

func parsePatch(s string) (addr int, v vm.Word, err error) {
	a, b, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, errors.Errorf("invalid patch %q: expected ADDR=VALUE", s)
	}
	addr, err = strconv.Atoi(strings.TrimSpace(a))
	if err != nil || addr < 0 {
		return 0, 0, errors.Errorf("invalid patch %q: bad address", s)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(b), 10, 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid patch %q", s)
	}
	return addr, vm.Word(n), nil
}

// newMachine creates a machine for p, applies patches and extra options.
func (m *MachineOptions) newMachine(p vm.Program, opts ...vm.Option) (*vm.Instance, error) {
	if m.MemSize > 0 {
		opts = append(opts, vm.MemSize(m.MemSize))
	}
	if m.Trace {
		if !logging.Enabled(logging.LogLevelDebug) {
			logging.Setup(logging.LogLevelDebug)
		}
		opts = append(opts, vm.Trace(logging.Logger()))
	}
	i, err := vm.New(p, opts...)
	if err != nil {
		return nil, err
	}
	for _, s := range m.Patches {
		addr, v, err := parsePatch(s)
		if err != nil {
			return nil, err
		}
		i.Set(addr, v)
	}
	return i, nil
}

func loadProgram(fileName string) (vm.Program, error) {
	p, err := vm.Load(fileName)
	if err != nil {
		return nil, err
	}
	logging.Log(logging.LogLevelInfo, "program loaded", "file", fileName, "words", len(p))
	return p, nil
}

// execute runs i with the given inputs and writes its output to w, one value
// per line.
func execute(i *vm.Instance, inputs []int64, w io.Writer) error {
	for _, v := range inputs {
		i.Write(vm.Word(v))
	}
	bw := bufio.NewWriter(w)
	err := i.SetOptions(vm.BindOutHandler(func(_ *vm.Instance, v vm.Word) error {
		_, err := bw.WriteString(strconv.FormatInt(int64(v), 10) + "\n")
		return err
	}))
	if err != nil {
		return err
	}
	st, err := i.Run()
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}
	logging.Log(logging.LogLevelInfo, "program stopped", "state", st, "pc", i.PC, "instructions", i.InstructionCount())
	if st == vm.ReadWait {
		return errors.Wrapf(errWaiting, "pc %d", i.PC)
	}
	return nil
}

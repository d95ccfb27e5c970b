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

package asm

import (
	"io"
	"strings"

	"github.com/alanbriolat/AdventOfCode2019/vm"
	"github.com/alecthomas/participle/v2/lexer"
)

var aliases = map[string]vm.Opcode{
	"read":  vm.OpIn,
	"write": vm.OpOut,
	"jnz":   vm.OpJumpTrue,
	"jz":    vm.OpJumpFalse,
	"rbo":   vm.OpAdjustBase,
	"halt":  vm.OpHalt,
}

func mnemonic(s string) (vm.Opcode, bool) {
	s = strings.ToLower(s)
	if op, ok := vm.Mnemonics[s]; ok {
		return op, true
	}
	op, ok := aliases[s]
	return op, ok
}

// Error is an assembly error at a given source position.
type Error struct {
	Pos lexer.Position
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm lists the errors found while assembling a program.
type ErrAsm []Error

// maxErrors is the maximum number of errors reported by Assemble.
const maxErrors = 10

func (e ErrAsm) Error() string {
	var b strings.Builder
	for k := range e {
		if k > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e[k].Error())
	}
	return b.String()
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program and error if any.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, is an ErrAsm value that will contain up to 10
// entries.
func Assemble(name string, r io.Reader) (vm.Program, error) {
	p := newParser()
	if err := p.Parse(name, r); err != nil {
		return nil, err
	}
	return p.words, nil
}

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

package vm

import "strconv"

// Opcode identifies an instruction. It is the value of the two lowest decimal
// digits of an instruction word.
type Opcode Word

// Intcode opcodes.
const (
	OpAdd        Opcode = 1
	OpMul        Opcode = 2
	OpIn         Opcode = 3
	OpOut        Opcode = 4
	OpJumpTrue   Opcode = 5
	OpJumpFalse  Opcode = 6
	OpLessThan   Opcode = 7
	OpEqual      Opcode = 8
	OpAdjustBase Opcode = 9
	OpHalt       Opcode = 99
)

type opInfo struct {
	name  string
	arity int
}

// indexed by opcode, arity -1 marks an invalid opcode
var opcodes [100]opInfo

// Mnemonics maps assembler mnemonics to opcodes.
var Mnemonics = make(map[string]Opcode)

func init() {
	for k := range opcodes {
		opcodes[k].arity = -1
	}
	for _, o := range []struct {
		op Opcode
		opInfo
	}{
		{OpAdd, opInfo{"add", 3}},
		{OpMul, opInfo{"mul", 3}},
		{OpIn, opInfo{"in", 1}},
		{OpOut, opInfo{"out", 1}},
		{OpJumpTrue, opInfo{"jt", 2}},
		{OpJumpFalse, opInfo{"jf", 2}},
		{OpLessThan, opInfo{"lt", 3}},
		{OpEqual, opInfo{"eq", 3}},
		{OpAdjustBase, opInfo{"arb", 1}},
		{OpHalt, opInfo{"hlt", 0}},
	} {
		opcodes[o.op] = o.opInfo
		Mnemonics[o.name] = o.op
	}
}

// Valid returns true if op is a known opcode.
func (op Opcode) Valid() bool {
	return op >= 0 && int(op) < len(opcodes) && opcodes[op].arity >= 0
}

// Arity returns the number of parameters of op, or -1 if op is not valid.
func (op Opcode) Arity() int {
	if !op.Valid() {
		return -1
	}
	return opcodes[op].arity
}

func (op Opcode) String() string {
	if !op.Valid() {
		return "op(" + strconv.FormatInt(int64(op), 10) + ")"
	}
	return opcodes[op].name
}

// Writes returns true if the last parameter of op is a write target.
func (op Opcode) Writes() bool {
	switch op {
	case OpAdd, OpMul, OpIn, OpLessThan, OpEqual:
		return true
	}
	return false
}

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

package vm_test

import (
	"testing"

	"github.com/alanbriolat/AdventOfCode2019/vm"
	"github.com/pkg/errors"
)

func TestDecode(t *testing.T) {
	mem := vm.Memory{99, 1002, 4, 3, 4, 21108, -1, 8, 3, 204, 109}
	var tests = [...]struct {
		pc   int
		code vm.Opcode
		args []vm.Param
		size int
		str  string
	}{
		{0, vm.OpHalt, []vm.Param{}, 1, "hlt"},
		{1, vm.OpMul, []vm.Param{{vm.Position, 4}, {vm.Immediate, 3}, {vm.Position, 4}}, 4, "mul 4, #3, 4"},
		{5, vm.OpEqual, []vm.Param{{vm.Immediate, -1}, {vm.Immediate, 8}, {vm.Relative, 3}}, 4, "eq #-1, #8, @3"},
		{9, vm.OpOut, []vm.Param{{vm.Relative, 109}}, 2, "out @109"},
		// operands past the end of memory read as 0
		{10, vm.OpAdjustBase, []vm.Param{{vm.Immediate, 0}}, 2, "arb #0"},
	}
	for _, test := range tests {
		op, err := vm.Decode(mem, test.pc)
		if err != nil {
			t.Errorf("pc %d: %v", test.pc, err)
			continue
		}
		if op.Code != test.code {
			t.Errorf("pc %d: expected opcode %v, got %v", test.pc, test.code, op.Code)
		}
		args := op.Args()
		if len(args) != len(test.args) {
			t.Errorf("pc %d: expected %d args, got %d", test.pc, len(test.args), len(args))
			continue
		}
		for k := range args {
			if args[k] != test.args[k] {
				t.Errorf("pc %d: arg %d: expected %v, got %v", test.pc, k, test.args[k], args[k])
			}
		}
		if op.Size() != test.size {
			t.Errorf("pc %d: expected size %d, got %d", test.pc, test.size, op.Size())
		}
		if s := op.String(); s != test.str {
			t.Errorf("pc %d: expected %q, got %q", test.pc, test.str, s)
		}
	}
}

func TestDecode_errors(t *testing.T) {
	var tests = [...]struct {
		mem   vm.Memory
		pc    int
		cause error
	}{
		{vm.Memory{42}, 0, vm.ErrUnknownOpcode},
		{vm.Memory{0}, 0, vm.ErrUnknownOpcode},
		{vm.Memory{-1}, 0, vm.ErrUnknownOpcode},
		{vm.Memory{301, 0, 0, 0}, 0, vm.ErrBadMode},
		{vm.Memory{404, 0}, 0, vm.ErrBadMode},
		{vm.Memory{99}, -1, vm.ErrNegativeAddress},
		// past the end of memory is 0, which is not an opcode
		{vm.Memory{99}, 1, vm.ErrUnknownOpcode},
	}
	for _, test := range tests {
		_, err := vm.Decode(test.mem, test.pc)
		if errors.Cause(err) != test.cause {
			t.Errorf("%v @%d: expected %v, got %v", test.mem, test.pc, test.cause, err)
		}
	}
}

func TestOpcode(t *testing.T) {
	for _, test := range []struct {
		op    vm.Opcode
		arity int
		name  string
	}{
		{vm.OpAdd, 3, "add"},
		{vm.OpIn, 1, "in"},
		{vm.OpJumpFalse, 2, "jf"},
		{vm.OpHalt, 0, "hlt"},
		{10, -1, "op(10)"},
		{100, -1, "op(100)"},
	} {
		if a := test.op.Arity(); a != test.arity {
			t.Errorf("%d: expected arity %d, got %d", test.op, test.arity, a)
		}
		if s := test.op.String(); s != test.name {
			t.Errorf("%d: expected name %s, got %s", test.op, test.name, s)
		}
	}
	if vm.Mnemonics["arb"] != vm.OpAdjustBase {
		t.Errorf("arb mnemonic not registered")
	}
}

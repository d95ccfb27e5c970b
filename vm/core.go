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

import (
	"github.com/pkg/errors"
)

// State is the execution state reported by Step and Run.
type State int

// Execution states.
const (
	Continue State = iota // an instruction was executed, more may follow
	Halt                  // the program has halted
	ReadWait              // the program is waiting for input
)

func (s State) String() string {
	switch s {
	case Continue:
		return "continue"
	case Halt:
		return "halt"
	case ReadWait:
		return "read-wait"
	}
	return "unknown"
}

// addr returns the memory address designated by p.
func (i *Instance) addr(p Param) int {
	switch p.Mode {
	case Position:
		return int(p.Value)
	case Relative:
		return i.RB + int(p.Value)
	}
	panic(ErrImmediateTarget)
}

func (i *Instance) load(p Param) Word {
	if p.Mode == Immediate {
		return p.Value
	}
	return i.Mem.Get(i.addr(p))
}

func (i *Instance) store(p Param, v Word) {
	i.Mem.Set(i.addr(p), v)
}

func b2w(b bool) Word {
	if b {
		return 1
	}
	return 0
}

// step executes the instruction at PC. Addressing errors are raised as panics
// and must be recovered by the caller.
func (i *Instance) step() (State, error) {
	op, err := Decode(i.Mem, i.PC)
	if err != nil {
		return Continue, err
	}
	if i.trace != nil {
		i.trace.Debug("step", "pc", i.PC, "rb", i.RB, "op", op)
	}
	if op.Code.Writes() {
		if p := op.Params[op.Code.Arity()-1]; p.Mode == Immediate {
			return Continue, errors.Wrapf(ErrImmediateTarget, "%v", op)
		}
	}
	a, b, c := op.Params[0], op.Params[1], op.Params[2]
	switch op.Code {
	case OpAdd:
		i.store(c, i.load(a)+i.load(b))
	case OpMul:
		i.store(c, i.load(a)*i.load(b))
	case OpIn:
		v, ok, err := i.input()
		if err != nil {
			return Continue, errors.Wrap(err, "input")
		}
		if !ok {
			return ReadWait, nil
		}
		i.store(a, v)
	case OpOut:
		if err := i.output(i.load(a)); err != nil {
			return Continue, errors.Wrap(err, "output")
		}
	case OpJumpTrue:
		if i.load(a) != 0 {
			i.PC = int(i.load(b))
			i.insCount++
			return Continue, nil
		}
	case OpJumpFalse:
		if i.load(a) == 0 {
			i.PC = int(i.load(b))
			i.insCount++
			return Continue, nil
		}
	case OpLessThan:
		i.store(c, b2w(i.load(a) < i.load(b)))
	case OpEqual:
		i.store(c, b2w(i.load(a) == i.load(b)))
	case OpAdjustBase:
		i.RB += int(i.load(a))
	case OpHalt:
		return Halt, nil
	}
	i.PC += op.Size()
	i.insCount++
	return Continue, nil
}

// fail wraps err into an *Error pointing at the current instruction.
func (i *Instance) fail(err error) error {
	w := Word(0)
	if i.PC >= 0 {
		w = i.Mem.Get(i.PC)
	}
	return &Error{PC: i.PC, Word: w, Err: err}
}

// recoverError converts a panic raised by the memory accessors into an *Error.
// Panics that are not errors are propagated.
func (i *Instance) recoverError(err *error) {
	if e := recover(); e != nil {
		switch e := e.(type) {
		case error:
			*err = i.fail(e)
		default:
			panic(e)
		}
	}
}

// Step executes a single instruction and returns the resulting state.
//
// Halt and ReadWait leave the PC untouched, so calling Step again yields the
// same state until input is supplied with Write. If an error occurs, the PC will
// point to the instruction that triggered the error and the returned error is
// an *Error.
func (i *Instance) Step() (st State, err error) {
	defer i.recoverError(&err)
	st, err = i.step()
	if err != nil {
		return st, i.fail(err)
	}
	return st, nil
}

// Run executes instructions until the program halts or waits for input, and
// returns the corresponding state (Halt or ReadWait). Run never blocks: when it
// returns ReadWait, supply more input with Write and call Run again.
//
// If an error occurs, the PC will point to the instruction that triggered the
// error and the returned error is an *Error. The machine should not be resumed
// after an error.
func (i *Instance) Run() (st State, err error) {
	defer i.recoverError(&err)
	for {
		st, err = i.step()
		if err != nil {
			return st, i.fail(err)
		}
		if st != Continue {
			return st, nil
		}
	}
}

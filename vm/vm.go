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
	"io"
	"log/slog"

	"github.com/pkg/errors"
)

// Instance represents an Intcode machine.
type Instance struct {
	PC       int    // Program Counter (aka. Instruction Pointer)
	RB       int    // Relative base
	Mem      Memory // Memory
	in       []Word
	inPos    int
	out      []Word
	outPos   int
	insCount int64
	inH      InHandler
	outH     OutHandler
	trace    *slog.Logger
}

// Option interface
type Option func(*Instance) error

// Input queues the given values as input.
func Input(v ...Word) Option {
	return func(i *Instance) error { i.Write(v...); return nil }
}

// MemSize makes sure that memory can grow up to size words without
// reallocation. It never shrinks memory.
func MemSize(size int) Option {
	return func(i *Instance) error {
		if size < 0 {
			return errors.Errorf("invalid memory size %d", size)
		}
		if size > cap(i.Mem) {
			m := make(Memory, len(i.Mem), size)
			copy(m, i.Mem)
			i.Mem = m
		}
		return nil
	}
}

// InHandler is the function prototype for custom input handlers. It is called
// by the in instruction when the input queue is empty. If ok is false, the
// machine suspends with ReadWait as if there were no handler. A non-nil error
// aborts execution.
type InHandler func(i *Instance) (v Word, ok bool, err error)

// OutHandler is the function prototype for custom output handlers. When bound,
// output values are passed to the handler instead of being queued.
type OutHandler func(i *Instance, v Word) error

// BindInHandler binds the provided input handler.
func BindInHandler(h InHandler) Option {
	return func(i *Instance) error { i.inH = h; return nil }
}

// BindOutHandler binds the provided output handler.
func BindOutHandler(h OutHandler) Option {
	return func(i *Instance) error { i.outH = h; return nil }
}

// Trace logs every instruction before it is executed at debug level on the
// given logger. A nil logger disables tracing.
func Trace(l *slog.Logger) Option {
	return func(i *Instance) error { i.trace = l; return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode machine running program p. The program is copied
// into the machine's memory; p itself is never modified.
//
// Options will be set by calling SetOptions.
func New(p Program, opts ...Option) (*Instance, error) {
	i := &Instance{
		Mem: Memory(p.Clone()),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Clone returns a deep copy of i. Memory, registers and both queues are
// copied; bound handlers and the trace logger are shared.
func (i *Instance) Clone() *Instance {
	c := *i
	c.Mem = append(make(Memory, 0, cap(i.Mem)), i.Mem...)
	c.in = append([]Word(nil), i.in[i.inPos:]...)
	c.inPos = 0
	c.out = append([]Word(nil), i.out[i.outPos:]...)
	c.outPos = 0
	return &c
}

// Get returns the value at address addr. It does not affect the I/O queues.
// Get panics if addr is negative.
func (i *Instance) Get(addr int) Word {
	return i.Mem.Get(addr)
}

// Set stores v at address addr, growing memory as needed. Set panics if addr is
// negative.
func (i *Instance) Set(addr int, v Word) {
	i.Mem.Set(addr, v)
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Dump writes the contents of memory to w in program text form, followed by a
// new line. The output can be loaded back with ParseProgram.
func (i *Instance) Dump(w io.Writer) error {
	if err := writeWords(w, i.Mem); err != nil {
		return err
	}
	_, err := w.Write([]byte{'\n'})
	return err
}

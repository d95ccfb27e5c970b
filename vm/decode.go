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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Mode is a parameter addressing mode.
type Mode int8

// Addressing modes.
const (
	Position  Mode = iota // address of the value
	Immediate             // the value itself
	Relative              // address of the value, relative to the relative base
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// Param is a decoded instruction parameter.
type Param struct {
	Mode  Mode
	Value Word
}

func (p Param) String() string {
	s := strconv.FormatInt(int64(p.Value), 10)
	switch p.Mode {
	case Immediate:
		return "#" + s
	case Relative:
		return "@" + s
	}
	return s
}

// Op is a decoded instruction. Only the first Code.Arity() parameters are
// meaningful.
type Op struct {
	Code   Opcode
	Params [3]Param
}

// Args returns the parameters of o.
func (o Op) Args() []Param {
	return o.Params[:o.Code.Arity()]
}

// Size returns the number of words o occupies in memory.
func (o Op) Size() int {
	return 1 + o.Code.Arity()
}

func (o Op) String() string {
	var b strings.Builder
	b.WriteString(o.Code.String())
	for k, p := range o.Args() {
		if k == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	return b.String()
}

// Decode decodes the instruction at address pc in mem.
func Decode(mem Memory, pc int) (op Op, err error) {
	if pc < 0 {
		return op, errors.Wrapf(ErrNegativeAddress, "pc %d", pc)
	}
	w := mem.Get(pc)
	if w < 0 {
		return op, errors.Wrapf(ErrUnknownOpcode, "%d", w)
	}
	op.Code = Opcode(w % 100)
	n := op.Code.Arity()
	if n < 0 {
		return op, errors.Wrapf(ErrUnknownOpcode, "%d", op.Code)
	}
	modes := w / 100
	for k := 0; k < n; k++ {
		m := Mode(modes % 10)
		if m > Relative {
			return op, errors.Wrapf(ErrBadMode, "parameter %d mode %d", k+1, m)
		}
		modes /= 10
		op.Params[k] = Param{m, mem.Get(pc + 1 + k)}
	}
	return op, nil
}

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
	"fmt"

	"github.com/pkg/errors"
)

// Fatal error causes. Use errors.Cause to match them against errors returned
// by Step and Run.
var (
	ErrUnknownOpcode   = errors.New("unknown opcode")
	ErrBadMode         = errors.New("bad parameter mode")
	ErrNegativeAddress = errors.New("negative address")
	ErrImmediateTarget = errors.New("immediate mode write target")
)

// Error is returned by Step and Run when the machine cannot proceed. PC is the
// address of the failing instruction and Word its raw value.
type Error struct {
	PC   int
	Word Word
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("intcode: pc=%d word=%d: %v", e.PC, e.Word, e.Err)
}

// Cause returns the underlying error.
func (e *Error) Cause() error { return e.Err }

func (e *Error) Unwrap() error { return e.Err }

// Format implements fmt.Formatter. The %+v verb also prints the stack trace
// of the underlying error.
func (e *Error) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "intcode: pc=%d word=%d: %+v", e.PC, e.Word, e.Err)
		return
	}
	fmt.Fprint(s, e.Error())
}

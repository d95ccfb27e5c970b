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

// Package vm implements the Intcode virtual machine.
//
// An Intcode program is a list of signed integers that is used both as code and
// as data. Each instruction word encodes an opcode in its two lowest decimal
// digits and the addressing mode of each parameter in the following digits,
// first parameter first:
//
//	ABCDE
//	 1002
//
//	DE - two-digit opcode,      02 == opcode 2
//	 C - mode of 1st parameter,  0 == position mode
//	 B - mode of 2nd parameter,  1 == immediate mode
//	 A - mode of 3rd parameter,  0 == position mode (omitted leading zero)
//
// Supported instructions:
//
//	opcode	asm	args	description
//	------	---	----	--------------------------------------------------
//	1	add	a b c	c = a + b
//	2	mul	a b c	c = a * b
//	3	in	a	a = next input value, or suspend if there is none
//	4	out	a	emit a
//	5	jt	a b	if a != 0 jump to b
//	6	jf	a b	if a == 0 jump to b
//	7	lt	a b c	c = 1 if a < b else 0
//	8	eq	a b c	c = 1 if a == b else 0
//	9	arb	a	relative base += a
//	99	hlt		halt
//
// Memory grows on demand: reading past the end yields 0 and writing past the
// end extends memory with zeros. Negative addresses are fatal.
//
// An Instance never blocks. Run returns ReadWait when an input instruction finds
// the input queue empty; the caller supplies more input with Write and calls Run
// again, which retries the same instruction. This is what allows a driver to
// chain several machines together from a single goroutine. Instances are not
// safe for concurrent use; use Clone to give each goroutine its own copy.
package vm

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

// Package asm provides an assembler for Intcode programs.
//
// Supported assembler mnemonics:
//
//	opcode	asm	alias	args	description
//	------	---	-----	----	--------------------------------------------
//	1	add		a b c	c = a + b
//	2	mul		a b c	c = a * b
//	3	in	read	a	a = next input value
//	4	out	write	a	output a
//	5	jt	jnz	a b	jump to b if a != 0
//	6	jf	jz	a b	jump to b if a == 0
//	7	lt		a b c	c = 1 if a < b else 0
//	8	eq		a b c	c = 1 if a == b else 0
//	9	arb	rbo	a	add a to the relative base
//	99	hlt	halt		halt
//
// Mnemonics are case insensitive. Parameters may be separated by white space
// and/or commas.
//
// Comments start with a semicolon and run to the end of the line.
//
// Parameters:
//
// A parameter is an integer literal, a constant or a label, optionally
// prefixed by an addressing mode:
//
//	add x, #1, x	; x is an address: position mode
//	out #42		; immediate mode
//	out @-1		; relative mode: relative base - 1
//
// Labels and constants may be followed by a signed offset, without any space in
// between, for example "table+2" or "end-1". Write targets (the last parameter
// of add, mul, in, lt and eq) cannot use immediate mode.
//
// Data:
//
// Integer literals, constants and labels found where an instruction is expected
// are compiled as-is as data words. As a consequence, regular comma separated
// Intcode program text is valid assembly and assembles to itself:
//
//	1,9,10,3,2,3,11,0,99,30,40,50
//
// Labels:
//
// Labels are defined by a name immediately followed by a colon and can be used
// anywhere a value is expected (without the colon). Forward references are
// fine:
//
//	loop:	in x
//		out x
//		jt #1, #loop
//	x:	0
//
// Directives:
//
//	.equ <IDENTIFIER> <value>
//
// defines a constant value. The value must be an integer literal or a
// previously defined constant.
//
//	.org <value>
//
// Pads the output with zeros up to the specified address. Moving backwards is
// an error.
//
//	.dat <value>
//
// Compiles the specified value as-is. This is only needed for labels that have
// the same name as a mnemonic.
package asm

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


// The intcode command runs, assembles and wires up Intcode programs.
//
// Usage:
//
//	intcode [-l none|info|debug] [--debug] COMMAND [OPTIONS] ARGS
//
// Commands:
//
//	run PROGRAM      run a program, feeding it the values given with -i and
//	                 printing its output one value per line
//	ascii PROGRAM    interactive session with an ASCII program
//	amp PROGRAM      find the best amplifier circuit signal
//	asm SOURCE       assemble a source file into program text
//
// PROGRAM is a file holding comma separated integers.
//
// -p ADDR=VALUE: patch memory at address ADDR before running. May be given
// more than once.
//
// --trace: log every instruction executed. This implies -l debug.
//
// run --dump: write the final memory contents to stdout after the program
// halts.
//
// run: a program left waiting for input after all -i values have been consumed
// is an error.
//
// ascii -s SCRIPT: feed the lines of SCRIPT before reading from the terminal.
// When stdin is a terminal, lines are read with line editing and history.
//
// amp --feedback: use phase settings 5 to 9 in a feedback loop rather than 0 to
// 4 in series.
//
// asm -o FILE: write the program to FILE instead of stdout. With --run, the
// assembled program is also run, as with the run command.
//
// --debug: print the machine state along with the error when a program
// fails.
package main

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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alanbriolat/AdventOfCode2019/circuit"
	"github.com/alanbriolat/AdventOfCode2019/vm"
)

type AmpCommand struct {
	Feedback bool `short:"f" long:"feedback" description:"Wire amplifiers in a feedback loop with phases 5 to 9"`
	Args     struct {
		Program string `positional-arg-name:"PROGRAM" required:"yes"`
	} `positional-args:"yes"`
}

var ampCommand AmpCommand

func (cmd *AmpCommand) Execute(args []string) error {
	return cmd.run(os.Stdout)
}

// run prints the best signal followed by the phase settings producing it.
func (cmd *AmpCommand) run(w io.Writer) error {
	p, err := loadProgram(cmd.Args.Program)
	if err != nil {
		return err
	}
	base, err := vm.New(p)
	if err != nil {
		return err
	}
	phases, run := []vm.Word{0, 1, 2, 3, 4}, circuit.Runner(circuit.Chain)
	if cmd.Feedback {
		phases, run = []vm.Word{5, 6, 7, 8, 9}, circuit.Feedback
	}
	s, order, err := circuit.Best(base, phases, run)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%d %v\n", s, vm.Program(order))
	return err
}

func init() {
	flagsparser.AddCommand(
		"amp",
		"Find the best amplifier circuit signal",
		"Run a chain of five amplifiers over every ordering of phase settings and print the highest output signal",
		&ampCommand,
	)
}

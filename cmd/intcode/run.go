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
	"io"
	"os"
)

type RunCommand struct {
	MachineOptions
	Inputs []int64 `short:"i" long:"input" value-name:"N" description:"Queue N as input (can be specified multiple times)"`
	Dump   bool    `long:"dump" description:"Write memory contents to stdout upon exit"`
	Args   struct {
		Program string `positional-arg-name:"PROGRAM" required:"yes"`
	} `positional-args:"yes"`
}

var runCommand RunCommand

func (cmd *RunCommand) Execute(args []string) error {
	return cmd.run(os.Stdout)
}

func (cmd *RunCommand) run(w io.Writer) error {
	p, err := loadProgram(cmd.Args.Program)
	if err != nil {
		return err
	}
	i, err := cmd.newMachine(p)
	if err != nil {
		return err
	}
	if err = execute(i, cmd.Inputs, w); err != nil {
		return err
	}
	if cmd.Dump {
		return i.Dump(w)
	}
	return nil
}

func init() {
	flagsparser.AddCommand(
		"run",
		"Run an Intcode program",
		"Run an Intcode program, feeding it the given inputs and printing its outputs one per line",
		&runCommand,
	)
}

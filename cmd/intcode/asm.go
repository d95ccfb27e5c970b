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

	"github.com/alanbriolat/AdventOfCode2019/asm"
	"github.com/alanbriolat/AdventOfCode2019/internal/logging"
	"github.com/alanbriolat/AdventOfCode2019/vm"
)

type AsmCommand struct {
	MachineOptions
	Output string  `short:"o" long:"output" value-name:"FILE" description:"Write the program to FILE instead of stdout"`
	Run    bool    `short:"r" long:"run" description:"Run the assembled program"`
	Inputs []int64 `short:"i" long:"input" value-name:"N" description:"Queue N as input when running (can be specified multiple times)"`
	Args   struct {
		Source string `positional-arg-name:"SOURCE" required:"yes"`
	} `positional-args:"yes"`
}

var asmCommand AsmCommand

func (cmd *AsmCommand) Execute(args []string) error {
	return cmd.run(os.Stdout)
}

func (cmd *AsmCommand) run(w io.Writer) error {
	f, err := os.Open(cmd.Args.Source)
	if err != nil {
		return err
	}
	defer f.Close()
	p, err := asm.Assemble(cmd.Args.Source, f)
	if err != nil {
		return err
	}
	logging.Log(logging.LogLevelInfo, "assembled", "file", cmd.Args.Source, "words", len(p))
	if cmd.Output != "" {
		err = vm.Save(cmd.Output, p)
	} else {
		_, err = fmt.Fprintln(w, p)
	}
	if err != nil || !cmd.Run {
		return err
	}
	i, err := cmd.newMachine(p)
	if err != nil {
		return err
	}
	return execute(i, cmd.Inputs, w)
}

func init() {
	flagsparser.AddCommand(
		"asm",
		"Assemble an Intcode program",
		"Assemble a source file into comma separated program text",
		&asmCommand,
	)
}

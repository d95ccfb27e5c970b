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
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/alanbriolat/AdventOfCode2019/lang/ascii"
	"github.com/chzyer/readline"
	"github.com/pkg/errors"
)

type ASCIICommand struct {
	MachineOptions
	Scripts []string `short:"s" long:"script" value-name:"FILE" description:"Feed the lines of FILE before reading from stdin (can be specified multiple times)"`
	Args    struct {
		Program string `positional-arg-name:"PROGRAM" required:"yes"`
	} `positional-args:"yes"`
}

var asciiCommand ASCIICommand

func readLines(fileName string) ([]string, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "script")
	}
	defer f.Close()
	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	return lines, errors.Wrapf(s.Err(), "script %s", fileName)
}

// prepend returns a line source that yields lines before calling next.
func prepend(lines []string, next func() (string, error)) func() (string, error) {
	return func() (string, error) {
		if len(lines) > 0 {
			l := lines[0]
			lines = lines[1:]
			return l, nil
		}
		return next()
	}
}

func scanLines(r io.Reader) func() (string, error) {
	s := bufio.NewScanner(r)
	return func() (string, error) {
		if s.Scan() {
			return s.Text(), nil
		}
		if err := s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
}

// terminal returns a line editor on stdin, or nil if stdin is not a terminal.
func terminal() (*readline.Instance, error) {
	if !readline.IsTerminal(int(os.Stdin.Fd())) {
		return nil, nil
	}
	return readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".intcode_history"),
		HistoryLimit:    1000,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

func (cmd *ASCIICommand) Execute(args []string) error {
	next := scanLines(os.Stdin)
	rl, err := terminal()
	if err != nil {
		return err
	}
	if rl != nil {
		defer rl.Close()
		next = func() (string, error) {
			l, err := rl.Readline()
			if err == readline.ErrInterrupt {
				return "", io.EOF
			}
			return l, err
		}
	}
	return cmd.run(next, os.Stdout)
}

// run runs an ASCII session. Running out of input ends the session.
func (cmd *ASCIICommand) run(next func() (string, error), w io.Writer) error {
	var script []string
	for _, s := range cmd.Scripts {
		l, err := readLines(s)
		if err != nil {
			return err
		}
		script = append(script, l...)
	}
	p, err := loadProgram(cmd.Args.Program)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	defer bw.Flush()
	next = prepend(script, next)
	i, err := cmd.newMachine(p,
		ascii.Output(bw),
		ascii.Input(func() (string, error) {
			if err := bw.Flush(); err != nil {
				return "", err
			}
			return next()
		}))
	if err != nil {
		return err
	}
	if _, err = i.Run(); err != nil {
		return err
	}
	return bw.Flush()
}

func init() {
	flagsparser.AddCommand(
		"ascii",
		"Run an ASCII Intcode program interactively",
		"Run an Intcode program that reads and writes text, one character per word. Non-ASCII output values are printed in decimal",
		&asciiCommand,
	)
}

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

	"github.com/alanbriolat/AdventOfCode2019/internal/logging"
	"github.com/alanbriolat/AdventOfCode2019/vm"
	"github.com/alecthomas/repr"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

type Options struct {
	LogLevel logging.LogLevel `short:"l" long:"loglevel" description:"Set the level of logging" choice:"none" choice:"info" choice:"debug" default:"none"`
	Debug    bool             `long:"debug" description:"Print the machine state when a program fails"`
}

var (
	opts        Options
	flagsparser = flags.NewParser(&opts, flags.Default)
)

// report writes the machine state carried by err, if any.
func report(w io.Writer, err error) {
	var e *vm.Error
	if !errors.As(err, &e) {
		fmt.Fprintf(w, "%+v\n", err)
		return
	}
	fmt.Fprintf(w, "%+v\n", e)
	fmt.Fprintln(w, repr.String(e, repr.Indent("  ")))
}

func main() {
	flagsparser.CommandHandler = func(command flags.Commander, args []string) error {
		logging.Setup(opts.LogLevel)
		err := command.Execute(args)
		if err != nil && opts.Debug {
			report(os.Stderr, err)
		}
		return err
	}

	if _, err := flagsparser.Parse(); err != nil {
		switch flagsErr := err.(type) {
		case *flags.Error:
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1)
		default:
			os.Exit(1)
		}
	}
}

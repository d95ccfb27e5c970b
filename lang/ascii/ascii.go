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

// Package ascii provides helpers to drive Intcode programs that talk ASCII:
// programs that read and write one character per word, with the occasional
// non-ASCII value (a score, a total...) mixed in the output.
package ascii

import (
	"io"
	"strconv"
	"strings"

	"github.com/alanbriolat/AdventOfCode2019/vm"
)

// MaxASCII is the largest value that Decode and Output treat as a character.
const MaxASCII = 127

// Encode returns the bytes of s as words.
func Encode(s string) []vm.Word {
	w := make([]vm.Word, len(s))
	for k := 0; k < len(s); k++ {
		w[k] = vm.Word(s[k])
	}
	return w
}

// EncodeLine is like Encode but appends a new line.
func EncodeLine(s string) []vm.Word {
	return append(Encode(s), '\n')
}

// Decode splits words into text, made of the values in the ASCII range, and
// rest, the other values in order of appearance.
func Decode(words []vm.Word) (text string, rest []vm.Word) {
	var b strings.Builder
	for _, v := range words {
		if v >= 0 && v <= MaxASCII {
			b.WriteByte(byte(v))
		} else {
			rest = append(rest, v)
		}
	}
	return b.String(), rest
}

// WriteLine queues each line, followed by a new line, as input to i.
func WriteLine(i *vm.Instance, lines ...string) {
	for _, l := range lines {
		i.Write(EncodeLine(l)...)
	}
}

// Input returns an option that feeds the machine one line at a time: whenever
// the input queue runs dry, next is called for another line. When next returns
// io.EOF, the machine suspends with vm.ReadWait.
func Input(next func() (string, error)) vm.Option {
	return vm.BindInHandler(func(i *vm.Instance) (vm.Word, bool, error) {
		line, err := next()
		if err == io.EOF {
			return 0, false, nil
		}
		if err != nil {
			return 0, false, err
		}
		w := EncodeLine(line)
		i.Write(w[1:]...)
		return w[0], true, nil
	})
}

// Output returns an option that writes machine output to w. Characters are
// written as-is, other values are written in decimal on a line of their own.
func Output(w io.Writer) vm.Option {
	var buf [24]byte
	return vm.BindOutHandler(func(i *vm.Instance, v vm.Word) error {
		var err error
		if v >= 0 && v <= MaxASCII {
			buf[0] = byte(v)
			_, err = w.Write(buf[:1])
		} else {
			_, err = w.Write(append(strconv.AppendInt(buf[:0], int64(v), 10), '\n'))
		}
		return err
	})
}

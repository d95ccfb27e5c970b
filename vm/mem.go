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
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alanbriolat/AdventOfCode2019/internal/ici"
	"github.com/pkg/errors"
)

// Word is the raw type stored in a memory location and in registers.
type Word int64

// Memory is a growable array of Words. Reads past the end return 0, writes past
// the end extend it with zeros.
type Memory []Word

// Get returns the value at address addr, or 0 if addr is past the end of
// memory. Get panics if addr is negative.
func (m Memory) Get(addr int) Word {
	if addr < 0 {
		panic(errors.Wrapf(ErrNegativeAddress, "read %d", addr))
	}
	if addr >= len(m) {
		return 0
	}
	return m[addr]
}

// Set stores v at address addr, growing m as needed. Set panics if addr is
// negative.
func (m *Memory) Set(addr int, v Word) {
	if addr < 0 {
		panic(errors.Wrapf(ErrNegativeAddress, "write %d", addr))
	}
	if addr >= len(*m) {
		*m = append(*m, make([]Word, addr+1-len(*m))...)
	}
	(*m)[addr] = v
}

// Program is a parsed Intcode program. It is only used to initialize the memory
// of new instances and is never modified by them.
type Program []Word

// ParseProgram parses the comma separated program text s.
func ParseProgram(s string) (Program, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty program")
	}
	fields := strings.Split(s, ",")
	p := make(Program, len(fields))
	for k, f := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "token %d", k)
		}
		p[k] = Word(n)
	}
	return p, nil
}

// Load loads a program from file fileName.
func Load(fileName string) (Program, error) {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	p, err := ParseProgram(string(b))
	if err != nil {
		return nil, errors.Wrapf(err, "Load %v", fileName)
	}
	return p, nil
}

// Save writes p to file fileName in program text form.
func Save(fileName string, p Program) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if e := w.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "save failed")
		}
		f.Close()
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	if err = writeWords(w, p); err != nil {
		return errors.Wrap(err, "save failed")
	}
	_, err = w.Write([]byte{'\n'})
	return err
}

// String returns p in comma separated form.
func (p Program) String() string {
	var b strings.Builder
	writeWords(&b, p)
	return b.String()
}

// Clone returns a copy of p.
func (p Program) Clone() Program {
	return append(Program(nil), p...)
}

func writeWords(w io.Writer, a []Word) error {
	ew, _ := w.(*ici.ErrWriter)
	if ew == nil {
		ew = ici.NewErrWriter(w)
	}
	var buf [24]byte
	for k, v := range a {
		if k > 0 {
			ew.Write([]byte{','})
		}
		ew.Write(strconv.AppendInt(buf[:0], int64(v), 10))
	}
	return ew.Err
}

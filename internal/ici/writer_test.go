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

package ici_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/alanbriolat/AdventOfCode2019/internal/ici"
	"github.com/pkg/errors"
)

type failWriter int

func (f *failWriter) Write(p []byte) (int, error) {
	if *f == 0 {
		return 0, io.ErrShortWrite
	}
	*f--
	return len(p), nil
}

func TestErrWriter(t *testing.T) {
	var b bytes.Buffer
	w := ici.NewErrWriter(&b)
	w.WriteString("1,")
	w.Write([]byte("2"))
	if w.Err != nil || b.String() != "1,2" {
		t.Fatalf("got %q, err %v", b.String(), w.Err)
	}

	f := failWriter(1)
	w = ici.NewErrWriter(&f)
	if _, err := w.WriteString("ok"); err != nil {
		t.Fatalf("first write: %v", err)
	}
	w.WriteString("fails")
	if n, err := w.WriteString("skipped"); n != 0 || errors.Cause(err) != io.ErrShortWrite {
		t.Fatalf("expected sticky io.ErrShortWrite, got %d, %v", n, err)
	}
	if f != 0 {
		t.Fatalf("underlying writer called after failure")
	}
}

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

// Write queues the given values as input. It may be called at any time, in
// particular after Run returned ReadWait.
func (i *Instance) Write(v ...Word) {
	if i.inPos > 0 && i.inPos == len(i.in) {
		i.in, i.inPos = i.in[:0], 0
	}
	i.in = append(i.in, v...)
}

// Pending returns the number of queued input values that have not been
// consumed yet.
func (i *Instance) Pending() int {
	return len(i.in) - i.inPos
}

// Read removes and returns the oldest queued output value. ok is false if the
// output queue is empty.
func (i *Instance) Read() (v Word, ok bool) {
	if i.outPos >= len(i.out) {
		return 0, false
	}
	v = i.out[i.outPos]
	i.outPos++
	if i.outPos == len(i.out) {
		i.out, i.outPos = i.out[:0], 0
	}
	return v, true
}

// ReadAll removes and returns all queued output values. The returned slice is
// owned by the caller.
func (i *Instance) ReadAll() []Word {
	if i.outPos >= len(i.out) {
		return nil
	}
	out := append([]Word(nil), i.out[i.outPos:]...)
	i.out, i.outPos = i.out[:0], 0
	return out
}

// input returns the next input value, asking the bound InHandler if the queue
// is empty.
func (i *Instance) input() (Word, bool, error) {
	if i.inPos < len(i.in) {
		v := i.in[i.inPos]
		i.inPos++
		return v, true, nil
	}
	if i.inH != nil {
		return i.inH(i)
	}
	return 0, false, nil
}

func (i *Instance) output(v Word) error {
	if i.outH != nil {
		return i.outH(i, v)
	}
	i.out = append(i.out, v)
	return nil
}

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

package circuit_test

import (
	"fmt"
	"testing"

	"github.com/alanbriolat/AdventOfCode2019/circuit"
	"github.com/alanbriolat/AdventOfCode2019/vm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func base(t *testing.T, code string) *vm.Instance {
	t.Helper()
	p, err := vm.ParseProgram(code)
	require.NoError(t, err)
	i, err := vm.New(p)
	require.NoError(t, err)
	return i
}

var (
	serial   = []vm.Word{0, 1, 2, 3, 4}
	feedback = []vm.Word{5, 6, 7, 8, 9}
)

func TestBest(t *testing.T) {
	data := []struct {
		name   string
		code   string
		phases []vm.Word
		run    circuit.Runner
		signal vm.Word
		order  []vm.Word
	}{
		{"chain1", "3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0",
			serial, circuit.Chain, 43210, []vm.Word{4, 3, 2, 1, 0}},
		{"chain2", "3,23,3,24,1002,24,10,24,1002,23,-1,23,101,5,23,23,1,24,23,23,4,23,99,0,0",
			serial, circuit.Chain, 54321, []vm.Word{0, 1, 2, 3, 4}},
		{"chain3", "3,31,3,32,1002,32,10,32,1001,31,-2,31,1007,31,0,33,1002,33,7,33,1,33,31,31,1,32,31,31,4,31,99,0,0,0",
			serial, circuit.Chain, 65210, []vm.Word{1, 0, 4, 3, 2}},
		{"feedback1", "3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5",
			feedback, circuit.Feedback, 139629729, []vm.Word{9, 8, 7, 6, 5}},
		{"feedback2", "3,52,1001,52,-5,52,3,53,1,52,56,54,1007,54,5,55,1005,55,26,1001,54,-5,54,1105,1,12,1,53,54,53,1008,54,0,55,1001,55,1,55,2,53,55,53,4,53,1001,56,-1,56,1005,56,6,99,0,0,0,0,10",
			feedback, circuit.Feedback, 18216, []vm.Word{9, 7, 8, 5, 6}},
	}
	for _, test := range data {
		t.Run(test.name, func(t *testing.T) {
			b := base(t, test.code)
			s, err := test.run(b, test.order)
			require.NoError(t, err)
			assert.Equal(t, test.signal, s)

			s, order, err := circuit.Best(b, test.phases, test.run)
			require.NoError(t, err)
			assert.Equal(t, test.signal, s)
			assert.Equal(t, test.order, order)
			// clones only
			assert.Equal(t, int64(0), b.InstructionCount())
		})
	}
}

func TestErrors(t *testing.T) {
	data := []struct {
		name string
		code string
		run  circuit.Runner
		err  error
	}{
		{"chain no output", "99", circuit.Chain, circuit.ErrNoOutput},
		{"chain starved", "3,0,3,0,3,0,99", circuit.Chain, circuit.ErrStarved},
		{"chain failure", "3,0,3,0,77", circuit.Chain, vm.ErrUnknownOpcode},
		{"feedback no output", "99", circuit.Feedback, circuit.ErrNoOutput},
		{"feedback deadlock", "3,0,3,0,3,0,99", circuit.Feedback, circuit.ErrDeadlock},
		{"feedback failure", "3,0,3,0,77", circuit.Feedback, vm.ErrUnknownOpcode},
	}
	for _, test := range data {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.run(base(t, test.code), serial)
			require.Error(t, err)
			assert.Equal(t, test.err, errors.Cause(err), "%+v", err)
		})
	}
	_, err := circuit.Chain(base(t, "99"), nil)
	assert.Equal(t, circuit.ErrNoAmplifiers, err)
	_, _, err = circuit.Best(base(t, "99"), nil, circuit.Feedback)
	assert.Equal(t, circuit.ErrNoAmplifiers, err)
}

func TestPermute(t *testing.T) {
	seen := make(map[string]bool)
	err := circuit.Permute(serial, func(p []vm.Word) error {
		seen[fmt.Sprint(p)] = true
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, seen, 120)
	assert.Equal(t, []vm.Word{0, 1, 2, 3, 4}, serial)

	stop := errors.New("stop")
	n := 0
	err = circuit.Permute(serial, func(p []vm.Word) error {
		n++
		if n == 3 {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, 3, n)
}

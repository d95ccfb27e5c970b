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

// Package circuit wires Intcode machines into amplifier circuits: each
// amplifier reads a phase setting, then an input signal, and outputs the
// signal for the next amplifier.
package circuit

import (
	"github.com/alanbriolat/AdventOfCode2019/internal/logging"
	"github.com/alanbriolat/AdventOfCode2019/vm"
	"github.com/pkg/errors"
)

var (
	ErrNoAmplifiers = errors.New("no amplifiers")
	ErrNoOutput     = errors.New("amplifier stopped without output")
	ErrStarved      = errors.New("amplifier is waiting for input")
	ErrDeadlock     = errors.New("all amplifiers are waiting for input")
)

// Runner computes the output signal of a circuit built from base with the
// given phase settings. Chain and Feedback are Runners.
type Runner func(base *vm.Instance, phases []vm.Word) (vm.Word, error)

// Chain runs one clone of base per phase, in series. The first amplifier gets
// a 0 signal. Every amplifier must halt after producing at least one output.
//
// base is left untouched; its pending input, if any, is seen by every clone.
func Chain(base *vm.Instance, phases []vm.Word) (vm.Word, error) {
	if len(phases) == 0 {
		return 0, ErrNoAmplifiers
	}
	var signal vm.Word
	for k, p := range phases {
		a := base.Clone()
		a.Write(p, signal)
		st, err := a.Run()
		if err != nil {
			return 0, errors.Wrapf(err, "amplifier %d", k)
		}
		if st != vm.Halt {
			return 0, errors.Wrapf(ErrStarved, "amplifier %d", k)
		}
		out := a.ReadAll()
		if len(out) == 0 {
			return 0, errors.Wrapf(ErrNoOutput, "amplifier %d", k)
		}
		signal = out[len(out)-1]
		logging.Log(logging.LogLevelDebug, "chain", "amp", k, "phase", p, "signal", signal)
	}
	return signal, nil
}

// Feedback runs the amplifiers in a loop, the output of the last one being fed
// back into the first. Machines run in turn until they block on input; the
// circuit settles once the last amplifier halts, and the result is the last
// signal it sent.
func Feedback(base *vm.Instance, phases []vm.Word) (vm.Word, error) {
	n := len(phases)
	if n == 0 {
		return 0, ErrNoAmplifiers
	}
	amps := make([]*vm.Instance, n)
	for k, p := range phases {
		amps[k] = base.Clone()
		amps[k].Write(p)
	}
	amps[0].Write(0)

	var (
		signal vm.Word
		sent   bool
	)
	for round := 1; ; round++ {
		moved := false
		for k, a := range amps {
			st, err := a.Run()
			if err != nil {
				return 0, errors.Wrapf(err, "amplifier %d, round %d", k, round)
			}
			out := a.ReadAll()
			if len(out) > 0 {
				moved = true
				amps[(k+1)%n].Write(out...)
			}
			if k < n-1 {
				continue
			}
			if len(out) > 0 {
				signal, sent = out[len(out)-1], true
			}
			if st == vm.Halt {
				if !sent {
					return 0, errors.Wrapf(ErrNoOutput, "amplifier %d", k)
				}
				logging.Log(logging.LogLevelDebug, "feedback settled", "rounds", round, "signal", signal)
				return signal, nil
			}
		}
		if !moved {
			return 0, errors.Wrapf(ErrDeadlock, "round %d", round)
		}
	}
}

// Permute calls fn with every permutation of phases, using Heap's algorithm.
// The slice passed to fn is reused between calls. Iteration stops at the first
// error returned by fn.
func Permute(phases []vm.Word, fn func(p []vm.Word) error) error {
	p := append([]vm.Word(nil), phases...)
	c := make([]int, len(p))
	if err := fn(p); err != nil {
		return err
	}
	for k := 0; k < len(p); {
		if c[k] < k {
			if k%2 == 0 {
				p[0], p[k] = p[k], p[0]
			} else {
				p[c[k]], p[k] = p[k], p[c[k]]
			}
			if err := fn(p); err != nil {
				return err
			}
			c[k]++
			k = 0
		} else {
			c[k] = 0
			k++
		}
	}
	return nil
}

// Best runs the circuit for every ordering of phases and returns the highest
// signal along with the phase settings that produced it.
func Best(base *vm.Instance, phases []vm.Word, run Runner) (best vm.Word, order []vm.Word, err error) {
	if len(phases) == 0 {
		return 0, nil, ErrNoAmplifiers
	}
	err = Permute(phases, func(p []vm.Word) error {
		s, err := run(base, p)
		if err != nil {
			return errors.Wrapf(err, "phases %v", p)
		}
		if order == nil || s > best {
			best = s
			order = append(order[:0], p...)
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	logging.Log(logging.LogLevelInfo, "best signal", "signal", best, "phases", order)
	return best, order, nil
}

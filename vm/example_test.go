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

package vm_test

import (
	"fmt"

	"github.com/alanbriolat/AdventOfCode2019/vm"
)

// Shows how to resume a machine waiting for input.
func ExampleInstance_Run() {
	// read a value, print it doubled, loop
	p, err := vm.ParseProgram("3,11,1002,11,2,11,4,11,1105,1,0,0")
	if err != nil {
		panic(err)
	}
	i, err := vm.New(p)
	if err != nil {
		panic(err)
	}

	st, err := i.Run()
	fmt.Println(st, err)

	i.Write(1, 2, 3)
	st, err = i.Run()
	fmt.Println(st, err, i.ReadAll())

	// Output:
	// read-wait <nil>
	// read-wait <nil> [2 4 6]
}

// Shows how to explore several program variants from a single base machine.
func ExampleInstance_Clone() {
	p, _ := vm.ParseProgram("1,0,0,0,99,10,20,30,40,50")
	base, _ := vm.New(p)

	for noun := 5; noun < 10; noun++ {
		for verb := 5; verb < 10; verb++ {
			i := base.Clone()
			i.Set(1, vm.Word(noun))
			i.Set(2, vm.Word(verb))
			if _, err := i.Run(); err != nil {
				panic(err)
			}
			if i.Get(0) == 70 {
				fmt.Println(100*noun + verb)
				return
			}
		}
	}

	// Output:
	// 609
}

// Two machines passing a value back and forth from a single goroutine.
func Example_pingPong() {
	p, _ := vm.ParseProgram("3,11,1002,11,2,11,4,11,1105,1,0,0")
	a, _ := vm.New(p)
	b := a.Clone()

	v := vm.Word(1)
	for v < 100 {
		a.Write(v)
		a.Run()
		v, _ = a.Read()
		b.Write(v)
		b.Run()
		v, _ = b.Read()
	}
	fmt.Println(v)

	// Output:
	// 256
}

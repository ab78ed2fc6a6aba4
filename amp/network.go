// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
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

package amp

import (
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrStarved is returned when an instance needs input but the previous
	// instance in the network did not produce any output.
	ErrStarved = errors.New("instance starved")
	// ErrNoOutput is returned when the last instance of a network halts
	// without producing any output.
	ErrNoOutput = errors.New("no output")
)

// slot is a single value hand-off buffer between two instances.
type slot struct {
	v    vm.Cell
	full bool
}

func (s *slot) put(v vm.Cell) {
	s.v, s.full = v, true
}

func (s *slot) take() (vm.Cell, bool) {
	v, ok := s.v, s.full
	s.v, s.full = 0, false
	return v, ok
}

// Network is an amplifier network scheduler. It holds N instances of the same
// program and N hand-off slots: slots[k] holds the next value to feed to
// instance k.
type Network struct {
	amps   []*vm.Instance
	phases []vm.Cell
	slots  []slot
	rounds int
	ran    bool
}

// NewNetwork creates a network of len(phases) instances running the program in
// mem. Instance k gets phases[k] as its first input. The given options are
// applied to every instance.
func NewNetwork(mem *vm.Memory, phases []vm.Cell, opts ...vm.Option) (*Network, error) {
	if len(phases) == 0 {
		return nil, errors.New("empty network")
	}
	n := &Network{
		amps:   make([]*vm.Instance, len(phases)),
		phases: append([]vm.Cell(nil), phases...),
		slots:  make([]slot, len(phases)),
	}
	for k, p := range phases {
		i, err := vm.New(mem, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "amp %d", k)
		}
		if err = i.Feed(p); err != nil {
			return nil, errors.Wrapf(err, "amp %d", k)
		}
		n.amps[k] = i
	}
	return n, nil
}

// Instances returns the network instances.
func (n *Network) Instances() []*vm.Instance {
	return n.amps
}

// Rounds returns the number of completed rounds.
func (n *Network) Rounds() int {
	return n.rounds
}

// Run runs the network and returns the last output value of the last instance.
//
// Each instance is first run until it needs more input than its phase setting
// or halts. Output produced at that stage is handed over like any other. Then
// seed is fed to the first instance and every instance is run in turn
// with the latest output of the previous one. If feedback is false, each
// instance runs only once and must run to completion. If feedback is true, the
// output of the last instance is fed back to the first one and rounds are
// repeated until the last instance halts.
//
// The first instance error aborts the run. A network can only be run once.
func (n *Network) Run(seed vm.Cell, feedback bool) (vm.Cell, error) {
	if n.ran {
		return 0, errors.New("network already ran")
	}
	n.ran = true

	var (
		last    = len(n.amps) - 1
		out     vm.Cell
		haveOut bool
	)
	// handOff moves the latest output of amp k to the slot of the next one.
	handOff := func(k int) {
		o := n.amps[k].TakeOutput()
		if len(o) == 0 {
			return
		}
		v := o[len(o)-1]
		if k == last {
			out, haveOut = v, true
			if !feedback {
				return
			}
		}
		n.slots[(k+1)%len(n.amps)].put(v)
	}

	for k, a := range n.amps {
		if err := a.RunUntilInput(); err != nil {
			return 0, errors.Wrapf(err, "amp %d", k)
		}
		handOff(k)
	}
	n.slots[0].put(seed)

	for {
		for k, a := range n.amps {
			if a.Halted() {
				continue
			}
			if v, ok := n.slots[k].take(); ok {
				if err := a.Feed(v); err != nil {
					return 0, errors.Wrapf(err, "amp %d", k)
				}
			} else if a.Suspended() {
				return 0, errors.Wrapf(ErrStarved, "amp %d", k)
			}
			var err error
			if feedback {
				err = a.RunUntilInput()
			} else {
				err = a.Run()
			}
			if err != nil {
				return 0, errors.Wrapf(err, "amp %d", k)
			}
			handOff(k)
		}
		n.rounds++
		if !feedback || n.amps[last].Halted() {
			break
		}
	}
	log.WithFields(log.Fields{
		"phases": n.phases,
		"output": out,
		"rounds": n.rounds,
	}).Debug("network halted")
	if !haveOut {
		return 0, ErrNoOutput
	}
	return out, nil
}

// Chain runs a linear network of len(phases) instances of the program in mem
// and returns the output of the last instance.
func Chain(mem *vm.Memory, phases []vm.Cell, seed vm.Cell, opts ...vm.Option) (vm.Cell, error) {
	n, err := NewNetwork(mem, phases, opts...)
	if err != nil {
		return 0, err
	}
	return n.Run(seed, false)
}

// Loop runs a feedback network of len(phases) instances of the program in mem
// and returns the last output of the last instance.
func Loop(mem *vm.Memory, phases []vm.Cell, seed vm.Cell, opts ...vm.Option) (vm.Cell, error) {
	n, err := NewNetwork(mem, phases, opts...)
	if err != nil {
		return 0, err
	}
	return n.Run(seed, true)
}

/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

// Package sequence steps numbers through the Goodstein sequence.
//
// A State holds a value in hereditary base-K notation. BaseBump rewrites every
// K in the notation as K+1, SubtractOne takes one away while keeping the
// notation canonical, and Run strings the two together lazily:
//
//	seq, err := sequence.Run(3, 2)
//	if err != nil {
//		return err
//	}
//	for step := range seq.All() {
//		fmt.Println(step.Base, step.Value)
//	}
//	if err := seq.Err(); err != nil {
//		return err
//	}
//
// Sequence lengths explode for starting values above 3, so callers are expected
// to stop early or bound the run with WithMaxSteps.
package sequence

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
)

// Step is one element of a Goodstein sequence.
type Step struct {
	// Index is 0 for the starting state.
	Index    int
	Base     uint64
	Value    uint64
	Notation string
}

// Option configures a Sequence.
type Option func(*Sequence)

// WithLogger logs every step at debug level and the end of the sequence at info level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sequence) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxSteps stops the sequence after n steps, the starting state included.
// Err reports ErrStepLimit if the sequence had not reached zero by then.
// n <= 0 means no limit.
func WithMaxSteps(n int) Option {
	return func(s *Sequence) {
		s.maxSteps = n
	}
}

type phase int

const (
	pending phase = iota
	running
	terminated
	failed
)

// Sequence produces the Goodstein sequence one step at a time. It is
// forward-only and can not be restarted; nothing is computed until Next is called.
// A Sequence is not safe for concurrent use.
type Sequence struct {
	state    *State
	phase    phase
	index    int
	maxSteps int
	err      error
	logger   *slog.Logger
}

// Run returns the sequence starting at value in base.
func Run(value, base uint64, opts ...Option) (*Sequence, error) {
	start, err := New(value, base)
	if err != nil {
		return nil, err
	}
	s := &Sequence{
		state:  start,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Next computes and returns the next step. It returns false once the sequence
// has reached zero, hit the step limit or failed; Err tells these apart.
func (s *Sequence) Next() (Step, bool) {
	switch s.phase {
	case terminated, failed:
		return Step{}, false
	case pending:
		s.phase = running
		return s.emit(), true
	}

	if s.state.IsZero() {
		s.phase = terminated
		s.logger.Info("goodstein sequence terminated", "steps", s.index, "base", s.state.Base())
		return Step{}, false
	}
	if s.maxSteps > 0 && s.index+1 >= s.maxSteps {
		s.fail(fmt.Errorf("%w: %d", ErrStepLimit, s.maxSteps))
		return Step{}, false
	}

	next, err := s.state.Step()
	if err != nil {
		s.fail(fmt.Errorf("step %d: %w", s.index+1, err))
		return Step{}, false
	}
	s.state = next
	s.index++
	return s.emit(), true
}

func (s *Sequence) emit() Step {
	step := Step{
		Index:    s.index,
		Base:     s.state.Base(),
		Value:    s.state.Value(),
		Notation: s.state.String(),
	}
	s.logger.Debug("goodstein step", "index", step.Index, "base", step.Base, "value", step.Value)
	return step
}

func (s *Sequence) fail(err error) {
	s.phase = failed
	s.err = err
	if errors.Is(err, ErrInvariant) {
		s.logger.Error("goodstein sequence failed", "base", s.state.Base(), "err", err)
		return
	}
	s.logger.Info("goodstein sequence stopped", "base", s.state.Base(), "err", err)
}

// Err returns the error that stopped the sequence, or nil while it is running
// and after it reached zero.
func (s *Sequence) Err() error { return s.err }

// Terminated reports whether the sequence has reached zero and ended.
func (s *Sequence) Terminated() bool { return s.phase == terminated }

// State returns the most recently produced state.
func (s *Sequence) State() *State { return s.state }

// All returns an iterator over the remaining steps. Breaking out of the loop
// leaves the sequence where it stopped.
func (s *Sequence) All() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for {
			step, ok := s.Next()
			if !ok || !yield(step) {
				return
			}
		}
	}
}

// Length returns the number of Goodstein steps needed to take value at base
// down to zero, computing at most limit steps. It returns an error wrapping
// ErrStepLimit when the sequence is longer.
func Length(value, base uint64, limit int) (int, error) {
	seq, err := Run(value, base, WithMaxSteps(limit+1))
	if err != nil {
		return 0, err
	}
	n := -1
	for range seq.All() {
		n++
	}
	if err := seq.Err(); err != nil {
		return 0, err
	}
	return n, nil
}

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

package sequence

import (
	"fmt"

	"github.com/weezy20/goodstein-sequence/basek"
)

// State is one Goodstein state: a value at a base together with its hereditary
// notation. States are immutable; every transform returns a new State.
type State struct {
	number basek.Number
	tree   *Hereditary
}

// FromNumber builds the state for a base-K number.
func FromNumber(n basek.Number) (*State, error) {
	tree, err := Expand(n)
	if err != nil {
		return nil, err
	}
	return &State{number: n, tree: tree}, nil
}

// New builds the state for value at base.
func New(value, base uint64) (*State, error) {
	n, err := basek.New(value, base)
	if err != nil {
		return nil, err
	}
	return FromNumber(n)
}

// Base returns the current base.
func (s *State) Base() uint64 { return s.number.Base() }

// Value returns the value the state represents at its base.
func (s *State) Value() uint64 { return s.number.Value() }

// Number returns the base-K decomposition of the value.
func (s *State) Number() basek.Number { return s.number }

// Hereditary returns the hereditary notation of the value.
func (s *State) Hereditary() *Hereditary { return s.tree }

// Terms returns the hereditary terms, highest exponent first.
func (s *State) Terms() []Term { return s.tree.Terms() }

// IsZero reports whether the state has reached zero.
func (s *State) IsZero() bool { return s.number.Value() == 0 }

// String returns the hereditary notation.
func (s *State) String() string { return s.tree.String() }

// BaseBump returns the state at base K+1 carrying the same notation with every
// K replaced by K+1. Its value is the notation evaluated at the new base.
func (s *State) BaseBump() (*State, error) {
	next := s.Base() + 1
	tree, err := s.tree.Rebase(next)
	if err != nil {
		return nil, fmt.Errorf("bump base %d: %w", s.Base(), err)
	}
	value, err := tree.Eval()
	if err != nil {
		return nil, fmt.Errorf("bump base %d: %w", s.Base(), err)
	}
	return settle(value, tree)
}

// SubtractOne returns the state one below s at the same base. It returns
// ErrTerminated when s is zero.
func (s *State) SubtractOne() (*State, error) {
	if s.IsZero() {
		return nil, ErrTerminated
	}
	tree, err := s.tree.decrement()
	if err != nil {
		return nil, fmt.Errorf("subtract one at base %d: %w", s.Base(), err)
	}
	value, err := tree.Eval()
	if err != nil {
		return nil, fmt.Errorf("subtract one at base %d: %w", s.Base(), err)
	}
	if value != s.Value()-1 {
		return nil, fmt.Errorf("%w: %d - 1 evaluated to %d at base %d", ErrInvariant, s.Value(), value, s.Base())
	}
	return settle(value, tree)
}

// Step applies one Goodstein step: bump the base, then subtract one.
func (s *State) Step() (*State, error) {
	bumped, err := s.BaseBump()
	if err != nil {
		return nil, err
	}
	return bumped.SubtractOne()
}

// settle pairs a transformed tree with the decomposition of its value and
// checks that the tree is the canonical notation for that value.
func settle(value uint64, tree *Hereditary) (*State, error) {
	n, err := basek.New(value, tree.Base())
	if err != nil {
		return nil, err
	}
	canonical, err := Expand(n)
	if err != nil {
		return nil, err
	}
	if !canonical.Equal(tree) {
		return nil, fmt.Errorf("%w: %s is not the notation of %d at base %d (%s)",
			ErrInvariant, tree, value, tree.Base(), canonical)
	}
	return &State{number: n, tree: tree}, nil
}

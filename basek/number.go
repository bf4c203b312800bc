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

// Package basek decomposes natural numbers into base-K terms.
//
// A Number holds one value at one base as (multiplier, exponent) terms, highest
// exponent first, with one term for every exponent from the top down to zero:
//
//	69 at base 8  = 1*8^2 + 0*8^1 + 5*8^0   ->  "105"
//	100 at base 2 = 2^6 + 2^5 + 2^2         ->  "1100100"
//
// A Number is reduced when every exponent is strictly less than its base, so
// no exponent needs a further expansion in hereditary notation.
package basek

import (
	"fmt"

	"github.com/weezy20/goodstein-sequence/digits"
)

const (
	// MinBase is the smallest supported base.
	MinBase = 2
	// MaxBase is the largest base the digit alphabet can render.
	MaxBase = digits.MaxRadix
)

// Term is one summand Multiplier * K^Exponent of a base-K expansion.
type Term struct {
	Multiplier uint64
	Exponent   uint64
}

// Number is an immutable base-K decomposition of a value.
type Number struct {
	base    uint64
	value   uint64
	terms   []Term
	reduced bool
}

// CheckBase returns an error wrapping ErrBaseOutOfRange unless base is within
// [MinBase, MaxBase].
func CheckBase(base uint64) error {
	if base < MinBase || base > MaxBase {
		return fmt.Errorf("%w: %d not in [%d..%d]", ErrBaseOutOfRange, base, MinBase, MaxBase)
	}
	return nil
}

// New decomposes value at the given base.
func New(value, base uint64) (Number, error) {
	if err := CheckBase(base); err != nil {
		return Number{}, err
	}

	n := Number{base: base, value: value}
	if value == 0 {
		n.terms = []Term{{Multiplier: 0, Exponent: 0}}
		n.reduced = true
		return n, nil
	}

	var top uint64
	if b, ok := PowerBracket(value, base); ok {
		top = b.Exponent
	}

	n.terms = make([]Term, 0, top+1)
	rem := value
	for e := top + 1; e > 0; e-- {
		// base^(e-1) <= value, so the power cannot overflow
		p, _ := Pow(base, e-1)
		n.terms = append(n.terms, Term{Multiplier: rem / p, Exponent: e - 1})
		rem %= p
	}
	n.reduced = top < base

	if _, err := n.Compute(); err != nil {
		return Number{}, err
	}
	return n, nil
}

// MustNew is like New but panics if the base is out of range.
func MustNew(value, base uint64) Number {
	n, err := New(value, base)
	if err != nil {
		panic(err)
	}
	return n
}

// Base returns the base K of the decomposition.
func (n Number) Base() uint64 { return n.base }

// Value returns the value the decomposition was built from.
func (n Number) Value() uint64 { return n.value }

// IsReduced reports whether every exponent is strictly less than the base.
func (n Number) IsReduced() bool { return n.reduced }

// Terms returns a copy of the term list, highest exponent first. Zero digits
// between the top exponent and 0 are included.
func (n Number) Terms() []Term {
	return append([]Term(nil), n.terms...)
}

// NonZeroTerms returns the terms with a nonzero multiplier, highest exponent first.
// The result is empty for zero.
func (n Number) NonZeroTerms() []Term {
	ret := make([]Term, 0, len(n.terms))
	for _, t := range n.terms {
		if t.Multiplier != 0 {
			ret = append(ret, t)
		}
	}
	return ret
}

// TopExponent returns the highest exponent in the term list.
func (n Number) TopExponent() uint64 {
	if len(n.terms) == 0 {
		return 0
	}
	return n.terms[0].Exponent
}

// Compute sums Multiplier * K^Exponent over the terms. An error wrapping
// ErrRoundTrip is returned when the sum differs from Value.
func (n Number) Compute() (uint64, error) {
	var sum uint64
	for _, t := range n.terms {
		p, ok := Pow(n.base, t.Exponent)
		if !ok {
			return 0, fmt.Errorf("%w: %d^%d overflows", ErrRoundTrip, n.base, t.Exponent)
		}
		v := t.Multiplier * p
		if t.Multiplier != 0 && v/t.Multiplier != p {
			return 0, fmt.Errorf("%w: term %d*%d^%d overflows", ErrRoundTrip, t.Multiplier, n.base, t.Exponent)
		}
		if sum+v < sum {
			return 0, fmt.Errorf("%w: sum overflows", ErrRoundTrip)
		}
		sum += v
	}
	if sum != n.value {
		return sum, fmt.Errorf("%w: terms sum to %d, expected %d", ErrRoundTrip, sum, n.value)
	}
	return sum, nil
}

// Digits returns one digit per exponent slot, most significant first. Slots
// missing from the term list are 0.
func (n Number) Digits() []uint16 {
	r := make([]uint16, n.TopExponent()+1)
	last := len(r) - 1
	for _, t := range n.terms {
		r[last-int(t.Exponent)] = uint16(t.Multiplier)
	}
	return r
}

// String renders the canonical positional digits of the number using digits.Alphabet.
func (n Number) String() string {
	if n.base == 0 {
		return ""
	}
	s, err := digits.DefaultCodec().Decode(n.Digits())
	if err != nil {
		// multipliers are always below the base
		panic(err)
	}
	return s
}

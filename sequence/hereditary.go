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
	"strconv"
	"strings"

	"github.com/weezy20/goodstein-sequence/basek"
)

// Exponent is the exponent of one hereditary term. It is either a plain scalar
// no larger than the base, or a nested hereditary number for anything above it.
type Exponent struct {
	scalar uint64
	nested *Hereditary
}

// Reduced returns a scalar exponent.
func Reduced(e uint64) Exponent {
	return Exponent{scalar: e}
}

// NonReduced returns an exponent expanded as its own hereditary number.
func NonReduced(h *Hereditary) Exponent {
	return Exponent{nested: h}
}

// IsReduced reports whether the exponent is a scalar.
func (e Exponent) IsReduced() bool { return e.nested == nil }

// Scalar returns the scalar exponent. It is 0 for a nested exponent.
func (e Exponent) Scalar() uint64 { return e.scalar }

// Nested returns the nested hereditary number, or nil for a scalar exponent.
func (e Exponent) Nested() *Hereditary { return e.nested }

func (e Exponent) isZero() bool {
	return e.nested == nil && e.scalar == 0
}

func (e Exponent) eval() (uint64, error) {
	if e.nested == nil {
		return e.scalar, nil
	}
	return e.nested.Eval()
}

func (e Exponent) equal(o Exponent) bool {
	if e.nested == nil || o.nested == nil {
		return e.nested == nil && o.nested == nil && e.scalar == o.scalar
	}
	return e.nested.Equal(o.nested)
}

// rebase moves the exponent from base from to base to. A scalar equal to the old
// base becomes the new base, other scalars are kept.
func (e Exponent) rebase(from, to uint64) (Exponent, error) {
	if e.nested != nil {
		h, err := e.nested.Rebase(to)
		if err != nil {
			return Exponent{}, err
		}
		return NonReduced(h), nil
	}
	if e.scalar == from {
		return Reduced(to), nil
	}
	if e.scalar >= to {
		return Exponent{}, fmt.Errorf("exponent %d cannot be written at base %d", e.scalar, to)
	}
	return e, nil
}

// decrement returns the exponent one below e at the given base. Nested
// exponents that fall to the base or below collapse to a scalar.
func (e Exponent) decrement(base uint64) (Exponent, error) {
	if e.nested == nil {
		if e.scalar == 0 {
			return Exponent{}, fmt.Errorf("%w: decrement of a zero exponent", ErrInvariant)
		}
		return Reduced(e.scalar - 1), nil
	}
	h, err := e.nested.decrement()
	if err != nil {
		return Exponent{}, err
	}
	v, err := h.Eval()
	if err != nil {
		return Exponent{}, err
	}
	if v <= base {
		return Reduced(v), nil
	}
	return NonReduced(h), nil
}

// Term is one summand Multiplier * K^Exponent of a hereditary number.
type Term struct {
	Multiplier uint64
	Exponent   Exponent
}

// Hereditary is a number in hereditary base-K notation: a sum of terms with
// nonzero multipliers below K, highest exponent first. Zero has no terms.
// A Hereditary is never modified after construction.
type Hereditary struct {
	base  uint64
	terms []Term
}

// Expand builds the hereditary form of n. Every exponent above the base is
// decomposed again at the same base.
func Expand(n basek.Number) (*Hereditary, error) {
	h := &Hereditary{base: n.Base()}
	for _, t := range n.NonZeroTerms() {
		if t.Exponent <= n.Base() {
			h.terms = append(h.terms, Term{Multiplier: t.Multiplier, Exponent: Reduced(t.Exponent)})
			continue
		}
		inner, err := basek.New(t.Exponent, n.Base())
		if err != nil {
			return nil, err
		}
		nested, err := Expand(inner)
		if err != nil {
			return nil, err
		}
		h.terms = append(h.terms, Term{Multiplier: t.Multiplier, Exponent: NonReduced(nested)})
	}
	return h, nil
}

// ExpandValue is a shorthand for Expand(basek.New(value, base)).
func ExpandValue(value, base uint64) (*Hereditary, error) {
	n, err := basek.New(value, base)
	if err != nil {
		return nil, err
	}
	return Expand(n)
}

// Base returns the base K of the notation.
func (h *Hereditary) Base() uint64 { return h.base }

// Terms returns a copy of the terms, highest exponent first.
func (h *Hereditary) Terms() []Term {
	return append([]Term(nil), h.terms...)
}

// IsZero reports whether h has no terms.
func (h *Hereditary) IsZero() bool { return len(h.terms) == 0 }

// Depth returns the nesting depth of the exponents. Zero and numbers with only
// scalar exponents have depth 1.
func (h *Hereditary) Depth() int {
	d := 1
	for _, t := range h.terms {
		if t.Exponent.nested != nil {
			d = max(d, t.Exponent.nested.Depth()+1)
		}
	}
	return d
}

// Eval evaluates h at its base. An error wrapping ErrOverflow is returned when
// the value does not fit a uint64.
func (h *Hereditary) Eval() (uint64, error) {
	var sum uint64
	for _, t := range h.terms {
		e, err := t.Exponent.eval()
		if err != nil {
			return 0, err
		}
		p, ok := basek.Pow(h.base, e)
		if !ok {
			return 0, fmt.Errorf("%w: %d^%d", ErrOverflow, h.base, e)
		}
		v := t.Multiplier * p
		if t.Multiplier != 0 && v/t.Multiplier != p {
			return 0, fmt.Errorf("%w: %d*%d^%d", ErrOverflow, t.Multiplier, h.base, e)
		}
		if sum+v < sum {
			return 0, fmt.Errorf("%w: sum at base %d", ErrOverflow, h.base)
		}
		sum += v
	}
	return sum, nil
}

// Equal reports whether h and o have the same base and the same term tree.
func (h *Hereditary) Equal(o *Hereditary) bool {
	if h == nil || o == nil {
		return h == o
	}
	if h.base != o.base || len(h.terms) != len(o.terms) {
		return false
	}
	for i, t := range h.terms {
		if t.Multiplier != o.terms[i].Multiplier || !t.Exponent.equal(o.terms[i].Exponent) {
			return false
		}
	}
	return true
}

// Rebase rewrites every occurrence of the base in the notation as base instead,
// at every nesting level, keeping multipliers and the remaining scalar exponents.
// Rebase to Base()+1 is the Goodstein base bump.
func (h *Hereditary) Rebase(base uint64) (*Hereditary, error) {
	if err := basek.CheckBase(base); err != nil {
		return nil, err
	}
	ret := &Hereditary{base: base, terms: make([]Term, 0, len(h.terms))}
	for _, t := range h.terms {
		if t.Multiplier >= base {
			return nil, fmt.Errorf("multiplier %d cannot be written at base %d", t.Multiplier, base)
		}
		e, err := t.Exponent.rebase(h.base, base)
		if err != nil {
			return nil, err
		}
		ret.terms = append(ret.terms, Term{Multiplier: t.Multiplier, Exponent: e})
	}
	return ret, nil
}

// decrement subtracts one from h without leaving hereditary notation.
//
// The lowest term m*K^E loses one unit. When E is not zero that unit is
// borrowed down as K^E - 1 = (K-1)*K^(E-1) + ... + (K-1)*K^0, where every lower
// exponent comes from decrementing the previous one, recursing into nested
// exponents as needed.
func (h *Hereditary) decrement() (*Hereditary, error) {
	if len(h.terms) == 0 {
		return nil, ErrTerminated
	}

	last := h.terms[len(h.terms)-1]
	terms := make([]Term, 0, len(h.terms)+1)
	terms = append(terms, h.terms[:len(h.terms)-1]...)
	if last.Multiplier > 1 {
		terms = append(terms, Term{Multiplier: last.Multiplier - 1, Exponent: last.Exponent})
	}

	e := last.Exponent
	for !e.isZero() {
		var err error
		if e, err = e.decrement(h.base); err != nil {
			return nil, err
		}
		terms = append(terms, Term{Multiplier: h.base - 1, Exponent: e})
	}
	return &Hereditary{base: h.base, terms: terms}, nil
}

// String renders the notation with the base written out, for example
// 2^(2^2+2)+2^(2^2+1)+2^2 for 100 at base 2.
func (h *Hereditary) String() string {
	if len(h.terms) == 0 {
		return "0"
	}
	k := strconv.FormatUint(h.base, 10)
	var sb strings.Builder
	for i, t := range h.terms {
		if i > 0 {
			sb.WriteByte('+')
		}
		if t.Exponent.isZero() {
			sb.WriteString(strconv.FormatUint(t.Multiplier, 10))
			continue
		}
		if t.Multiplier != 1 {
			sb.WriteString(strconv.FormatUint(t.Multiplier, 10))
			sb.WriteByte('*')
		}
		sb.WriteString(k)
		switch {
		case t.Exponent.nested != nil:
			sb.WriteString("^(")
			sb.WriteString(t.Exponent.nested.String())
			sb.WriteByte(')')
		case t.Exponent.scalar > 1:
			sb.WriteByte('^')
			sb.WriteString(strconv.FormatUint(t.Exponent.scalar, 10))
		}
	}
	return sb.String()
}

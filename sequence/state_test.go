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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weezy20/goodstein-sequence/basek"
)

func TestFromNumber(t *testing.T) {
	s, err := FromNumber(basek.MustNew(100, 2))
	require.NoError(t, err)

	assert.Equal(t, uint64(2), s.Base())
	assert.Equal(t, uint64(100), s.Value())
	assert.False(t, s.IsZero())
	assert.False(t, s.Number().IsReduced())
	assert.Len(t, s.Terms(), 3)
	assert.Equal(t, "2^(2^2+2)+2^(2^2+1)+2^2", s.String())
}

func TestNewRejectsBase(t *testing.T) {
	_, err := New(5, 1)
	assert.ErrorIs(t, err, ErrBaseOutOfRange)
	_, err = New(5, 37)
	assert.ErrorIs(t, err, ErrBaseOutOfRange)
}

func TestBaseBump(t *testing.T) {
	s, err := New(100, 2)
	require.NoError(t, err)

	bumped, err := s.BaseBump()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), bumped.Base())
	// 3^30 + 3^28 + 3^3
	assert.Equal(t, uint64(205891132094649+22876792454961+27), bumped.Value())
	assert.Equal(t, "3^(3^3+3)+3^(3^3+1)+3^3", bumped.String())

	// the input state is untouched
	assert.Equal(t, uint64(2), s.Base())
	assert.Equal(t, uint64(100), s.Value())
}

func TestBaseBumpLimits(t *testing.T) {
	s, err := New(10, basek.MaxBase)
	require.NoError(t, err)
	_, err = s.BaseBump()
	assert.ErrorIs(t, err, ErrBaseOutOfRange)

	s, err = New(7625597484990, 3)
	require.NoError(t, err)
	_, err = s.BaseBump()
	assert.ErrorIs(t, err, ErrOverflow)
}

// The bump keeps the notation: rebasing it back recovers the old value, and the
// bumped notation is the canonical one for the new value.
func TestBaseBumpKeepsNotation(t *testing.T) {
	for base := uint64(2); base < basek.MaxBase; base++ {
		for value := uint64(0); value < 1500; value++ {
			s, err := New(value, base)
			require.NoError(t, err)

			bumped, err := s.BaseBump()
			if err != nil {
				require.ErrorIs(t, err, ErrOverflow, "bump of %d at base %d", value, base)
				continue
			}
			assert.GreaterOrEqual(t, bumped.Value(), value)

			back, err := bumped.Hereditary().Rebase(base)
			require.NoError(t, err)
			v, err := back.Eval()
			require.NoError(t, err)
			require.Equal(t, value, v, "bump of %d at base %d does not rebase back", value, base)

			before, after := s.Terms(), bumped.Terms()
			require.Len(t, after, len(before))
			for i := range before {
				require.Equal(t, before[i].Multiplier, after[i].Multiplier)
				if e := before[i].Exponent; e.IsReduced() && e.Scalar() < base {
					require.True(t, after[i].Exponent.IsReduced())
					require.Equal(t, e.Scalar(), after[i].Exponent.Scalar())
				}
			}
		}
	}
}

func TestSubtractOne(t *testing.T) {
	for base := uint64(2); base <= basek.MaxBase; base++ {
		for value := uint64(1); value < 3000; value++ {
			s, err := New(value, base)
			require.NoError(t, err)

			next, err := s.SubtractOne()
			require.NoError(t, err, "%d - 1 at base %d", value, base)
			require.Equal(t, value-1, next.Value())
			require.Equal(t, base, next.Base())

			want, err := ExpandValue(value-1, base)
			require.NoError(t, err)
			require.True(t, want.Equal(next.Hereditary()), "%d - 1 at base %d: %s", value, base, next)
		}
	}
}

func TestSubtractOneAtZero(t *testing.T) {
	s, err := New(0, 5)
	require.NoError(t, err)
	require.True(t, s.IsZero())

	_, err = s.SubtractOne()
	assert.ErrorIs(t, err, ErrTerminated)
}

func TestSubtractOneAfterBump(t *testing.T) {
	s, err := New(5, 2)
	require.NoError(t, err)

	want := []struct {
		base  uint64
		value uint64
	}{
		{3, 27},
		{4, 255},
		{5, 467},
		{6, 775},
		{7, 1197},
	}
	for _, w := range want {
		s, err = s.Step()
		require.NoError(t, err)
		assert.Equal(t, w.base, s.Base())
		assert.Equal(t, w.value, s.Value())
	}
}

func TestSettleRejectsNonCanonicalTree(t *testing.T) {
	// 2*2^1 + 1 evaluates to 5 but is not written in base 2
	tree := &Hereditary{base: 2, terms: []Term{
		{Multiplier: 2, Exponent: Reduced(1)},
		{Multiplier: 1, Exponent: Reduced(0)},
	}}
	_, err := settle(5, tree)
	assert.ErrorIs(t, err, ErrInvariant)
}

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

package basek

import "math/bits"

// Bracket locates a value between two consecutive powers of a base:
// base^Exponent <= value < base^(Exponent+1).
type Bracket struct {
	Exponent uint64
	// Exact is set when value == base^Exponent.
	Exact bool
}

// Pow returns base^exp. The second result is false when the power overflows a uint64.
func Pow(base, exp uint64) (uint64, bool) {
	result := uint64(1)
	b := base
	for exp > 0 {
		if exp&1 == 1 {
			hi, lo := bits.Mul64(result, b)
			if hi != 0 {
				return 0, false
			}
			result = lo
		}
		exp >>= 1
		if exp > 0 {
			hi, lo := bits.Mul64(b, b)
			if hi != 0 {
				return 0, false
			}
			b = lo
		}
	}
	return result, true
}

// PowerBracket finds the greatest exponent e >= 1 with base^e <= value and reports
// whether value is exactly base^e. ok is false when value < base, where no such
// exponent exists, and for a base below 2.
//
// The search doubles a trial exponent while base^guess stays within value, then
// narrows the half-open range [lo, hi) until it holds a single exponent. Both
// phases only ever move one bound, so the search stops after O(log log value)
// doublings and as many halvings.
func PowerBracket(value, base uint64) (Bracket, bool) {
	if base < 2 || value < base {
		return Bracket{}, false
	}

	lo := uint64(1)
	for {
		p, ok := Pow(base, lo*2)
		if !ok || p > value {
			break
		}
		lo *= 2
	}

	hi := lo * 2
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if p, ok := Pow(base, mid); ok && p <= value {
			lo = mid
		} else {
			hi = mid
		}
	}

	p, _ := Pow(base, lo)
	return Bracket{Exponent: lo, Exact: p == value}, true
}

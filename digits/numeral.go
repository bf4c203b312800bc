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

package digits

import (
	"fmt"
	"math/big"
	"math/bits"
)

func checkRadix(radix uint64) error {
	if radix < 2 || radix > MaxRadix {
		return fmt.Errorf("radix %d out of range: expected 2..%d", radix, MaxRadix)
	}
	return nil
}

// Num constructs a uint64 from an array of uint16, where each element represents
// one digit in the given radix. The array is arranged with the most significant digit in element 0,
// down to the least significant digit in element len-1.
// It is an error for the result to overflow a uint64.
func Num(s []uint16, radix uint64) (uint64, error) {
	if err := checkRadix(radix); err != nil {
		return 0, err
	}

	maxv := uint16(radix - 1)
	var x uint64
	for i, v := range s {
		if v > maxv {
			return 0, fmt.Errorf("value at %d out of range: got %d - expected 0..%d", i, v, maxv)
		}
		hi, lo := bits.Mul64(x, radix)
		if hi != 0 {
			return 0, fmt.Errorf("numeral overflows uint64 at digit %d", i)
		}
		sum, carry := bits.Add64(lo, uint64(v), 0)
		if carry != 0 {
			return 0, fmt.Errorf("numeral overflows uint64 at digit %d", i)
		}
		x = sum
	}
	return x, nil
}

// Str populates an array of uint16 with digits representing x in the specified radix.
// The array is arranged with the most significant digit in element 0.
// The array is built from x from the least significant digit upwards. It is an error
// for the supplied array to be too short to hold every digit of x.
func Str(x uint64, r []uint16, radix uint64) ([]uint16, error) {
	if err := checkRadix(radix); err != nil {
		return r, err
	}
	m := len(r)
	v := x
	for i := range r {
		r[m-i-1] = uint16(v % radix)
		v /= radix
	}
	if v != 0 {
		return r, fmt.Errorf("destination array too small: %d remains after conversion", v)
	}
	return r, nil
}

// Len returns the number of digits x takes in the given radix. Zero takes one digit.
// Len returns 0 for a radix below 2.
func Len(x uint64, radix uint64) int {
	if radix < 2 {
		return 0
	}
	n := 1
	for x >= radix {
		x /= radix
		n++
	}
	return n
}

// BigText renders x in the given radix with math/big. It shares no code with the
// base-K decomposition and serves as the reference rendering in cross-checks.
func BigText(x uint64, radix int) string {
	return new(big.Int).SetUint64(x).Text(radix)
}

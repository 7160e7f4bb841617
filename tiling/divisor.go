// Copyright 2025 go-highway Authors
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

package tiling

import "math/bits"

// Divisor divides 32-bit values by a fixed divisor without a hardware
// division, using a precomputed 64-bit inverse (Lemire, Kaser and Kurz,
// "Faster Remainder by Direct Computation", 2019).
//
// It pays off when the same divisor is reused across many calls, as with
// the axis sizes of a MultiSize in an index-to-position loop.
type Divisor struct {
	d uint32
	// inv is ceil(2^64 / d). It wraps to 0 for d == 1.
	inv uint64
}

// NewDivisor precomputes the inverse of d.
//
// PRECONDITION: d > 0.
func NewDivisor(d uint32) Divisor {
	if d == 0 {
		defect("divisor must be positive")
	}
	return Divisor{d: d, inv: ^uint64(0)/uint64(d) + 1}
}

// Value returns the divisor.
func (v Divisor) Value() uint32 {
	return v.d
}

// Div returns a / d.
func (v Divisor) Div(a uint32) uint32 {
	if v.inv == 0 {
		return a
	}
	hi, _ := bits.Mul64(v.inv, uint64(a))
	return uint32(hi)
}

// Mod returns a % d.
func (v Divisor) Mod(a uint32) uint32 {
	lowbits := v.inv * uint64(a)
	hi, _ := bits.Mul64(lowbits, uint64(v.d))
	return uint32(hi)
}

// DivMod returns a / d and a % d.
func (v Divisor) DivMod(a uint32) (quo, rem uint32) {
	quo = v.Div(a)
	return quo, a - quo*v.d
}

// Divisible reports whether a % d == 0.
func (v Divisor) Divisible(a uint32) bool {
	// Written as <= inv-1 rather than < inv so that d == 1 (inv == 0) works.
	return uint64(a)*v.inv <= v.inv-1
}

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

import (
	"math"
	"slices"
)

// MultiSize is the stride table of a row-major N-dimensional index space.
//
// For sizes s[0..n) it holds the inclusive postfix products
//
//	stride[n] = 1
//	stride[i] = s[i] * stride[i+1]
//
// so that TotalSize() == stride[0] and moving one step along axis i changes
// the flat index by AfterSize(i) == stride[i+1].
//
// A MultiSize is immutable after construction and safe for concurrent use.
type MultiSize struct {
	sizes   []int
	strides []int

	// fast is set when every flat index fits in 32 bits, in which case
	// index-to-position conversions use the precomputed divisors.
	fast       bool
	divs       []Divisor
	strideDivs []Divisor
}

// NewMultiSize builds the stride table for the given axis sizes.
// A zero size is allowed and makes the index space empty.
func NewMultiSize(sizes ...int) MultiSize {
	if len(sizes) == 0 {
		defect("MultiSize needs at least one axis")
	}
	for dim, s := range sizes {
		if s < 0 {
			defect("axis %d has negative size %d", dim, s)
		}
	}
	ms := MultiSize{
		sizes:   slices.Clone(sizes),
		strides: PostfixProductInclusive(sizes),
	}
	if total := ms.strides[0]; total > 0 && uint64(total) <= math.MaxUint32 {
		ms.fast = true
		ms.divs = make([]Divisor, len(sizes))
		for dim, s := range sizes {
			ms.divs[dim] = NewDivisor(uint32(s))
		}
		ms.strideDivs = make([]Divisor, len(ms.strides))
		for dim, s := range ms.strides {
			ms.strideDivs[dim] = NewDivisor(uint32(s))
		}
	}
	return ms
}

// Dims returns the number of axes.
func (ms MultiSize) Dims() int {
	return len(ms.sizes)
}

// Sizes returns a copy of the axis sizes.
func (ms MultiSize) Sizes() []int {
	return slices.Clone(ms.sizes)
}

// AxisSize returns the size of axis dim.
func (ms MultiSize) AxisSize(dim int) int {
	return ms.sizes[dim]
}

// TotalSize returns the number of cells in the index space.
func (ms MultiSize) TotalSize() int {
	return ms.strides[0]
}

// Strides returns a copy of the inclusive postfix product table, which has
// Dims()+1 entries.
func (ms MultiSize) Strides() []int {
	return slices.Clone(ms.strides)
}

// FromSize returns stride[dim], the number of cells spanned by axes dim..n-1.
func (ms MultiSize) FromSize(dim int) int {
	return ms.strides[dim]
}

// AfterSize returns stride[dim+1], the flat-index delta of one step along
// axis dim.
func (ms MultiSize) AfterSize(dim int) int {
	return ms.strides[dim+1]
}

// Equal reports whether ms and other describe the same axis sizes.
func (ms MultiSize) Equal(other MultiSize) bool {
	return slices.Equal(ms.sizes, other.sizes)
}

// PosToIndex returns the flat index of pos.
//
// PRECONDITION: len(pos) == Dims().
func (ms MultiSize) PosToIndex(pos []int) int {
	return PositionToIndex(pos, ms.strides)
}

// IndexToPos returns the coordinates of a flat index.
func (ms MultiSize) IndexToPos(index int) []int {
	pos := make([]int, len(ms.sizes))
	ms.IndexToPosInto(index, pos)
	return pos
}

// IndexToPosInto writes the coordinates of a flat index into dst.
//
// PRECONDITION: len(dst) == Dims().
func (ms MultiSize) IndexToPosInto(index int, dst []int) {
	n := len(ms.sizes)
	if len(dst) != n {
		defect("position buffer has %d axes, want %d", len(dst), n)
	}
	if ms.fast && index >= 0 && uint64(index) <= math.MaxUint32 {
		u := uint32(index)
		for dim := n - 1; dim > 0; dim-- {
			quo, rem := ms.divs[dim].DivMod(u)
			dst[dim] = int(rem)
			u = quo
		}
		dst[0] = int(u)
		return
	}
	for dim := n - 1; dim > 0; dim-- {
		index, dst[dim] = DivMod(index, ms.sizes[dim])
	}
	dst[0] = index
}

// IndexToAxisIndex returns coordinate dim of a flat index without building
// the whole position: (index / AfterSize(dim)) % AxisSize(dim).
func (ms MultiSize) IndexToAxisIndex(index, dim int) int {
	if ms.fast && index >= 0 && uint64(index) <= math.MaxUint32 {
		u := ms.strideDivs[dim+1].Div(uint32(index))
		return int(ms.divs[dim].Mod(u))
	}
	return (index / ms.strides[dim+1]) % ms.sizes[dim]
}

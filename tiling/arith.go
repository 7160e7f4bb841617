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

// DivCeil returns ceil(a / b) for a >= 0 and b > 0.
func DivCeil(a, b int) int {
	return (a + b - 1) / b
}

// DivMod returns a / b and a % b.
func DivMod(a, b int) (quo, rem int) {
	quo = a / b
	return quo, a - quo*b
}

// PostfixProductInclusive returns the inclusive postfix products of sizes:
//
//	out[len(sizes)] = 1
//	out[i] = sizes[i] * out[i+1]
//
// out[0] is the product of all sizes and out[i+1] is the flat-index delta of
// one step along axis i in a row-major layout.
func PostfixProductInclusive(sizes []int) []int {
	out := make([]int, len(sizes)+1)
	out[len(sizes)] = 1
	for i := len(sizes) - 1; i >= 0; i-- {
		out[i] = sizes[i] * out[i+1]
	}
	return out
}

// PositionToIndex returns Σ pos[i] * strides[i+1].
//
// strides is an inclusive postfix product as returned by
// PostfixProductInclusive, so len(strides) must be len(pos)+1.
func PositionToIndex(pos, strides []int) int {
	if len(pos)+1 != len(strides) {
		defect("position has %d axes but %d strides were given, want %d", len(pos), len(strides), len(pos)+1)
	}
	index := 0
	for i, p := range pos {
		index += p * strides[i+1]
	}
	return index
}

// IndexToPosition converts a flat row-major index into per-axis coordinates
// by repeatedly dividing by the trailing axis sizes. The first coordinate
// is not reduced modulo sizes[0], so an index past the end yields
// pos[0] >= sizes[0].
func IndexToPosition(index int, sizes []int) []int {
	if len(sizes) == 0 {
		defect("IndexToPosition needs at least one axis")
	}
	pos := make([]int, len(sizes))
	for dim := len(sizes) - 1; dim > 0; dim-- {
		index, pos[dim] = DivMod(index, sizes[dim])
	}
	pos[0] = index
	return pos
}

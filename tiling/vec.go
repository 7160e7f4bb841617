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

import "github.com/ajroetker/go-tiling/dispatch"

// DefaultVecSize returns the number of elemBytes-sized elements in one
// vector of the SIMD level detected at startup, e.g. 8 for float32 on AVX2.
func DefaultVecSize(elemBytes int) int {
	return dispatch.Lanes(elemBytes)
}

// RoundTileSizes rounds every tile size up to a multiple of vecSize so the
// result can be passed to the vectorized traversals.
func RoundTileSizes(tileSizes []int, vecSize int) []int {
	if vecSize <= 0 {
		defect("vector size must be positive, got %d", vecSize)
	}
	out := make([]int, len(tileSizes))
	for i, w := range tileSizes {
		out[i] = max(DivCeil(w, vecSize), 1) * vecSize
	}
	return out
}

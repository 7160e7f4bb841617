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

import "math"

// Tessellate splits tileNum tiles over the axes of a box of the given
// dimensions: it returns per-axis tile counts whose product is tileNum and
// for which the resulting tile side lengths box[i]/counts[i] are as close
// to each other as possible (smallest max/min ratio). Ties keep the first
// candidate, which favours more tiles on outer axes.
//
// PRECONDITION: tileNum > 0; every box dimension is positive.
func Tessellate(tileNum int, box []int) []int {
	if tileNum <= 0 {
		defect("tile count must be positive, got %d", tileNum)
	}
	switch len(box) {
	case 0:
		return nil
	case 1:
		return []int{tileNum}
	}
	for dim, d := range box {
		if d <= 0 {
			defect("box dimension %d is %d, want positive", dim, d)
		}
	}

	var (
		best     []int
		bestCost = math.Inf(1)
		counts   = make([]int, len(box))
	)
	var search func(remaining, dim int)
	search = func(remaining, dim int) {
		if dim+1 == len(box) {
			counts[dim] = remaining
			lo, hi := math.Inf(1), 0.0
			for i, d := range box {
				side := float64(d) / float64(counts[i])
				lo = min(lo, side)
				hi = max(hi, side)
			}
			if cost := hi / lo; cost < bestCost {
				bestCost = cost
				best = append(best[:0], counts...)
			}
			return
		}
		for c := remaining; c > 0; c-- {
			if remaining%c == 0 {
				counts[dim] = c
				search(remaining/c, dim+1)
			}
		}
	}
	search(tileNum, 0)
	return best
}

// TileSizesFor returns per-axis tile sizes that cut an index space of the
// given sizes into roughly tileNum similarly shaped tiles.
func TileSizesFor(sizes []int, tileNum int) []int {
	counts := Tessellate(tileNum, sizes)
	out := make([]int, len(sizes))
	for i, s := range sizes {
		out[i] = DivCeil(s, counts[i])
	}
	return out
}

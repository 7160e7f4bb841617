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

// cartesian enumerates the Cartesian product of per-axis ranges without
// tiling.
type cartesian struct {
	ranges []Range
	slots  []axisSlot
	pos    []int
	fun    func(pos []int) bool
}

func (c *cartesian) each(dim int) bool {
	if dim == len(c.ranges) {
		return c.fun(c.pos)
	}
	if slot := c.slots[dim]; slot.fixed {
		c.pos[dim] = slot.coord
		return c.each(dim + 1)
	}
	r := c.ranges[dim]
	for i := r.Begin; i < r.End; i++ {
		c.pos[dim] = i
		if !c.each(dim + 1) {
			return false
		}
	}
	return true
}

func newCartesian(ranges []Range, fixed FixedAxes) *cartesian {
	return &cartesian{
		ranges: ranges,
		slots:  resolveFixed(len(ranges), fixed),
		pos:    make([]int, len(ranges)),
	}
}

// MultidimForEach calls fun for every coordinate tuple in the Cartesian
// product of ranges, in row-major order (the last axis varies fastest).
// Fixed axes take their pinned coordinate and are not looped over.
//
// The pos slice is reused between calls. With no axes fun is called once
// with an empty position.
func MultidimForEach(ranges []Range, fixed FixedAxes, fun func(pos []int)) {
	c := newCartesian(ranges, fixed)
	c.fun = func(pos []int) bool {
		fun(pos)
		return true
	}
	c.each(0)
}

// MultidimForEachSize is MultidimForEach over [0, size) for every axis.
func MultidimForEachSize(sizes []int, fixed FixedAxes, fun func(pos []int)) {
	MultidimForEach(RangesOf(sizes), fixed, fun)
}

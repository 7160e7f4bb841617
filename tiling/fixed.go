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
	"slices"

	"github.com/samber/lo"
)

// FixedAxes pins axes to a single coordinate: axis index → coordinate.
// A pinned axis contributes exactly that coordinate and is never looped
// over. A nil map pins nothing.
type FixedAxes map[int]int

// Contains reports whether axis is pinned.
func (f FixedAxes) Contains(axis int) bool {
	_, ok := f[axis]
	return ok
}

// Axes returns the pinned axes in increasing order.
func (f FixedAxes) Axes() []int {
	axes := lo.Keys(map[int]int(f))
	slices.Sort(axes)
	return axes
}

// axisSlot is the per-axis resolution of a FixedAxes map, computed once per
// call so the traversal loops index a slice instead of a map.
type axisSlot struct {
	fixed bool
	coord int
}

func resolveFixed(dims int, fixed FixedAxes) []axisSlot {
	slots := make([]axisSlot, dims)
	for axis, coord := range fixed {
		if axis < 0 || axis >= dims {
			defect("fixed axis %d out of range for %d axes", axis, dims)
		}
		slots[axis] = axisSlot{fixed: true, coord: coord}
	}
	return slots
}

// checkTiles validates the tile configuration shared by the splitter and
// the fused drivers and returns the resolved fixed-axis slots.
func checkTiles(ranges []Range, tileSizes []int, fixed FixedAxes) []axisSlot {
	if len(tileSizes) != len(ranges) {
		defect("%d tile sizes given for %d axes", len(tileSizes), len(ranges))
	}
	slots := resolveFixed(len(ranges), fixed)
	for axis, w := range tileSizes {
		if !slots[axis].fixed && w <= 0 {
			defect("axis %d has non-positive tile size %d", axis, w)
		}
	}
	return slots
}

// checkVec validates a vector width against the tile configuration. Every
// non-fixed axis must be tiled in multiples of vecSize and the innermost
// axis, which is the one stepped in vector groups, cannot be pinned.
func checkVec(tileSizes []int, slots []axisSlot, vecSize int) {
	if vecSize <= 0 {
		defect("vector size must be positive, got %d", vecSize)
	}
	if n := len(slots); n > 0 && slots[n-1].fixed {
		defect("innermost axis %d cannot be fixed in a vectorized traversal", n-1)
	}
	for axis, w := range tileSizes {
		if !slots[axis].fixed && w%vecSize != 0 {
			defect("tile size %d of axis %d is not a multiple of vector size %d", w, axis, vecSize)
		}
	}
}

func checkMultiSize(ms MultiSize, dims int) {
	if ms.Dims() != dims {
		defect("MultiSize has %d axes but %d ranges were given", ms.Dims(), dims)
	}
}

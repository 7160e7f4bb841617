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

import "iter"

// Cells returns an iterator over the Cartesian product of ranges, as
// visited by MultidimForEach.
//
// The yielded slice is owned by the iterator: don't change or retain it
// inside the loop.
func Cells(ranges []Range, fixed FixedAxes) iter.Seq[[]int] {
	resolveFixed(len(ranges), fixed)
	return func(yield func([]int) bool) {
		c := newCartesian(ranges, fixed)
		c.fun = yield
		c.each(0)
	}
}

// Tiles returns an iterator over the tiles of ForEachTile. The second value
// reports whether the tile is a remainder (part) tile.
//
// Configuration errors panic when Tiles is called, not when iterating.
func Tiles(dir Direction, ranges []Range, tileSizes []int, fixed FixedAxes) iter.Seq2[[]Range, bool] {
	slots := checkTiles(ranges, tileSizes, fixed)
	return func(yield func([]Range, bool) bool) {
		s := newSplitter(dir, ranges, tileSizes, slots)
		s.full = func(tile []Range) bool { return yield(tile, false) }
		s.part = func(tile []Range) bool { return yield(tile, true) }
		s.run()
	}
}

// Tiled returns an iterator over the cells of TiledForEach. Breaking out of
// the loop stops the traversal.
//
// The yielded Position is owned by the iterator; use Clone to retain it.
func Tiled(dir Direction, ms MultiSize, ranges []Range, tileSizes []int, fixed FixedAxes) iter.Seq[IndexPosition] {
	checkTiles(ranges, tileSizes, fixed)
	checkMultiSize(ms, len(ranges))
	return func(yield func(IndexPosition) bool) {
		t := newTiled(dir, ms, ranges, tileSizes, fixed)
		t.w.cell = yield
		t.run()
	}
}

// TiledVec returns an iterator over the vector groups of TiledForEachVec.
// The second value is the group width: vecSize for a complete group, less
// for a trailing part group.
//
// Configuration errors panic when TiledVec is called, not when iterating.
func TiledVec(dir Direction, ms MultiSize, ranges []Range, tileSizes []int, fixed FixedAxes, vecSize int) iter.Seq2[IndexPosition, int] {
	slots := checkTiles(ranges, tileSizes, fixed)
	checkMultiSize(ms, len(ranges))
	checkVec(tileSizes, slots, vecSize)
	return func(yield func(IndexPosition, int) bool) {
		t := newTiled(dir, ms, ranges, tileSizes, fixed)
		t.vectorize(vecSize, func(ip IndexPosition) bool { return yield(ip, vecSize) }, yield)
		t.run()
	}
}

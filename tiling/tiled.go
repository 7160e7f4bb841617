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

// TiledForEach walks every cell of the index space spanned by ranges, tile
// by tile. Tiles are produced as by ForEachTile and the cells inside each
// tile as by TileForEach, both in direction dir.
//
// Every cell of the Cartesian product of ranges (with fixed axes pinned) is
// visited exactly once and every IndexPosition satisfies
// Index == ms.PosToIndex(Position).
//
// PRECONDITION: ms.Dims() == len(ranges) == len(tileSizes); fixed axes are
// in range; tile sizes of non-fixed axes are positive.
func TiledForEach(dir Direction, ms MultiSize, ranges []Range, tileSizes []int, fixed FixedAxes, fun func(IndexPosition)) {
	t := newTiled(dir, ms, ranges, tileSizes, fixed)
	t.w.cell = func(ip IndexPosition) bool {
		fun(ip)
		return true
	}
	logTraversal("tiled traversal", dir, ranges, tileSizes, fixed, 0)
	t.run()
}

// TiledForEachVec is TiledForEach with the innermost axis stepped in groups
// of vecSize cells.
//
// full receives the first cell of every complete group of vecSize cells and
// part the first cell of a trailing narrower group together with its width.
// Tiles that are full width on every axis have an innermost width that is a
// multiple of vecSize, so only remainder tiles can produce part calls, and
// each innermost row of such a tile produces at most one.
//
// PRECONDITION: as for TiledForEach; additionally every non-fixed tile size
// is a multiple of vecSize and the innermost axis is not fixed.
func TiledForEachVec(dir Direction, ms MultiSize, ranges []Range, tileSizes []int, fixed FixedAxes, full func(IndexPosition), part func(IndexPosition, int), vecSize int) {
	t := newTiled(dir, ms, ranges, tileSizes, fixed)
	checkVec(tileSizes, t.s.slots, vecSize)
	if part == nil {
		defect("part callback is required")
	}
	t.vectorize(vecSize,
		func(ip IndexPosition) bool {
			full(ip)
			return true
		},
		func(ip IndexPosition, n int) bool {
			part(ip, n)
			return true
		})
	logTraversal("vectorized tiled traversal", dir, ranges, tileSizes, fixed, vecSize)
	t.run()
}

// tiled wires a splitter to a walker: every tile produced by the splitter
// is enumerated in place by the walker.
type tiled struct {
	s *splitter
	w *walker
}

func newTiled(dir Direction, ms MultiSize, ranges []Range, tileSizes []int, fixed FixedAxes) *tiled {
	slots := checkTiles(ranges, tileSizes, fixed)
	checkMultiSize(ms, len(ranges))
	t := &tiled{
		s: newSplitter(dir, ranges, tileSizes, slots),
		w: newWalker(dir, ms),
	}
	visit := func(tile []Range) bool {
		t.w.tile = tile
		return t.w.cells(0, 0)
	}
	t.s.full, t.s.part = visit, visit
	return t
}

// vectorize switches the walker to vector groups. Full tiles are walked
// without a remainder check; remainder tiles may end in a partial group.
func (t *tiled) vectorize(vecSize int, full func(IndexPosition) bool, part func(IndexPosition, int) bool) {
	t.w.vecSize = vecSize
	t.w.full = full
	t.w.part = part
	t.s.full = func(tile []Range) bool {
		t.w.tile = tile
		t.w.hasPart = false
		return t.w.groups(0, 0)
	}
	t.s.part = func(tile []Range) bool {
		t.w.tile = tile
		t.w.hasPart = true
		return t.w.groups(0, 0)
	}
}

func (t *tiled) run() bool {
	return t.s.run()
}

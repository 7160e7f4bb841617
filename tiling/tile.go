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

// TileFunc receives one tile: a sub-range per axis. The slice is reused
// between calls.
type TileFunc func(tile []Range)

// splitter enumerates the Cartesian product of per-axis tiles.
type splitter struct {
	dir       Direction
	ranges    []Range
	tileSizes []int
	slots     []axisSlot
	tile      []Range

	full func(tile []Range) bool
	part func(tile []Range) bool
}

func newSplitter(dir Direction, ranges []Range, tileSizes []int, slots []axisSlot) *splitter {
	return &splitter{
		dir:       dir,
		ranges:    ranges,
		tileSizes: tileSizes,
		slots:     slots,
		tile:      make([]Range, len(ranges)),
	}
}

// run walks all tiles and reports whether the walk completed.
func (s *splitter) run() bool {
	if len(s.ranges) == 0 {
		return true
	}
	return s.split(0, false)
}

// split fixes the tile of axis dim and recurses into dim+1. isPart records
// whether any outer axis already contributed a remainder tile.
func (s *splitter) split(dim int, isPart bool) bool {
	if dim == len(s.ranges) {
		if isPart {
			return s.part(s.tile)
		}
		return s.full(s.tile)
	}
	if slot := s.slots[dim]; slot.fixed {
		s.tile[dim] = Range{Begin: slot.coord, End: slot.coord + 1}
		return s.split(dim+1, isPart)
	}

	r := s.ranges[dim]
	if r.Empty() {
		return true
	}
	w := s.tileSizes[dim]
	fullEnd := r.End - r.Len()%w

	if s.dir == Forward {
		for i := r.Begin; i < fullEnd; i += w {
			s.tile[dim] = Range{Begin: i, End: i + w}
			if !s.split(dim+1, isPart) {
				return false
			}
		}
		if fullEnd != r.End {
			s.tile[dim] = Range{Begin: fullEnd, End: r.End}
			return s.split(dim+1, true)
		}
		return true
	}

	// Backward starts at End, so the remainder comes first.
	if fullEnd != r.End {
		s.tile[dim] = Range{Begin: fullEnd, End: r.End}
		if !s.split(dim+1, true) {
			return false
		}
	}
	for i := fullEnd; i > r.Begin; i -= w {
		s.tile[dim] = Range{Begin: i - w, End: i}
		if !s.split(dim+1, isPart) {
			return false
		}
	}
	return true
}

// ForEachTile splits the index space spanned by ranges into tiles of
// tileSizes[axis] cells per axis.
//
// Each non-fixed axis yields full-width tiles and at most one narrower
// remainder tile. Forward emits full tiles in increasing order followed by
// the remainder; Backward emits the remainder first and then the full tiles
// in decreasing order. A fixed axis contributes the single-cell range at its
// pinned coordinate.
//
// Every combination of per-axis tiles is handed over exactly once: to full
// when every non-fixed axis is full width, to part otherwise. If part is nil,
// remainder tiles go to full as well.
//
// For example a single axis [0,6) with tile size 4 calls full([0,4)) and then
// part([4,6)) going Forward, and the reverse going Backward.
//
// PRECONDITION: len(tileSizes) == len(ranges); fixed axes are in range;
// tile sizes of non-fixed axes are positive.
func ForEachTile(dir Direction, ranges []Range, tileSizes []int, fixed FixedAxes, full, part TileFunc) {
	slots := checkTiles(ranges, tileSizes, fixed)
	s := newSplitter(dir, ranges, tileSizes, slots)
	s.full, s.part = tileCallbacks(full, part)
	s.run()
}

// ForEachTileVec is ForEachTile for traversals that step the innermost axis
// in groups of vecSize cells. Before iterating it checks that every
// non-fixed axis has a tile size that is a multiple of vecSize and that the
// innermost axis is not fixed.
func ForEachTileVec(dir Direction, ranges []Range, tileSizes []int, fixed FixedAxes, full, part TileFunc, vecSize int) {
	slots := checkTiles(ranges, tileSizes, fixed)
	checkVec(tileSizes, slots, vecSize)
	s := newSplitter(dir, ranges, tileSizes, slots)
	s.full, s.part = tileCallbacks(full, part)
	s.run()
}

func tileCallbacks(full, part TileFunc) (fullFn, partFn func([]Range) bool) {
	if part == nil {
		part = full
	}
	fullFn = func(tile []Range) bool {
		full(tile)
		return true
	}
	partFn = func(tile []Range) bool {
		part(tile)
		return true
	}
	return fullFn, partFn
}

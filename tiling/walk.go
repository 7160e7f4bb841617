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

import "slices"

// IndexPosition pairs a flat index with the coordinates it stands for.
// For every value produced by the engine
//
//	Index == ms.PosToIndex(Position)
//
// holds for the MultiSize of the traversal.
//
// Position is owned by the engine and overwritten after the callback
// returns; use Clone to retain it.
type IndexPosition struct {
	Index    int
	Position []int
}

// Clone returns a copy whose Position is not shared with the engine.
func (ip IndexPosition) Clone() IndexPosition {
	return IndexPosition{Index: ip.Index, Position: slices.Clone(ip.Position)}
}

// walker enumerates the cells of one tile. The flat index is carried down
// the recursion and advanced by one stride per step, so each cell costs a
// constant amount of index arithmetic regardless of the dimension count.
type walker struct {
	dir     Direction
	strides []int // strides[dim] == ms.AfterSize(dim)
	tile    []Range
	pos     []int

	cell func(IndexPosition) bool

	vecSize int
	hasPart bool
	full    func(IndexPosition) bool
	part    func(IndexPosition, int) bool
}

func newWalker(dir Direction, ms MultiSize) *walker {
	w := &walker{
		dir: dir,
		pos: make([]int, ms.Dims()),
	}
	if len(ms.strides) > 0 {
		w.strides = ms.strides[1:]
	}
	return w
}

// cells visits every cell of w.tile one at a time.
func (w *walker) cells(dim, index int) bool {
	r := w.tile[dim]
	if r.Empty() {
		return true
	}
	stride := w.strides[dim]
	last := dim+1 == len(w.tile)

	if w.dir == Forward {
		idx := index + r.Begin*stride
		for i := r.Begin; i < r.End; i++ {
			w.pos[dim] = i
			if last {
				if !w.cell(IndexPosition{Index: idx, Position: w.pos}) {
					return false
				}
			} else if !w.cells(dim+1, idx) {
				return false
			}
			idx += stride
		}
		return true
	}

	idx := index + (r.End-1)*stride
	for i := r.End - 1; i >= r.Begin; i-- {
		w.pos[dim] = i
		if last {
			if !w.cell(IndexPosition{Index: idx, Position: w.pos}) {
				return false
			}
		} else if !w.cells(dim+1, idx) {
			return false
		}
		idx -= stride
	}
	return true
}

// groups visits the cells of w.tile with the innermost axis stepped in
// groups of w.vecSize.
func (w *walker) groups(dim, index int) bool {
	r := w.tile[dim]
	if r.Empty() {
		return true
	}
	stride := w.strides[dim]

	if dim+1 < len(w.tile) {
		if w.dir == Forward {
			idx := index + r.Begin*stride
			for i := r.Begin; i < r.End; i++ {
				w.pos[dim] = i
				if !w.groups(dim+1, idx) {
					return false
				}
				idx += stride
			}
			return true
		}
		idx := index + (r.End-1)*stride
		for i := r.End - 1; i >= r.Begin; i-- {
			w.pos[dim] = i
			if !w.groups(dim+1, idx) {
				return false
			}
			idx -= stride
		}
		return true
	}

	vec := w.vecSize
	if !w.hasPart && r.Len()%vec != 0 {
		defect("innermost range %v is not a multiple of vector size %d", r, vec)
	}
	fullEnd := r.End - r.Len()%vec

	emitFull := func(i int) bool {
		w.pos[dim] = i
		return w.full(IndexPosition{Index: index + i*stride, Position: w.pos})
	}
	emitPart := func() bool {
		w.pos[dim] = fullEnd
		return w.part(IndexPosition{Index: index + fullEnd*stride, Position: w.pos}, r.End-fullEnd)
	}

	if w.dir == Forward {
		for i := r.Begin; i < fullEnd; i += vec {
			if !emitFull(i) {
				return false
			}
		}
		if fullEnd != r.End {
			return emitPart()
		}
		return true
	}

	if fullEnd != r.End && !emitPart() {
		return false
	}
	for i := fullEnd; i > r.Begin; i -= vec {
		if !emitFull(i - vec) {
			return false
		}
	}
	return true
}

func checkTile(ms MultiSize, tile []Range) {
	checkMultiSize(ms, len(tile))
}

// TileForEach calls fun for every cell in the Cartesian product of the
// tile's ranges, in row-major order for Forward and in the exact reverse
// order for Backward. Coordinates are absolute positions in ms.
//
// PRECONDITION: len(tile) == ms.Dims().
func TileForEach(dir Direction, ms MultiSize, tile []Range, fun func(IndexPosition)) {
	checkTile(ms, tile)
	if len(tile) == 0 {
		return
	}
	w := newWalker(dir, ms)
	w.tile = tile
	w.cell = func(ip IndexPosition) bool {
		fun(ip)
		return true
	}
	w.cells(0, 0)
}

// TileForEachVec is TileForEach with the innermost axis stepped in groups
// of vecSize cells. full receives the first cell of each complete group.
//
// With hasPart, a trailing group narrower than vecSize goes to part together
// with its width. Without hasPart the innermost range must be an exact
// multiple of vecSize and part is never called (it may be nil).
//
// PRECONDITION: len(tile) == ms.Dims(); vecSize > 0.
func TileForEachVec(dir Direction, ms MultiSize, tile []Range, full func(IndexPosition), part func(IndexPosition, int), vecSize int, hasPart bool) {
	checkTile(ms, tile)
	if vecSize <= 0 {
		defect("vector size must be positive, got %d", vecSize)
	}
	if hasPart && part == nil {
		defect("part callback required when hasPart is set")
	}
	w := newWalker(dir, ms)
	w.tile = tile
	w.vecSize = vecSize
	w.hasPart = hasPart
	w.full = func(ip IndexPosition) bool {
		full(ip)
		return true
	}
	w.part = func(ip IndexPosition, n int) bool {
		part(ip, n)
		return true
	}
	if len(tile) > 0 {
		w.groups(0, 0)
	}
}

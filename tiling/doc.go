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

// Package tiling walks N-dimensional hyperrectangular index spaces in
// cache- and vector-sized blocks.
//
// The building blocks, from the bottom up:
//
//   - [MultiSize] is the stride table of a row-major index space. It converts
//     between a flat index and a per-axis coordinate tuple.
//   - [ForEachTile] splits per-axis ranges into tiles of a requested width.
//     Tiles that are full width on every axis go to the full callback, tiles
//     that contain a remainder on some axis go to the part callback.
//   - [TileForEach] enumerates the cells of one tile as [IndexPosition]
//     values, carrying the flat index incrementally. [TileForEachVec] steps
//     the innermost axis in groups of a vector width.
//   - [TiledForEach] and [TiledForEachVec] fuse the two.
//   - [MultidimForEach] is the untiled Cartesian walk.
//
// Every routine accepts a [Direction]. Backward produces exactly the reverse
// sequence of Forward. Axes listed in a [FixedAxes] map are pinned to a single
// coordinate and never looped over.
//
// Example: a 2D traversal in 4×8 tiles with 4-wide vector groups.
//
//	ms := tiling.NewMultiSize(rows, cols)
//	tiling.TiledForEachVec(tiling.Forward, ms, tiling.RangesOf(ms.Sizes()),
//	    []int{4, 8}, nil,
//	    func(ip tiling.IndexPosition) { /* 4 cells at ip.Index */ },
//	    func(ip tiling.IndexPosition, n int) { /* n < 4 cells at ip.Index */ },
//	    4)
//
// All routines run synchronously on the calling goroutine. Slices handed to
// callbacks (tiles and positions) are reused between calls and must be
// copied if retained.
//
// Configuration defects, such as mismatched axis counts or a tile width that
// is not a multiple of the vector width, panic before any callback runs.
package tiling

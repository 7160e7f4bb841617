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
	"fmt"
	"slices"
)

// tileRec is a retained copy of one tile handed to a TileFunc.
type tileRec struct {
	Part bool
	Tile []Range
}

func (r tileRec) String() string {
	kind := "full"
	if r.Part {
		kind = "part"
	}
	return fmt.Sprintf("%s %v", kind, r.Tile)
}

func collectTiles(dir Direction, ranges []Range, tileSizes []int, fixed FixedAxes) []tileRec {
	var out []tileRec
	ForEachTile(dir, ranges, tileSizes, fixed,
		func(tile []Range) { out = append(out, tileRec{Tile: slices.Clone(tile)}) },
		func(tile []Range) { out = append(out, tileRec{Part: true, Tile: slices.Clone(tile)}) },
	)
	return out
}

func collectTiled(dir Direction, ms MultiSize, ranges []Range, tileSizes []int, fixed FixedAxes) []IndexPosition {
	var out []IndexPosition
	TiledForEach(dir, ms, ranges, tileSizes, fixed, func(ip IndexPosition) {
		out = append(out, ip.Clone())
	})
	return out
}

// referenceCells lists the cells of the untiled traversal in row-major
// order as IndexPositions under ms.
func referenceCells(ms MultiSize, ranges []Range, fixed FixedAxes) []IndexPosition {
	var out []IndexPosition
	MultidimForEach(ranges, fixed, func(pos []int) {
		out = append(out, IndexPosition{Index: ms.PosToIndex(pos), Position: slices.Clone(pos)})
	})
	return out
}

func sortedByIndex(cells []IndexPosition) []IndexPosition {
	out := slices.Clone(cells)
	slices.SortFunc(out, func(a, b IndexPosition) int { return a.Index - b.Index })
	return out
}

func reversed[T any](s []T) []T {
	out := slices.Clone(s)
	slices.Reverse(out)
	return out
}

// traversalCase is an index space plus a tiling of it, shared by the
// coverage tests of the splitter and the fused drivers.
type traversalCase struct {
	name      string
	sizes     []int
	ranges    []Range
	tileSizes []int
	fixed     FixedAxes
}

func traversalCases() []traversalCase {
	return []traversalCase{
		{name: "1d exact", sizes: []int{8}, ranges: []Range{{0, 8}}, tileSizes: []int{4}},
		{name: "1d remainder", sizes: []int{6}, ranges: []Range{{0, 6}}, tileSizes: []int{4}},
		{name: "1d tile larger than axis", sizes: []int{3}, ranges: []Range{{0, 3}}, tileSizes: []int{8}},
		{name: "1d width one", sizes: []int{5}, ranges: []Range{{0, 5}}, tileSizes: []int{1}},
		{name: "1d offset", sizes: []int{20}, ranges: []Range{{3, 17}}, tileSizes: []int{4}},
		{name: "2d mixed", sizes: []int{7, 10}, ranges: []Range{{0, 7}, {0, 10}}, tileSizes: []int{3, 4}},
		{name: "3d cube tiles", sizes: []int{16, 8, 12}, ranges: RangesOf([]int{16, 8, 12}), tileSizes: []int{4, 4, 4}},
		{name: "3d small", sizes: []int{3, 2, 4}, ranges: RangesOf([]int{3, 2, 4}), tileSizes: []int{4, 4, 4}},
		{name: "3d offsets", sizes: []int{15, 8, 13}, ranges: []Range{{4, 15}, {1, 8}, {2, 13}}, tileSizes: []int{4, 3, 4}},
		{name: "3d fixed outer", sizes: []int{15, 8, 13}, ranges: RangesOf([]int{15, 8, 13}), tileSizes: []int{4, 4, 4}, fixed: FixedAxes{0: 1}},
		{name: "3d fixed middle", sizes: []int{5, 6, 7}, ranges: RangesOf([]int{5, 6, 7}), tileSizes: []int{2, 0, 4}, fixed: FixedAxes{1: 5}},
		{name: "4d", sizes: []int{3, 5, 2, 9}, ranges: RangesOf([]int{3, 5, 2, 9}), tileSizes: []int{2, 2, 2, 4}},
	}
}

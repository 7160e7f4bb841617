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

package cli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-tiling/tiling"
	"github.com/ajroetker/go-tiling/tiling/plan"
)

// planFlags are the flags shared by every command that needs a traversal.
type planFlags struct {
	file      string
	sizes     []int
	tiles     []int
	tileCount int
	ranges    []string
	fixed     map[string]int
	direction string
	vec       int
	elemBytes int
}

func (f *planFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.file, "plan", "", "YAML plan file")
	fs.IntSliceVar(&f.sizes, "sizes", nil, "axis sizes, outermost first (e.g. 16,8,12)")
	fs.IntSliceVar(&f.tiles, "tiles", nil, "tile size per axis (default: whole axes)")
	fs.IntVar(&f.tileCount, "tile-count", 0, "derive tile sizes that cut the space into about this many tiles")
	fs.StringSliceVar(&f.ranges, "ranges", nil, "begin:end per axis (default: whole axes)")
	fs.StringToIntVar(&f.fixed, "fixed", nil, "pinned axes as axis=coord")
	fs.StringVar(&f.direction, "direction", "forward", "forward or backward")
	fs.IntVar(&f.vec, "vec", 0, "vector width; 0 walks cells, -1 uses the CPU width")
	fs.IntVar(&f.elemBytes, "elem-bytes", plan.DefaultElemBytes, "element size for --vec=-1")
	cmd.MarkFlagsMutuallyExclusive("plan", "sizes")
	cmd.MarkFlagsMutuallyExclusive("plan", "tiles")
	cmd.MarkFlagsMutuallyExclusive("tiles", "tile-count")
}

// build returns the validated plan described by the flags. With --plan the
// file is loaded and --direction, --vec and --elem-bytes override it when
// given explicitly. Tile sizes that were not given explicitly are rounded
// up to the vector width.
func (f *planFlags) build(cmd *cobra.Command) (*plan.Plan, error) {
	var p *plan.Plan
	if f.file != "" {
		var err error
		if p, err = plan.LoadFile(f.file); err != nil {
			return nil, err
		}
	} else {
		if len(f.sizes) == 0 {
			return nil, errors.New("either --plan or --sizes is required")
		}
		p = &plan.Plan{Sizes: f.sizes, TileSizes: f.tiles}
		if len(p.TileSizes) == 0 {
			tiles, err := f.defaultTiles()
			if err != nil {
				return nil, err
			}
			p.TileSizes = tiles
		}
		ranges, err := parseRanges(f.ranges)
		if err != nil {
			return nil, err
		}
		p.Ranges = ranges
		if p.Fixed, err = parseFixed(f.fixed); err != nil {
			return nil, err
		}
	}

	fs := cmd.Flags()
	if f.file == "" || fs.Changed("direction") {
		p.Direction = f.direction
	}
	if f.file == "" || fs.Changed("vec") {
		p.VecSize = f.vec
	}
	if f.file == "" || fs.Changed("elem-bytes") {
		p.ElemBytes = f.elemBytes
	}
	if vec := p.EffectiveVecSize(); vec > 0 && f.file == "" && len(f.tiles) == 0 {
		p.TileSizes = tiling.RoundTileSizes(p.TileSizes, vec)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// defaultTiles returns one tile per axis, or about --tile-count similarly
// shaped tiles.
func (f *planFlags) defaultTiles() ([]int, error) {
	if f.tileCount == 0 {
		return lo.Map(f.sizes, func(s, _ int) int { return max(s, 1) }), nil
	}
	if f.tileCount < 0 {
		return nil, errors.Errorf("--tile-count %d, want positive", f.tileCount)
	}
	if lo.SomeBy(f.sizes, func(s int) bool { return s <= 0 }) {
		return nil, errors.Errorf("--tile-count needs positive --sizes, got %v", f.sizes)
	}
	return tiling.TileSizesFor(f.sizes, f.tileCount), nil
}

func parseRanges(specs []string) ([][2]int, error) {
	out := make([][2]int, 0, len(specs))
	for _, s := range specs {
		b, e, ok := strings.Cut(s, ":")
		if !ok {
			return nil, errors.Errorf("range %q: want begin:end", s)
		}
		begin, err := strconv.Atoi(strings.TrimSpace(b))
		if err != nil {
			return nil, errors.Wrapf(err, "range %q", s)
		}
		end, err := strconv.Atoi(strings.TrimSpace(e))
		if err != nil {
			return nil, errors.Wrapf(err, "range %q", s)
		}
		out = append(out, [2]int{begin, end})
	}
	return out, nil
}

func parseFixed(fixed map[string]int) (map[int]int, error) {
	if len(fixed) == 0 {
		return nil, nil
	}
	out := make(map[int]int, len(fixed))
	for axis, coord := range fixed {
		a, err := strconv.Atoi(strings.TrimSpace(axis))
		if err != nil {
			return nil, errors.Wrapf(err, "fixed axis %q", axis)
		}
		out[a] = coord
	}
	return out, nil
}

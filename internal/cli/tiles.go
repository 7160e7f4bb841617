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
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-tiling/tiling"
)

// TileRecord is one tile in the output of the tiles command.
type TileRecord struct {
	Part   bool     `json:"part"`
	Ranges [][2]int `json:"ranges"`
	Cells  int      `json:"cells"`
}

// TilesResult is the output of the tiles command.
type TilesResult struct {
	Direction string       `json:"direction"`
	Full      int          `json:"full"`
	Part      int          `json:"part"`
	Tiles     []TileRecord `json:"tiles"`
}

// NewTilesCommand creates the tiles command.
func NewTilesCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &planFlags{}
	cmd := &cobra.Command{
		Use:   "tiles",
		Short: "List the tiles of a traversal",
		Long: `List the tiles of a traversal in visiting order.

Tiles that are full width on every non-fixed axis are reported as "full",
tiles that contain a remainder on some axis as "part".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTiles(rootOpts, flags, cmd)
		},
	}
	flags.register(cmd)
	return cmd
}

func runTiles(opts *RootOptions, flags *planFlags, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	p, err := flags.build(cmd)
	if err != nil {
		return formatter.Fail(ErrCodeInvalidPlan, "invalid plan", err)
	}

	res := TilesResult{Direction: p.Dir().String()}
	record := func(part bool) tiling.TileFunc {
		return func(tile []tiling.Range) {
			res.Tiles = append(res.Tiles, TileRecord{
				Part:   part,
				Ranges: lo.Map(tile, func(r tiling.Range, _ int) [2]int { return [2]int{r.Begin, r.End} }),
				Cells:  tiling.Volume(tile),
			})
		}
	}
	if err := p.Tiles(record(false), record(true)); err != nil {
		return formatter.Fail(ErrCodeInvalidPlan, "invalid plan", err)
	}
	res.Part = lo.CountBy(res.Tiles, func(t TileRecord) bool { return t.Part })
	res.Full = len(res.Tiles) - res.Part
	formatter.VerboseLog("%d tiles over %v", len(res.Tiles), p.TilingRanges())

	return formatter.Emit(res, func(w io.Writer) error {
		for _, t := range res.Tiles {
			kind := "full"
			if t.Part {
				kind = "part"
			}
			fmt.Fprintf(w, "%s %s %d\n", kind, formatRanges(t.Ranges), t.Cells)
		}
		_, err := fmt.Fprintf(w, "%d tiles (%d full, %d part)\n", len(res.Tiles), res.Full, res.Part)
		return err
	})
}

func formatRanges(ranges [][2]int) string {
	return fmt.Sprint(lo.Map(ranges, func(r [2]int, _ int) tiling.Range {
		return tiling.Range{Begin: r[0], End: r[1]}
	}))
}

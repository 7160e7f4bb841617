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
	"slices"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-tiling/tiling"
	"github.com/ajroetker/go-tiling/tiling/plan"
)

// CellRecord is one visited cell, or one vector group when the traversal
// has a vector width.
type CellRecord struct {
	Index    int   `json:"index"`
	Position []int `json:"position"`
	Width    int   `json:"width,omitempty"`
	Part     bool  `json:"part,omitempty"`
}

// CellsResult is the output of the cells command.
type CellsResult struct {
	VecSize   int          `json:"vec_size"`
	Truncated bool         `json:"truncated"`
	Cells     []CellRecord `json:"cells"`
}

// NewCellsCommand creates the cells command.
func NewCellsCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &planFlags{}
	var limit int
	cmd := &cobra.Command{
		Use:   "cells",
		Short: "List the cells of a traversal in visiting order",
		Long: `List the flat index and position of every cell in visiting order.

With a vector width (--vec) every line is a group of cells: the first cell
of the group and its width. Remainder groups are marked "part".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCells(rootOpts, flags, limit, cmd)
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many lines (0: no limit)")
	return cmd
}

func runCells(opts *RootOptions, flags *planFlags, limit int, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	if limit < 0 {
		return formatter.Fail(ErrCodeInvalidArgs, "invalid --limit", errors.Errorf("negative limit %d", limit))
	}
	p, err := flags.build(cmd)
	if err != nil {
		return formatter.Fail(ErrCodeInvalidPlan, "invalid plan", err)
	}

	res := collectCells(p, limit)
	formatter.VerboseLog("%d lines, vec_size %d", len(res.Cells), res.VecSize)

	return formatter.Emit(res, func(w io.Writer) error {
		for _, c := range res.Cells {
			switch {
			case res.VecSize == 0:
				fmt.Fprintf(w, "%d %v\n", c.Index, c.Position)
			case c.Part:
				fmt.Fprintf(w, "%d %v x%d part\n", c.Index, c.Position, c.Width)
			default:
				fmt.Fprintf(w, "%d %v x%d\n", c.Index, c.Position, c.Width)
			}
		}
		if res.Truncated {
			_, err := fmt.Fprintf(w, "... truncated after %d\n", limit)
			return err
		}
		return nil
	})
}

// collectCells walks a validated plan and stops as soon as limit lines were
// recorded.
func collectCells(p *plan.Plan, limit int) CellsResult {
	res := CellsResult{VecSize: p.EffectiveVecSize()}
	full := func() bool { return limit > 0 && len(res.Cells) >= limit }

	if res.VecSize == 0 {
		for ip := range tiling.Tiled(p.Dir(), p.MultiSize(), p.TilingRanges(), p.TileSizes, p.FixedAxes()) {
			if full() {
				res.Truncated = true
				break
			}
			res.Cells = append(res.Cells, CellRecord{Index: ip.Index, Position: slices.Clone(ip.Position)})
		}
		return res
	}

	groups := tiling.TiledVec(p.Dir(), p.MultiSize(), p.TilingRanges(), p.TileSizes, p.FixedAxes(), res.VecSize)
	for ip, n := range groups {
		if full() {
			res.Truncated = true
			break
		}
		res.Cells = append(res.Cells, CellRecord{
			Index:    ip.Index,
			Position: slices.Clone(ip.Position),
			Width:    n,
			Part:     n < res.VecSize,
		})
	}
	return res
}

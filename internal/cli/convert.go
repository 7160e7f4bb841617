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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-tiling/tiling"
)

// ConvertResult is the output of the convert command.
type ConvertResult struct {
	Sizes    []int `json:"sizes"`
	Strides  []int `json:"strides"`
	Index    int   `json:"index"`
	Position []int `json:"position"`
}

type convertOptions struct {
	sizes []int
	index int
	pos   []int
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	o := &convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between flat indices and positions",
		Long: `Convert a flat row-major index into a position (--index) or a position
into a flat index (--pos) for an index space of the given --sizes.`,
		Example: `  tileplan convert --sizes 3,4,5 --index 33
  tileplan convert --sizes 3,4,5 --pos 1,2,3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, o, cmd)
		},
	}
	cmd.Flags().IntSliceVar(&o.sizes, "sizes", nil, "axis sizes, outermost first")
	cmd.Flags().IntVar(&o.index, "index", 0, "flat index to convert")
	cmd.Flags().IntSliceVar(&o.pos, "pos", nil, "position to convert")
	_ = cmd.MarkFlagRequired("sizes")
	cmd.MarkFlagsMutuallyExclusive("index", "pos")
	cmd.MarkFlagsOneRequired("index", "pos")
	return cmd
}

func runConvert(opts *RootOptions, o *convertOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	res, err := convert(o, cmd.Flags().Changed("pos"))
	if err != nil {
		return formatter.Fail(ErrCodeInvalidArgs, "invalid conversion", err)
	}
	formatter.VerboseLog("strides %v", res.Strides)

	return formatter.Emit(res, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%d %v\n", res.Index, res.Position)
		return err
	})
}

func convert(o *convertOptions, fromPos bool) (ConvertResult, error) {
	if len(o.sizes) == 0 {
		return ConvertResult{}, errors.New("--sizes needs at least one axis")
	}
	for axis, s := range o.sizes {
		if s <= 0 {
			return ConvertResult{}, errors.Errorf("axis %d has size %d, want positive", axis, s)
		}
	}
	ms := tiling.NewMultiSize(o.sizes...)
	res := ConvertResult{Sizes: ms.Sizes(), Strides: ms.Strides()}

	if fromPos {
		if len(o.pos) != ms.Dims() {
			return ConvertResult{}, errors.Errorf("position has %d axes, want %d", len(o.pos), ms.Dims())
		}
		for axis, c := range o.pos {
			if c < 0 || c >= ms.AxisSize(axis) {
				return ConvertResult{}, errors.Errorf("coordinate %d outside axis %d of size %d", c, axis, ms.AxisSize(axis))
			}
		}
		res.Position = o.pos
		res.Index = ms.PosToIndex(o.pos)
		return res, nil
	}

	if o.index < 0 || o.index >= ms.TotalSize() {
		return ConvertResult{}, errors.Errorf("index %d outside [0,%d)", o.index, ms.TotalSize())
	}
	res.Index = o.index
	res.Position = ms.IndexToPos(o.index)
	return res, nil
}

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

// Package plan describes a tiled traversal as data. A Plan can be loaded
// from YAML, validated up front and then run with the tiling engine, which
// turns configuration defects into errors instead of panics.
package plan

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-tiling/tiling"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid plan")

// AutoVecSize asks for the vector width of the detected SIMD level.
const AutoVecSize = -1

// DefaultElemBytes is the element size assumed when ElemBytes is zero.
const DefaultElemBytes = 4

// Plan is a serializable description of a tiled traversal.
type Plan struct {
	// Sizes are the axis sizes of the index space, outermost first.
	Sizes []int `yaml:"sizes" json:"sizes"`

	// Ranges optionally restricts every axis to [begin, end). Empty means
	// the whole axis.
	Ranges [][2]int `yaml:"ranges,omitempty" json:"ranges,omitempty"`

	// TileSizes holds one tile width per axis. Fixed axes ignore theirs.
	TileSizes []int `yaml:"tile_sizes" json:"tile_sizes"`

	// Fixed pins axes to one coordinate.
	Fixed map[int]int `yaml:"fixed,omitempty" json:"fixed,omitempty"`

	// VecSize is the vector group width. 0 walks single cells and
	// AutoVecSize derives the width from the CPU and ElemBytes.
	VecSize int `yaml:"vec_size,omitempty" json:"vec_size,omitempty"`

	// ElemBytes is the element size used by AutoVecSize.
	ElemBytes int `yaml:"elem_bytes,omitempty" json:"elem_bytes,omitempty"`

	// Direction is "forward" (default) or "backward".
	Direction string `yaml:"direction,omitempty" json:"direction,omitempty"`
}

// Load decodes a single YAML document and validates it. Unknown fields are
// rejected.
func Load(r io.Reader) (*Plan, error) {
	var p Plan
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(ErrInvalid, "empty plan")
		}
		return nil, errors.Wrap(err, "decode plan")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	tiling.Logger().Debug("plan loaded",
		"sizes", p.Sizes,
		"tile_sizes", p.TileSizes,
		"vec_size", p.VecSize,
		"direction", p.Dir().String())
	return &p, nil
}

// LoadFile is Load on the contents of path.
func LoadFile(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open plan")
	}
	defer f.Close()
	p, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return p, nil
}

// Validate checks every precondition of the engine so that Tiles, Run and
// Walk cannot panic on a validated plan.
func (p *Plan) Validate() error {
	dims := len(p.Sizes)
	if dims == 0 {
		return errors.Wrap(ErrInvalid, "sizes: at least one axis is required")
	}
	for axis, s := range p.Sizes {
		if s < 0 {
			return errors.Wrapf(ErrInvalid, "sizes[%d]: negative size %d", axis, s)
		}
	}

	if len(p.Ranges) != 0 && len(p.Ranges) != dims {
		return errors.Wrapf(ErrInvalid, "ranges: %d given for %d axes", len(p.Ranges), dims)
	}
	for axis, r := range p.Ranges {
		if r[0] < 0 || r[0] > r[1] || r[1] > p.Sizes[axis] {
			return errors.Wrapf(ErrInvalid, "ranges[%d]: [%d,%d) outside [0,%d)", axis, r[0], r[1], p.Sizes[axis])
		}
	}

	for axis, coord := range p.Fixed {
		if axis < 0 || axis >= dims {
			return errors.Wrapf(ErrInvalid, "fixed: axis %d out of range for %d axes", axis, dims)
		}
		if coord < 0 || coord >= p.Sizes[axis] {
			return errors.Wrapf(ErrInvalid, "fixed: coordinate %d outside axis %d of size %d", coord, axis, p.Sizes[axis])
		}
	}

	if len(p.TileSizes) != dims {
		return errors.Wrapf(ErrInvalid, "tile_sizes: %d given for %d axes", len(p.TileSizes), dims)
	}
	for axis, w := range p.TileSizes {
		if w <= 0 && !p.isFixed(axis) {
			return errors.Wrapf(ErrInvalid, "tile_sizes[%d]: non-positive size %d", axis, w)
		}
	}

	if p.ElemBytes < 0 {
		return errors.Wrapf(ErrInvalid, "elem_bytes: negative size %d", p.ElemBytes)
	}
	if p.VecSize < AutoVecSize {
		return errors.Wrapf(ErrInvalid, "vec_size: %d, want -1 (auto), 0 (scalar) or a positive width", p.VecSize)
	}
	if vec := p.EffectiveVecSize(); vec > 0 {
		if p.isFixed(dims - 1) {
			return errors.Wrapf(ErrInvalid, "fixed: innermost axis %d cannot be fixed with vec_size %d", dims-1, vec)
		}
		for axis, w := range p.TileSizes {
			if !p.isFixed(axis) && w%vec != 0 {
				return errors.Wrapf(ErrInvalid, "tile_sizes[%d]: %d is not a multiple of vec_size %d", axis, w, vec)
			}
		}
	}

	if _, err := tiling.ParseDirection(p.Direction); err != nil {
		return errors.Wrapf(ErrInvalid, "direction: %v", err)
	}
	return nil
}

func (p *Plan) isFixed(axis int) bool {
	_, ok := p.Fixed[axis]
	return ok
}

// MultiSize returns the stride table of the index space.
func (p *Plan) MultiSize() tiling.MultiSize {
	return tiling.NewMultiSize(p.Sizes...)
}

// TilingRanges returns the per-axis ranges of the traversal.
func (p *Plan) TilingRanges() []tiling.Range {
	if len(p.Ranges) == 0 {
		return tiling.RangesOf(p.Sizes)
	}
	return lo.Map(p.Ranges, func(r [2]int, _ int) tiling.Range {
		return tiling.Range{Begin: r[0], End: r[1]}
	})
}

// FixedAxes returns Fixed as a tiling.FixedAxes.
func (p *Plan) FixedAxes() tiling.FixedAxes {
	return tiling.FixedAxes(p.Fixed)
}

// Dir returns the parsed direction, Forward if it does not parse.
func (p *Plan) Dir() tiling.Direction {
	d, _ := tiling.ParseDirection(p.Direction)
	return d
}

// EffectiveVecSize resolves AutoVecSize against the detected SIMD level.
func (p *Plan) EffectiveVecSize() int {
	if p.VecSize != AutoVecSize {
		return p.VecSize
	}
	elem := p.ElemBytes
	if elem == 0 {
		elem = DefaultElemBytes
	}
	return tiling.DefaultVecSize(elem)
}

// Tiles enumerates the tiles of the plan. A nil part sends remainder tiles
// to full.
func (p *Plan) Tiles(full, part tiling.TileFunc) error {
	if err := p.Validate(); err != nil {
		return err
	}
	tiling.ForEachTile(p.Dir(), p.TilingRanges(), p.TileSizes, p.FixedAxes(), full, part)
	return nil
}

// Run executes the plan. With a vector width, full receives the first cell
// of every complete vector group and part the first cell and width of every
// trailing narrower group. Without one, every cell goes to full and part is
// never called.
func (p *Plan) Run(full func(tiling.IndexPosition), part func(tiling.IndexPosition, int)) error {
	if err := p.Validate(); err != nil {
		return err
	}
	vec := p.EffectiveVecSize()
	if vec == 0 {
		tiling.TiledForEach(p.Dir(), p.MultiSize(), p.TilingRanges(), p.TileSizes, p.FixedAxes(), full)
		return nil
	}
	if part == nil {
		return errors.Wrap(ErrInvalid, "part callback is required with a vector width")
	}
	tiling.TiledForEachVec(p.Dir(), p.MultiSize(), p.TilingRanges(), p.TileSizes, p.FixedAxes(), full, part, vec)
	return nil
}

// Walk visits every cell of the plan one at a time, ignoring VecSize.
func (p *Plan) Walk(fun func(tiling.IndexPosition)) error {
	if err := p.Validate(); err != nil {
		return err
	}
	tiling.TiledForEach(p.Dir(), p.MultiSize(), p.TilingRanges(), p.TileSizes, p.FixedAxes(), fun)
	return nil
}

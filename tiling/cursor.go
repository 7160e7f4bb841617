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
	"cmp"
	"fmt"
	"slices"
)

// Cursor is a flat index kept in sync with its coordinates. Next and Prev
// update the position with carry propagation instead of a full
// index-to-position conversion.
//
// Stepping past the last cell is allowed and leaves the cursor at the end
// position (TotalSize(), with Position()[0] == AxisSize(0)), which Prev
// undoes.
type Cursor struct {
	ms    MultiSize
	index int
	pos   []int
}

// NewCursor returns a cursor at the given flat index.
func NewCursor(ms MultiSize, index int) *Cursor {
	return &Cursor{ms: ms, index: index, pos: ms.IndexToPos(index)}
}

// CursorAt returns a cursor at the given coordinates.
func CursorAt(ms MultiSize, pos []int) *Cursor {
	return &Cursor{ms: ms, index: ms.PosToIndex(pos), pos: slices.Clone(pos)}
}

// Index returns the flat index.
func (c *Cursor) Index() int {
	return c.index
}

// Position returns a copy of the coordinates.
func (c *Cursor) Position() []int {
	return slices.Clone(c.pos)
}

// IndexPosition returns the cursor as an IndexPosition with its own copy of
// the coordinates.
func (c *Cursor) IndexPosition() IndexPosition {
	return IndexPosition{Index: c.index, Position: c.Position()}
}

// Valid reports whether the cursor is inside the index space.
func (c *Cursor) Valid() bool {
	return c.index >= 0 && c.index < c.ms.TotalSize()
}

// Next moves to the following cell in row-major order.
func (c *Cursor) Next() *Cursor {
	c.index++
	last := len(c.pos) - 1
	c.pos[last]++
	for dim := last; dim > 0 && c.pos[dim] == c.ms.sizes[dim]; dim-- {
		c.pos[dim] = 0
		c.pos[dim-1]++
	}
	return c
}

// Prev moves to the preceding cell in row-major order.
func (c *Cursor) Prev() *Cursor {
	c.index--
	last := len(c.pos) - 1
	c.pos[last]--
	for dim := last; dim > 0 && c.pos[dim] < 0; dim-- {
		c.pos[dim] = c.ms.sizes[dim] - 1
		c.pos[dim-1]--
	}
	return c
}

// Advance moves the cursor by off cells, which may be negative.
func (c *Cursor) Advance(off int) *Cursor {
	c.index += off
	c.ms.IndexToPosInto(c.index, c.pos)
	return c
}

// Clone returns an independent copy.
func (c *Cursor) Clone() *Cursor {
	return &Cursor{ms: c.ms, index: c.index, pos: slices.Clone(c.pos)}
}

// Equal reports whether both cursors point at the same cell.
//
// PRECONDITION: both cursors share the same axis sizes.
func (c *Cursor) Equal(other *Cursor) bool {
	c.checkSame(other)
	return c.index == other.index
}

// Compare orders cursors by flat index.
func (c *Cursor) Compare(other *Cursor) int {
	c.checkSame(other)
	return cmp.Compare(c.index, other.index)
}

// Distance returns c.Index() - other.Index().
func (c *Cursor) Distance(other *Cursor) int {
	c.checkSame(other)
	return c.index - other.index
}

func (c *Cursor) checkSame(other *Cursor) {
	if !c.ms.Equal(other.ms) {
		defect("cursors over different index spaces %v and %v", c.ms.sizes, other.ms.sizes)
	}
}

func (c *Cursor) String() string {
	return fmt.Sprintf("%d@%v", c.index, c.pos)
}

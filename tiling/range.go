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

	"github.com/samber/lo"
)

// Range is the half-open interval [Begin, End) of one axis.
type Range struct {
	Begin int
	End   int
}

// Len returns the number of coordinates in r, or 0 if r is empty.
func (r Range) Len() int {
	return max(r.End-r.Begin, 0)
}

// Empty reports whether r contains no coordinate.
func (r Range) Empty() bool {
	return r.End <= r.Begin
}

// Contains reports whether v lies in [Begin, End).
func (r Range) Contains(v int) bool {
	return r.Begin <= v && v < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Begin, r.End)
}

// RangesOf returns [0, size) for every axis size.
func RangesOf(sizes []int) []Range {
	return lo.Map(sizes, func(size int, _ int) Range {
		return Range{End: size}
	})
}

// Volume returns the number of cells in the Cartesian product of ranges.
func Volume(ranges []Range) int {
	return lo.Reduce(ranges, func(acc int, r Range, _ int) int {
		return acc * r.Len()
	}, 1)
}

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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDivCeil(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{0, 4, 0},
		{1, 4, 1},
		{4, 4, 1},
		{5, 4, 2},
		{12, 4, 3},
		{13, 1, 13},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DivCeil(tt.a, tt.b), "DivCeil(%d, %d)", tt.a, tt.b)
	}
}

func TestDivMod(t *testing.T) {
	quo, rem := DivMod(23, 4)
	assert.Equal(t, 5, quo)
	assert.Equal(t, 3, rem)
}

func TestPostfixProductInclusive(t *testing.T) {
	assert.Equal(t, []int{24, 8, 4, 1}, PostfixProductInclusive([]int{3, 2, 4}))
	assert.Equal(t, []int{1}, PostfixProductInclusive(nil))
	assert.Equal(t, []int{0, 0, 4, 1}, PostfixProductInclusive([]int{3, 0, 4}))
}

func TestPositionToIndex(t *testing.T) {
	strides := PostfixProductInclusive([]int{3, 2, 4})
	assert.Equal(t, 9, PositionToIndex([]int{1, 0, 1}, strides))
	assert.Equal(t, 23, PositionToIndex([]int{2, 1, 3}, strides))
	assert.Equal(t, 0, PositionToIndex(nil, []int{1}))
	assert.Panics(t, func() { PositionToIndex([]int{1, 2, 3}, strides[1:]) })
}

func TestIndexToPosition(t *testing.T) {
	sizes := []int{3, 2, 4}
	assert.Equal(t, []int{0, 0, 1}, IndexToPosition(1, sizes))
	assert.Equal(t, []int{0, 1, 2}, IndexToPosition(6, sizes))
	assert.Equal(t, []int{2, 1, 3}, IndexToPosition(23, sizes))
	// The leading coordinate is not wrapped.
	assert.Equal(t, []int{3, 0, 0}, IndexToPosition(24, sizes))
	assert.Equal(t, []int{42}, IndexToPosition(42, []int{7}))
	assert.Panics(t, func() { IndexToPosition(0, nil) })
}

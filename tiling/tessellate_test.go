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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTessellate(t *testing.T) {
	tests := []struct {
		tileNum int
		box     []int
		want    []int
	}{
		{4, []int{8, 8}, []int{2, 2}},
		{4, []int{16, 4}, []int{4, 1}},
		{4, []int{4, 16}, []int{1, 4}},
		{8, []int{10, 10, 10}, []int{2, 2, 2}},
		{7, []int{5}, []int{7}},
		{1, []int{3, 9, 2}, []int{1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.tileNum, tt.box), func(t *testing.T) {
			assert.Equal(t, tt.want, Tessellate(tt.tileNum, tt.box))
		})
	}
}

func TestTessellateProduct(t *testing.T) {
	for tileNum := 1; tileNum <= 24; tileNum++ {
		counts := Tessellate(tileNum, []int{13, 7, 29})
		require.Len(t, counts, 3)
		assert.Equal(t, tileNum, counts[0]*counts[1]*counts[2], "tileNum=%d counts=%v", tileNum, counts)
	}
}

func TestTessellateDefects(t *testing.T) {
	assert.Nil(t, Tessellate(3, nil))
	assert.Panics(t, func() { Tessellate(0, []int{4}) })
	assert.Panics(t, func() { Tessellate(2, []int{4, 0}) })
}

func TestTileSizesFor(t *testing.T) {
	assert.Equal(t, []int{4, 4}, TileSizesFor([]int{16, 4}, 4))
	assert.Equal(t, []int{5, 5}, TileSizesFor([]int{9, 9}, 4))
}

func TestRoundTileSizes(t *testing.T) {
	assert.Equal(t, []int{8, 8, 16}, RoundTileSizes([]int{1, 8, 9}, 8))
	assert.Panics(t, func() { RoundTileSizes([]int{4}, 0) })
}

func TestDefaultVecSize(t *testing.T) {
	assert.GreaterOrEqual(t, DefaultVecSize(4), 1)
	assert.Equal(t, DefaultVecSize(1), 4*DefaultVecSize(4))
}

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

package dispatch

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentDispatch(t *testing.T) {
	assert.Equal(t, CurrentLevel().String(), CurrentName())
	assert.Contains(t, []int{16, 32, 64}, CurrentWidth())

	switch runtime.GOARCH {
	case "amd64":
		if !NoSimdEnv() {
			assert.Contains(t, []Level{LevelSSE2, LevelAVX2, LevelAVX512}, CurrentLevel())
		}
	case "arm64":
		assert.Equal(t, 16, CurrentWidth())
	}
}

func TestLanes(t *testing.T) {
	w := CurrentWidth()
	for _, elemBytes := range []int{1, 2, 4, 8} {
		assert.Equal(t, w/elemBytes, Lanes(elemBytes), "elemBytes=%d", elemBytes)
	}
	assert.Equal(t, 1, Lanes(w*2))
	require.Panics(t, func() { Lanes(0) })
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"FALSE", false},
		{"1", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TILING_NO_SIMD", tt.value)
			assert.Equal(t, tt.want, NoSimdEnv())
		})
	}
}

func TestScalarMode(t *testing.T) {
	level, width, name := currentLevel, currentWidth, currentName
	t.Cleanup(func() {
		currentLevel, currentWidth, currentName = level, width, name
	})

	setScalarMode()
	assert.Equal(t, LevelScalar, CurrentLevel())
	assert.Equal(t, 16, CurrentWidth())
	assert.Equal(t, "scalar", CurrentName())
	assert.Equal(t, 4, Lanes(4))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "avx512", LevelAVX512.String())
	assert.Equal(t, "neon", LevelNEON.String())
	assert.Equal(t, "Level(42)", Level(42).String())
}

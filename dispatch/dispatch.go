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

// Package dispatch reports the SIMD capabilities of the running CPU in the
// terms the tiling engine needs: a vector width in bytes and the number of
// lanes that width holds for a given element size.
//
// Detection runs once at init. Setting TILING_NO_SIMD to any value other
// than "", "0" or "false" forces scalar mode.
package dispatch

import (
	"fmt"
	"os"
	"strings"
)

// Level identifies the SIMD instruction set selected at init.
type Level int

const (
	LevelScalar Level = iota
	LevelSSE2
	LevelAVX2
	LevelAVX512
	LevelNEON
	LevelSVE
)

func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	case LevelSVE:
		return "sve"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

var (
	currentLevel Level
	currentWidth int
	currentName  string
)

// CurrentLevel returns the dispatch level selected at init.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the vector width in bytes.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the short name of the selected level, e.g. "avx2".
func CurrentName() string {
	return currentName
}

// NoSimdEnv reports whether SIMD detection is disabled via TILING_NO_SIMD.
func NoSimdEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TILING_NO_SIMD"))) {
	case "", "0", "false":
		return false
	default:
		return true
	}
}

// Lanes returns how many elements of elemBytes bytes fit in one vector of
// the current width. It never returns less than 1.
//
// PRECONDITION: elemBytes > 0.
func Lanes(elemBytes int) int {
	if elemBytes <= 0 {
		panic(fmt.Sprintf("dispatch: element size must be positive, got %d", elemBytes))
	}
	return max(currentWidth/elemBytes, 1)
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}

func setLevel(level Level, width int) {
	currentLevel = level
	currentWidth = width
	currentName = level.String()
}

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
	"strings"

	"github.com/pkg/errors"
)

// Direction selects the order in which tiles and cells are produced.
// It never changes which cells are visited.
type Direction uint8

const (
	// Forward visits tiles and cells in increasing coordinate order.
	Forward Direction = iota
	// Backward visits tiles and cells in decreasing coordinate order,
	// the exact reverse of Forward.
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ParseDirection parses "forward" or "backward", case-insensitively.
// The empty string parses as Forward.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "forward", "fwd":
		return Forward, nil
	case "backward", "bwd":
		return Backward, nil
	default:
		return Forward, errors.Errorf("tiling: unknown direction %q", s)
	}
}

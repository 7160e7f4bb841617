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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-tiling/tiling/plan"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "tileplan", cmd.Use)

	for _, name := range []string{"tiles", "cells", "convert", "cpuinfo"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "--format", "xml", "cpuinfo")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestTilesText(t *testing.T) {
	out, err := execute(t, "tiles", "--sizes", "6", "--tiles", "4")
	require.NoError(t, err)
	assert.Equal(t, "full [[0,4)] 4\npart [[4,6)] 2\n2 tiles (1 full, 1 part)\n", out)
}

func TestTilesJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "tiles", "--sizes", "16,8,12", "--tiles", "4,4,4")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   TilesResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "forward", resp.Data.Direction)
	assert.Equal(t, 24, resp.Data.Full)
	assert.Zero(t, resp.Data.Part)
	require.Len(t, resp.Data.Tiles, 24)
	assert.Equal(t, [][2]int{{4, 8}, {4, 8}, {0, 4}}, resp.Data.Tiles[9].Ranges)
}

func TestTilesPlanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sizes: [6]\ntile_sizes: [4]\n"), 0o644))

	out, err := execute(t, "tiles", "--plan", path, "--direction", "backward")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "part [[4,6)] 2", lines[0])
	assert.Equal(t, "full [[0,4)] 4", lines[1])
}

func TestTilesInvalidPlan(t *testing.T) {
	_, err := execute(t, "tiles", "--sizes", "4", "--tiles", "0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.True(t, errors.Is(err, plan.ErrInvalid))

	out, err := execute(t, "--format", "json", "tiles", "--sizes", "4,4", "--tiles", "2,2", "--fixed", "1=0", "--vec", "2")
	require.Error(t, err)
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInvalidPlan, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "innermost")

	_, err = execute(t, "tiles")
	assert.ErrorContains(t, err, "--plan or --sizes")
}

func TestCells(t *testing.T) {
	out, err := execute(t, "cells", "--sizes", "2,3", "--tiles", "2,2")
	require.NoError(t, err)
	assert.Equal(t, "0 [0 0]\n1 [0 1]\n3 [1 0]\n4 [1 1]\n2 [0 2]\n5 [1 2]\n", out)
}

func TestCellsBackward(t *testing.T) {
	out, err := execute(t, "cells", "--sizes", "2,3", "--tiles", "2,2", "--direction", "backward")
	require.NoError(t, err)
	assert.Equal(t, "5 [1 2]\n2 [0 2]\n4 [1 1]\n3 [1 0]\n1 [0 1]\n0 [0 0]\n", out)
}

func TestCellsLimit(t *testing.T) {
	out, err := execute(t, "cells", "--sizes", "2,3", "--tiles", "2,2", "--limit", "2")
	require.NoError(t, err)
	assert.Equal(t, "0 [0 0]\n1 [0 1]\n... truncated after 2\n", out)

	_, err = execute(t, "cells", "--sizes", "2,3", "--limit", "-1")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCellsVecLimit(t *testing.T) {
	out, err := execute(t, "cells", "--sizes", "2,6", "--tiles", "4,4", "--vec", "4", "--limit", "3")
	require.NoError(t, err)
	assert.Equal(t, "0 [0 0] x4\n6 [1 0] x4\n4 [0 4] x2 part\n... truncated after 3\n", out)
}

func TestCellsVec(t *testing.T) {
	out, err := execute(t, "cells", "--sizes", "2,6", "--tiles", "4,4", "--vec", "4")
	require.NoError(t, err)
	assert.Equal(t, "0 [0 0] x4\n6 [1 0] x4\n4 [0 4] x2 part\n10 [1 4] x2 part\n", out)
}

func TestCellsVecDefaultTiles(t *testing.T) {
	// Whole-axis tiles {3,5} are rounded up to {4,8} for --vec 4.
	out, err := execute(t, "cells", "--sizes", "3,5", "--vec", "4")
	require.NoError(t, err)
	assert.Equal(t, "0 [0 0] x4\n4 [0 4] x1 part\n5 [1 0] x4\n9 [1 4] x1 part\n10 [2 0] x4\n14 [2 4] x1 part\n", out)

	_, err = execute(t, "cells", "--sizes", "3,5", "--tiles", "3,5", "--vec", "4")
	assert.ErrorContains(t, err, "not a multiple of vec_size 4")
}

func TestTilesTileCount(t *testing.T) {
	out, err := execute(t, "tiles", "--sizes", "8,8", "--tile-count", "4")
	require.NoError(t, err)
	assert.Equal(t, "full [[0,4) [0,4)] 16\nfull [[0,4) [4,8)] 16\nfull [[4,8) [0,4)] 16\nfull [[4,8) [4,8)] 16\n4 tiles (4 full, 0 part)\n", out)

	out, err = execute(t, "tiles", "--sizes", "16,4", "--tile-count", "4", "--vec", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "4 tiles (4 full, 0 part)")

	_, err = execute(t, "tiles", "--sizes", "8,8", "--tile-count", "-1")
	assert.ErrorContains(t, err, "want positive")

	_, err = execute(t, "tiles", "--sizes", "8,8", "--tiles", "4,4", "--tile-count", "4")
	assert.Error(t, err)
}

func TestCellsFixedAndRanges(t *testing.T) {
	out, err := execute(t, "cells", "--sizes", "3,4", "--tiles", "1,2", "--fixed", "0=1", "--ranges", "0:3,1:3")
	require.NoError(t, err)
	assert.Equal(t, "5 [1 1]\n6 [1 2]\n", out)
}

func TestCellsJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "cells", "--sizes", "2,6", "--tiles", "4,4", "--vec", "4")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   CellsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 4, resp.Data.VecSize)
	require.Len(t, resp.Data.Cells, 4)
	assert.Equal(t, CellRecord{Index: 4, Position: []int{0, 4}, Width: 2, Part: true}, resp.Data.Cells[2])
}

func TestConvert(t *testing.T) {
	out, err := execute(t, "convert", "--sizes", "3,4,5", "--index", "33")
	require.NoError(t, err)
	assert.Equal(t, "33 [1 2 3]\n", out)

	out, err = execute(t, "convert", "--sizes", "3,4,5", "--pos", "1,2,3")
	require.NoError(t, err)
	assert.Equal(t, "33 [1 2 3]\n", out)

	out, err = execute(t, "--format", "json", "convert", "--sizes", "3,4,5", "--index", "0")
	require.NoError(t, err)
	var resp struct {
		Data ConvertResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, []int{60, 20, 5, 1}, resp.Data.Strides)
	assert.Equal(t, []int{0, 0, 0}, resp.Data.Position)
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"index range", []string{"--sizes", "3,4", "--index", "12"}, "outside [0,12)"},
		{"pos axes", []string{"--sizes", "3,4", "--pos", "1"}, "1 axes, want 2"},
		{"pos range", []string{"--sizes", "3,4", "--pos", "1,4"}, "coordinate 4"},
		{"zero size", []string{"--sizes", "3,0", "--index", "0"}, "size 0"},
		{"no target", []string{"--sizes", "3,4"}, "index pos"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"convert"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCPUInfo(t *testing.T) {
	out, err := execute(t, "cpuinfo")
	require.NoError(t, err)
	assert.Contains(t, out, "Dispatch\n")

	out, err = execute(t, "--format", "json", "cpuinfo")
	require.NoError(t, err)
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("boom")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))
	wrapped := errors.Wrap(WrapExitError(ExitCommandError, "bad", errors.New("cause")), "outer")
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
	assert.Equal(t, "outer: bad: cause", wrapped.Error())
}

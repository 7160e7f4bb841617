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
	"io"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-tiling/internal/cpuinfo"
)

// NewCPUInfoCommand creates the cpuinfo command.
func NewCPUInfoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "Print the detected SIMD level and vector widths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			s := cpuinfo.Collect()
			return formatter.Emit(s, func(w io.Writer) error {
				return cpuinfo.Report(w, s)
			})
		},
	}
}

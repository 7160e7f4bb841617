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

import "github.com/pkg/errors"

// defect panics with a configuration error. Configuration errors are caller
// bugs (axis count mismatches, bad vector widths), not runtime conditions.
func defect(format string, args ...any) {
	panic(errors.Errorf("tiling: "+format, args...))
}

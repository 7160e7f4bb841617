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

// Package cpuinfo collects the CPU features detected by Go and the SIMD
// dispatch level derived from them, for diagnostics.
package cpuinfo

import (
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"golang.org/x/sys/cpu"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-tiling/dispatch"
)

// ElemSizes are the element sizes, in bytes, reported in Summary.Lanes.
var ElemSizes = []int{1, 2, 4, 8}

// Feature is one CPU feature flag.
type Feature struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
	Note    string `json:"note,omitempty"`
}

// Lanes is the vector lane count for one element size.
type Lanes struct {
	ElemBytes int `json:"elem_bytes"`
	Lanes     int `json:"lanes"`
}

// Summary describes the machine as seen by the dispatcher.
type Summary struct {
	GOOS     string    `json:"goos"`
	GOARCH   string    `json:"goarch"`
	NumCPU   int       `json:"num_cpu"`
	Level    string    `json:"level"`
	Width    int       `json:"width_bytes"`
	NoSimd   bool      `json:"no_simd"`
	Lanes    []Lanes   `json:"lanes"`
	Features []Feature `json:"features"`
}

// Collect gathers the Summary of the running process.
func Collect() Summary {
	s := Summary{
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
		NumCPU: runtime.NumCPU(),
		Level:  dispatch.CurrentName(),
		Width:  dispatch.CurrentWidth(),
		NoSimd: dispatch.NoSimdEnv(),
	}
	for _, elem := range ElemSizes {
		s.Lanes = append(s.Lanes, Lanes{ElemBytes: elem, Lanes: dispatch.Lanes(elem)})
	}
	switch runtime.GOARCH {
	case "arm64":
		s.Features = arm64Features()
	case "amd64":
		s.Features = amd64Features()
	}
	return s
}

func arm64Features() []Feature {
	return []Feature{
		{"ASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
		{"FP", cpu.ARM64.HasFP, "Floating point"},
		{"FPHP", cpu.ARM64.HasFPHP, "FP16 scalar, ARMv8.2-A"},
		{"ASIMDHP", cpu.ARM64.HasASIMDHP, "FP16 NEON, ARMv8.2-A"},
		{"ASIMDFHM", cpu.ARM64.HasASIMDFHM, "FP16 FMA, ARMv8.4-A"},
		{"SVE", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
		{"SVE2", cpu.ARM64.HasSVE2, ""},
		{"ATOMICS", cpu.ARM64.HasATOMICS, "Large System Extensions"},
	}
}

func amd64Features() []Feature {
	return []Feature{
		{"SSE2", cpu.X86.HasSSE2, ""},
		{"SSE41", cpu.X86.HasSSE41, ""},
		{"SSE42", cpu.X86.HasSSE42, ""},
		{"AVX", cpu.X86.HasAVX, ""},
		{"AVX2", cpu.X86.HasAVX2, ""},
		{"FMA", cpu.X86.HasFMA, ""},
		{"AVX512F", cpu.X86.HasAVX512F, ""},
		{"AVX512BW", cpu.X86.HasAVX512BW, ""},
		{"AVX512VL", cpu.X86.HasAVX512VL, ""},
	}
}

// Report writes s to w as aligned text sections.
func Report(w io.Writer, s Summary) error {
	title := cases.Title(language.English)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	section := func(name string) {
		fmt.Fprintf(tw, "%s\n", title.String(name))
	}
	section("runtime")
	fmt.Fprintf(tw, "  GOOS\t%s\n", s.GOOS)
	fmt.Fprintf(tw, "  GOARCH\t%s\n", s.GOARCH)
	fmt.Fprintf(tw, "  NumCPU\t%d\n", s.NumCPU)

	section("dispatch")
	fmt.Fprintf(tw, "  level\t%s\n", s.Level)
	fmt.Fprintf(tw, "  width\t%d bytes\n", s.Width)
	if s.NoSimd {
		fmt.Fprintf(tw, "  TILING_NO_SIMD\tset\n")
	}

	section("vector lanes")
	for _, l := range s.Lanes {
		fmt.Fprintf(tw, "  %d-byte elements\t%d\n", l.ElemBytes, l.Lanes)
	}

	if len(s.Features) > 0 {
		section(s.GOARCH + " features")
		for _, f := range s.Features {
			if f.Note != "" {
				fmt.Fprintf(tw, "  %s\t%v\t(%s)\n", f.Name, f.Present, f.Note)
			} else {
				fmt.Fprintf(tw, "  %s\t%v\n", f.Name, f.Present)
			}
		}
	}
	return tw.Flush()
}

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

//go:build amd64

package qsort

import (
	"strings"

	"golang.org/x/sys/cpu"
)

func init() {
	features := []string{"amd64"}
	if cpu.X86.HasAVX512F {
		features = append(features, "avx512f")
	}
	if cpu.X86.HasAVX2 {
		features = append(features, "avx2")
	}
	if cpu.X86.HasSSE42 {
		features = append(features, "sse4.2")
	}
	if cpu.X86.HasPOPCNT {
		features = append(features, "popcnt")
	}
	currentName = strings.Join(features, " ")
}

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

package qsort

import (
	"os"
	"runtime"
	"strconv"
)

// currentName is the human-readable description of the CPU features seen at
// startup. Set by init() in parallelism_*.go files.
var currentName string

// CurrentName returns a short description of the CPU, for example
// "amd64 avx2 popcnt" or "arm64 asimd atomics".
func CurrentName() string {
	return currentName
}

// MaxWorkers returns the number of workers a pool should use: GOMAXPROCS,
// lowered by the QSORT_MAX_WORKERS environment variable when that is set to a
// smaller positive value. The result is at least 1.
func MaxWorkers() int {
	n := runtime.GOMAXPROCS(0)
	if limit, ok := MaxWorkersEnv(); ok && limit < n {
		n = limit
	}
	return max(n, 1)
}

// MaxWorkersEnv reads the QSORT_MAX_WORKERS environment variable.
// It reports false when the variable is unset or not a positive integer.
func MaxWorkersEnv() (int, bool) {
	val := os.Getenv("QSORT_MAX_WORKERS")
	if val == "" {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

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
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentName(t *testing.T) {
	assert.Contains(t, CurrentName(), runtime.GOARCH)
}

func TestMaxWorkers(t *testing.T) {
	t.Setenv("QSORT_MAX_WORKERS", "")
	assert.Equal(t, max(runtime.GOMAXPROCS(0), 1), MaxWorkers())

	t.Setenv("QSORT_MAX_WORKERS", "1")
	assert.Equal(t, 1, MaxWorkers())

	// The variable only lowers the limit.
	t.Setenv("QSORT_MAX_WORKERS", "100000")
	assert.Equal(t, runtime.GOMAXPROCS(0), MaxWorkers())
}

func TestMaxWorkersEnv(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want int
		ok   bool
	}{
		{"", 0, false},
		{"8", 8, true},
		{"0", 0, false},
		{"-2", 0, false},
		{"lots", 0, false},
	} {
		t.Setenv("QSORT_MAX_WORKERS", tc.val)
		n, ok := MaxWorkersEnv()
		assert.Equal(t, tc.ok, ok, "QSORT_MAX_WORKERS=%q", tc.val)
		assert.Equal(t, tc.want, n, "QSORT_MAX_WORKERS=%q", tc.val)
	}
}

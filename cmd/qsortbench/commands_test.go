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

package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-qsort/qsort"
	"github.com/ajroetker/go-qsort/qsort/contrib/bench"
	"github.com/ajroetker/go-qsort/qsort/contrib/dataset"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.Execute()
	return out.String(), err
}

func TestSortCommand(t *testing.T) {
	out, err := run(t, "sort", "--size", "20000", "--cutoff", "50", "--workers", "4", "--seed", "9", "--shape", "few", "--runs", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Sorting 20000 few values (cutoff 50,")
	assert.Contains(t, out, "Timing sequential...")
	assert.Contains(t, out, "Timing parallel...")
	assert.Contains(t, out, "over 2 runs")
	assert.Contains(t, out, "Speedup:")
}

func TestSortCommandErrors(t *testing.T) {
	_, err := run(t, "sort", "--size", "10", "--shape", "zigzag")
	require.ErrorIs(t, err, dataset.ErrUnknownShape)

	_, err = run(t, "sort", "--size", "10", "--cutoff=-1")
	require.ErrorIs(t, err, bench.ErrInvalidConfig)

	_, err = run(t, "sort", "extra")
	require.Error(t, err)
}

func TestPiCommand(t *testing.T) {
	out, err := run(t, "pi", "--samples", "100000", "--workers", "2", "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "π = 3.")
	assert.Contains(t, out, "(sequential, error")
	assert.Contains(t, out, "(parallel, error")
}

func TestInfoCommand(t *testing.T) {
	out, err := run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "CPU: "+qsort.CurrentName())
	assert.Contains(t, out, "Max workers:")
}

func TestWriteSortReportSingleRun(t *testing.T) {
	var out bytes.Buffer
	writeSortReport(&out, bench.SortReport{
		Config:     bench.Config{Size: 6, Cutoff: 1, Shape: dataset.ShapeRandom},
		CPU:        "test",
		Workers:    2,
		Sequential: bench.Timing{Runs: []time.Duration{2 * time.Second}},
		Parallel:   bench.Timing{Runs: []time.Duration{time.Second}},
		Stats:      qsort.Stats{Spawned: 3, Inlined: 1},
	})
	assert.Equal(t, `Sorting 6 random values (cutoff 1, 2 workers, test)

Timing sequential...
Took 2.000000 seconds

Timing parallel...
Took 1.000000 seconds

Speedup: 2.00x (3 tasks spawned, 1 run inline)
`, out.String())
}

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

// Package bench times the sequential and parallel sorters against each other
// on the same input, and the sequential and parallel π estimators.
package bench

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ajroetker/go-qsort/qsort"
	"github.com/ajroetker/go-qsort/qsort/contrib/dataset"
)

const (
	// DefaultSize is the number of elements sorted per run.
	DefaultSize = 1000000

	// DefaultSamples is the number of points tossed per π estimate.
	DefaultSamples = 10000000
)

var (
	// ErrInvalidConfig is returned for configurations that cannot be run.
	ErrInvalidConfig = errors.New("bench: invalid config")

	// ErrNotSorted is returned when verification finds an unsorted output.
	ErrNotSorted = errors.New("bench: output not sorted")

	// ErrMismatch is returned when the sequential and parallel outputs differ.
	ErrMismatch = errors.New("bench: sequential and parallel outputs differ")
)

// Config describes a sort benchmark.
type Config struct {
	// Size is the number of elements to sort.
	Size int
	// Cutoff is the fan-out cutoff handed to qsort.Parallel.
	Cutoff int
	// Workers is the pool size; it is capped at qsort.MaxWorkers().
	// Values <= 0 use qsort.MaxWorkers().
	Workers int
	// Seed seeds the input generator.
	Seed uint64
	// Shape selects the input distribution.
	Shape dataset.Shape
	// Runs is how many times each sorter runs on a fresh copy of the input.
	Runs int
	// Verify checks after every run that both outputs are sorted and equal.
	Verify bool
}

// DefaultConfig returns the configuration of the original benchmark: one
// million random values, a cutoff of 10000 (or QSORT_CUTOFF), every usable
// CPU, and a time-based seed.
func DefaultConfig() Config {
	cutoff := qsort.DefaultCutoff
	if c, ok := CutoffEnv(); ok {
		cutoff = c
	}
	return Config{
		Size:    DefaultSize,
		Cutoff:  cutoff,
		Workers: qsort.MaxWorkers(),
		Seed:    uint64(time.Now().UnixNano()),
		Shape:   dataset.ShapeRandom,
		Runs:    1,
		Verify:  true,
	}
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	switch {
	case c.Size < 0:
		return fmt.Errorf("%w: size %d", ErrInvalidConfig, c.Size)
	case c.Cutoff < 0:
		return fmt.Errorf("%w: cutoff %d", ErrInvalidConfig, c.Cutoff)
	case c.Runs < 1:
		return fmt.Errorf("%w: runs %d", ErrInvalidConfig, c.Runs)
	}
	return nil
}

// workers returns the pool size to use for c.
func (c Config) workers() int {
	limit := qsort.MaxWorkers()
	if c.Workers <= 0 {
		return limit
	}
	return min(c.Workers, limit)
}

// CutoffEnv reads the QSORT_CUTOFF environment variable.
// It reports false when the variable is unset or not a non-negative integer.
func CutoffEnv() (int, bool) {
	val := os.Getenv("QSORT_CUTOFF")
	if val == "" {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// PiConfig describes a π estimation benchmark.
type PiConfig struct {
	Samples int64
	// Workers is the number of concurrent trials; values <= 0 use
	// qsort.MaxWorkers().
	Workers int
	Seed    uint64
}

// DefaultPiConfig returns ten million samples over every usable CPU with a
// time-based seed.
func DefaultPiConfig() PiConfig {
	return PiConfig{
		Samples: DefaultSamples,
		Workers: qsort.MaxWorkers(),
		Seed:    uint64(time.Now().UnixNano()),
	}
}

// Validate reports the first problem with c.
func (c PiConfig) Validate() error {
	if c.Samples < 1 {
		return fmt.Errorf("%w: samples %d", ErrInvalidConfig, c.Samples)
	}
	return nil
}

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

package bench

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/samber/lo"

	"github.com/ajroetker/go-qsort/qsort"
	"github.com/ajroetker/go-qsort/qsort/contrib/dataset"
	"github.com/ajroetker/go-qsort/qsort/contrib/montecarlo"
	"github.com/ajroetker/go-qsort/qsort/contrib/workerpool"
)

// verifyBatch is the number of elements compared per work-stealing grab.
const verifyBatch = 1 << 14

// Timing holds the wall-clock duration of every run of one sorter.
type Timing struct {
	Runs []time.Duration
}

// Best returns the fastest run.
func (t Timing) Best() time.Duration { return lo.Min(t.Runs) }

// Worst returns the slowest run.
func (t Timing) Worst() time.Duration { return lo.Max(t.Runs) }

// Mean returns the average run.
func (t Timing) Mean() time.Duration {
	if len(t.Runs) == 0 {
		return 0
	}
	return lo.Sum(t.Runs) / time.Duration(len(t.Runs))
}

// SortReport is the result of RunSort.
type SortReport struct {
	Config  Config
	CPU     string
	Workers int

	Sequential Timing
	Parallel   Timing

	// Stats describes the task tree of the last parallel run.
	Stats qsort.Stats
}

// Speedup returns the best sequential time divided by the best parallel time.
func (r SortReport) Speedup() float64 {
	best := r.Parallel.Best()
	if best <= 0 {
		return 0
	}
	return float64(r.Sequential.Best()) / float64(best)
}

// RunSort generates the input described by cfg once, then sorts a fresh copy
// of it with qsort.Sequential and with qsort.Parallel cfg.Runs times each.
// The pool used for generation, parallel sorting and verification is created
// here and closed before returning.
//
// ctx is checked between runs; a sort in progress is never interrupted.
func RunSort(ctx context.Context, cfg Config) (SortReport, error) {
	if err := cfg.Validate(); err != nil {
		return SortReport{}, err
	}

	workers := cfg.workers()
	pool := workerpool.New(workers)
	defer pool.Close()

	input, err := dataset.Generate(pool, cfg.Shape, cfg.Size, cfg.Seed)
	if err != nil {
		return SortReport{}, err
	}

	report := SortReport{
		Config:  cfg,
		CPU:     qsort.CurrentName(),
		Workers: workers,
	}
	seq := make([]int64, len(input))
	par := make([]int64, len(input))
	for run := range cfg.Runs {
		if err := ctx.Err(); err != nil {
			return SortReport{}, err
		}

		copy(seq, input)
		start := time.Now()
		qsort.Sequential(seq)
		report.Sequential.Runs = append(report.Sequential.Runs, time.Since(start))

		copy(par, input)
		start = time.Now()
		stats, err := qsort.ParallelWithStats(pool, par, cfg.Cutoff)
		if err != nil {
			return SortReport{}, err
		}
		report.Parallel.Runs = append(report.Parallel.Runs, time.Since(start))
		report.Stats = stats

		if cfg.Verify {
			if err := verify(pool, seq, par); err != nil {
				return SortReport{}, fmt.Errorf("run %d: %w", run, err)
			}
		}
	}
	return report, nil
}

// verify checks that seq and par are both sorted and identical.
func verify(pool *workerpool.Pool, seq, par []int64) error {
	if i := firstInversion(pool, seq); i >= 0 {
		return fmt.Errorf("%w: sequential output at index %d", ErrNotSorted, i)
	}
	if i := firstInversion(pool, par); i >= 0 {
		return fmt.Errorf("%w: parallel output at index %d", ErrNotSorted, i)
	}
	if len(seq) != len(par) {
		return fmt.Errorf("%w: lengths %d and %d", ErrMismatch, len(seq), len(par))
	}

	var mismatch atomic.Int64
	mismatch.Store(-1)
	pool.ParallelForAtomicBatched(len(seq), verifyBatch, func(start, end int) {
		for i := start; i < end; i++ {
			if seq[i] != par[i] {
				mismatch.CompareAndSwap(-1, int64(i))
				return
			}
		}
	})
	if i := mismatch.Load(); i >= 0 {
		return fmt.Errorf("%w: index %d holds %d and %d", ErrMismatch, i, seq[i], par[i])
	}
	return nil
}

// firstInversion returns an index i with data[i+1] < data[i], or -1.
func firstInversion(pool *workerpool.Pool, data []int64) int {
	var found atomic.Int64
	found.Store(-1)
	pool.ParallelFor(len(data)-1, func(start, end int) {
		for i := start; i < end; i++ {
			if data[i+1] < data[i] {
				found.CompareAndSwap(-1, int64(i))
				return
			}
		}
	})
	return int(found.Load())
}

// PiReport is the result of RunPi.
type PiReport struct {
	Config PiConfig

	Sequential     float64
	SequentialTime time.Duration
	Parallel       float64
	ParallelTime   time.Duration
}

// SequentialError returns the absolute error of the sequential estimate.
func (r PiReport) SequentialError() float64 { return math.Abs(r.Sequential - math.Pi) }

// ParallelError returns the absolute error of the parallel estimate.
func (r PiReport) ParallelError() float64 { return math.Abs(r.Parallel - math.Pi) }

// RunPi times montecarlo.EstimatePiSequential and montecarlo.EstimatePi with
// the same sample count.
func RunPi(ctx context.Context, cfg PiConfig) (PiReport, error) {
	if err := cfg.Validate(); err != nil {
		return PiReport{}, err
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = qsort.MaxWorkers()
	}

	report := PiReport{Config: cfg}

	start := time.Now()
	pi, err := montecarlo.EstimatePiSequential(cfg.Samples, cfg.Seed)
	if err != nil {
		return PiReport{}, err
	}
	report.Sequential, report.SequentialTime = pi, time.Since(start)

	start = time.Now()
	pi, err = montecarlo.EstimatePi(ctx, cfg.Samples, workers, cfg.Seed)
	if err != nil {
		return PiReport{}, err
	}
	report.Parallel, report.ParallelTime = pi, time.Since(start)

	return report, nil
}

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

import "github.com/ajroetker/go-qsort/qsort/contrib/workerpool"

// DefaultCutoff is the range size, in elements, below which Parallel stops
// fanning out and recurses on the current goroutine.
const DefaultCutoff = 10000

// Stats describes the task tree of one parallel sort.
type Stats struct {
	// Spawned is the number of subranges handed to pool workers.
	Spawned int64

	// Inlined is the number of subranges that were due to fan out but ran
	// on the submitting goroutine because the pool could not take them.
	Inlined int64
}

// Parallel sorts data in place using pool. It returns once the whole slice is
// sorted.
//
// A range of right-left < cutoff elements is sorted inline; larger ranges
// submit both halves of their partition to the pool. A cutoff of 0 or 1
// fans out at every level. A nil pool sorts everything on the calling
// goroutine.
//
// It returns an error wrapping ErrInvalidCutoff, before modifying data, for a
// negative cutoff.
func Parallel[T Integers](pool *workerpool.Pool, data []T, cutoff int) error {
	_, err := ParallelWithStats(pool, data, cutoff)
	return err
}

// ParallelWithStats is like Parallel and also reports how the work was split.
func ParallelWithStats[T Integers](pool *workerpool.Pool, data []T, cutoff int) (Stats, error) {
	if err := checkCutoff(cutoff); err != nil {
		return Stats{}, err
	}
	if len(data) < 2 {
		return Stats{}, nil
	}
	return parallelRange(pool, data, 0, len(data)-1, cutoff), nil
}

// ParallelRange sorts data[left:right+1] in place using pool.
//
// No other goroutine may access data[left:right+1] until ParallelRange
// returns; tasks inside the call only ever touch disjoint subranges of it.
func ParallelRange[T Integers](pool *workerpool.Pool, data []T, left, right, cutoff int) error {
	if err := checkRange(len(data), left, right); err != nil {
		return err
	}
	if err := checkCutoff(cutoff); err != nil {
		return err
	}
	parallelRange(pool, data, left, right, cutoff)
	return nil
}

func parallelRange[T Integers](pool *workerpool.Pool, data []T, left, right, cutoff int) Stats {
	g := pool.NewGroup()
	parallel(g, data, left, right, cutoff)
	g.Wait()
	return Stats{Spawned: g.Spawned(), Inlined: g.Inlined()}
}

// parallel partitions [left, right] and then either recurses inline or
// submits both halves to g. The partition completes before either half is
// submitted, so children always see the partitioned slice.
func parallel[T Integers](g *workerpool.Group, data []T, left, right, cutoff int) {
	i, j := partition(data, left, right)

	if right-left < cutoff {
		if left < j {
			sequential(data, left, j)
		}
		if i < right {
			sequential(data, i, right)
		}
		return
	}

	if left < j {
		g.Go(func() { parallel(g, data, left, j, cutoff) })
	}
	if i < right {
		g.Go(func() { parallel(g, data, i, right, cutoff) })
	}
}

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

// Package qsort provides in-place quicksort of integer slices, in a
// sequential form and a parallel form with adaptive task fan-out.
//
// Both sorters share the same Hoare partition step: the pivot is the value of
// the middle element of the range, two cursors move towards each other and
// swap out-of-place pairs, and the range splits into two disjoint halves.
// The pivot value may end up in either half.
//
// # Parallel sorting
//
// Parallel decides per recursive call whether to keep the work on the current
// goroutine or hand both halves to a worker pool:
//
//   - ranges spanning fewer than cutoff elements recurse inline;
//   - larger ranges submit each non-empty half as a task of a
//     workerpool.Group, and those tasks may fan out again.
//
// The call returns once the whole task tree has finished. Concurrent tasks
// always own disjoint index ranges, so the slice is never locked. When the
// pool cannot accept a task it runs inline instead; work is never dropped.
//
// # Example Usage
//
//	import (
//	    "github.com/ajroetker/go-qsort/qsort"
//	    "github.com/ajroetker/go-qsort/qsort/contrib/workerpool"
//	)
//
//	func SortAll(data []int64) error {
//	    pool := workerpool.New(qsort.MaxWorkers())
//	    defer pool.Close()
//	    return qsort.Parallel(pool, data, qsort.DefaultCutoff)
//	}
//
// # Errors
//
// Invalid ranges and negative cutoffs are programmer errors. They are reported
// as errors wrapping ErrInvalidRange or ErrInvalidCutoff before the slice is
// modified. The package never logs.
package qsort

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

// Package montecarlo estimates π by tossing random points into the square
// [-1, 1]² and counting those that land inside the unit circle.
//
// The parallel estimator runs one independent trial per worker. Each trial
// owns its generator and its counter; the only shared step is the final sum.
package montecarlo

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"
)

// checkEvery is how many samples a trial draws between cancellation checks.
const checkEvery = 1 << 16

// ErrInvalidSamples is returned for a sample count below 1.
var ErrInvalidSamples = errors.New("montecarlo: invalid sample count")

// slot holds one trial's count on its own cache line.
type slot struct {
	inside int64
	_      cpu.CacheLinePad
}

// EstimatePiSequential tosses samples points on the calling goroutine.
func EstimatePiSequential(samples int64, seed uint64) (float64, error) {
	if samples <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSamples, samples)
	}
	rng := rand.New(rand.NewPCG(seed, 0))
	return 4 * float64(countInCircle(rng, samples)) / float64(samples), nil
}

// EstimatePi splits samples across workers concurrent trials. The last trial
// also takes the remainder, so exactly samples points are tossed. If workers
// <= 0, uses GOMAXPROCS.
//
// Trial w is seeded with (seed, w+1), so results are reproducible for a given
// (samples, workers, seed). A cancelled ctx stops the trials and its error is
// returned.
func EstimatePi(ctx context.Context, samples int64, workers int, seed uint64) (float64, error) {
	if samples <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSamples, samples)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = int(min(int64(workers), samples))

	perWorker := samples / int64(workers)
	slots := make([]slot, workers)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for w := range workers {
		n := perWorker
		if w == workers-1 {
			n += samples % int64(workers)
		}
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(seed, uint64(w)+1))
			for done := int64(0); done < n; {
				if err := ctx.Err(); err != nil {
					return err
				}
				batch := min(checkEvery, n-done)
				slots[w].inside += countInCircle(rng, batch)
				done += batch
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	inside := lo.SumBy(slots, func(s slot) int64 { return s.inside })
	return 4 * float64(inside) / float64(samples), nil
}

func countInCircle(rng *rand.Rand, n int64) int64 {
	var inside int64
	for range n {
		x := 2*rng.Float64() - 1
		y := 2*rng.Float64() - 1
		if x*x+y*y < 1 {
			inside++
		}
	}
	return inside
}

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

// Package dataset generates benchmark inputs for the sorters.
//
// Inputs are filled in parallel. The slice is cut into fixed-size chunks and
// every chunk draws from its own generator seeded with (seed, chunk index),
// so there is no shared generator state and the output for a given
// (shape, n, seed) does not depend on the pool size.
package dataset

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/samber/lo"

	"github.com/ajroetker/go-qsort/qsort/contrib/workerpool"
)

// chunkSize is the number of elements filled by one generator.
const chunkSize = 1 << 16

// fewDistinct is the number of distinct values in ShapeFew inputs.
const fewDistinct = 16

// equalValue fills ShapeEqual inputs.
const equalValue = 42

var (
	// ErrUnknownShape is returned by Generate for an unregistered shape.
	ErrUnknownShape = errors.New("dataset: unknown shape")

	// ErrInvalidSize is returned by Generate for a negative length.
	ErrInvalidSize = errors.New("dataset: invalid size")
)

// Shape names an input distribution.
type Shape string

const (
	// ShapeRandom is uniformly random non-negative 31-bit values.
	ShapeRandom Shape = "random"
	// ShapeSorted is 0, 1, 2, ... n-1.
	ShapeSorted Shape = "sorted"
	// ShapeReversed is n-1, n-2, ... 0.
	ShapeReversed Shape = "reversed"
	// ShapeEqual is n copies of the same value.
	ShapeEqual Shape = "equal"
	// ShapeFew is random values drawn from a small set.
	ShapeFew Shape = "few"
)

var generators = map[Shape]func(pool *workerpool.Pool, n int, seed uint64) []int64{
	ShapeRandom: Random,
	ShapeSorted: func(pool *workerpool.Pool, n int, _ uint64) []int64 {
		return fill(pool, n, func(i int) int64 { return int64(i) })
	},
	ShapeReversed: func(pool *workerpool.Pool, n int, _ uint64) []int64 {
		return fill(pool, n, func(i int) int64 { return int64(n - 1 - i) })
	},
	ShapeEqual: func(pool *workerpool.Pool, n int, _ uint64) []int64 {
		return fill(pool, n, func(int) int64 { return equalValue })
	},
	ShapeFew: func(pool *workerpool.Pool, n int, seed uint64) []int64 {
		return fillRandom(pool, n, seed, func(rng *rand.Rand) int64 { return rng.Int64N(fewDistinct) })
	},
}

// Shapes returns the registered shapes in name order.
func Shapes() []Shape {
	shapes := lo.Keys(generators)
	slices.Sort(shapes)
	return shapes
}

// Generate returns n elements of the given shape.
func Generate(pool *workerpool.Pool, shape Shape, n int, seed uint64) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	gen, ok := generators[shape]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownShape, shape, Shapes())
	}
	return gen(pool, n, seed), nil
}

// Random returns n uniformly random values in [0, 2^31), the range of the C
// library's rand_r.
func Random(pool *workerpool.Pool, n int, seed uint64) []int64 {
	return fillRandom(pool, n, seed, func(rng *rand.Rand) int64 { return int64(rng.Int32()) })
}

func fillRandom(pool *workerpool.Pool, n int, seed uint64, next func(rng *rand.Rand) int64) []int64 {
	data := make([]int64, n)
	numChunks := (n + chunkSize - 1) / chunkSize
	pool.ParallelForAtomic(numChunks, func(c int) {
		rng := rand.New(rand.NewPCG(seed, uint64(c)))
		end := min((c+1)*chunkSize, n)
		for i := c * chunkSize; i < end; i++ {
			data[i] = next(rng)
		}
	})
	return data
}

func fill(pool *workerpool.Pool, n int, value func(i int) int64) []int64 {
	data := make([]int64, n)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			data[i] = value(i)
		}
	})
	return data
}

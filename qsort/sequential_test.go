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
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"modernc.org/sortutil"
)

func randomInt64(rng *rand.Rand, n int, spread int64) []int64 {
	data := make([]int64, n)
	for i := range data {
		data[i] = rng.Int63n(spread) - spread/2
	}
	return data
}

// reference returns a sorted copy of data using an independent sort.
func reference(data []int64) []int64 {
	want := append([]int64(nil), data...)
	sortutil.Int64Slice(want).Sort()
	return want
}

func TestSequentialEmptyAndSingle(t *testing.T) {
	var empty []int64
	Sequential(empty)
	assert.Empty(t, empty)

	single := []int64{42}
	Sequential(single)
	assert.Equal(t, []int64{42}, single)
}

func TestSequentialShapes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sizes := []int{2, 3, 7, 8, 15, 16, 31, 64, 100, 1000, 10000}
	for _, n := range sizes {
		random := randomInt64(rng, n, 1<<20)
		dups := randomInt64(rng, n, 8)
		sorted := reference(random)
		reversed := slices.Clone(sorted)
		slices.Reverse(reversed)
		equal := make([]int64, n)
		for i := range equal {
			equal[i] = -5
		}

		for name, input := range map[string][]int64{
			"random":   random,
			"dups":     dups,
			"sorted":   sorted,
			"reversed": reversed,
			"equal":    equal,
		} {
			data := slices.Clone(input)
			Sequential(data)
			if diff := cmp.Diff(reference(input), data); diff != "" {
				t.Errorf("Sequential(%s, n=%d) mismatch (-want +got):\n%s", name, n, diff)
			}
		}
	}
}

func TestSequentialIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	data := randomInt64(rng, 5000, 1000)
	Sequential(data)
	once := slices.Clone(data)
	Sequential(data)
	assert.Equal(t, once, data)
}

func TestSequentialRange(t *testing.T) {
	data := []int64{9, 8, 7, 6, 5, 4, 3, 2, 1}
	require.NoError(t, SequentialRange(data, 2, 6))
	assert.Equal(t, []int64{9, 8, 3, 4, 5, 6, 7, 2, 1}, data)

	err := SequentialRange(data, 5, 9)
	require.ErrorIs(t, err, ErrInvalidRange)
	assert.Equal(t, []int64{9, 8, 3, 4, 5, 6, 7, 2, 1}, data)
}

func TestSequentialOtherTypes(t *testing.T) {
	i8 := []int8{3, -1, 127, -128, 0, 3}
	Sequential(i8)
	assert.Equal(t, []int8{-128, -1, 0, 3, 3, 127}, i8)

	u32 := []uint32{4000000000, 1, 0, 77}
	Sequential(u32)
	assert.Equal(t, []uint32{0, 1, 77, 4000000000}, u32)

	type score int
	scores := []score{30, 10, 20}
	Sequential(scores)
	assert.Equal(t, []score{10, 20, 30}, scores)
}

func TestIsSorted(t *testing.T) {
	assert.True(t, IsSorted([]int64{}))
	assert.True(t, IsSorted([]int64{1}))
	assert.True(t, IsSorted([]int64{1, 1, 2}))
	assert.False(t, IsSorted([]int64{2, 1}))
}

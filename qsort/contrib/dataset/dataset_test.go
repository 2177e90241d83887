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

package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-qsort/qsort/contrib/workerpool"
)

func TestShapes(t *testing.T) {
	assert.Equal(t, []Shape{ShapeEqual, ShapeFew, ShapeRandom, ShapeReversed, ShapeSorted}, Shapes())
}

func TestRandomDeterministicAcrossPools(t *testing.T) {
	n := 3*chunkSize + 17

	single := workerpool.New(1)
	defer single.Close()
	many := workerpool.New(8)
	defer many.Close()

	a := Random(single, n, 99)
	b := Random(many, n, 99)
	c := Random(nil, n, 99)
	require.Len(t, a, n)
	assert.Equal(t, a, b)
	assert.Equal(t, a, c)

	other := Random(many, n, 100)
	assert.NotEqual(t, a, other)
}

func TestRandomRange(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	for i, v := range Random(pool, 100000, 1) {
		if v < 0 || v >= 1<<31 {
			t.Fatalf("data[%d] = %d, want [0, 2^31)", i, v)
		}
	}
}

func TestGenerateShapes(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	const n = 1000

	sorted, err := Generate(pool, ShapeSorted, n, 0)
	require.NoError(t, err)
	reversed, err := Generate(pool, ShapeReversed, n, 0)
	require.NoError(t, err)
	equal, err := Generate(pool, ShapeEqual, n, 0)
	require.NoError(t, err)
	few, err := Generate(pool, ShapeFew, n, 5)
	require.NoError(t, err)

	for i := range n {
		assert.Equal(t, int64(i), sorted[i])
		assert.Equal(t, int64(n-1-i), reversed[i])
		assert.Equal(t, int64(equalValue), equal[i])
		assert.True(t, few[i] >= 0 && few[i] < fewDistinct, "few[%d] = %d", i, few[i])
	}
}

func TestGenerateEmpty(t *testing.T) {
	data, err := Generate(nil, ShapeRandom, 0, 1)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate(nil, Shape("zigzag"), 10, 1)
	require.ErrorIs(t, err, ErrUnknownShape)

	_, err = Generate(nil, ShapeRandom, -1, 1)
	require.ErrorIs(t, err, ErrInvalidSize)
}

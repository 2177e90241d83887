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
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is returned when (left, right) does not name a
	// non-empty closed range inside the slice.
	ErrInvalidRange = errors.New("qsort: invalid range")

	// ErrInvalidCutoff is returned for a negative fan-out cutoff.
	ErrInvalidCutoff = errors.New("qsort: invalid cutoff")
)

func checkRange(n, left, right int) error {
	if left < 0 || right >= n || left > right {
		return fmt.Errorf("%w: [%d, %d] for length %d", ErrInvalidRange, left, right, n)
	}
	return nil
}

func checkCutoff(cutoff int) error {
	if cutoff < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCutoff, cutoff)
	}
	return nil
}

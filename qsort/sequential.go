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

// Sequential sorts data in place in ascending order on the calling goroutine.
// Empty and single-element slices are left untouched.
func Sequential[T Integers](data []T) {
	if len(data) < 2 {
		return
	}
	sequential(data, 0, len(data)-1)
}

// SequentialRange sorts data[left:right+1] in place. It returns an error
// wrapping ErrInvalidRange, before modifying data, for an invalid range.
func SequentialRange[T Integers](data []T, left, right int) error {
	if err := checkRange(len(data), left, right); err != nil {
		return err
	}
	sequential(data, left, right)
	return nil
}

func sequential[T Integers](data []T, left, right int) {
	i, j := partition(data, left, right)

	if left < j {
		sequential(data, left, j)
	}
	if i < right {
		sequential(data, i, right)
	}
}

// IsSorted reports whether data is in ascending order.
func IsSorted[T Integers](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

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

// Partition reorders data[left:right+1] around the value of its middle
// element and returns the split indices (i, j), with j < i.
//
// On return:
//   - data[left:j+1] holds values <= pivot
//   - data[i:right+1] holds values >= pivot
//
// The two halves are disjoint, so they can be sorted concurrently. Elements
// between j and i, if any, equal the pivot and are already in place. The pivot
// value itself may land in either half. Callers recurse into [left, j] only
// when left < j and into [i, right] only when i < right.
//
// Partition returns an error wrapping ErrInvalidRange, without touching data,
// unless 0 <= left <= right < len(data).
func Partition[T Integers](data []T, left, right int) (int, int, error) {
	if err := checkRange(len(data), left, right); err != nil {
		return 0, 0, err
	}
	i, j := partition(data, left, right)
	return i, j, nil
}

// partition is the unchecked Hoare partition shared by both sorters.
// The pivot is read by value once; swaps may move it but not change it,
// and the scans cannot run past the range because an element equal to the
// pivot, or one already swapped across, stops them.
func partition[T Integers](data []T, left, right int) (int, int) {
	i, j := left, right
	pivot := data[left+(right-left)/2]

	for i <= j {
		for data[i] < pivot {
			i++
		}
		for data[j] > pivot {
			j--
		}
		if i <= j {
			data[i], data[j] = data[j], data[i]
			i++
			j--
		}
	}

	return i, j
}

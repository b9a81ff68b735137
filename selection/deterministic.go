/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package selection

import (
	"cmp"
	"slices"

	"github.com/apache/selection-go/internal"
)

// groupSize is the width of the groups whose medians feed the pivot, and also the largest
// window that is finished off by sorting.
const groupSize = 5

// Deterministic returns the k-th smallest element (zero-based) of arr using the
// median-of-medians algorithm, which runs in worst-case linear time.
// arr is not modified.
func Deterministic[T cmp.Ordered](arr []T, k int) (T, error) {
	return DeterministicFunc(arr, k, cmp.Compare[T])
}

// DeterministicFunc is Deterministic with a custom comparator.
func DeterministicFunc[T any](arr []T, k int, compare func(a, b T) int) (T, error) {
	if err := checkRank(len(arr), k); err != nil {
		return *new(T), err
	}
	return DeterministicInPlaceFunc(slices.Clone(arr), k, compare)
}

// DeterministicInPlace is Deterministic without the defensive copy.
// arr is permuted; on return arr[k] holds the selected element.
func DeterministicInPlace[T cmp.Ordered](arr []T, k int) (T, error) {
	return DeterministicInPlaceFunc(arr, k, cmp.Compare[T])
}

// DeterministicInPlaceFunc is DeterministicInPlace with a custom comparator.
func DeterministicInPlaceFunc[T any](arr []T, k int, compare func(a, b T) int) (T, error) {
	if err := checkRank(len(arr), k); err != nil {
		return *new(T), err
	}
	if compare == nil {
		return *new(T), ErrNilCompare
	}
	return deterministicSelect(arr, 0, len(arr), k, compare), nil
}

// deterministicSelect narrows the window [lo, hi) around the absolute rank k.
// Requires lo <= k < hi. Only the pivot computation recurses, on a window a fifth the size.
func deterministicSelect[T any](arr []T, lo int, hi int, k int, compare func(a, b T) int) T {
	for hi-lo > groupSize {
		pivot := medianOfMedians(arr, lo, hi, compare)
		lt, gt := internal.Partition3Func(arr, lo, hi, pivot, compare)
		if k < lt {
			hi = lt
		} else if k < gt {
			return pivot
		} else {
			lo = gt
		}
	}
	internal.InsertionSortFunc(arr, lo, hi, compare)
	return arr[k]
}

// medianOfMedians sorts each group of five in arr[lo:hi], gathers the group medians at the
// front of the window and returns their median.
func medianOfMedians[T any](arr []T, lo int, hi int, compare func(a, b T) int) T {
	numGroups := 0
	for i := lo; i < hi; i += groupSize {
		end := min(i+groupSize, hi)
		internal.InsertionSortFunc(arr, i, end, compare)
		mid := i + (end-i)/2
		arr[lo+numGroups], arr[mid] = arr[mid], arr[lo+numGroups]
		numGroups++
	}
	return deterministicSelect(arr, lo, lo+numGroups, lo+numGroups/2, compare)
}

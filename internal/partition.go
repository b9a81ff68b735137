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

package internal

import "cmp"

// Partition3 rearranges arr[lo:hi] around the value pivot and returns lt and gt such that
// arr[lo:lt] < pivot, arr[lt:gt] == pivot and arr[gt:hi] > pivot.
func Partition3[T cmp.Ordered](arr []T, lo int, hi int, pivot T) (int, int) {
	return Partition3Func(arr, lo, hi, pivot, cmp.Compare[T])
}

// Partition3Func is the three-way partition with a custom comparator.
// It makes a single pass over arr[lo:hi] and does not allocate.
// The `compare` function must return a negative number when a < b, zero when a == b
// and a positive number when a > b.
func Partition3Func[T any](arr []T, lo int, hi int, pivot T, compare func(a, b T) int) (int, int) {
	lt := lo // arr[lo:lt] < pivot
	i := lo  // arr[lt:i] == pivot
	gt := hi // arr[gt:hi] > pivot
	for i < gt {
		c := compare(arr[i], pivot)
		switch {
		case c < 0:
			arr[lt], arr[i] = arr[i], arr[lt]
			lt++
			i++
		case c > 0:
			gt--
			arr[i], arr[gt] = arr[gt], arr[i]
		default:
			i++
		}
	}
	return lt, gt
}

// InsertionSortFunc sorts arr[lo:hi] in place.
// Only meant for the short runs used as selection base cases.
func InsertionSortFunc[T any](arr []T, lo int, hi int, compare func(a, b T) int) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && compare(arr[j], arr[j-1]) < 0; j-- {
			arr[j], arr[j-1] = arr[j-1], arr[j]
		}
	}
}

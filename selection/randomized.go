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
	"math/rand"
	"slices"

	"github.com/apache/selection-go/internal"
)

// Source picks pivot positions for the randomized algorithm. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniformly distributed integer in [0, n). n is always positive.
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Intn(n int) int {
	return rand.Intn(n)
}

// DefaultSource returns a Source backed by the process-wide math/rand generator.
func DefaultSource() Source {
	return globalSource{}
}

// NewSource returns a Source seeded with seed, for reproducible pivot sequences.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Randomized returns the k-th smallest element (zero-based) of arr using quickselect with
// uniformly random pivots. Expected linear time, quadratic in the worst case.
// arr is not modified.
func Randomized[T cmp.Ordered](arr []T, k int) (T, error) {
	return RandomizedFunc(arr, k, cmp.Compare[T], DefaultSource())
}

// RandomizedFunc is Randomized with a custom comparator and pivot source.
func RandomizedFunc[T any](arr []T, k int, compare func(a, b T) int, rng Source) (T, error) {
	if err := checkRank(len(arr), k); err != nil {
		return *new(T), err
	}
	return RandomizedInPlaceFunc(slices.Clone(arr), k, compare, rng)
}

// RandomizedInPlace is Randomized with an explicit pivot source and without the defensive copy.
// arr is permuted; on return arr[k] holds the selected element.
func RandomizedInPlace[T cmp.Ordered](arr []T, k int, rng Source) (T, error) {
	return RandomizedInPlaceFunc(arr, k, cmp.Compare[T], rng)
}

// RandomizedInPlaceFunc is RandomizedInPlace with a custom comparator.
func RandomizedInPlaceFunc[T any](arr []T, k int, compare func(a, b T) int, rng Source) (T, error) {
	if err := checkRank(len(arr), k); err != nil {
		return *new(T), err
	}
	if compare == nil {
		return *new(T), ErrNilCompare
	}
	if rng == nil {
		return *new(T), ErrNilSource
	}
	return randomizedSelect(arr, k, compare, rng), nil
}

// randomizedSelect keeps lo <= k < hi while the window shrinks, so a window of one is
// exactly arr[k:k+1].
func randomizedSelect[T any](arr []T, k int, compare func(a, b T) int, rng Source) T {
	lo, hi := 0, len(arr)
	for hi-lo > 1 {
		pivot := arr[lo+rng.Intn(hi-lo)]
		lt, gt := internal.Partition3Func(arr, lo, hi, pivot, compare)
		if k < lt {
			hi = lt
		} else if k < gt {
			return pivot
		} else {
			lo = gt
		}
	}
	return arr[k]
}

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
	"fmt"
)

// Algorithm names one of the selection strategies.
type Algorithm int

const (
	// DeterministicAlgorithm is median-of-medians selection.
	DeterministicAlgorithm Algorithm = iota
	// RandomizedAlgorithm is quickselect with random pivots.
	RandomizedAlgorithm
)

// Algorithms lists every strategy in reporting order.
var Algorithms = []Algorithm{DeterministicAlgorithm, RandomizedAlgorithm}

func (a Algorithm) String() string {
	switch a {
	case DeterministicAlgorithm:
		return "Deterministic MOM"
	case RandomizedAlgorithm:
		return "Randomized Quickselect"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Select runs the given algorithm on a copy of arr. rng is only consulted by
// RandomizedAlgorithm and may be nil for DeterministicAlgorithm.
func Select[T cmp.Ordered](alg Algorithm, arr []T, k int, rng Source) (T, error) {
	switch alg {
	case DeterministicAlgorithm:
		return Deterministic(arr, k)
	case RandomizedAlgorithm:
		return RandomizedFunc(arr, k, cmp.Compare[T], rng)
	default:
		return *new(T), fmt.Errorf("unknown selection algorithm: %d", int(alg))
	}
}

// SelectInPlace is Select without the defensive copy; arr is permuted.
func SelectInPlace[T cmp.Ordered](alg Algorithm, arr []T, k int, rng Source) (T, error) {
	switch alg {
	case DeterministicAlgorithm:
		return DeterministicInPlace(arr, k)
	case RandomizedAlgorithm:
		return RandomizedInPlace(arr, k, rng)
	default:
		return *new(T), fmt.Errorf("unknown selection algorithm: %d", int(alg))
	}
}

// Median returns the element of rank len(arr)/2, which is the upper median for even lengths.
func Median[T cmp.Ordered](arr []T) (T, error) {
	return Deterministic(arr, len(arr)/2)
}

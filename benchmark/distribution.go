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

package benchmark

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// ErrValueOverflow is returned by Generate when the element type cannot hold every generated value.
var ErrValueOverflow = errors.New("element type too narrow for generated values")

// Distribution is the shape of a generated input collection.
type Distribution int

const (
	// Random holds distinct values in random order.
	Random Distribution = iota
	// Sorted is an ascending run.
	Sorted
	// Reversed is a descending run.
	Reversed
)

// Distributions lists every input shape in reporting order.
var Distributions = []Distribution{Random, Sorted, Reversed}

func (d Distribution) String() string {
	switch d {
	case Random:
		return "random"
	case Sorted:
		return "sorted"
	case Reversed:
		return "reversed"
	default:
		return fmt.Sprintf("Distribution(%d)", int(d))
	}
}

// Label is the heading used for the distribution in the console report.
func (d Distribution) Label() string {
	switch d {
	case Random:
		return "Random input"
	case Sorted:
		return "Sorted input"
	case Reversed:
		return "Reverse sorted input"
	default:
		return d.String()
	}
}

// ParseDistribution maps a name produced by String back to its Distribution.
func ParseDistribution(name string) (Distribution, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random":
		return Random, nil
	case "sorted":
		return Sorted, nil
	case "reversed", "reverse":
		return Reversed, nil
	default:
		return 0, fmt.Errorf("unknown distribution: %q", name)
	}
}

// Generate builds an input of n items:
//   - Random: n distinct values drawn uniformly from [0, 10n)
//   - Sorted: 0, 1, ..., n-1
//   - Reversed: n, n-1, ..., 1
//
// The largest generated value must fit in T, otherwise ErrValueOverflow is returned.
func Generate[T constraints.Integer](d Distribution, n int, rng *rand.Rand) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("input size must not be negative: %d", n)
	}
	if largest := maxValue(d, n); int(T(largest)) != largest {
		return nil, fmt.Errorf("%w: %s input of size %d needs %d", ErrValueOverflow, d, n, largest)
	}
	out := make([]T, n)
	switch d {
	case Random:
		for i, v := range rng.Perm(10 * n)[:n] {
			out[i] = T(v)
		}
	case Sorted:
		for i := range out {
			out[i] = T(i)
		}
	case Reversed:
		for i := range out {
			out[i] = T(n - i)
		}
	}
	return out, nil
}

// maxValue is the largest value Generate produces for d and n.
func maxValue(d Distribution, n int) int {
	switch d {
	case Random:
		return max(10*n-1, 0)
	case Reversed:
		return n
	default:
		return max(n-1, 0)
	}
}

// SeedFor derives the generator seed of a single benchmark case from the run seed,
// so every case is reproducible regardless of which other cases run.
func SeedFor(base int64, d Distribution, n int) int64 {
	h := xxhash.Sum64String(fmt.Sprintf("%s/%d", d, n))
	return int64(h ^ uint64(base))
}

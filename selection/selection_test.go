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
	"math"
	"math/rand"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource always picks the same offset into the current window.
type fixedSource struct {
	fromEnd bool
}

func (s fixedSource) Intn(n int) int {
	if s.fromEnd {
		return n - 1
	}
	return 0
}

func selectBoth(t *testing.T, arr []int, k int) (int, int) {
	t.Helper()
	d, err := Deterministic(arr, k)
	require.NoError(t, err)
	r, err := RandomizedFunc(arr, k, cmp.Compare[int], NewSource(42))
	require.NoError(t, err)
	return d, r
}

func TestSelect(t *testing.T) {
	testCases := []struct {
		name     string
		arr      []int
		k        int
		expected int
	}{
		{
			name:     "concrete scenario",
			arr:      []int{12, 3, 5, 7, 19, 26, 4},
			k:        3,
			expected: 7,
		},
		{
			name:     "singleton",
			arr:      []int{42},
			k:        0,
			expected: 42,
		},
		{
			name:     "minimum",
			arr:      []int{3, 1, 4, 1, 5, 9, 2, 6},
			k:        0,
			expected: 1,
		},
		{
			name:     "maximum",
			arr:      []int{3, 1, 4, 1, 5, 9, 2, 6},
			k:        7,
			expected: 9,
		},
		{
			name:     "all duplicates",
			arr:      []int{5, 5, 5, 5},
			k:        2,
			expected: 5,
		},
		{
			name:     "two elements",
			arr:      []int{5, 3},
			k:        1,
			expected: 5,
		},
		{
			name:     "exactly one group",
			arr:      []int{5, 4, 3, 2, 1},
			k:        1,
			expected: 2,
		},
		{
			name:     "just above one group",
			arr:      []int{6, 5, 4, 3, 2, 1},
			k:        4,
			expected: 5,
		},
		{
			name:     "negative numbers",
			arr:      []int{-3, 10, -7, 0, 4, -1, 8, 2, -9, 6, 1},
			k:        5,
			expected: 1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, r := selectBoth(t, tc.arr, tc.k)
			assert.Equal(t, tc.expected, d, "deterministic")
			assert.Equal(t, tc.expected, r, "randomized")
		})
	}
}

func TestSelectDuplicatesEveryRank(t *testing.T) {
	arr := []int{5, 5, 5, 5}
	for k := range arr {
		d, r := selectBoth(t, arr, k)
		assert.Equal(t, 5, d)
		assert.Equal(t, 5, r)
	}
}

func TestSelectMatchesSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 300; trial++ {
		n := 1 + rng.Intn(200)
		// a small value range forces heavy duplication on larger inputs
		valueRange := 1 + rng.Intn(2*n)
		arr := make([]int, n)
		for i := range arr {
			arr[i] = rng.Intn(valueRange) - valueRange/2
		}
		sorted := slices.Sorted(slices.Values(arr))
		k := rng.Intn(n)

		d, err := Deterministic(arr, k)
		require.NoError(t, err)
		r, err := RandomizedFunc(arr, k, cmp.Compare[int], NewSource(int64(trial)))
		require.NoError(t, err)

		assert.Equal(t, sorted[k], d, "deterministic n=%d k=%d", n, k)
		assert.Equal(t, sorted[k], r, "randomized n=%d k=%d", n, k)
	}
}

func TestSelectEveryRank(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	arr := rng.Perm(57)
	for k := range arr {
		d, r := selectBoth(t, arr, k)
		assert.Equal(t, k, d)
		assert.Equal(t, k, r)
	}
}

func TestSelectPermutationInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	arr := make([]int, 101)
	for i := range arr {
		arr[i] = rng.Intn(30)
	}
	k := 50
	want, err := Deterministic(arr, k)
	require.NoError(t, err)

	for trial := 0; trial < 20; trial++ {
		shuffled := slices.Clone(arr)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		d, r := selectBoth(t, shuffled, k)
		assert.Equal(t, want, d)
		assert.Equal(t, want, r)
	}
}

func TestSelectSortedAndReversed(t *testing.T) {
	const n = 5000
	asc := make([]int, n)
	desc := make([]int, n)
	for i := range asc {
		asc[i] = i
		desc[i] = n - i
	}
	d, r := selectBoth(t, asc, n/2)
	assert.Equal(t, n/2, d)
	assert.Equal(t, n/2, r)

	d, r = selectBoth(t, desc, n/2)
	assert.Equal(t, n/2+1, d)
	assert.Equal(t, n/2+1, r)
}

func TestSelectInvalidRank(t *testing.T) {
	testCases := []struct {
		name string
		arr  []int
		k    int
	}{
		{name: "k equals length", arr: []int{1, 2, 3}, k: 3},
		{name: "negative k", arr: []int{1, 2, 3}, k: -1},
		{name: "k far out of range", arr: []int{1}, k: 100},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Deterministic(tc.arr, tc.k)
			assert.ErrorIs(t, err, ErrInvalidRank)
			_, err = Randomized(tc.arr, tc.k)
			assert.ErrorIs(t, err, ErrInvalidRank)
			_, err = DeterministicInPlace(tc.arr, tc.k)
			assert.ErrorIs(t, err, ErrInvalidRank)
			_, err = RandomizedInPlace(tc.arr, tc.k, NewSource(1))
			assert.ErrorIs(t, err, ErrInvalidRank)
		})
	}
}

func TestSelectEmptyInput(t *testing.T) {
	for _, arr := range [][]int{nil, {}} {
		_, err := Deterministic(arr, 0)
		assert.ErrorIs(t, err, ErrEmptyInput)
		_, err = Randomized(arr, 0)
		assert.ErrorIs(t, err, ErrEmptyInput)
		_, err = Median(arr)
		assert.ErrorIs(t, err, ErrEmptyInput)
	}
}

func TestSelectNilArguments(t *testing.T) {
	arr := []int{3, 1, 2}

	_, err := DeterministicFunc(arr, 1, nil)
	assert.ErrorIs(t, err, ErrNilCompare)
	_, err = RandomizedFunc(arr, 1, nil, NewSource(1))
	assert.ErrorIs(t, err, ErrNilCompare)
	_, err = RandomizedFunc(arr, 1, cmp.Compare[int], nil)
	assert.ErrorIs(t, err, ErrNilSource)
	_, err = Select(RandomizedAlgorithm, arr, 1, nil)
	assert.ErrorIs(t, err, ErrNilSource)
}

func TestSelectDoesNotModifyInput(t *testing.T) {
	arr := []int{12, 3, 5, 7, 19, 26, 4, 8, 1, 0, 15, 2}
	orig := slices.Clone(arr)

	_, err := Deterministic(arr, 6)
	require.NoError(t, err)
	assert.Equal(t, orig, arr)

	_, err = Randomized(arr, 6)
	require.NoError(t, err)
	assert.Equal(t, orig, arr)
}

func TestSelectInPlace(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(300)
		arr := make([]int, n)
		for i := range arr {
			arr[i] = rng.Intn(n)
		}
		orig := slices.Clone(arr)
		sorted := slices.Sorted(slices.Values(arr))
		k := rng.Intn(n)

		work := slices.Clone(arr)
		d, err := DeterministicInPlace(work, k)
		require.NoError(t, err)
		assert.Equal(t, sorted[k], d)
		assert.Equal(t, d, work[k])
		assert.ElementsMatch(t, orig, work)

		work = slices.Clone(arr)
		r, err := RandomizedInPlace(work, k, NewSource(int64(trial)))
		require.NoError(t, err)
		assert.Equal(t, sorted[k], r)
		assert.Equal(t, r, work[k])
		assert.ElementsMatch(t, orig, work)
	}
}

func TestRandomizedSeedReproducible(t *testing.T) {
	arr := rand.New(rand.NewSource(9)).Perm(1000)

	first := slices.Clone(arr)
	_, err := RandomizedInPlace(first, 321, NewSource(77))
	require.NoError(t, err)
	second := slices.Clone(arr)
	_, err = RandomizedInPlace(second, 321, NewSource(77))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRandomizedAdversarialPivots(t *testing.T) {
	const n = 2000
	asc := make([]int, n)
	for i := range asc {
		asc[i] = i
	}
	for _, src := range []fixedSource{{fromEnd: false}, {fromEnd: true}} {
		for _, k := range []int{0, 1, n / 2, n - 2, n - 1} {
			got, err := RandomizedFunc(asc, k, cmp.Compare[int], src)
			require.NoError(t, err)
			assert.Equal(t, k, got)
		}
	}

	same := slices.Repeat([]int{7}, n)
	got, err := RandomizedFunc(same, n-1, cmp.Compare[int], fixedSource{})
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestSelectFunc(t *testing.T) {
	words := []string{"Dog", "cat", "Elephant", "ant", "Bear"}
	caseless := func(a, b string) int { return cmp.Compare(strings.ToLower(a), strings.ToLower(b)) }

	d, err := DeterministicFunc(words, 2, caseless)
	require.NoError(t, err)
	assert.Equal(t, "cat", d)

	r, err := RandomizedFunc(words, 2, caseless, NewSource(3))
	require.NoError(t, err)
	assert.Equal(t, "cat", r)

	desc := func(a, b int) int { return cmp.Compare(b, a) }
	largest, err := DeterministicFunc([]int{12, 3, 5, 7, 19, 26, 4}, 0, desc)
	require.NoError(t, err)
	assert.Equal(t, 26, largest)

	largest, err = RandomizedFunc([]int{12, 3, 5, 7, 19, 26, 4}, 0, desc, NewSource(3))
	require.NoError(t, err)
	assert.Equal(t, 26, largest)
}

func TestSelectFloatNaN(t *testing.T) {
	arr := []float64{2.5, math.NaN(), -1, 0.5, 3, 1}
	// cmp.Compare orders NaN before every other value
	d, err := Deterministic(arr, 1)
	require.NoError(t, err)
	assert.Equal(t, -1.0, d)

	r, err := RandomizedFunc(arr, 5, cmp.Compare[float64], NewSource(1))
	require.NoError(t, err)
	assert.Equal(t, 3.0, r)

	d, err = Deterministic(arr, 0)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(d))
}

func TestSelectStrings(t *testing.T) {
	arr := []string{"dog", "cat", "elephant", "ant", "bear"}
	d, err := Deterministic(arr, 2)
	require.NoError(t, err)
	assert.Equal(t, "cat", d)

	r, err := Randomized(arr, 2)
	require.NoError(t, err)
	assert.Equal(t, "cat", r)
}

func TestAlgorithm(t *testing.T) {
	assert.Equal(t, "Deterministic MOM", DeterministicAlgorithm.String())
	assert.Equal(t, "Randomized Quickselect", RandomizedAlgorithm.String())
	assert.Equal(t, "Algorithm(9)", Algorithm(9).String())

	arr := []int{12, 3, 5, 7, 19, 26, 4}
	for _, alg := range Algorithms {
		got, err := Select(alg, arr, 3, NewSource(1))
		require.NoError(t, err)
		assert.Equal(t, 7, got, alg.String())
	}
	_, err := Select(Algorithm(9), arr, 3, nil)
	assert.Error(t, err)
}

func TestMedian(t *testing.T) {
	m, err := Median([]int{12, 3, 5, 7, 19, 26, 4})
	require.NoError(t, err)
	assert.Equal(t, 7, m)

	m, err = Median([]int{4, 1, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, m)
}

func TestRandomizedNotMuchSlowerThanDeterministic(t *testing.T) {
	if testing.Short() {
		t.Skip("timing comparison skipped in short mode")
	}
	const (
		n      = 5000
		trials = 30
	)
	rng := rand.New(rand.NewSource(2024))
	src := NewSource(2024)
	var detTotal, randTotal time.Duration
	for i := 0; i < trials; i++ {
		arr := rng.Perm(10 * n)[:n]

		start := time.Now()
		_, err := Deterministic(arr, n/2)
		detTotal += time.Since(start)
		require.NoError(t, err)

		start = time.Now()
		_, err = RandomizedFunc(arr, n/2, cmp.Compare[int], src)
		randTotal += time.Since(start)
		require.NoError(t, err)
	}
	assert.LessOrEqual(t, randTotal, 10*detTotal, "randomized %v, deterministic %v", randTotal, detTotal)
}

func BenchmarkDeterministic(b *testing.B) {
	data := rand.New(rand.NewSource(1)).Perm(5000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Deterministic(data, len(data)/2)
	}
}

func BenchmarkRandomized(b *testing.B) {
	data := rand.New(rand.NewSource(1)).Perm(5000)
	src := NewSource(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = RandomizedFunc(data, len(data)/2, cmp.Compare[int], src)
	}
}

func TestSelectInPlaceDispatch(t *testing.T) {
	for _, alg := range Algorithms {
		arr := []int{12, 3, 5, 7, 19, 26, 4}
		got, err := SelectInPlace(alg, arr, 3, NewSource(1))
		require.NoError(t, err)
		assert.Equal(t, 7, got, alg.String())
		assert.Equal(t, 7, arr[3], alg.String())
	}
	_, err := SelectInPlace(Algorithm(-1), []int{1}, 0, nil)
	assert.Error(t, err)
}

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
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/apache/selection-go/selection"
)

// ErrDisagreement is returned when two algorithms, or two trials, select different values.
var ErrDisagreement = errors.New("selection algorithms returned different values")

// Result holds the timings of one algorithm on one benchmark case.
type Result struct {
	Size         int
	Distribution Distribution
	Algorithm    selection.Algorithm
	Trials       int
	Mean         time.Duration
	Min          time.Duration
	Max          time.Duration
	// Value is the element selected at rank Size/2.
	Value int
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for progress messages. The default discards them.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Runner times every selection algorithm on identical inputs.
type Runner struct {
	cfg    Config
	logger *zap.Logger
}

// NewRunner validates cfg and returns a runner for it.
func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		cfg:    cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run executes every size and distribution pair, selecting the median of each input.
// Results are ordered by size, then distribution, then algorithm. On cancellation the
// results gathered so far are returned along with the context error.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0, len(r.cfg.Sizes)*len(r.cfg.Distributions)*len(selection.Algorithms))
	for _, n := range r.cfg.Sizes {
		for _, d := range r.cfg.Distributions {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			caseResults, err := r.runCase(d, n)
			if err != nil {
				return results, err
			}
			results = append(results, caseResults...)
		}
	}
	r.logger.Info("empirical analysis finished", zap.Int("results", len(results)))
	return results, nil
}

func (r *Runner) runCase(d Distribution, n int) ([]Result, error) {
	seed := SeedFor(r.cfg.Seed, d, n)
	rng := rand.New(rand.NewSource(seed))
	input, err := Generate[int](d, n, rng)
	if err != nil {
		return nil, err
	}
	k := n / 2

	r.logger.Debug("running case",
		zap.Stringer("distribution", d),
		zap.Int("size", n),
		zap.Int("rank", k),
		zap.Int64("seed", seed),
	)

	out := make([]Result, 0, len(selection.Algorithms))
	for _, alg := range selection.Algorithms {
		res, err := r.measure(alg, input, k, rng)
		if err != nil {
			return nil, fmt.Errorf("%s on %s input of size %d: %w", alg, d, n, err)
		}
		res.Distribution = d
		if len(out) > 0 && out[0].Value != res.Value {
			return nil, fmt.Errorf("%w: %s=%d, %s=%d (%s input of size %d)",
				ErrDisagreement, out[0].Algorithm, out[0].Value, alg, res.Value, d, n)
		}
		r.logger.Debug("measured",
			zap.Stringer("algorithm", alg),
			zap.Duration("mean", res.Mean),
			zap.Int("value", res.Value),
		)
		out = append(out, res)
	}
	return out, nil
}

// measure times alg on a fresh copy of input for every trial; copying is not timed.
func (r *Runner) measure(alg selection.Algorithm, input []int, k int, rng selection.Source) (Result, error) {
	res := Result{
		Size:      len(input),
		Algorithm: alg,
		Trials:    r.cfg.Trials,
	}
	work := make([]int, len(input))
	var total time.Duration
	for i := 0; i < r.cfg.Trials; i++ {
		copy(work, input)
		start := time.Now()
		v, err := selection.SelectInPlace(alg, work, k, rng)
		elapsed := time.Since(start)
		if err != nil {
			return Result{}, err
		}
		if i > 0 && v != res.Value {
			return Result{}, fmt.Errorf("%w: trial %d returned %d, expected %d", ErrDisagreement, i, v, res.Value)
		}
		res.Value = v
		total += elapsed
		if i == 0 || elapsed < res.Min {
			res.Min = elapsed
		}
		res.Max = max(res.Max, elapsed)
	}
	res.Mean = total / time.Duration(r.cfg.Trials)
	return res, nil
}

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

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/apache/selection-go/benchmark"
	"github.com/apache/selection-go/selection"
)

var (
	sizes     = flag.String("sizes", "1000,3000,5000", "Comma separated input sizes for the empirical analysis")
	dists     = flag.String("dists", "random,sorted,reversed", "Comma separated input distributions")
	trials    = flag.Int("trials", 1, "Timed calls per algorithm and case")
	seed      = flag.Int64("seed", 1, "Seed for input generation and pivot choice")
	skipBench = flag.Bool("skip-bench", false, "Only run the demo selection")
	verbose   = flag.Bool("verbose", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, os.Stdout, logger)
	stop()
	if err != nil {
		logger.Error("kselect failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, out io.Writer, logger *zap.Logger) error {
	if err := demo(out); err != nil {
		return err
	}
	if *skipBench {
		return nil
	}

	cfg, err := configFromFlags()
	if err != nil {
		return err
	}
	runner, err := benchmark.NewRunner(cfg, benchmark.WithLogger(logger))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\nRunning empirical tests...")
	results, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	return benchmark.WriteTable(out, results)
}

func demo(out io.Writer) error {
	arr := []int{12, 3, 5, 7, 19, 26, 4}
	k := 3

	fmt.Fprintln(out, "===== SELECTION ALGORITHMS =====")
	fmt.Fprintln(out, "Array:", arr)

	det, err := selection.Deterministic(arr, k)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\nDeterministic Selection (Median of Medians):")
	fmt.Fprintln(out, "Result:", det)

	rnd, err := selection.Select(selection.RandomizedAlgorithm, arr, k, selection.NewSource(*seed))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\nRandomized Quickselect:")
	fmt.Fprintln(out, "Result:", rnd)
	return nil
}

func configFromFlags() (benchmark.Config, error) {
	cfg := benchmark.DefaultConfig()
	cfg.Trials = *trials
	cfg.Seed = *seed

	cfg.Sizes = nil
	for _, s := range splitList(*sizes) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return cfg, fmt.Errorf("invalid size %q: %w", s, err)
		}
		cfg.Sizes = append(cfg.Sizes, n)
	}

	cfg.Distributions = nil
	for _, s := range splitList(*dists) {
		d, err := benchmark.ParseDistribution(s)
		if err != nil {
			return cfg, err
		}
		cfg.Distributions = append(cfg.Distributions, d)
	}
	return cfg, cfg.Validate()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

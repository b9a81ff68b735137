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
)

// Config describes which benchmark cases to run.
type Config struct {
	Sizes         []int
	Distributions []Distribution
	// Trials is the number of timed calls per algorithm and case.
	Trials int
	Seed   int64
}

// DefaultConfig returns the sizes and distributions of the reference analysis.
func DefaultConfig() Config {
	return Config{
		Sizes:         []int{1000, 3000, 5000},
		Distributions: Distributions,
		Trials:        1,
		Seed:          1,
	}
}

// Validate reports the first setting that makes the config unusable.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.New("at least one input size is required")
	}
	for _, n := range c.Sizes {
		if n < 1 {
			return fmt.Errorf("input size must be positive: %d", n)
		}
	}
	if len(c.Distributions) == 0 {
		return errors.New("at least one distribution is required")
	}
	for _, d := range c.Distributions {
		if d < Random || d > Reversed {
			return fmt.Errorf("unknown distribution: %d", int(d))
		}
	}
	if c.Trials < 1 {
		return fmt.Errorf("trials must be at least 1: %d", c.Trials)
	}
	return nil
}

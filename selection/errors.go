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
	"errors"
	"fmt"
)

// Errors returned by the selection functions. ErrInvalidRank is wrapped with the offending rank.
var (
	ErrEmptyInput  = errors.New("selection is undefined for an empty collection")
	ErrInvalidRank = errors.New("rank must be between 0 and len(collection)-1")
	ErrNilCompare  = errors.New("no compare function provided")
	ErrNilSource   = errors.New("no random source provided")
)

// checkRank reports whether k is a valid zero-based rank into a collection of n items.
func checkRank(n int, k int) error {
	if n == 0 {
		return ErrEmptyInput
	}
	if k < 0 || k >= n {
		return fmt.Errorf("%w: k=%d, n=%d", ErrInvalidRank, k, n)
	}
	return nil
}

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
	"bufio"
	"fmt"
	"io"
)

// WriteTable prints results grouped by input size and distribution, one line per algorithm
// with its mean time in seconds. Results must be in the order produced by Runner.Run.
func WriteTable(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\n========== EMPIRICAL ANALYSIS ==========\n")
	for i, res := range results {
		if i == 0 || res.Size != results[i-1].Size {
			fmt.Fprintf(bw, "\n--- Input Size: %d ---\n", res.Size)
		}
		if i == 0 || res.Size != results[i-1].Size || res.Distribution != results[i-1].Distribution {
			fmt.Fprintf(bw, "%s:\n", res.Distribution.Label())
		}
		fmt.Fprintf(bw, "  %-25s%.6f sec", res.Algorithm.String()+":", res.Mean.Seconds())
		if res.Trials > 1 {
			fmt.Fprintf(bw, "  (min %.6f, max %.6f, %d trials)", res.Min.Seconds(), res.Max.Seconds(), res.Trials)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

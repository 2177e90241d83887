// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command qsortbench times sequential against parallel quicksort, and
// sequential against parallel Monte Carlo estimation of π.
//
// Usage:
//
//	qsortbench sort --size 1000000 --cutoff 10000 --workers 8
//	qsortbench sort --shape few --runs 5
//	qsortbench pi --samples 10000000
//	qsortbench info
//
// QSORT_MAX_WORKERS caps the number of workers and QSORT_CUTOFF changes the
// default cutoff.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command aereaconfiavel runs airline and forecasting-system
// scenario analyses from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/PedroRussoUnB/AereaConfiavel/cli"
)

func main() {
	if err := cli.NewRoot(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "aereaconfiavel:", err)
		os.Exit(1)
	}
}

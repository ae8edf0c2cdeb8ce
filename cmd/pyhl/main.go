// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pyhl highlights Python source code.
package main

import (
	"fmt"
	"os"

	"cogentcore.org/highlight/cmd"
)

func main() {
	root := cmd.NewRootCmd()
	args, err := cmd.Args(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "pyhl:", err)
		os.Exit(1)
	}
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

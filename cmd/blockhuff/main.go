// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bureau-foundation/blockhuff/cmd/blockhuff/commands"
)

func main() {
	os.Exit(exitCode(commands.Root().Execute(os.Args[1:])))
}

// exitCode maps the command tree's result to a process exit status.
// Errors carrying their own code have already reported themselves.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	return 1
}

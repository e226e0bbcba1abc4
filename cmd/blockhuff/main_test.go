// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bureau-foundation/blockhuff/cmd/blockhuff/cli"
	"github.com/bureau-foundation/blockhuff/cmd/blockhuff/commands"
)

// TestCommandTreeDocumented walks the production command tree and
// checks that every runnable command has a summary and a usage line
// naming its own path, so help output never shows a bare default.
func TestCommandTreeDocumented(t *testing.T) {
	walkCommands(commands.Root(), nil, func(command *cli.Command, path []string) {
		if len(path) == 1 {
			return
		}
		name := strings.Join(path, " ")
		if command.Summary == "" {
			t.Errorf("%s: missing Summary", name)
		}
		if command.Run != nil && command.Usage != "" && !strings.HasPrefix(command.Usage, name) {
			t.Errorf("%s: Usage %q does not start with the command path", name, command.Usage)
		}
	})
}

// walkCommands recursively visits every command in the tree,
// calling visit for each node with the accumulated command path.
func walkCommands(command *cli.Command, path []string, visit func(*cli.Command, []string)) {
	current := make([]string, len(path)+1)
	copy(current, path)
	current[len(path)] = command.Name
	visit(command, current)
	for _, sub := range command.Subcommands {
		walkCommands(sub, current, visit)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"plain error", errors.New("missing input"), 1},
		{"exit error", &cli.ExitError{Code: 1}, 1},
		{"wrapped exit error", fmt.Errorf("compare: %w", &cli.ExitError{Code: 2}), 2},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := exitCode(test.err); got != test.want {
				t.Errorf("exitCode(%v) = %d, want %d", test.err, got, test.want)
			}
		})
	}
}

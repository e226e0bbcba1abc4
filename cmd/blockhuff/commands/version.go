// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/blockhuff/cmd/blockhuff/cli"
	"github.com/bureau-foundation/blockhuff/lib/version"
)

type versionParams struct {
	cli.JSONOutput
}

func versionCommand(env Environment) *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("version", &params)
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("usage: blockhuff version [flags]")
			}
			if done, err := params.EmitJSON(env.Stdout, version.Current()); done {
				return err
			}
			fmt.Fprintf(env.Stdout, "blockhuff %s\n", version.Full())
			return nil
		},
	}
}

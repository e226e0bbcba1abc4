// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/blockhuff/cmd/blockhuff/cli"
	"github.com/bureau-foundation/blockhuff/lib/huffman"
)

type decompressParams struct {
	commonParams
	cli.JSONOutput
}

func decompressCommand(env Environment) *cli.Command {
	var params decompressParams

	return &cli.Command{
		Name:    "decompress",
		Aliases: []string{"x"},
		Summary: "Restore a file from a block Huffman artifact",
		Description: `Decompress <file> and write the original bytes next to it. The output
name drops the "-huffman.hc" suffix and gains an "extracted." prefix,
so notes.txt-huffman.hc restores to extracted.notes.txt.

The block size is read from the artifact; no flag is needed. A
malformed or truncated artifact is reported as a format error and the
partial output is removed (set keep_partial_output in the config to
keep it).`,
		Usage: "blockhuff decompress <file> [flags]",
		Examples: []cli.Example{
			{
				Description: "Restore a compressed file",
				Command:     "blockhuff decompress notes.txt-huffman.hc",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("decompress", &params)
		},
		Run: func(args []string) error {
			artifactPath, err := singleArgument(args, "blockhuff decompress <file> [flags]")
			if err != nil {
				return err
			}

			cfg, logger, err := env.setup(params.commonParams, "decompress")
			if err != nil {
				return err
			}

			engine := huffman.NewEngine(huffman.Options{
				Logger:            logger,
				KeepPartialOutput: cfg.KeepPartialOutput,
			})

			start := env.Clock.Now()
			result, err := engine.Decompress(artifactPath)
			if err != nil {
				return err
			}
			elapsed := env.Clock.Since(start)

			report := compressReport{
				Result:    *result,
				ElapsedMS: elapsed.Milliseconds(),
				Ratio:     result.Ratio(),
			}
			if done, err := params.EmitJSON(env.Stdout, report); done {
				return err
			}

			fmt.Fprintf(env.Stdout, "%s\n", result.OutputPath)
			fmt.Fprintf(env.Stdout, "  elapsed:  %d ms\n", report.ElapsedMS)
			fmt.Fprintf(env.Stdout, "  size:     %s\n", humanize.IBytes(uint64(result.OriginalBytes)))
			return nil
		},
	}
}

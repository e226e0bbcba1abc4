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

type compressParams struct {
	commonParams
	blockSizeParam
	cli.JSONOutput
}

// compressReport is the --json output of compress and decompress.
type compressReport struct {
	huffman.Result
	ElapsedMS int64   `json:"elapsed_ms"`
	Ratio     float64 `json:"ratio"`
}

func compressCommand(env Environment) *cli.Command {
	var params compressParams
	var flagSet *pflag.FlagSet

	return &cli.Command{
		Name:    "compress",
		Aliases: []string{"c"},
		Summary: "Compress a file with block Huffman coding",
		Description: `Compress <file> into <file>-huffman.hc.

The input is read in --block-size byte blocks. Each distinct block gets
a prefix-free code built from its frequency; bytes left over after the
last whole block are stored raw at the end of the artifact. The input
is read twice (once to count, once to encode), so it must not change
while compress runs.

Prints the artifact path, the elapsed time, and the compression ratio
(compressed size / original size; lower is better).`,
		Usage: "blockhuff compress <file> [flags]",
		Examples: []cli.Example{
			{
				Description: "Compress one byte per block",
				Command:     "blockhuff compress notes.txt",
			},
			{
				Description: "Compress 4-byte blocks and emit machine-readable stats",
				Command:     "blockhuff compress samples.bin --block-size 4 --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet = cli.FlagsFromParams("compress", &params)
			return flagSet
		},
		Run: func(args []string) error {
			inputPath, err := singleArgument(args, "blockhuff compress <file> [flags]")
			if err != nil {
				return err
			}

			cfg, logger, err := env.setup(params.commonParams, "compress")
			if err != nil {
				return err
			}
			blockSize := params.resolve(flagSet, cfg)

			engine := huffman.NewEngine(huffman.Options{
				Logger:            logger,
				KeepPartialOutput: cfg.KeepPartialOutput,
			})

			start := env.Clock.Now()
			result, err := engine.Compress(inputPath, blockSize)
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
			fmt.Fprintf(env.Stdout, "  size:     %s -> %s\n",
				humanize.IBytes(uint64(result.OriginalBytes)), humanize.IBytes(uint64(result.CompressedBytes)))
			fmt.Fprintf(env.Stdout, "  ratio:    %.4f\n", report.Ratio)
			fmt.Fprintf(env.Stdout, "  blocks:   %s x %d bytes (%s distinct), %d trailing bytes\n",
				humanize.Comma(int64(result.BlockCount)), result.BlockSize,
				humanize.Comma(int64(result.DistinctBlocks)), result.TrailingBytes)
			return nil
		},
	}
}

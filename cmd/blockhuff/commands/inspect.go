// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/blockhuff/cmd/blockhuff/cli"
	"github.com/bureau-foundation/blockhuff/lib/huffman"
)

type inspectParams struct {
	commonParams
	cli.JSONOutput
	cli.CBOROutput
	Codes bool `json:"codes" flag:"codes" desc:"list every block with its fingerprint and code"`
}

// fingerprintDisplayLength is how many hex digits of a block's BLAKE3
// fingerprint the text codebook shows. --json and --cbor carry all 64.
const fingerprintDisplayLength = 16

func inspectCommand(env Environment) *cli.Command {
	var params inspectParams

	return &cli.Command{
		Name:    "inspect",
		Summary: "Describe a block Huffman artifact without extracting it",
		Description: `Read an artifact's header and coding tree and report its block size,
block counts, section sizes, and code lengths. The payload is decoded
and discarded, so a corrupt artifact fails here the same way it would
fail decompress.

--codes adds the codebook: each distinct block (hex), its BLAKE3
fingerprint, and its code, in tree order. --cbor writes the report as
deterministic CBOR, suitable for byte-for-byte comparison.`,
		Usage: "blockhuff inspect <file> [flags]",
		Examples: []cli.Example{
			{
				Description: "Summarize an artifact",
				Command:     "blockhuff inspect notes.txt-huffman.hc",
			},
			{
				Description: "Dump the full codebook as JSON",
				Command:     "blockhuff inspect notes.txt-huffman.hc --codes --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("inspect", &params)
		},
		Run: func(args []string) error {
			artifactPath, err := singleArgument(args, "blockhuff inspect <file> [flags]")
			if err != nil {
				return err
			}
			if params.OutputJSON && params.OutputCBOR {
				return fmt.Errorf("--json and --cbor are mutually exclusive")
			}

			_, logger, err := env.setup(params.commonParams, "inspect")
			if err != nil {
				return err
			}

			engine := huffman.NewEngine(huffman.Options{Logger: logger})
			summary, err := engine.Inspect(artifactPath, params.Codes)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(env.Stdout, summary); done {
				return err
			}
			if done, err := params.EmitCBOR(env.Stdout, summary); done {
				return err
			}

			return printSummary(env, summary)
		},
	}
}

func printSummary(env Environment, summary *huffman.Summary) error {
	writer := tabwriter.NewWriter(env.Stdout, 2, 0, 2, ' ', 0)
	fmt.Fprintf(writer, "artifact:\t%s\n", summary.Path)
	fmt.Fprintf(writer, "block size:\t%d bytes\n", summary.BlockSize)
	fmt.Fprintf(writer, "blocks:\t%s (%s distinct)\n",
		humanize.Comma(int64(summary.BlockCount)), humanize.Comma(int64(summary.DistinctBlocks)))
	fmt.Fprintf(writer, "trailing bytes:\t%d\n", summary.TrailingBytes)
	fmt.Fprintf(writer, "header:\t%s\n", humanize.IBytes(uint64(summary.HeaderBytes)))
	fmt.Fprintf(writer, "payload:\t%s\n", humanize.IBytes(uint64(summary.PayloadBytes)))
	fmt.Fprintf(writer, "original:\t%s\n", humanize.IBytes(uint64(summary.OriginalBytes)))
	fmt.Fprintf(writer, "compressed:\t%s (ratio %.4f)\n",
		humanize.IBytes(uint64(summary.CompressedBytes)), summary.Ratio())
	fmt.Fprintf(writer, "tree depth:\t%d\n", summary.TreeDepth)
	fmt.Fprintf(writer, "code length:\tmin %d, mean %.2f, max %d bits\n",
		summary.MinCodeLength, summary.MeanCodeLength, summary.MaxCodeLength)
	if err := writer.Flush(); err != nil {
		return err
	}

	if len(summary.Codebook) == 0 {
		return nil
	}

	fmt.Fprintln(env.Stdout)
	writer = tabwriter.NewWriter(env.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintf(writer, "BLOCK\tFINGERPRINT\tCODE\n")
	for _, entry := range summary.Codebook {
		fmt.Fprintf(writer, "%s\t%s\t%s\n",
			entry.Block, entry.Fingerprint[:fingerprintDisplayLength], displayCode(entry.Code))
	}
	return writer.Flush()
}

// displayCode shows the empty code of a single-block artifact
// explicitly rather than as a blank column.
func displayCode(code string) string {
	if code == "" {
		return "(empty)"
	}
	return code
}

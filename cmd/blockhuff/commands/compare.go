// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/blockhuff/cmd/blockhuff/cli"
	"github.com/bureau-foundation/blockhuff/lib/baseline"
	"github.com/bureau-foundation/blockhuff/lib/huffman"
)

type compareParams struct {
	commonParams
	blockSizeParam
	cli.JSONOutput
	cli.ColorOutput
	Baselines   []string `json:"baselines" flag:"baseline" desc:"reference algorithms to measure: none, lz4, zstd, s2 (default: compare.algorithms from config)"`
	FailIfWorse bool     `json:"fail_if_worse" flag:"fail-if-worse" desc:"exit 1 when every baseline beats block Huffman"`
}

// compareReport is the --json output of compare.
type compareReport struct {
	Path          string        `json:"path"`
	BlockSize     int           `json:"block_size"`
	OriginalBytes int64         `json:"original_bytes"`
	Results       []compareLine `json:"results"`
}

type compareLine struct {
	Algorithm       string  `json:"algorithm"`
	CompressedBytes int64   `json:"compressed_bytes"`
	Ratio           float64 `json:"ratio"`
	ElapsedMS       int64   `json:"elapsed_ms"`
	Stored          bool    `json:"stored,omitempty"`
}

func compareCommand(env Environment) *cli.Command {
	var params compareParams
	var flagSet *pflag.FlagSet

	return &cli.Command{
		Name:    "compare",
		Summary: "Compare block Huffman against general-purpose compressors",
		Description: `Compress <file> in memory with block Huffman and with each baseline
algorithm, then print one row per algorithm: compressed size, ratio
(compressed / original; lower is better), and elapsed time. Nothing is
written to disk. Every baseline result is decompressed and checked
against the input before it is reported.

The baselines default to compare.algorithms from the config file
(lz4 and zstd unless configured otherwise).`,
		Usage: "blockhuff compare <file> [flags]",
		Examples: []cli.Example{
			{
				Description: "Compare one-byte blocks against lz4 and zstd",
				Command:     "blockhuff compare notes.txt",
			},
			{
				Description: "Compare four-byte blocks against zstd only",
				Command:     "blockhuff compare samples.bin --block-size 4 --baseline zstd",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet = cli.FlagsFromParams("compare", &params)
			return flagSet
		},
		Run: func(args []string) error {
			inputPath, err := singleArgument(args, "blockhuff compare <file> [flags]")
			if err != nil {
				return err
			}

			cfg, logger, err := env.setup(params.commonParams, "compare")
			if err != nil {
				return err
			}
			blockSize := params.resolve(flagSet, cfg)

			names := cfg.Compare.Algorithms
			if len(params.Baselines) > 0 {
				names = params.Baselines
			}
			algorithms, err := baseline.ParseAlgorithms(names)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			report := compareReport{
				Path:          inputPath,
				BlockSize:     blockSize,
				OriginalBytes: int64(len(data)),
			}

			start := env.Clock.Now()
			stats, err := huffman.Encode(bytes.NewReader(data), io.Discard, blockSize)
			if err != nil {
				return fmt.Errorf("block huffman: %w", err)
			}
			report.Results = append(report.Results, compareLine{
				Algorithm:       "huffman",
				CompressedBytes: stats.CompressedBytes,
				Ratio:           stats.Ratio(),
				ElapsedMS:       env.Clock.Since(start).Milliseconds(),
			})

			for _, algorithm := range algorithms {
				measureStart := env.Clock.Now()
				measurements, err := baseline.Measure(data, []baseline.Algorithm{algorithm})
				if err != nil {
					return fmt.Errorf("baseline %w", err)
				}
				measurement := measurements[0]
				report.Results = append(report.Results, compareLine{
					Algorithm:       measurement.Algorithm,
					CompressedBytes: measurement.CompressedBytes,
					Ratio:           measurement.Ratio(),
					ElapsedMS:       env.Clock.Since(measureStart).Milliseconds(),
					Stored:          measurement.Stored,
				})
				logger.Debug("baseline measured",
					"algorithm", measurement.Algorithm,
					"compressed_bytes", measurement.CompressedBytes,
					"stored", measurement.Stored,
				)
			}

			done, err := params.EmitJSON(env.Stdout, report)
			if err != nil {
				return err
			}
			if !done {
				renderer, err := params.Renderer(env.Stdout)
				if err != nil {
					return err
				}
				if err := printComparison(env.Stdout, renderer, report); err != nil {
					return err
				}
			}

			if params.FailIfWorse && huffmanLoses(report.Results) {
				logger.Info("every baseline beat block huffman", "path", inputPath, "block_size", blockSize)
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

// printComparison writes the report as a table, highlighting the row
// with the smallest output.
func printComparison(w io.Writer, renderer *lipgloss.Renderer, report compareReport) error {
	fmt.Fprintf(w, "%s: %s, %d-byte blocks\n\n",
		report.Path, humanize.IBytes(uint64(report.OriginalBytes)), report.BlockSize)

	var table bytes.Buffer
	writer := tabwriter.NewWriter(&table, 2, 0, 3, ' ', 0)
	fmt.Fprintf(writer, "ALGORITHM\tSIZE\tRATIO\tTIME\n")
	for _, line := range report.Results {
		size := humanize.IBytes(uint64(line.CompressedBytes))
		if line.Stored {
			size += " (stored)"
		}
		fmt.Fprintf(writer, "%s\t%s\t%.4f\t%d ms\n", line.Algorithm, size, line.Ratio, line.ElapsedMS)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	best := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	winner := smallestResult(report.Results)
	rows := strings.Split(strings.TrimSuffix(table.String(), "\n"), "\n")
	for i, row := range rows {
		// Row 0 is the heading.
		if i-1 == winner {
			row = best.Render(row)
		}
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

// smallestResult returns the index of the first line with the fewest
// compressed bytes, or -1 for no lines.
func smallestResult(results []compareLine) int {
	winner := -1
	for i, line := range results {
		if winner < 0 || line.CompressedBytes < results[winner].CompressedBytes {
			winner = i
		}
	}
	return winner
}

// huffmanLoses reports whether every baseline produced a smaller
// result than block Huffman (the first line). With no baselines there
// is nothing to lose to.
func huffmanLoses(results []compareLine) bool {
	if len(results) < 2 {
		return false
	}
	huffmanSize := results[0].CompressedBytes
	for _, line := range results[1:] {
		if line.CompressedBytes >= huffmanSize {
			return false
		}
	}
	return true
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/blockhuff/cmd/blockhuff/cli"
	"github.com/bureau-foundation/blockhuff/lib/clock"
	"github.com/bureau-foundation/blockhuff/lib/config"
)

// Environment is everything a command touches outside its arguments.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Clock  clock.Clock
}

// DefaultEnvironment writes to the process's stdout and stderr and
// reads the real clock.
func DefaultEnvironment() Environment {
	return Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Clock:  clock.Real(),
	}
}

// Root builds the command tree against the process environment.
func Root() *cli.Command {
	return NewRoot(DefaultEnvironment())
}

// NewRoot builds the command tree against env.
func NewRoot(env Environment) *cli.Command {
	return &cli.Command{
		Name: "blockhuff",
		Description: `blockhuff: block Huffman compression.

Splits a file into fixed-size blocks, builds a Huffman code over the
distinct blocks, and writes a self-describing artifact next to the
input. Any block size from 1 byte upward is allowed; larger blocks
trade a bigger stored tree for fewer, longer symbols.`,
		HelpOutput: env.Stderr,
		Subcommands: []*cli.Command{
			compressCommand(env),
			decompressCommand(env),
			inspectCommand(env),
			compareCommand(env),
			versionCommand(env),
		},
		Examples: []cli.Example{
			{
				Description: "Compress a file one byte per block",
				Command:     "blockhuff compress notes.txt",
			},
			{
				Description: "Compress with two-byte blocks",
				Command:     "blockhuff compress notes.txt --block-size 2",
			},
			{
				Description: "Restore the original (writes extracted.notes.txt)",
				Command:     "blockhuff decompress notes.txt-huffman.hc",
			},
			{
				Description: "See how block Huffman fares against lz4 and zstd",
				Command:     "blockhuff compare notes.txt --block-size 4",
			},
		},
	}
}

// commonParams are the flags every command accepts.
type commonParams struct {
	Config  string `json:"-" flag:"config" desc:"configuration file (default: $BLOCKHUFF_CONFIG, else built-in defaults)"`
	Verbose bool   `json:"-" flag:"verbose,v" desc:"log debug detail to stderr"`
}

// setup loads configuration and builds the command's logger.
func (env Environment) setup(common commonParams, command string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Resolve(common.Config)
	if err != nil {
		return nil, nil, err
	}

	level, err := cli.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if common.Verbose {
		level = slog.LevelDebug
	}

	logger := cli.NewCommandLogger(env.Stderr, level).With("command", command)
	logger.Debug("configuration loaded",
		"config", common.Config,
		"block_size", cfg.BlockSize,
		"keep_partial_output", cfg.KeepPartialOutput,
	)
	return cfg, logger, nil
}

// blockSizeParam is embedded by commands that take --block-size.
type blockSizeParam struct {
	BlockSize int `json:"-" flag:"block-size,n" desc:"bytes per block (default: block_size from config)"`
}

// resolve returns the block size to use: the flag when it was given,
// otherwise the configured default.
func (p blockSizeParam) resolve(flagSet *pflag.FlagSet, cfg *config.Config) int {
	if flagSet != nil && flagSet.Changed("block-size") {
		return p.BlockSize
	}
	return cfg.BlockSize
}

// singleArgument returns the only positional argument, or a usage
// error.
func singleArgument(args []string, usage string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: %s", usage)
	}
	return args[0], nil
}


// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
)

// Injected with -ldflags -X, for example:
//
//	go build -ldflags "-X github.com/bureau-foundation/blockhuff/lib/version.GitCommit=$(git rev-parse --short HEAD)" ./cmd/blockhuff
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	// GitDirty is "true" when the tree had uncommitted changes.
	GitDirty  = "false"
	BuildTime = "unknown"
)

// Build describes the running binary.
type Build struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	Dirty     bool   `json:"dirty"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Current collects the injected variables and the runtime's toolchain
// and platform.
func Current() Build {
	return Build{
		Version:   Version,
		GitCommit: GitCommit,
		Dirty:     GitDirty == "true",
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String is the one-line form, e.g. "0.1.0 (abc1234-dirty, 2026-02-10T12:00:00Z)".
func (b Build) String() string {
	commit := b.GitCommit
	if b.Dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (%s, %s)", b.Version, commit, b.BuildTime)
}

// Info returns Current().String().
func Info() string {
	return Current().String()
}

// Full is Info followed by the Go version and platform on indented
// lines.
func Full() string {
	build := Current()
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s", build, build.GoVersion, build.Platform)
}

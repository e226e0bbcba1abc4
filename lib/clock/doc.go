// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock is the injectable time source behind the elapsed-time
// figures the CLI prints.
//
// Commands hold a [Clock] and time their work as
//
//	start := env.Clock.Now()
//	result, err := engine.Compress(path, blockSize)
//	elapsed := env.Clock.Since(start)
//
// Production wires [Real]. Tests wire [Fake], usually with
// [FakeClock.Step] so every timed section reports a fixed duration.
package clock

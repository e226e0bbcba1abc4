// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sync"
	"time"
)

// FakeClock is a manually driven Clock. It is safe for concurrent use.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

// Fake returns a FakeClock reading initial. It only moves through
// Advance, Set, or the step configured with Step.
func Fake(initial time.Time) *FakeClock {
	return &FakeClock{current: initial}
}

// Step makes every subsequent Now call advance the clock by d after
// reading it. A section timed as Now ... Since then measures exactly
// d, whatever happens in between. Zero turns stepping off.
func (c *FakeClock) Step(d time.Duration) *FakeClock {
	if d < 0 {
		panic("clock: negative step")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.step = d
	return c
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.current
	c.current = c.current.Add(c.step)
	return now
}

// Since measures against the current reading without stepping.
func (c *FakeClock) Since(t time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current.Sub(t)
}

// Advance moves the clock forward by d. Negative d panics.
func (c *FakeClock) Advance(d time.Duration) {
	if d < 0 {
		panic("clock: Advance with negative duration")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// Set jumps the clock to t, which must not be earlier than the current
// reading.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.Before(c.current) {
		panic("clock: Set to a time before the current time")
	}
	c.current = t
}

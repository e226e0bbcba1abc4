// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorOutput adds --color to a params struct. Commands that highlight
// part of their text output build their styles from [ColorOutput.Renderer].
type ColorOutput struct {
	Color string `json:"-" flag:"color" desc:"highlight text output: auto, always, or never" default:"auto"`
}

// Renderer returns a lipgloss renderer for w honoring --color. auto
// styles only when w is a terminal; always forces 256 colors so piped
// output keeps its escapes; never renders plain text.
func (c *ColorOutput) Renderer(w io.Writer) (*lipgloss.Renderer, error) {
	switch c.Color {
	case "", "auto":
		return lipgloss.NewRenderer(w), nil
	case "always":
		// SetColorProfile is required: the renderer re-detects from the
		// environment unless a profile is set explicitly.
		renderer := lipgloss.NewRenderer(w, termenv.WithProfile(termenv.ANSI256))
		renderer.SetColorProfile(termenv.ANSI256)
		return renderer, nil
	case "never":
		renderer := lipgloss.NewRenderer(w, termenv.WithProfile(termenv.Ascii))
		renderer.SetColorProfile(termenv.Ascii)
		return renderer, nil
	default:
		return nil, fmt.Errorf("--color must be auto, always, or never, got %q", c.Color)
	}
}

// Where: cli/internal/ui/banner.go
// What: Dev server banner output.
// Why: Print the running URL the way front-end devs expect, with color on TTYs.
package ui

import (
	"fmt"
	"io"

	"github.com/gookit/color"
)

// Color styles used by the banner. Variables so tests can inspect or
// replace the rendering.
var (
	colorHeading = color.Bold.Sprint
	colorURL     = color.LightCyan.Sprint
	colorDim     = color.Gray.Sprint
)

// Banner prints dev server status lines.
type Banner struct {
	Out       io.Writer
	Colorized bool
}

// NewBanner creates a Banner. When colorized is false every helper falls
// back to plain text, for pipes and dumb terminals.
func NewBanner(out io.Writer, colorized bool) *Banner {
	return &Banner{Out: out, Colorized: colorized}
}

// Running prints the "App running at" block with the resolved base URL.
func (b *Banner) Running(baseURL string, network string) {
	fmt.Fprintln(b.Out)
	fmt.Fprintf(b.Out, "  %s\n", b.heading("App running at:"))
	fmt.Fprintf(b.Out, "  - Local:   %s\n", b.url(baseURL))
	if network != "" {
		fmt.Fprintf(b.Out, "  - Network: %s\n", b.url(network))
	}
	fmt.Fprintln(b.Out)
}

// Note prints a secondary, dimmed line under the banner.
func (b *Banner) Note(msg string) {
	fmt.Fprintf(b.Out, "  %s\n", b.dim(msg))
}

func (b *Banner) heading(s string) string {
	if !b.Colorized {
		return s
	}
	return colorHeading(s)
}

func (b *Banner) url(s string) string {
	if !b.Colorized {
		return s
	}
	return colorURL(s)
}

func (b *Banner) dim(s string) string {
	if !b.Colorized {
		return s
	}
	return colorDim(s)
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	minBarWidth = 10
	maxBarWidth = 60
)

// progressBar redraws a single status line on a terminal. It is disabled
// when the output is not a terminal.
type progressBar struct {
	out   io.Writer
	width int
	shown bool
}

func newProgressBar(f *os.File) *progressBar {
	cols, ok := terminalWidth(f)
	if !ok {
		return &progressBar{}
	}
	// Leave room for the brackets and the percentage.
	return &progressBar{out: f, width: max(minBarWidth, min(maxBarWidth, cols-8))}
}

func (b *progressBar) draw(remaining float64) {
	if b.out == nil {
		return
	}
	fmt.Fprintf(b.out, "\r%s", renderBar(remaining, b.width))
	b.shown = true
}

func (b *progressBar) clear() {
	if b.out == nil || !b.shown {
		return
	}
	fmt.Fprintf(b.out, "\r%s\r", strings.Repeat(" ", b.width+8))
	b.shown = false
}

// renderBar draws the fraction of time remaining as a bar of width cells
// followed by a percentage.
func renderBar(remaining float64, width int) string {
	remaining = max(0, min(1, remaining))
	filled := int(remaining*float64(width) + 0.5)
	return fmt.Sprintf("[%s%s] %3.0f%%",
		strings.Repeat("#", filled),
		strings.Repeat(".", width-filled),
		remaining*100)
}

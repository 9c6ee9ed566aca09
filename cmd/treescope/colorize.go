package main

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// useColor reports whether output written to w should be colorized.
// Color is only applied when w is a terminal and --no-color is unset.
func useColor(w io.Writer) bool {
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// colorizeDelta colors a line diff: additions green, removals red.
// Unchanged lines pass through untouched.
func colorizeDelta(delta string) string {
	lines := strings.Split(delta, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = color.GreenString("%s", line)
		case strings.HasPrefix(line, "-"):
			lines[i] = color.RedString("%s", line)
		}
	}
	return strings.Join(lines, "\n")
}

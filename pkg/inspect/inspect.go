package inspect

import (
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/treescope/tree"
	"github.com/joshuapare/treescope/tree/printer"
)

// DefaultMaxDepth is the expansion depth used when no options are given.
// Three levels is enough to orient in a value without flooding a terminal.
const DefaultMaxDepth = 3

// Options controls how a value is built and rendered.
type Options struct {
	// MaxDepth limits how many levels below the root are expanded.
	// Zero is meaningful and produces a single line; it is not replaced
	// by the default.
	// Default: 3
	MaxDepth int

	// RootLabel names the root node. An empty label falls back to "root".
	// Default: "root"
	RootLabel string
}

// DefaultOptions returns the options used by Print, Fprint and Sprint.
func DefaultOptions() Options {
	return Options{
		MaxDepth:  DefaultMaxDepth,
		RootLabel: tree.DefaultRootLabel,
	}
}

// Print renders value as a tree diagram on stdout with default options.
//
// Example:
//
//	inspect.Print(resp)
//	// └─ root (object)
//	//    ├─ Status (number): 200
//	//    └─ Body (string): "ok"
func Print(v any) error {
	return FprintWith(os.Stdout, v, DefaultOptions())
}

// Fprint renders value to w with default options.
func Fprint(w io.Writer, v any) error {
	return FprintWith(w, v, DefaultOptions())
}

// FprintWith renders value to w, terminated by a newline.
func FprintWith(w io.Writer, v any, opts Options) error {
	n, err := build(v, opts)
	if err != nil {
		return err
	}
	return printer.Fprint(w, n)
}

// Sprint returns the rendered tree with default options.
func Sprint(v any) (string, error) {
	return SprintWith(v, DefaultOptions())
}

// SprintWith returns the rendered tree. The string has no trailing
// newline, matching printer.Render.
func SprintWith(v any, opts Options) (string, error) {
	n, err := build(v, opts)
	if err != nil {
		return "", err
	}
	return printer.Render(n), nil
}

func build(v any, opts Options) (*tree.Node, error) {
	label := opts.RootLabel
	if label == "" {
		label = tree.DefaultRootLabel
	}
	n, err := tree.BuildLabeled(v, opts.MaxDepth, label)
	if err != nil {
		return nil, fmt.Errorf("build tree: %w", err)
	}
	return n, nil
}

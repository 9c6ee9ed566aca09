/*
Package inspect provides a high-level, ergonomic API for dumping runtime
values as tree diagrams.

# Quick Start

Print a value to stdout:

	err := inspect.Print(config)

# Features

  - One-function dump API with sensible defaults
  - Depth-limited breadth-first expansion
  - Cycle-safe traversal of self-referential values
  - Deterministic output (sorted map keys)
  - Line diffs between two value snapshots

# Basic Usage

Dump a value with the defaults (three levels, root labeled "root"):

	err := inspect.Print(server)
	if err != nil {
	    log.Fatal(err)
	}

Render into a string, or to a specific writer:

	text, err := inspect.Sprint(server)
	err = inspect.Fprint(os.Stderr, server)

Control depth and the root label:

	opts := inspect.Options{MaxDepth: 5, RootLabel: "server"}
	err := inspect.FprintWith(os.Stdout, server, opts)

# Diffing Snapshots

Compare two values structurally by diffing their rendered diagrams:

	delta, err := inspect.Diff(before, after, inspect.DefaultOptions())
	if delta != "" {
	    fmt.Print(delta)
	}

# Lower-Level Access

The facade wraps the tree and printer packages. Build the tree directly
when you need to walk or count nodes:

	n, err := tree.Build(value, 3)
	stats := tree.Count(n)
*/
package inspect

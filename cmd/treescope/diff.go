package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joshuapare/treescope/pkg/inspect"
	"github.com/spf13/cobra"
)

var (
	diffDepth int
	diffLabel string
)

func init() {
	cmd := newDiffCmd()
	cmd.Flags().IntVar(&diffDepth, "depth", inspect.DefaultMaxDepth, "Maximum expansion depth")
	cmd.Flags().StringVar(&diffLabel, "label", "root", "Label for the root node")
	rootCmd.AddCommand(cmd)
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Compare two documents and show differences",
		Long: `The diff command renders two YAML or JSON documents with the same
options and shows a line diff of the diagrams. Added lines are prefixed
with "+", removed lines with "-".

Example:
  treescope diff before.yaml after.yaml
  treescope diff before.yaml after.yaml --depth 5
  treescope diff old.json new.json --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
	return cmd
}

func runDiff(args []string) error {
	oldPath := args[0]
	newPath := args[1]

	printVerbose("Comparing %s and %s...\n", oldPath, newPath)

	oldValue, err := loadDocument(oldPath)
	if err != nil {
		return fmt.Errorf("failed to load old document: %w", err)
	}

	newValue, err := loadDocument(newPath)
	if err != nil {
		return fmt.Errorf("failed to load new document: %w", err)
	}

	opts := inspect.Options{MaxDepth: diffDepth, RootLabel: diffLabel}
	delta, err := inspect.Diff(oldValue, newValue, opts)
	if err != nil {
		return fmt.Errorf("failed to diff documents: %w", err)
	}

	// Output as JSON if requested
	if jsonOut {
		result := map[string]interface{}{
			"old":     oldPath,
			"new":     newPath,
			"changed": delta != "",
			"delta":   delta,
		}
		return printJSON(result)
	}

	if delta == "" {
		printInfo("No differences.\n")
		return nil
	}

	// Count changes before coloring
	added := 0
	removed := 0
	for _, line := range strings.Split(strings.TrimSuffix(delta, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			added++
		case strings.HasPrefix(line, "-"):
			removed++
		}
	}

	if useColor(os.Stdout) {
		delta = colorizeDelta(delta)
	}
	printInfo("%s", delta)
	printInfo("\nSummary:\n")
	printInfo("  Lines: +%d -%d\n", added, removed)

	return nil
}

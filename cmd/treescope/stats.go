package main

import (
	"fmt"
	"strings"

	"github.com/joshuapare/treescope/pkg/inspect"
	"github.com/joshuapare/treescope/tree"
	"github.com/spf13/cobra"
)

var (
	statsDepth int
	statsLabel string
)

func init() {
	cmd := newStatsCmd()
	cmd.Flags().IntVar(&statsDepth, "depth", inspect.DefaultMaxDepth, "Maximum expansion depth")
	cmd.Flags().StringVar(&statsLabel, "label", "root", "Label for the root node")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <document>",
		Short: "Show node statistics for a document tree",
		Long: `The stats command builds the tree for a YAML or JSON document and
shows node counts by kind plus structural information.

Example:
  treescope stats config.yaml
  treescope stats config.yaml --depth 5
  treescope stats config.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

func runStats(args []string) error {
	docPath := args[0]

	printVerbose("Loading document: %s\n", docPath)

	value, err := loadDocument(docPath)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	root, err := tree.BuildLabeled(value, statsDepth, statsLabel)
	if err != nil {
		return fmt.Errorf("failed to build tree: %w", err)
	}

	stats := tree.Count(root)

	// Output as JSON if requested
	if jsonOut {
		return printJSON(stats)
	}

	// Text output
	printInfo("\nTree Statistics: %s\n", docPath)
	printInfo("%s\n\n", strings.Repeat("═", 40))

	printInfo("Nodes:\n")
	printInfo("  Total: %d\n", stats.TotalNodes)

	kindCounts := []struct {
		label string
		count int
	}{
		{"object", stats.ObjectNodes},
		{"array", stats.ArrayNodes},
		{"string", stats.StringNodes},
		{"number", stats.NumberNodes},
		{"bool", stats.BoolNodes},
		{"func", stats.FuncNodes},
		{"chan", stats.ChanNodes},
		{"bigint", stats.BigIntNodes},
		{"nil", stats.NilNodes},
		{"invalid", stats.InvalidNodes},
		{"unreadable", stats.UnreadableNodes},
	}
	for _, kc := range kindCounts {
		if kc.count > 0 {
			printInfo("  %s: %d\n", kc.label, kc.count)
		}
	}

	printInfo("\nStructure:\n")
	printInfo("  Expanded: %d\n", stats.ExpandedNodes)
	printInfo("  Circular: %d\n", stats.CircularNodes)
	printInfo("  Max Depth: %d levels\n", stats.MaxDepth)

	return nil
}

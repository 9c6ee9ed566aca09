package main

import (
	"fmt"

	"github.com/joshuapare/treescope/pkg/inspect"
	"github.com/spf13/cobra"
)

var (
	dumpDepth int
	dumpLabel string
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpDepth, "depth", inspect.DefaultMaxDepth, "Maximum expansion depth")
	cmd.Flags().StringVar(&dumpLabel, "label", "root", "Label for the root node")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <document>",
		Short: "Render a document as a tree diagram",
		Long: `The dump command renders a YAML or JSON document as a tree diagram.
Pass "-" to read the document from stdin. With --json the decoded
document is printed as JSON instead of a diagram.

Example:
  treescope dump config.yaml
  treescope dump config.yaml --depth 2
  treescope dump deploy.json --label deploy
  cat config.yaml | treescope dump -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	docPath := args[0]

	printVerbose("Loading document: %s\n", docPath)

	value, err := loadDocument(docPath)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	// Output as JSON if requested
	if jsonOut {
		return printJSON(value)
	}

	opts := inspect.Options{MaxDepth: dumpDepth, RootLabel: dumpLabel}
	text, err := inspect.SprintWith(value, opts)
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}

	printInfo("%s\n", text)
	return nil
}

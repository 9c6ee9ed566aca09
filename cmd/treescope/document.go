package main

import (
	"os"

	"github.com/joshuapare/treescope/internal/docload"
)

// loadDocument reads a YAML or JSON document from path, or from stdin
// when path is "-".
func loadDocument(path string) (any, error) {
	if path == "-" {
		return docload.Decode(os.Stdin)
	}
	return docload.Load(path)
}

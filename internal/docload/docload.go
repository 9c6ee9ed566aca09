// Package docload reads structured documents into generic Go values so the
// inspection pipeline can walk them like any other runtime value.
package docload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnsupportedFormat indicates the file extension maps to no known
// document format.
var ErrUnsupportedFormat = errors.New("docload: unsupported document format")

// Load reads the document at path and decodes it into maps, slices and
// scalars. The format is chosen by extension: .yaml, .yml and .json are
// supported. JSON is parsed through the YAML decoder, of which it is a
// subset.
func Load(path string) (any, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads one YAML or JSON document from r. A UTF-8 or UTF-16 byte
// order mark is honored and stripped before parsing; input without a BOM
// is read as UTF-8.
func Decode(r io.Reader) (any, error) {
	bom := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, bom))
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return v, nil
}

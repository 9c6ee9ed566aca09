package inspect

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff line prefixes.
const (
	diffPrefixSame   = "  "
	diffPrefixDelete = "- "
	diffPrefixInsert = "+ "
)

// Diff renders both values with the same options and returns a
// line-oriented diff of the two diagrams. Lines only in a are prefixed
// with "- ", lines only in b with "+ ", unchanged lines with two
// spaces. The result is newline-terminated, or empty when the
// renderings are identical.
func Diff(a, b any, opts Options) (string, error) {
	oldText, err := SprintWith(a, opts)
	if err != nil {
		return "", fmt.Errorf("render old value: %w", err)
	}
	newText, err := SprintWith(b, opts)
	if err != nil {
		return "", fmt.Errorf("render new value: %w", err)
	}
	if oldText == newText {
		return "", nil
	}

	diffCfg := diffpatch.New()
	oldLines, newLines, lineIndex := diffCfg.DiffLinesToChars(oldText, newText)
	diffs := diffCfg.DiffMain(oldLines, newLines, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lineIndex)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := diffPrefixSame
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = diffPrefixDelete
		case diffpatch.DiffInsert:
			prefix = diffPrefixInsert
		}
		for _, line := range splitLines(d.Text) {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

// splitLines breaks a diff chunk into its lines. Chunks carry one line
// per "\n", except the final line of a diagram which has none.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

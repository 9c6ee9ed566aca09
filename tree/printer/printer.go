// Package printer renders inspection trees as indented text diagrams.
//
// The rendered format is a stable contract: anything that parses or diffs
// the text relies on the exact connector glyphs, indent units, value
// formatting and truncation defined here. Rendering is a pure function of
// the built tree and never touches the value the tree came from.
package printer

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/joshuapare/treescope/tree"
)

const (
	// connectorLast and connectorMid introduce a node's line depending on
	// whether it is the last of its siblings. The root always renders as a
	// last sibling.
	connectorLast = "└─ "
	connectorMid  = "├─ "

	// indentBlank and indentBar extend a child's prefix: blank below a
	// last sibling, a continuation bar below the others.
	indentBlank = "   "
	indentBar   = "│  "

	// maxTextRunes is where string values are cut; anything longer gets
	// the ellipsis appended inside the closing quote.
	maxTextRunes = 50
	ellipsis     = "..."
)

// Canonical renderings for the two no-value sentinels.
const (
	nilText     = "<nil>"
	invalidText = "<invalid>"
)

// Render returns the tree as a multi-line text diagram.
//
// Each line is <prefix><connector><name> (<kind>), followed by
// ": <value>" when the node carries a value. Lines are joined with
// newlines; there is no trailing newline.
//
// Example:
//
//	n, _ := tree.Build(map[string]any{"a": 1, "b": "bee"}, 2)
//	fmt.Println(printer.Render(n))
//
// produces:
//
//	└─ root (object)
//	   ├─ a (number): 1
//	   └─ b (string): "bee"
func Render(root *tree.Node) string {
	var sb strings.Builder
	writeNode(&sb, root, "", true)
	return sb.String()
}

// Fprint writes the rendered tree to w, terminated by a single newline.
func Fprint(w io.Writer, root *tree.Node) error {
	if _, err := io.WriteString(w, Render(root)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// writeNode emits one node line and recurses over its children. The
// recursion depth is bounded by the build depth, not the input value.
func writeNode(sb *strings.Builder, n *tree.Node, prefix string, last bool) {
	if sb.Len() > 0 {
		sb.WriteByte('\n')
	}

	connector := connectorMid
	if last {
		connector = connectorLast
	}
	sb.WriteString(prefix)
	sb.WriteString(connector)
	sb.WriteString(n.Name)
	sb.WriteString(" (")
	sb.WriteString(n.Kind.String())
	sb.WriteByte(')')

	if n.HasValue {
		sb.WriteString(": ")
		sb.WriteString(formatValue(n))
	}

	childPrefix := prefix + indentBar
	if last {
		childPrefix = prefix + indentBlank
	}
	for i, c := range n.Children {
		writeNode(sb, c, childPrefix, i == len(n.Children)-1)
	}
}

// formatValue renders a node's payload according to its kind.
func formatValue(n *tree.Node) string {
	switch n.Kind {
	case tree.KindObject, tree.KindArray, tree.KindUnreadable:
		// Marker values print verbatim, unquoted.
		if s, ok := n.Value.(string); ok {
			return s
		}
		return fmt.Sprint(n.Value)
	case tree.KindString:
		s, _ := n.Value.(string)
		return formatText(s)
	case tree.KindNil:
		return nilText
	case tree.KindInvalid:
		return invalidText
	case tree.KindChan:
		// The type is the channel's stable identity token; its address
		// would differ between runs.
		return fmt.Sprintf("%T", n.Value)
	case tree.KindBigInt:
		return formatBig(n.Value)
	default:
		return fmt.Sprint(n.Value)
	}
}

// formatText escapes embedded newlines as the literal two-character
// sequence \n, truncates to the first maxTextRunes runes with the ellipsis
// appended when anything was cut, and wraps the result in double quotes.
func formatText(s string) string {
	s = strings.ReplaceAll(s, "\n", `\n`)
	if runes := []rune(s); len(runes) > maxTextRunes {
		s = string(runes[:maxTextRunes]) + ellipsis
	}
	return `"` + s + `"`
}

func formatBig(v any) string {
	switch b := v.(type) {
	case *big.Int:
		return b.String()
	case *big.Float:
		return b.String()
	case *big.Rat:
		return b.RatString()
	case big.Int:
		return b.String()
	case big.Float:
		return b.String()
	case big.Rat:
		return b.RatString()
	default:
		return fmt.Sprint(v)
	}
}

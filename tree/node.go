package tree

// DefaultRootLabel is the name given to the root node when the caller does
// not supply one.
const DefaultRootLabel = "root"

// Marker values attached to nodes in place of real payloads. They render
// verbatim, unquoted.
const (
	// MarkerCircular is the value of a container node whose identity was
	// already on the path from the root (a reference cycle).
	MarkerCircular = "<circular>"

	// MarkerUnreadable is the value of a KindUnreadable node, standing in
	// for a member whose resolution failed.
	MarkerUnreadable = "<unreadable>"
)

// Node is a single labeled entry in an inspection tree.
//
// Nodes are created exclusively by Build and its variants, in one pass, and
// are not modified afterwards. The renderer treats them as read-only.
//
// Exactly one of {HasValue, Children != nil} holds per node, or neither (an
// unexpanded container or a func node), with one exception: a detected cycle
// keeps its container kind and carries MarkerCircular as its value with
// Children nil.
type Node struct {
	// Name is the member key, a bracketed list index such as "[0]", or the
	// root label.
	Name string

	// Kind is the classification tag, fixed at construction.
	Kind Kind

	// Value is the terminal payload or a marker. Meaningful only when
	// HasValue is set; KindNil and KindInvalid nodes hold a nil Value.
	Value any

	// HasValue distinguishes "value is nil" from "no value at all".
	HasValue bool

	// Children holds expanded members in enumeration order. A nil slice
	// means the node was never expanded; an empty non-nil slice means it
	// was expanded and had no members.
	Children []*Node
}

// Expanded reports whether the builder expanded this node's members.
// True for containers within the depth bound, including empty ones.
func (n *Node) Expanded() bool {
	return n.Children != nil
}

// Circular reports whether this node marks a detected reference cycle.
func (n *Node) Circular() bool {
	return n.Kind.IsContainer() && n.HasValue
}

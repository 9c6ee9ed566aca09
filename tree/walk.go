package tree

import "errors"

// initialStackCapacity is the pre-allocated capacity for the walk stack.
// Inspection trees are depth-bounded and usually small, so 64 avoids most
// reallocations.
const initialStackCapacity = 64

// ErrStopWalk is a sentinel error that can be returned from walk callbacks
// to stop the walk early without triggering an error condition.
var ErrStopWalk = errors.New("stop walk")

// Walk visits every node in pre-order and calls fn with the node and its
// depth below the root (root = 0). Children are visited in their stored
// order. If fn returns ErrStopWalk, the walk stops early and nil is
// returned. Any other error from fn is returned to the caller.
func Walk(root *Node, fn func(n *Node, depth int) error) error {
	if root == nil {
		return nil
	}

	type frame struct {
		node  *Node
		depth int
	}
	stack := make([]frame, 0, initialStackCapacity)
	stack = append(stack, frame{node: root})

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := fn(f.node, f.depth); err != nil {
			if errors.Is(err, ErrStopWalk) {
				return nil // Normal early termination
			}
			return err
		}

		// Push in reverse so children pop in stored order.
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: f.node.Children[i], depth: f.depth + 1})
		}
	}
	return nil
}

// Stats contains per-kind node counts for a built tree.
type Stats struct {
	TotalNodes int

	// By kind
	ObjectNodes     int
	ArrayNodes      int
	StringNodes     int
	NumberNodes     int
	BoolNodes       int
	FuncNodes       int
	ChanNodes       int
	BigIntNodes     int
	NilNodes        int
	InvalidNodes    int
	UnreadableNodes int

	// By shape
	ExpandedNodes int // containers whose members were enumerated
	CircularNodes int // containers marked as cycles
	MaxDepth      int // deepest node's depth below the root
}

// Count traverses the tree and returns statistics about all nodes.
//
// Example:
//
//	stats := tree.Count(n)
//	fmt.Printf("Total nodes: %d\n", stats.TotalNodes)
//	fmt.Printf("Unreadable:  %d\n", stats.UnreadableNodes)
func Count(root *Node) Stats {
	var s Stats
	_ = Walk(root, func(n *Node, depth int) error {
		s.TotalNodes++
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		if n.Expanded() {
			s.ExpandedNodes++
		}
		if n.Circular() {
			s.CircularNodes++
		}
		switch n.Kind {
		case KindObject:
			s.ObjectNodes++
		case KindArray:
			s.ArrayNodes++
		case KindString:
			s.StringNodes++
		case KindNumber:
			s.NumberNodes++
		case KindBool:
			s.BoolNodes++
		case KindFunc:
			s.FuncNodes++
		case KindChan:
			s.ChanNodes++
		case KindBigInt:
			s.BigIntNodes++
		case KindNil:
			s.NilNodes++
		case KindInvalid:
			s.InvalidNodes++
		case KindUnreadable:
			s.UnreadableNodes++
		}
		return nil
	})
	return s
}

// Package tree converts arbitrary runtime values into bounded-depth
// inspection trees.
//
// # Overview
//
// Build walks any Go value through reflection and produces an immutable
// tree of labeled, kind-tagged nodes suitable for rendering as a text
// diagram (see the printer subpackage). The walk is safe on hostile input:
// reference cycles are detected per path and marked, a panicking String or
// Error method costs exactly one marked node, and depth is bounded up
// front, so the output of inspecting a broken value is itself never broken.
//
// # Traversal
//
// Containers (structs, maps, slices, arrays) are expanded breadth-first
// over an explicit FIFO queue, keeping the call stack flat regardless of
// nesting. Each queue item carries its own copy of the visited set, scoped
// to the path from the root, so a value shared by two sibling branches is
// expanded in both while a genuine cycle is cut in exactly the branch that
// closes it.
//
// Enumeration order is deterministic: struct fields in declaration order,
// map keys sorted (numerically when all keys are numeric, lexically
// otherwise), list indices ascending. Two builds of the same value render
// byte-identically.
//
// # Kinds
//
// Every node carries one tag from a closed set (see Kind). Pointers and
// interfaces are unwrapped before classification, so a *Config member and
// a Config member produce the same subtree. Unexported struct fields are
// not part of the enumerable surface and are skipped.
//
// # Depth
//
// maxDepth counts expansion levels below the root: 0 yields only the root
// node, 1 enumerates the root's members, 2 their members, and so on.
// Containers past the bound stay in the tree as unexpanded leaves.
//
// # Building a Tree
//
//	n, err := tree.Build(server, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	stats := tree.Count(n)
//	fmt.Printf("inspected %d nodes\n", stats.TotalNodes)
//
// For rendered output, pass the root to printer.Render. For one-call
// convenience, see the pkg/inspect facade.
package tree

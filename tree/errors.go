package tree

import "fmt"

// DepthError reports a max depth that cannot bound a traversal. It is the
// only error Build returns; every per-member failure is absorbed into a
// KindUnreadable node instead.
type DepthError struct {
	// Depth is the offending value as passed by the caller.
	Depth int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("tree: invalid max depth %d", e.Depth)
}

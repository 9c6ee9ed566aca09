package tree

// Kind classifies a node by the shape of the value it was built from.
// The set is closed: every node carries exactly one of these tags, assigned
// once during construction and never revised afterwards.
type Kind int

const (
	// KindObject is a key/value container: a struct or a map.
	KindObject Kind = iota

	// KindArray is an ordered, integer-indexed container: a slice or an
	// array. Byte slices are classified KindString instead.
	KindArray

	// KindString is textual data: a string, a byte slice, or a struct
	// whose error/fmt.Stringer result was captured during construction.
	KindString

	// KindNumber covers all integer, unsigned, float and complex values.
	KindNumber

	// KindBool is a boolean.
	KindBool

	// KindFunc is a function reference. Func nodes carry neither a value
	// nor children; the tag itself is the information.
	KindFunc

	// KindChan is a channel, rendered as its type (an identity token,
	// stable across runs unlike the channel's address).
	KindChan

	// KindBigInt is a math/big Int, Float or Rat, by value or pointer.
	KindBigInt

	// KindNil marks a nil interface or nil pointer: a reference that
	// exists but points at nothing.
	KindNil

	// KindInvalid marks the absence of a readable value, e.g. a map entry
	// that vanished between key enumeration and lookup. Distinct from
	// KindNil and preserved as such end to end.
	KindInvalid

	// KindUnreadable is synthetic, assigned only by the builder when
	// resolving a member failed. The node's value is MarkerUnreadable.
	KindUnreadable
)

// String returns the tag rendered inside parentheses after a node's name.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindFunc:
		return "func"
	case KindChan:
		return "chan"
	case KindBigInt:
		return "bigint"
	case KindNil:
		return "nil"
	case KindInvalid:
		return "invalid"
	case KindUnreadable:
		return "unreadable"
	default:
		return "unknown"
	}
}

// IsContainer reports whether nodes of this kind can hold children.
func (k Kind) IsContainer() bool {
	return k == KindObject || k == KindArray
}

// IsTerminal reports whether nodes of this kind carry a value rather than
// children. Func nodes are neither: they carry nothing at all.
func (k Kind) IsTerminal() bool {
	return !k.IsContainer() && k != KindFunc
}

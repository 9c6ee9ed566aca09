package tree

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"sort"
	"strconv"

	"github.com/joshuapare/treescope/internal/reflectread"
)

// maxPointerHops bounds the type-level walk that names the pointee of a
// circular pointer. Self-referential pointer types bottom out as KindObject.
const maxPointerHops = 8

// Build converts value into a bounded-depth inspection tree rooted at a
// node named "root".
//
// maxDepth controls how many levels below the root may be expanded into
// children: 0 produces only the root, 1 expands the root's own members,
// and so on. A negative maxDepth returns a DepthError before any traversal.
//
// The walk is breadth-first over an explicit queue, so arbitrarily deep
// inputs never grow the call stack. Reference cycles are detected per path
// and marked with MarkerCircular; a member whose resolution fails becomes a
// KindUnreadable node while its siblings continue unaffected.
//
// Example:
//
//	n, err := tree.Build(cfg, 3)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(printer.Render(n))
func Build(value any, maxDepth int) (*Node, error) {
	return BuildLabeled(value, maxDepth, DefaultRootLabel)
}

// BuildLabeled is Build with a caller-chosen root label.
func BuildLabeled(value any, maxDepth int, label string) (*Node, error) {
	if maxDepth < 0 {
		return nil, &DepthError{Depth: maxDepth}
	}
	if value == nil {
		return &Node{Name: label, Kind: KindNil}, nil
	}
	return BuildValue(reflect.ValueOf(value), maxDepth, label)
}

// BuildValue builds a tree from an already-reflected value. An invalid
// reflect.Value yields a KindInvalid root carrying the absent sentinel,
// which plain Build cannot express (a nil any is KindNil instead).
func BuildValue(rv reflect.Value, maxDepth int, label string) (*Node, error) {
	if maxDepth < 0 {
		return nil, &DepthError{Depth: maxDepth}
	}

	b := &builder{maxDepth: maxDepth}
	res := b.resolve(rv, nil)
	root := &Node{Name: label, Kind: res.kind}

	switch {
	case res.circular:
		root.Value = MarkerCircular
		root.HasValue = true
	case res.kind.IsContainer():
		if maxDepth == 0 {
			break
		}
		root.Children = []*Node{}
		b.queue = append(b.queue, workItem{
			container: res.value,
			depth:     0,
			parent:    root,
			visited:   newVisited(nil, res.hops, reflectread.Identity(res.value)),
		})
		b.run()
	case res.kind == KindNil, res.kind == KindFunc:
		// Bare node: at the root the tag alone is the information.
	default:
		root.Value, root.Kind = b.terminalValue(res)
		root.HasValue = true
	}
	return root, nil
}

// workItem is one pending container expansion. Items are owned by a single
// builder and never outlive the Build call that created them.
type workItem struct {
	container reflect.Value
	depth     int
	parent    *Node
	visited   map[uintptr]struct{}
}

// builder carries the queue state for one Build call. A fresh builder per
// call keeps concurrent Build invocations fully independent.
type builder struct {
	maxDepth int
	queue    []workItem
}

func (b *builder) run() {
	for len(b.queue) > 0 {
		it := b.queue[0]
		b.queue = b.queue[1:]
		b.expand(it)
	}
}

func (b *builder) expand(it workItem) {
	switch it.container.Kind() {
	case reflect.Slice, reflect.Array:
		b.expandList(it)
	case reflect.Map:
		b.expandMap(it)
	case reflect.Struct:
		b.expandStruct(it)
	}
}

func (b *builder) expandList(it workItem) {
	for i, n := 0, it.container.Len(); i < n; i++ {
		label := "[" + strconv.Itoa(i) + "]"
		ev, err := reflectread.Index(it.container, i)
		if err != nil {
			b.appendUnreadable(it.parent, label)
			continue
		}
		b.appendChild(it, label, ev)
	}
}

func (b *builder) expandMap(it workItem) {
	entries, err := sortedEntries(it.container)
	if err != nil {
		// Key enumeration itself failed; the node stays an expanded
		// container with no children.
		return
	}
	for _, e := range entries {
		mv, err := reflectread.MapValue(it.container, e.key)
		if err != nil {
			b.appendUnreadable(it.parent, e.label)
			continue
		}
		b.appendChild(it, e.label, mv)
	}
}

func (b *builder) expandStruct(it workItem) {
	t := it.container.Type()
	for i, n := 0, t.NumField(); i < n; i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fv, err := reflectread.Field(it.container, i)
		if err != nil {
			b.appendUnreadable(it.parent, f.Name)
			continue
		}
		b.appendChild(it, f.Name, fv)
	}
}

// appendChild classifies one resolved member and attaches it to the parent,
// enqueueing a further expansion when the member is a container within both
// the depth bound and the path's cycle guard.
func (b *builder) appendChild(it workItem, label string, raw reflect.Value) {
	res := b.resolve(raw, it.visited)
	if res.circular {
		b.appendCircular(it.parent, label, res.kind)
		return
	}

	switch {
	case res.kind.IsContainer():
		id := reflectread.Identity(res.value)
		if id != 0 && setHas(it.visited, id) {
			b.appendCircular(it.parent, label, res.kind)
			return
		}
		child := &Node{Name: label, Kind: res.kind}
		if it.depth+1 < b.maxDepth {
			child.Children = []*Node{}
			b.queue = append(b.queue, workItem{
				container: res.value,
				depth:     it.depth + 1,
				parent:    child,
				visited:   newVisited(it.visited, res.hops, id),
			})
		}
		it.parent.Children = append(it.parent.Children, child)
	case res.kind == KindFunc:
		// Callables are never expanded and carry no value.
		it.parent.Children = append(it.parent.Children, &Node{Name: label, Kind: KindFunc})
	default:
		val, kind := b.terminalValue(res)
		it.parent.Children = append(it.parent.Children, &Node{
			Name:     label,
			Kind:     kind,
			Value:    val,
			HasValue: true,
		})
	}
}

func (b *builder) appendCircular(parent *Node, label string, kind Kind) {
	parent.Children = append(parent.Children, &Node{
		Name:     label,
		Kind:     kind,
		Value:    MarkerCircular,
		HasValue: true,
	})
}

func (b *builder) appendUnreadable(parent *Node, label string) {
	parent.Children = append(parent.Children, &Node{
		Name:     label,
		Kind:     KindUnreadable,
		Value:    MarkerUnreadable,
		HasValue: true,
	})
}

// terminalValue extracts the payload for a non-container node. A textual
// member whose getter fails degrades to KindUnreadable here, which is the
// last point where the kind can still change.
func (b *builder) terminalValue(res resolved) (any, Kind) {
	rv := res.value
	switch res.kind {
	case KindString:
		switch rv.Kind() {
		case reflect.String:
			return rv.String(), KindString
		case reflect.Slice:
			return string(rv.Bytes()), KindString
		default:
			// Struct or pointer with an error/Stringer contract.
			s, err := reflectread.AsText(rv)
			if err != nil {
				return MarkerUnreadable, KindUnreadable
			}
			return s, KindString
		}
	case KindNil, KindInvalid:
		return nil, res.kind
	case KindUnreadable:
		return MarkerUnreadable, KindUnreadable
	default:
		return rv.Interface(), res.kind
	}
}

// resolved is the outcome of unwrapping one raw member value.
type resolved struct {
	value    reflect.Value
	kind     Kind
	hops     []uintptr // pointer identities crossed while unwrapping
	circular bool      // an identity repeated along the path
}

// resolve unwraps interfaces and pointers down to a classifiable value,
// recording the identity of every pointer crossed. Unwrapping stops early
// at nil references, math/big values, textual structs reached by pointer,
// and pointers whose identity is already on the path (the cycle case).
func (b *builder) resolve(raw reflect.Value, visited map[uintptr]struct{}) resolved {
	rv := raw
	var hops []uintptr
	for {
		if !rv.IsValid() {
			return resolved{value: rv, kind: KindInvalid, hops: hops}
		}
		switch rv.Kind() {
		case reflect.Interface:
			if rv.IsNil() {
				return resolved{value: rv, kind: KindNil, hops: hops}
			}
			rv = rv.Elem()
		case reflect.Pointer:
			if rv.IsNil() {
				return resolved{value: rv, kind: KindNil, hops: hops}
			}
			t := rv.Type()
			if isBig(t.Elem()) {
				return resolved{value: rv, kind: KindBigInt, hops: hops}
			}
			if t.Elem().Kind() == reflect.Struct && reflectread.IsTextual(t) {
				return resolved{value: rv, kind: KindString, hops: hops}
			}
			id := rv.Pointer()
			if id != 0 && (setHas(visited, id) || hopsHave(hops, id)) {
				return resolved{value: rv, kind: pointeeKind(t), hops: hops, circular: true}
			}
			hops = append(hops, id)
			rv = rv.Elem()
		default:
			return resolved{value: rv, kind: kindOf(rv), hops: hops}
		}
	}
}

// kindOf classifies a fully unwrapped, non-pointer, non-interface value.
// The mapping is total: unknown reflect kinds fall back to KindUnreadable
// rather than failing.
func kindOf(rv reflect.Value) Kind {
	switch rv.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return KindString
		}
		return KindArray
	case reflect.Array:
		return KindArray
	case reflect.Map:
		return KindObject
	case reflect.Struct:
		t := rv.Type()
		if isBig(t) {
			return KindBigInt
		}
		if reflectread.IsTextual(t) || reflectread.IsTextual(reflect.PointerTo(t)) {
			return KindString
		}
		return KindObject
	case reflect.Chan:
		return KindChan
	case reflect.Func:
		return KindFunc
	default:
		return KindUnreadable
	}
}

// pointeeKind names the container a circular pointer would have resolved to.
func pointeeKind(t reflect.Type) Kind {
	for i := 0; i < maxPointerHops; i++ {
		switch t.Kind() {
		case reflect.Pointer:
			t = t.Elem()
		case reflect.Slice, reflect.Array:
			return KindArray
		default:
			return KindObject
		}
	}
	return KindObject
}

var (
	bigIntType   = reflect.TypeOf(big.Int{})
	bigFloatType = reflect.TypeOf(big.Float{})
	bigRatType   = reflect.TypeOf(big.Rat{})
)

func isBig(t reflect.Type) bool {
	return t == bigIntType || t == bigFloatType || t == bigRatType
}

// newVisited derives a branch-local visited set: the parent path's set plus
// the pointer hops crossed to reach the member plus the member's own
// identity. Each branch owns its copy so sibling subtrees cannot poison
// each other's cycle detection.
func newVisited(base map[uintptr]struct{}, hops []uintptr, id uintptr) map[uintptr]struct{} {
	next := make(map[uintptr]struct{}, len(base)+len(hops)+1)
	for k := range base {
		next[k] = struct{}{}
	}
	for _, h := range hops {
		next[h] = struct{}{}
	}
	if id != 0 {
		next[id] = struct{}{}
	}
	return next
}

func setHas(set map[uintptr]struct{}, id uintptr) bool {
	_, ok := set[id]
	return ok
}

func hopsHave(hops []uintptr, id uintptr) bool {
	for _, h := range hops {
		if h == id {
			return true
		}
	}
	return false
}

// mapEntry pairs a map key with its rendered label so enumeration order can
// be fixed before any value lookups happen.
type mapEntry struct {
	key   reflect.Value
	label string
}

// sortedEntries returns a map's keys in deterministic order: numerically
// when every key is numeric (NaN keys first), lexically by label otherwise.
// Distinct keys can share one label (int32(1) and int64(1) both print "1"),
// so label ties are broken by the key's dynamic type name. Go maps iterate
// in random order; sorting restores the stable enumeration the tree
// contract requires.
func sortedEntries(rv reflect.Value) ([]mapEntry, error) {
	keys, err := reflectread.MapKeys(rv)
	if err != nil {
		return nil, err
	}

	entries := make([]mapEntry, len(keys))
	numeric := true
	for i, k := range keys {
		entries[i] = mapEntry{key: k, label: keyLabel(k)}
		if !isNumericKey(k) {
			numeric = false
		}
	}

	if numeric {
		sort.Slice(entries, func(i, j int) bool {
			return numericLess(entries[i], entries[j])
		})
	} else {
		sort.Slice(entries, func(i, j int) bool {
			return lexicalLess(entries[i], entries[j])
		})
	}
	return entries, nil
}

func keyLabel(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}

// lexicalLess orders entries by label; colliding labels fall back to the
// key's dynamic type name. sort.Slice is unstable, so a comparator tie
// would leave the randomized MapKeys order showing through.
func lexicalLess(a, b mapEntry) bool {
	if a.label != b.label {
		return a.label < b.label
	}
	return keyTypeName(a.key) < keyTypeName(b.key)
}

// keyTypeName names the key's dynamic type. Interface-typed keys report
// the concrete type they hold; the nil key keeps the interface type itself.
func keyTypeName(k reflect.Value) string {
	if k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	return k.Type().String()
}

func isNumericKey(k reflect.Value) bool {
	if k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func numericLess(a, b mapEntry) bool {
	x, y := keyFloat(a.key), keyFloat(b.key)
	switch {
	case math.IsNaN(x) && math.IsNaN(y):
		return lexicalLess(a, b)
	case math.IsNaN(x):
		return true
	case math.IsNaN(y):
		return false
	case x != y:
		return x < y
	default:
		// Distinct keys can collapse to one float64 and print one label
		// (int32(1) and int64(1)); lexicalLess settles both ties.
		return lexicalLess(a, b)
	}
}

func keyFloat(k reflect.Value) float64 {
	if k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(k.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(k.Uint())
	default:
		return k.Float()
	}
}

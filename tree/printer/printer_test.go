package printer

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/treescope/tree"
)

// render builds a tree for value and renders it, failing on builder errors.
func render(t *testing.T, value any, maxDepth int) string {
	t.Helper()

	n, err := tree.Build(value, maxDepth)
	require.NoError(t, err)
	out := Render(n)
	t.Logf("rendered:\n%s", out)
	return out
}

func TestRender_StringRoot(t *testing.T) {
	out := render(t, "hello", 1)
	require.Equal(t, `└─ root (string): "hello"`, out)
}

func TestRender_ObjectMembers(t *testing.T) {
	out := render(t, map[string]any{"a": 1, "b": "bee"}, 2)

	expected := "└─ root (object)\n" +
		"   ├─ a (number): 1\n" +
		`   └─ b (string): "bee"`
	require.Equal(t, expected, out)
}

func TestRender_NestedUnexpanded(t *testing.T) {
	out := render(t, map[string]any{"level1": map[string]string{"level2": "hi"}}, 1)
	require.Equal(t, "└─ root (object)\n   └─ level1 (object)", out)
}

func TestRender_DepthZeroIsOneLine(t *testing.T) {
	out := render(t, map[string]int{"a": 1, "b": 2}, 0)
	require.Equal(t, "└─ root (object)", out)
	require.NotContains(t, out, "\n")
}

func TestRender_EmptyContainerIsOneLine(t *testing.T) {
	out := render(t, map[string]int{}, 3)
	require.Equal(t, "└─ root (object)", out)
}

func TestRender_NoTrailingNewline(t *testing.T) {
	out := render(t, []int{1, 2, 3}, 2)
	require.False(t, strings.HasSuffix(out, "\n"))
}

func TestRender_TruncatesLongStrings(t *testing.T) {
	long := strings.Repeat("x", 60)
	out := render(t, long, 1)

	expected := `└─ root (string): "` + strings.Repeat("x", 50) + `..."`
	require.Equal(t, expected, out)
}

func TestRender_FiftyRuneStringNotTruncated(t *testing.T) {
	exact := strings.Repeat("y", 50)
	out := render(t, exact, 1)
	require.Equal(t, `└─ root (string): "`+exact+`"`, out)
	require.NotContains(t, out, "...")
}

func TestRender_TruncationCountsRunes(t *testing.T) {
	// 60 multi-byte runes must cut at 50 runes, not 50 bytes.
	long := strings.Repeat("é", 60)
	out := render(t, long, 1)
	require.Equal(t, `└─ root (string): "`+strings.Repeat("é", 50)+`..."`, out)
}

func TestRender_EscapesNewlines(t *testing.T) {
	out := render(t, "line one\nline two", 1)
	require.Equal(t, `└─ root (string): "line one\nline two"`, out)
}

func TestRender_NewlinesEscapedBeforeTruncation(t *testing.T) {
	// 30 newlines escape to 60 characters, so the escaped form truncates
	// even though the raw string is short.
	raw := strings.Repeat("\n", 30)
	out := render(t, raw, 1)
	require.Equal(t, `└─ root (string): "`+strings.Repeat(`\n`, 25)+`..."`, out)
}

func TestRender_ConnectorMatrix(t *testing.T) {
	// Hand-built tree exercising every connector and indent combination:
	// a mid sibling with children (bar indent) and a last sibling with
	// children (blank indent).
	root := &tree.Node{
		Name: "root",
		Kind: tree.KindObject,
		Children: []*tree.Node{
			{
				Name: "first",
				Kind: tree.KindObject,
				Children: []*tree.Node{
					{Name: "x", Kind: tree.KindNumber, Value: 1, HasValue: true},
					{Name: "y", Kind: tree.KindNumber, Value: 2, HasValue: true},
				},
			},
			{
				Name: "second",
				Kind: tree.KindArray,
				Children: []*tree.Node{
					{Name: "[0]", Kind: tree.KindBool, Value: true, HasValue: true},
				},
			},
		},
	}

	expected := "└─ root (object)\n" +
		"   ├─ first (object)\n" +
		"   │  ├─ x (number): 1\n" +
		"   │  └─ y (number): 2\n" +
		"   └─ second (array)\n" +
		"      └─ [0] (bool): true"
	require.Equal(t, expected, Render(root))
}

func TestRender_CircularMarkerVerbatim(t *testing.T) {
	m := map[string]any{}
	m["self"] = m
	out := render(t, m, 3)

	require.Equal(t, "└─ root (object)\n   └─ self (object): <circular>", out)
}

func TestRender_UnreadableMarkerVerbatim(t *testing.T) {
	n := &tree.Node{
		Name: "root",
		Kind: tree.KindObject,
		Children: []*tree.Node{
			{Name: "broken", Kind: tree.KindUnreadable, Value: tree.MarkerUnreadable, HasValue: true},
		},
	}
	require.Equal(t, "└─ root (object)\n   └─ broken (unreadable): <unreadable>", Render(n))
}

func TestRender_NilAndInvalidSentinels(t *testing.T) {
	n := &tree.Node{
		Name: "root",
		Kind: tree.KindObject,
		Children: []*tree.Node{
			{Name: "gone", Kind: tree.KindNil, HasValue: true},
			{Name: "lost", Kind: tree.KindInvalid, HasValue: true},
		},
	}
	expected := "└─ root (object)\n" +
		"   ├─ gone (nil): <nil>\n" +
		"   └─ lost (invalid): <invalid>"
	require.Equal(t, expected, Render(n))
}

func TestRender_FuncAndBareContainersHaveNoSuffix(t *testing.T) {
	type sample struct {
		Do   func()
		Deep map[string]int
	}
	out := render(t, sample{Do: func() {}, Deep: map[string]int{"k": 1}}, 1)

	expected := "└─ root (object)\n" +
		"   ├─ Do (func)\n" +
		"   └─ Deep (object)"
	require.Equal(t, expected, out)
}

func TestRender_NumberForms(t *testing.T) {
	out := render(t, []any{1, 2.5, -3, uint(7)}, 1)

	expected := "└─ root (array)\n" +
		"   ├─ [0] (number): 1\n" +
		"   ├─ [1] (number): 2.5\n" +
		"   ├─ [2] (number): -3\n" +
		"   └─ [3] (number): 7"
	require.Equal(t, expected, out)
}

func TestRender_BigIntForms(t *testing.T) {
	type sample struct {
		N *big.Int
		R *big.Rat
	}
	out := render(t, sample{N: big.NewInt(42), R: big.NewRat(7, 2)}, 1)

	expected := "└─ root (object)\n" +
		"   ├─ N (bigint): 42\n" +
		"   └─ R (bigint): 7/2"
	require.Equal(t, expected, out)
}

func TestRender_ChanShowsType(t *testing.T) {
	type sample struct {
		C chan string
	}
	out := render(t, sample{C: make(chan string)}, 1)
	require.Equal(t, "└─ root (object)\n   └─ C (chan): chan string", out)
}

func TestRender_Deterministic(t *testing.T) {
	v := map[string]any{
		"list":   []any{1, "two", true},
		"nested": map[string]int{"z": 26, "a": 1, "m": 13},
		"text":   "hello\nworld",
	}

	first := render(t, v, 4)
	for i := 0; i < 10; i++ {
		n, err := tree.Build(v, 4)
		require.NoError(t, err)
		require.Equal(t, first, Render(n), "same value and depth must render byte-identically")
	}
}

func TestFprint_AppendsNewline(t *testing.T) {
	n, err := tree.Build("hi", 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, n))
	require.Equal(t, `└─ root (string): "hi"`+"\n", buf.String())
}

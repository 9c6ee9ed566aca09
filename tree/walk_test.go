package tree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixtureTree builds a small mixed-kind tree by hand:
//
//	root (object)
//	├─ a (number)
//	├─ b (object)
//	│  ├─ c (string)
//	│  └─ d (nil)
//	└─ e (array, circular)
func fixtureTree() *Node {
	return &Node{
		Name: "root",
		Kind: KindObject,
		Children: []*Node{
			{Name: "a", Kind: KindNumber, Value: 1, HasValue: true},
			{
				Name: "b",
				Kind: KindObject,
				Children: []*Node{
					{Name: "c", Kind: KindString, Value: "x", HasValue: true},
					{Name: "d", Kind: KindNil, HasValue: true},
				},
			},
			{Name: "e", Kind: KindArray, Value: MarkerCircular, HasValue: true},
		},
	}
}

func TestWalk_PreOrder(t *testing.T) {
	var names []string
	var depths []int
	err := Walk(fixtureTree(), func(n *Node, depth int) error {
		names = append(names, n.Name)
		depths = append(depths, depth)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"root", "a", "b", "c", "d", "e"}, names)
	require.Equal(t, []int{0, 1, 1, 2, 2, 1}, depths)
}

func TestWalk_StopWalk(t *testing.T) {
	var visited int
	err := Walk(fixtureTree(), func(n *Node, _ int) error {
		visited++
		if n.Name == "b" {
			return ErrStopWalk
		}
		return nil
	})
	require.NoError(t, err, "stopping early is not an error")
	require.Equal(t, 3, visited)
}

func TestWalk_CallbackErrorPropagates(t *testing.T) {
	boom := errors.New("callback failed")
	err := Walk(fixtureTree(), func(n *Node, _ int) error {
		if n.Name == "c" {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestWalk_NilRoot(t *testing.T) {
	called := false
	err := Walk(nil, func(*Node, int) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	require.False(t, called)
}

func TestCount_Fixture(t *testing.T) {
	s := Count(fixtureTree())

	require.Equal(t, 6, s.TotalNodes)
	require.Equal(t, 2, s.ObjectNodes)
	require.Equal(t, 1, s.ArrayNodes)
	require.Equal(t, 1, s.StringNodes)
	require.Equal(t, 1, s.NumberNodes)
	require.Equal(t, 1, s.NilNodes)
	require.Equal(t, 2, s.ExpandedNodes)
	require.Equal(t, 1, s.CircularNodes)
	require.Equal(t, 2, s.MaxDepth)
}

func TestCount_BuiltTree(t *testing.T) {
	type sample struct {
		Name  string
		Port  int
		Debug bool
		Tags  []string
	}
	v := sample{Name: "svc", Port: 8080, Debug: true, Tags: []string{"a", "b"}}

	n := mustBuild(t, v, 2)
	s := Count(n)

	require.Equal(t, 7, s.TotalNodes)
	require.Equal(t, 1, s.ObjectNodes)
	require.Equal(t, 1, s.ArrayNodes)
	require.Equal(t, 3, s.StringNodes)
	require.Equal(t, 1, s.NumberNodes)
	require.Equal(t, 1, s.BoolNodes)
	require.Equal(t, 2, s.MaxDepth)
}

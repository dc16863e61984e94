package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xtree/lib/infra"
)

func TestDumpDOT(t *testing.T) {
	tree, err := NewRBTree[int, struct{}](infra.OrderedKeyCompare[int])
	require.NoError(t, err)
	for _, k := range []int{10, 20, 30} {
		require.NoError(t, tree.Insert(k, &RBNode[int, struct{}]{}))
	}

	var sb strings.Builder
	require.NoError(t, DumpDOT(tree, &sb))
	out := sb.String()

	require.True(t, strings.HasPrefix(out, "digraph TreeDump {"))
	require.True(t, strings.HasSuffix(strings.TrimSpace(out), "}"))
	require.Contains(t, out, `"20" [color=black, style=dotted, shape=doublecircle];`)
	require.Contains(t, out, `"10" [color=red, style=dotted, shape=circle];`)
	require.Contains(t, out, `"20" -> "10";`)
	require.Contains(t, out, `"20" -> "30";`)
	require.Contains(t, out, `"10" -> nil;`)
}

func TestDumpDOT_Empty(t *testing.T) {
	tree, err := NewRBTree[int, struct{}](infra.OrderedKeyCompare[int])
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, DumpDOT(tree, &sb))
	require.Equal(t, "digraph TreeDump {\n}\n", sb.String())
}

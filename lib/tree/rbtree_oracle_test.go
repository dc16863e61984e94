package tree

import (
	randv2 "math/rand/v2"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/xtree/lib/infra"
)

// Mirrors a randomized op sequence into the gods red-black tree and
// cross-checks the key sets and the in-order walks at every
// checkpoint.
func TestRBTreeAgainstGodsOracle(t *testing.T) {
	tree, err := NewRBTree[int, struct{}](infra.OrderedKeyCompare[int])
	require.NoError(t, err)
	oracle := redblacktree.NewWithIntComparator()

	nodes := make(map[int]*RBNode[int, struct{}], 4096)
	crossCheck := func() {
		require.Equal(t, int64(oracle.Size()), tree.Len())
		keys := oracle.Keys()
		visited := 0
		tree.Foreach(func(idx int64, node *RBNode[int, struct{}]) bool {
			require.Equal(t, keys[idx], node.Key())
			visited++
			return true
		})
		require.Equal(t, len(keys), visited)
		if oracle.Size() > 0 {
			require.Equal(t, oracle.Left().Key, tree.Min().Key())
			require.Equal(t, oracle.Right().Key, tree.Max().Key())
		}
	}

	for round := 0; round < 4096; round++ {
		key := int(randv2.Uint32() % 1024)
		if _, linked := nodes[key]; !linked || randv2.Uint32()&0x3 != 0 {
			node := &RBNode[int, struct{}]{}
			if insErr := tree.Insert(key, node); insErr == nil {
				nodes[key] = node
				oracle.Put(key, nil)
			} else {
				require.ErrorIs(t, insErr, ErrRBTreeDuplicateKey)
			}
		} else {
			require.NoError(t, tree.Remove(nodes[key]))
			oracle.Remove(key)
			delete(nodes, key)
		}
		if round%64 == 0 {
			crossCheck()
			require.NoError(t, Validate(tree))
		}
	}
	crossCheck()
	require.NoError(t, Validate(tree))
}

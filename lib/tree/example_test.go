package tree_test

import (
	"fmt"

	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/tree"
)

type session struct {
	hook tree.RBNode[uint64, session]
	user string
}

func ExampleNewRBTree() {
	idx, err := tree.NewRBTree[uint64, session](infra.OrderedKeyCompare[uint64])
	if err != nil {
		panic(err)
	}

	s1 := &session{user: "ayana"}
	s2 := &session{user: "rin"}
	_ = idx.Insert(42, s1.hook.Bind(s1))
	_ = idx.Insert(7, s2.hook.Bind(s2))

	node, _ := idx.Find(42)
	fmt.Println(node.Owner().user)
	fmt.Println(idx.Min().Owner().user)

	_ = idx.Remove(&s1.hook)
	fmt.Println(idx.Len())
	// Output:
	// ayana
	// rin
	// 1
}

func ExampleRBTree_Foreach() {
	idx, _ := tree.NewRBTree[uint64, session](infra.OrderedKeyCompare[uint64])
	for _, k := range []uint64{30, 10, 20} {
		s := &session{user: fmt.Sprintf("user-%d", k)}
		_, _ = idx.FindOrInsert(k, s.hook.Bind(s))
	}

	idx.Foreach(func(i int64, node *tree.RBNode[uint64, session]) bool {
		fmt.Println(node.Key(), node.Owner().user)
		return true
	})
	// Output:
	// 10 user-10
	// 20 user-20
	// 30 user-30
}

package tree

import (
	"fmt"
	"io"
)

// DumpDOT writes the tree as a graphviz digraph for debugging, red and
// black nodes colored, the root drawn as a doublecircle and nil leaves
// as shared "nil" sinks. It walks the public read surface only.
func DumpDOT[K, O any](tree RBTree[K, O], w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph TreeDump {"); err != nil {
		return err
	}

	var dumpErr error
	tree.Foreach(func(idx int64, node *RBNode[K, O]) bool {
		color, shape := "black", "circle"
		if node.Color() == Red {
			color = "red"
		}
		if node == tree.Root() {
			shape = "doublecircle"
		}
		if _, err := fmt.Fprintf(w, "  \"%v\" [color=%s, style=dotted, shape=%s];\n", node.Key(), color, shape); err != nil {
			dumpErr = err
			return false
		}
		for _, child := range []*RBNode[K, O]{node.Left(), node.Right()} {
			var err error
			if child != nil {
				_, err = fmt.Fprintf(w, "  \"%v\" -> \"%v\";\n", node.Key(), child.Key())
			} else {
				_, err = fmt.Fprintf(w, "  \"%v\" -> nil;\n", node.Key())
			}
			if err != nil {
				dumpErr = err
				return false
			}
		}
		return true
	})
	if dumpErr != nil {
		return dumpErr
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

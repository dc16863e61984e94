package tree

import (
	"sync/atomic"

	"github.com/benz9527/xtree/lib/infra"
)

// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. (Optional) The root is black.
// (Conclusion) If a node X has exactly one child, it must be a red child,
//   because if it were black, its NIL descendants would sit at a different
//   black depth than X's NIL child, violating p4.
// So the shortest path nodes are black nodes. Otherwise,
// the path must contain red node.
// The longest path nodes' number is 2 * shortest path nodes' number.

type rbTree[K, O any] struct {
	root           *RBNode[K, O]
	leftmost       *RBNode[K, O]
	rightmost      *RBNode[K, O]
	kcmp           infra.KeyComparator[K]
	orderCtx       any
	stats          *rbTreeStats
	name           string
	count          int64
	isStatsEnabled bool
}

func (tree *rbTree[K, O]) keyCompare(k1, k2 K) int64 {
	return tree.kcmp(tree.orderCtx, k1, k2)
}

func (tree *rbTree[K, O]) Len() int64 {
	return atomic.LoadInt64(&tree.count)
}

func (tree *rbTree[K, O]) IsEmpty() bool {
	return tree.root == nil
}

func (tree *rbTree[K, O]) Root() *RBNode[K, O] {
	return tree.root
}

func (tree *rbTree[K, O]) Min() *RBNode[K, O] {
	return tree.leftmost
}

func (tree *rbTree[K, O]) Max() *RBNode[K, O] {
	return tree.rightmost
}

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc
*/
func (tree *rbTree[K, O]) leftRotate(x *RBNode[K, O]) {
	if x == nil || x.right == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] left rotate node x is nil or x.right is nil")
	}

	p, y := x.parentOf(), x.right
	dir := x.direction()
	x.right, y.left = y.left, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to left-rotate")
	}
	y.setParent(p)
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd
*/
func (tree *rbTree[K, O]) rightRotate(x *RBNode[K, O]) {
	if x == nil || x.left == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] right rotate node x is nil or x.left is nil")
	}

	p, y := x.parentOf(), x.left
	dir := x.direction()
	x.left, y.right = y.right, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to right-rotate")
	}
	y.setParent(p)
}

// descend runs the shared BST descent of Find, Insert and FindOrInsert.
// y is the last visited node, nil for an empty tree. res carries the
// last comparison, so res == 0 with a non-nil y marks an equal key.
// allLeft/allRight report that every step went left/right, which is
// exactly when the new key replaces the cached leftmost/rightmost.
func (tree *rbTree[K, O]) descend(key K) (y *RBNode[K, O], res int64, allLeft, allRight bool) {
	allLeft, allRight = true, true
	for x := tree.root; x != nil; {
		y = x
		res = tree.keyCompare(key, x.key)
		if /* equal */ res == 0 {
			return y, res, allLeft, allRight
		} else /* less */ if res < 0 {
			allRight = false
			x = x.left
		} else /* greater */ {
			allLeft = false
			x = x.right
		}
	}
	return y, res, allLeft, allRight
}

// link attaches the caller-owned node under y at the slot located by
// descend and rebalances. The node storage stays untouched otherwise.
func (tree *rbTree[K, O]) link(key K, node *RBNode[K, O], y *RBNode[K, O], res int64, allLeft, allRight bool) {
	node.key = key
	node.left, node.right = nil, nil

	if /* empty tree */ y == nil {
		node.setColor(Black)
		node.setParent(nil)
		tree.root = node
		tree.leftmost, tree.rightmost = node, node
		atomic.AddInt64(&tree.count, 1)
		return
	}

	node.setColor(Red)
	node.setParent(y)
	if res < 0 {
		y.left = node
	} else {
		y.right = node
	}

	if allLeft {
		tree.leftmost = node
	}
	if allRight {
		tree.rightmost = node
	}

	atomic.AddInt64(&tree.count, 1)
	tree.insertRebalance(node)
}

func (tree *rbTree[K, O]) Find(key K) (*RBNode[K, O], error) {
	for aux := tree.root; aux != nil; {
		res := tree.keyCompare(key, aux.key)
		if /* equal */ res == 0 {
			tree.stats.RecordFind(true)
			return aux, nil
		} else /* less */ if res < 0 {
			aux = aux.left
		} else /* greater */ {
			aux = aux.right
		}
	}
	tree.stats.RecordFind(false)
	return nil, ErrRBTreeNotFound
}

// Insert links the caller-owned node into the tree under key. The node
// must be detached. An equal key in place leaves the tree and the node
// untouched and reports ErrRBTreeDuplicateKey, duplicates are never
// stored.
func (tree *rbTree[K, O]) Insert(key K, node *RBNode[K, O]) error {
	if node == nil {
		return ErrRBTreeNilNode
	}

	y, res, allLeft, allRight := tree.descend(key)
	if y != nil && res == 0 {
		tree.stats.RecordDuplicate()
		return ErrRBTreeDuplicateKey
	}

	tree.link(key, node, y, res, allLeft, allRight)
	tree.stats.RecordInsert()
	return nil
}

// FindOrInsert locates an equal key in a single descent and returns
// its node; failing that it links node at the slot the very same
// descent discovered. It never reports a duplicate.
func (tree *rbTree[K, O]) FindOrInsert(key K, node *RBNode[K, O]) (*RBNode[K, O], error) {
	if node == nil {
		return nil, ErrRBTreeNilNode
	}

	y, res, allLeft, allRight := tree.descend(key)
	if y != nil && res == 0 {
		tree.stats.RecordFind(true)
		return y, nil
	}

	tree.link(key, node, y, res, allLeft, allRight)
	tree.stats.RecordInsert()
	return node, nil
}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

im1: Current node X's parent P is black, or X is the root. Repaint the
root into black and done, hold p3 and p4.

im2: Current node X's parent P is red and P is root, repaint P into black.

im3: If both the parent P and the uncle U are red, grandpa G is black.
(red-violation)
After repainted G into red may be still red-violation.
Recursive to fix grandpa.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im4: The parent P is red but the uncle U is black. (red-violation)
X is opposite direction to P. Rotate P to opposite direction.
After rotation may be still red-violation. Here must enter im5 to fix.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im5: Handle im4 scenario, current node is the same direction as parent.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]
*/
func (tree *rbTree[K, O]) insertRebalance(x *RBNode[K, O]) {
	for x != nil {
		if /* im1 */ x.direction() == Root {
			if x.colorOf() == Red {
				x.setColor(Black)
			}
			return
		}

		p := x.parentOf()
		if /* im1 */ p.colorOf() == Black {
			return
		}

		if /* im2 */ p.direction() == Root {
			p.setColor(Black)
			return
		}

		if /* im3 */ x.uncle().Color() == Red {
			p.setColor(Black)
			x.uncle().setColor(Black)
			gp := x.grandpa()
			gp.setColor(Red)
			x = gp
			continue
		}

		// The uncle is black or absent.
		dir := x.direction()
		if /* im4 */ dir != p.direction() {
			switch dir {
			case Left:
				tree.rightRotate(p)
			case Right:
				tree.leftRotate(p)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] insert rebalance violate (im4)")
			}
			x = p // enter im5 to fix
		}

		switch /* im5 */ x.parentOf().direction() {
		case Left:
			tree.rightRotate(x.grandpa())
		case Right:
			tree.leftRotate(x.grandpa())
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] insert rebalance violate (im5)")
		}

		x.parentOf().setColor(Black)
		x.sibling().setColor(Red)
		return
	}
}

// swapNode moves y into node's structural slot: links, parent (or
// root) and color. node comes out fully detached. Keys stay put, this
// is a position swap, not a payload swap, so every node reference a
// caller holds survives the removal of a neighbour.
func (tree *rbTree[K, O]) swapNode(node, y *RBNode[K, O]) {
	l, r, p := node.left, node.right, node.parentOf()

	y.setParent(p)
	if p != nil {
		if p.left == node {
			p.left = y
		} else {
			p.right = y
		}
	} else if tree.root == node {
		tree.root = y
	}

	y.right = r
	if r != nil {
		r.setParent(y)
	}
	node.right = nil

	y.left = l
	if l != nil {
		l.setParent(y)
	}
	node.left = nil

	y.setColor(node.colorOf())
	node.setParent(nil)
}

/*
r1: Current node Z holds two children. Z cannot be spliced out as is,
so its in-order successor Y (which has no left child) is spliced out
instead and then swapped into Z's slot, taking over Z's links and
color. Z leaves the tree fully detached while every other node keeps
its identity.

	  |                    |
	  Z                    Y
	 / \                  / \
	L  ..   swap(Z, Y)   L  ..
		|   =========>       |
		P                    P
	   / \                  / \
	  Y  ..                Z  ..

r2: The spliced node Y holds at most one child X (nil allowed). X is
promoted into Y's slot. If Y was black the black depth below Y's
former slot shrank by one, enter the rebalance loop at X.
(black-violation)
*/
func (tree *rbTree[K, O]) removeNode(node *RBNode[K, O]) {
	// The node leaving the tree vacates the cached extremes first.
	// Its succ/pred is the next best key by definition.
	if tree.leftmost == node {
		tree.leftmost = node.succ()
	}
	if tree.rightmost == node {
		tree.rightmost = node.pred()
	}

	y := node
	if /* r1 */ node.left != nil && node.right != nil {
		y = node.succ()
	}
	yColor := y.colorOf()

	var x, xp *RBNode[K, O]
	if y.left != nil {
		x = y.left
	} else {
		x = y.right
	}

	if x != nil {
		x.setParent(y.parentOf())
		xp = x.parentOf()
	} else {
		xp = y.parentOf()
	}

	side := Right
	if yp := y.parentOf(); yp == nil {
		tree.root = x
		xp = nil
	} else if y == yp.left {
		yp.left = x
		side = Left
	} else {
		yp.right = x
	}

	if y != node {
		tree.swapNode(node, y)
		if /* y was node's child */ xp == node {
			xp = y
		}
	}

	if /* r2 */ yColor == Black {
		tree.removeRebalance(x, xp, side)
	}

	node.setParent(nil)
	node.left = nil
	node.right = nil
	node.setColor(Black)
}

// Remove unlinks the caller-owned node and clears its structural
// links, after which the caller may reuse or free the record that
// embeds it. The node must be a member of this tree.
func (tree *rbTree[K, O]) Remove(node *RBNode[K, O]) error {
	if node == nil {
		return ErrRBTreeNilNode
	}
	if atomic.LoadInt64(&tree.count) <= 0 {
		return ErrRBTreeIsEmpty
	}

	tree.removeNode(node)
	atomic.AddInt64(&tree.count, -1)
	tree.stats.RecordRemove()
	return nil
}

// RemoveMin pops the node holding the smallest key. The cached
// leftmost turns the locate step into O(1).
func (tree *rbTree[K, O]) RemoveMin() (*RBNode[K, O], error) {
	_min := tree.leftmost
	if _min == nil {
		return nil, ErrRBTreeIsEmpty
	}

	tree.removeNode(_min)
	atomic.AddInt64(&tree.count, -1)
	tree.stats.RecordRemove()
	return _min, nil
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

The loop walks (X, XP, side): the child promoted into the spliced
slot, its parent and which side of XP the slot sits on. X itself may
be nil, a nil node counts as black (p2), hence the explicit parent
and side.

W is X's sibling. Wn is W's child near to X, Wd is the distant one.

rm1: Sibling W is red, so XP, Wn and Wd must be black. Rotate XP
toward X's side and swap W/XP colors, the new sibling is black and
one of rm2-rm4 applies.

	  [XP]                  <W>               [W]
	  /  \    l-rotate(XP)  / \    repaint    / \
	[X]  <W>  ==========>[XP] [Wd] ======>  <XP> [Wd]
	     / \              / \               / \
	  [Wn] [Wd]         [X] [Wn]          [X] [Wn]

rm2: Both of W's children are black. Repaint W red, which evens out
the black depth locally (p4), and move the deficiency one level up to
XP. If XP is red the loop exits and the final repaint makes it black.

	  {XP}            {XP}
	  /  \            /  \
	[X]  [W]  ====> [X]  <W>
	     / \             / \
	  [Wn] [Wd]       [Wn] [Wd]

rm3: Wd is black but Wn is red. Rotate W away from X's side and swap
W/Wn colors. The new sibling is black with a red distant child,
enter rm4.

	                      {XP}               {XP}
	  {XP}                /  \               /  \
	  /  \    r-rotate(W)[X] <Wn>   repaint [X] [Wn]
	[X]  [W]  ==========>      \    ======>       \
	     / \                   [W]                <W>
	  <Wn> [Wd]                  \                  \
	                             [Wd]               [Wd]

rm4: Wd is red. Rotate XP toward X's side, give W XP's former color,
paint XP and Wd black. The missing black node is restored and the
loop terminates at the root.

	  {XP}                  [W]                {W}
	  /  \    l-rotate(XP)  / \     repaint    / \
	[X]  [W]  ==========>{XP} <Wd>  ======>  [XP] [Wd]
	     / \              / \                / \
	  [Wn] <Wd>         [X] [Wn]           [X] [Wn]
*/
func (tree *rbTree[K, O]) removeRebalance(x, xp *RBNode[K, O], side RBDirection) {
	for x != tree.root && x.Color() == Black {
		var w *RBNode[K, O]
		switch side {
		case Left:
			w = xp.right
		case Right:
			w = xp.left
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove rebalance without a side")
		}

		if /* rm1 */ w.Color() == Red {
			w.setColor(Black)
			xp.setColor(Red)
			switch side {
			case Left:
				tree.leftRotate(xp)
				w = xp.right
			case Right:
				tree.rightRotate(xp)
				w = xp.left
			}
		}

		if /* rm2 */ w.Left().Color() == Black && w.Right().Color() == Black {
			if w != nil {
				w.setColor(Red)
			}
			x = xp
			xp = x.parentOf()
			side = Right
			if xp != nil && x == xp.left {
				side = Left
			}
			continue
		}

		var wn, wd *RBNode[K, O]
		switch side {
		case Left:
			wn, wd = w.left, w.right
		case Right:
			wn, wd = w.right, w.left
		}

		if /* rm3 */ wd.Color() == Black {
			w.setColor(Red)
			if wn != nil {
				wn.setColor(Black)
			}
			switch side {
			case Left:
				tree.rightRotate(w)
				w = xp.right
				wd = w.right
			case Right:
				tree.leftRotate(w)
				w = xp.left
				wd = w.left
			}
		}

		/* rm4, the distant nephew is red here, rm3 restructured it if needed */
		w.setColor(xp.colorOf())
		xp.setColor(Black)
		wd.setColor(Black)
		switch side {
		case Left:
			tree.leftRotate(xp)
		case Right:
			tree.rightRotate(xp)
		}
		x = tree.root
	}

	if x != nil {
		x.setColor(Black)
	}
}

// Foreach visits the nodes in ascending key order through an
// iterative succ walk, no recursion and no auxiliary stack.
func (tree *rbTree[K, O]) Foreach(action func(idx int64, node *RBNode[K, O]) bool) {
	idx := int64(0)
	for aux := tree.leftmost; aux != nil; aux = aux.succ() {
		if !action(idx, aux) {
			return
		}
		idx++
	}
}

// Release detaches every node through an iterative post-order
// teardown driven by the parent links and wipes the handle. Node
// storage belongs to the callers and stays alive.
func (tree *rbTree[K, O]) Release() {
	aux := tree.root
	tree.root = nil
	tree.leftmost, tree.rightmost = nil, nil
	atomic.StoreInt64(&tree.count, 0)

	for aux != nil {
		if aux.left != nil {
			aux = aux.left
			continue
		}
		if aux.right != nil {
			aux = aux.right
			continue
		}
		p := aux.parentOf()
		if p != nil {
			if p.left == aux {
				p.left = nil
			} else {
				p.right = nil
			}
		}
		aux.setParent(nil)
		aux.setColor(Black)
		aux = p
	}
}

// NewRBTree builds an empty intrusive red-black tree ordered by kcmp.
// The comparator must define a strict total order and stay consistent
// for the tree's whole lifetime.
func NewRBTree[K, O any](kcmp infra.KeyComparator[K], opts ...RBTreeOpt[K, O]) (RBTree[K, O], error) {
	if kcmp == nil {
		return nil, ErrRBTreeNilComparator
	}

	tree := &rbTree[K, O]{
		kcmp: kcmp,
		name: "default",
	}
	for _, o := range opts {
		o(tree)
	}
	if tree.isStatsEnabled {
		tree.stats = newRBTreeStats(tree.name, tree.Len)
	}
	return tree, nil
}

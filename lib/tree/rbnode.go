package tree

// RBNode is the structural hook of the intrusive rbtree. Embed it into
// a record, bind the record, then hand the hook to a tree:
//
//	type session struct {
//		hook tree.RBNode[uint64, session]
//		data []byte
//	}
//	s := &session{}
//	_ = t.Insert(s.ID, s.hook.Bind(s))
//
// A lookup returns the hook and Owner gives the record back without
// any extra allocation. The zero value is a detached node, ready to
// insert.
type RBNode[K, O any] struct {
	parent *RBNode[K, O]
	left   *RBNode[K, O]
	right  *RBNode[K, O]
	key    K
	owner  *O
	color  RBColor
}

// The color and the parent link are only touched through the four
// accessors below, so their storage layout stays a private detail of
// this file. The Linux kernel folds the color bit into the low bits of
// the parent pointer to cut one word per node, see __rb_parent_color in
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// Tag bits smuggled into a pointer word are invisible to the Go GC and
// break object liveness tracking, hence the explicit fields here.

func (node *RBNode[K, O]) colorOf() RBColor {
	return node.color
}

func (node *RBNode[K, O]) setColor(color RBColor) {
	node.color = color
}

func (node *RBNode[K, O]) parentOf() *RBNode[K, O] {
	return node.parent
}

func (node *RBNode[K, O]) setParent(parent *RBNode[K, O]) {
	node.parent = parent
}

// Bind attaches the record the node is embedded in and returns the
// node, so it chains into an Insert call.
func (node *RBNode[K, O]) Bind(owner *O) *RBNode[K, O] {
	node.owner = owner
	return node
}

// Owner returns the record attached by Bind, nil for an unbound node.
func (node *RBNode[K, O]) Owner() *O {
	if node == nil {
		return nil
	}
	return node.owner
}

func (node *RBNode[K, O]) Key() K {
	if node == nil {
		return *new(K)
	}
	return node.key
}

// Color reports the node color. A nil node counts as a black leaf.
func (node *RBNode[K, O]) Color() RBColor {
	if node == nil {
		return Black
	}
	return node.colorOf()
}

func (node *RBNode[K, O]) Left() *RBNode[K, O] {
	if node == nil {
		return nil
	}
	return node.left
}

func (node *RBNode[K, O]) Right() *RBNode[K, O] {
	if node == nil {
		return nil
	}
	return node.right
}

func (node *RBNode[K, O]) Parent() *RBNode[K, O] {
	if node == nil {
		return nil
	}
	return node.parentOf()
}

func (node *RBNode[K, O]) direction() RBDirection {
	if node == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] nil node without direction")
	}

	if node.parentOf() == nil {
		return Root
	}
	if node == node.parentOf().left {
		return Left
	}
	return Right
}

func (node *RBNode[K, O]) sibling() *RBNode[K, O] {
	switch node.direction() {
	case Left:
		return node.parentOf().right
	case Right:
		return node.parentOf().left
	default:

	}
	return nil
}

func (node *RBNode[K, O]) uncle() *RBNode[K, O] {
	return node.parentOf().sibling()
}

func (node *RBNode[K, O]) grandpa() *RBNode[K, O] {
	return node.parentOf().parentOf()
}

func (node *RBNode[K, O]) fixLink() {
	if node.left != nil {
		node.left.setParent(node)
	}
	if node.right != nil {
		node.right.setParent(node)
	}
}

func (node *RBNode[K, O]) minimum() *RBNode[K, O] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *RBNode[K, O]) maximum() *RBNode[K, O] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// The pred node of the current node is its previous node in sorted order.
func (node *RBNode[K, O]) pred() *RBNode[K, O] {
	x := node
	if x == nil {
		return nil
	}
	if x.left != nil {
		return x.left.maximum()
	}

	aux := x.parentOf()
	// Backtrack to the ancestor that is the x's pred.
	for aux != nil && x == aux.left {
		x = aux
		aux = aux.parentOf()
	}
	return aux
}

// The succ node of the current node is its next node in sorted order.
func (node *RBNode[K, O]) succ() *RBNode[K, O] {
	x := node
	if x == nil {
		return nil
	}
	if x.right != nil {
		return x.right.minimum()
	}

	aux := x.parentOf()
	// Backtrack to the ancestor that is the x's succ.
	for aux != nil && x == aux.right {
		x = aux
		aux = aux.parentOf()
	}
	return aux
}

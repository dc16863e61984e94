package tree

import "errors"

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

//go:generate stringer -type=RBDirection
type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

var (
	ErrRBTreeNotFound      = errors.New("[rbtree] key not found")
	ErrRBTreeDuplicateKey  = errors.New("[rbtree] duplicate key")
	ErrRBTreeIsEmpty       = errors.New("[rbtree] empty element to remove")
	ErrRBTreeNilNode       = errors.New("[rbtree] nil node")
	ErrRBTreeNilComparator = errors.New("[rbtree] nil key comparator")
)

// RBTree is an intrusive red-black tree. It never allocates node
// storage on its own. Every RBNode is owned by the caller and usually
// lives inside a caller record, see RBNode.Bind.
// A node handed to Insert must be detached and must stay untouched by
// the caller until it is removed or released again.
// None of the operations below are safe for concurrent use. Wrap the
// tree with a lock to share it.
type RBTree[K, O any] interface {
	Len() int64
	IsEmpty() bool
	Root() *RBNode[K, O]
	// Min returns the node holding the smallest key in O(1), nil for
	// an empty tree.
	Min() *RBNode[K, O]
	// Max returns the node holding the largest key in O(1), nil for
	// an empty tree.
	Max() *RBNode[K, O]
	Find(key K) (*RBNode[K, O], error)
	// Insert links node into the tree under key.
	// ErrRBTreeDuplicateKey reports that an equal key is already in
	// place; the tree and the node are left untouched then.
	Insert(key K, node *RBNode[K, O]) error
	// FindOrInsert returns the node already holding an equal key, or
	// links node under key and returns node itself.
	FindOrInsert(key K, node *RBNode[K, O]) (*RBNode[K, O], error)
	// Remove unlinks node and clears its links. The node must be a
	// member of this very tree, anything else corrupts the structure.
	Remove(node *RBNode[K, O]) error
	RemoveMin() (*RBNode[K, O], error)
	// Foreach visits the nodes in key order until action returns
	// false. The tree must not be mutated during the walk.
	Foreach(action func(idx int64, node *RBNode[K, O]) bool)
	// Release detaches every node and empties the tree. The node
	// storage itself stays with the caller.
	Release()
}

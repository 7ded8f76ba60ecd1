package avl

import (
	"cmp"
	"errors"
)

// ErrEmptyTree is returned by FindMin and FindMax when the tree holds no items.
var ErrEmptyTree = errors.New("avl: tree is empty")

// allowedImbalance is the largest permitted height difference between siblings.
const allowedImbalance = 1

// Compare orders two items: negative when a < b, zero when equal, positive when a > b.
type Compare[T any] func(a, b T) int

// node is a single tree cell. height is the cached height of the subtree
// rooted here; a leaf has height 0.
type node[T any] struct {
	item   T
	left   *node[T]
	right  *node[T]
	height int
}

// Tree is a self-balancing ordered container.
// The zero value is not usable; construct with New or NewOrdered.
type Tree[T any] struct {
	root *node[T]
	cmp  Compare[T]
	size int
}

// New returns an empty Tree ordered by compare.
// Panics if compare is nil.
func New[T any](compare Compare[T]) *Tree[T] {
	if compare == nil {
		panic("avl: nil compare function")
	}

	return &Tree[T]{cmp: compare}
}

// NewOrdered returns an empty Tree using the natural ascending order of T.
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	return New[T](cmp.Compare[T])
}

package avl

import "iter"

// Insert places item at its sorted position.
// If an item comparing equal is already stored, the tree is left unchanged
// and Insert reports false.
// Complexity: O(log n).
func (t *Tree[T]) Insert(item T) bool {
	var inserted bool
	t.root = t.insert(item, t.root, &inserted)
	if inserted {
		t.size++
	}

	return inserted
}

// Remove deletes the stored item that compares equal to item.
// Removing from an empty tree or removing an absent item is a no-op that
// reports false.
// Complexity: O(log n).
func (t *Tree[T]) Remove(item T) bool {
	var removed bool
	t.root = t.remove(item, t.root, &removed)
	if removed {
		t.size--
	}

	return removed
}

// Contains reports whether an item comparing equal to item is stored.
// Complexity: O(log n).
func (t *Tree[T]) Contains(item T) bool {
	n := t.root
	for n != nil {
		c := t.cmp(item, n.item)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// FindMin returns the smallest stored item, or ErrEmptyTree.
func (t *Tree[T]) FindMin() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}

	return leftmost(t.root).item, nil
}

// FindMax returns the largest stored item, or ErrEmptyTree.
func (t *Tree[T]) FindMax() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.item, nil
}

// Len returns the number of stored items.
func (t *Tree[T]) Len() int { return t.size }

// IsEmpty reports whether the tree holds no items.
func (t *Tree[T]) IsEmpty() bool { return t.root == nil }

// Height returns the height of the whole tree; -1 when empty.
func (t *Tree[T]) Height() int { return height(t.root) }

// Clear drops every item.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// InOrder returns the items in ascending order as a fresh slice.
// Each call recomputes the traversal.
// Complexity: O(n).
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	for item := range t.All() {
		out = append(out, item)
	}

	return out
}

// All returns a restartable ascending iterator over the stored items.
// Mutating the tree while iterating is not supported.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(t.root, yield)
	}
}

// walk performs an in-order traversal, stopping early once yield returns false.
func walk[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}

	return walk(n.left, yield) && yield(n.item) && walk(n.right, yield)
}

func (t *Tree[T]) insert(item T, n *node[T], inserted *bool) *node[T] {
	if n == nil {
		*inserted = true
		return &node[T]{item: item}
	}

	c := t.cmp(item, n.item)
	switch {
	case c < 0:
		n.left = t.insert(item, n.left, inserted)
	case c > 0:
		n.right = t.insert(item, n.right, inserted)
	default:
		// duplicate: nothing changed below, no rebalance needed
		return n
	}

	return balance(n)
}

func (t *Tree[T]) remove(item T, n *node[T], removed *bool) *node[T] {
	if n == nil {
		return nil
	}

	c := t.cmp(item, n.item)
	switch {
	case c < 0:
		n.left = t.remove(item, n.left, removed)
	case c > 0:
		n.right = t.remove(item, n.right, removed)
	case n.left != nil && n.right != nil:
		// two children: pull up the in-order successor
		*removed = true
		n.item = leftmost(n.right).item
		var ignored bool
		n.right = t.remove(n.item, n.right, &ignored)
	default:
		*removed = true
		if n.left != nil {
			n = n.left
		} else {
			n = n.right
		}
	}

	return balance(n)
}

// balance restores the height invariant at n, assuming both subtrees
// already satisfy it, and refreshes n's cached height.
func balance[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}

	switch {
	case height(n.left)-height(n.right) > allowedImbalance:
		if height(n.left.left) >= height(n.left.right) {
			n = rotateWithLeftChild(n)
		} else {
			n = doubleWithLeftChild(n)
		}
	case height(n.right)-height(n.left) > allowedImbalance:
		if height(n.right.right) >= height(n.right.left) {
			n = rotateWithRightChild(n)
		} else {
			n = doubleWithRightChild(n)
		}
	}
	fixHeight(n)

	return n
}

// rotateWithLeftChild lifts k2.left above k2 (single right rotation).
func rotateWithLeftChild[T any](k2 *node[T]) *node[T] {
	k1 := k2.left
	k2.left = k1.right
	k1.right = k2
	fixHeight(k2)
	fixHeight(k1)

	return k1
}

// rotateWithRightChild lifts k1.right above k1 (single left rotation).
func rotateWithRightChild[T any](k1 *node[T]) *node[T] {
	k2 := k1.right
	k1.right = k2.left
	k2.left = k1
	fixHeight(k1)
	fixHeight(k2)

	return k2
}

// doubleWithLeftChild handles the left-right case.
func doubleWithLeftChild[T any](k3 *node[T]) *node[T] {
	k3.left = rotateWithRightChild(k3.left)
	return rotateWithLeftChild(k3)
}

// doubleWithRightChild handles the right-left case.
func doubleWithRightChild[T any](k1 *node[T]) *node[T] {
	k1.right = rotateWithLeftChild(k1.right)
	return rotateWithRightChild(k1)
}

func leftmost[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}

	return n
}

func height[T any](n *node[T]) int {
	if n == nil {
		return -1
	}

	return n.height
}

func fixHeight[T any](n *node[T]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

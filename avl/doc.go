// Package avl provides Tree, a generic height-balanced binary search tree
// ordered by a caller-supplied comparison function.
//
// Every node caches the height of its subtree (an absent subtree has height
// -1) and after each structural Insert or Remove the path back to the root is
// rebalanced so that, for every node,
//
//	|height(left) − height(right)| ≤ 1
//
// Rebalancing uses single rotations when the taller child leans to the same
// side as its parent, and double rotations otherwise. A rotation touches only
// the two or three nodes involved; all other subtrees are reattached as-is.
//
// Matching is based purely on the order function: an item whose comparison
// against a stored item yields 0 is considered equal to it. Insert discards
// such duplicates, so callers that need multiplicity must embed a
// tie-breaking field in their order (for example a sequence number).
//
// Complexity:
//
//   - Insert, Remove, Contains, FindMin, FindMax: O(log n)
//   - InOrder, All:                               O(n)
//   - Memory:                                     O(n)
//
// Errors:
//
//	ErrEmptyTree - FindMin/FindMax on a tree that holds nothing.
//
// Tree is not safe for concurrent use; owners serialize access.
package avl

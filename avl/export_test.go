package avl

// CheckInvariants walks the whole tree and reports the first node whose
// cached height is stale or whose children differ in height by more than
// allowedImbalance. ok is true when every node passes.
func CheckInvariants[T any](t *Tree[T]) (ok bool, count int) {
	ok = true
	var visit func(n *node[T]) int
	visit = func(n *node[T]) int {
		if n == nil {
			return -1
		}
		count++
		lh, rh := visit(n.left), visit(n.right)
		h := max(lh, rh) + 1
		if n.height != h || lh-rh > allowedImbalance || rh-lh > allowedImbalance {
			ok = false
		}

		return h
	}
	visit(t.root)

	return ok, count
}

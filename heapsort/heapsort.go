// Package heapsort provides an in-place, comparator-driven heap sort.
//
// Sort builds a binary max-heap bottom-up, from the last internal node to
// the root, then repeatedly swaps the root with the last unsorted position
// and sifts the new root down through the shrinking heap. The result is
// ascending under cmp.
//
// The sort is not stable: elements comparing equal may be reordered.
//
// Complexity:
//
//   - Time:  O(n log n)
//   - Space: O(1) extra; sift-down is iterative.
package heapsort

// Sort orders s ascending under cmp, in place.
// cmp returns a negative number when a sorts before b, zero when they are
// equivalent, and a positive number otherwise.
func Sort[T any](s []T, cmp func(a, b T) int) {
	n := len(s)

	// 1) Build the max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, n, i, cmp)
	}

	// 2) Move the current maximum behind the heap, one position at a time
	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, end, 0, cmp)
	}
}

// Descending adapts key so that a larger key sorts first.
func Descending[T any](key func(T) int) func(a, b T) int {
	return func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case ka > kb:
			return -1
		case ka < kb:
			return 1
		default:
			return 0
		}
	}
}

// siftDown restores the heap property for the subtree rooted at i within
// the first n elements.
func siftDown[T any](s []T, n, i int, cmp func(a, b T) int) {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < n && cmp(s[left], s[largest]) > 0 {
			largest = left
		}
		if right < n && cmp(s[right], s[largest]) > 0 {
			largest = right
		}
		if largest == i {
			return
		}
		s[i], s[largest] = s[largest], s[i]
		i = largest
	}
}

package topk

// The heap is 1-indexed: h[0] is unused, the parent of i is i/2 and its
// children are 2i and 2i+1. size is the number of active slots.

// siftDown restores the min-heap property below i, assuming both subtrees of
// i already satisfy it.
func siftDown(h []Entry, i, size int) {
	for {
		smallest := i
		l, r := 2*i, 2*i+1
		if l <= size && h[l].Count < h[smallest].Count {
			smallest = l
		}
		if r <= size && h[r].Count < h[smallest].Count {
			smallest = r
		}
		if smallest == i {
			return
		}
		h[i], h[smallest] = h[smallest], h[i]
		i = smallest
	}
}

// buildMinHeap heapifies h[1:size+1] bottom-up.
func buildMinHeap(h []Entry, size int) {
	for i := size / 2; i >= 1; i-- {
		siftDown(h, i, size)
	}
}

// replaceRoot drops the current minimum and puts e in its place.
func replaceRoot(h []Entry, size int, e Entry) {
	h[1] = e
	siftDown(h, 1, size)
}

// sortDescending turns a min-heap into an array ordered from the largest
// count at h[1] to the smallest at h[size].
func sortDescending(h []Entry, size int) {
	for i := size; i >= 2; i-- {
		h[1], h[i] = h[i], h[1]
		size--
		siftDown(h, 1, size)
	}
}

package noticeboard

// Partition splits notices into pinned and unpinned lists.
// The split is stable: each output keeps the input's relative order, and
// pinned followed by unpinned holds every input notice exactly once.
func Partition(notices []Notice) (pinned, unpinned []Notice) {
	pinned = make([]Notice, 0)
	unpinned = make([]Notice, 0, len(notices))

	for _, n := range notices {
		if n.IsPinned() {
			pinned = append(pinned, n)
		} else {
			unpinned = append(unpinned, n)
		}
	}
	return pinned, unpinned
}

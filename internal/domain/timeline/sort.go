package timeline

// Compare defines the feed order: high-priority items first, then newest
// first. The priority split is deliberately binary (high vs. everything
// else); among non-high items only the date decides.
func Compare(a, b Item) int {
	ah := a.Priority == PriorityHigh
	bh := b.Priority == PriorityHigh
	if ah != bh {
		if ah {
			return -1
		}
		return 1
	}
	switch {
	case a.CreatedAt.After(b.CreatedAt):
		return -1
	case a.CreatedAt.Before(b.CreatedAt):
		return 1
	}
	return 0
}

// Less adapts Compare for sort predicates.
func Less(a, b Item) bool { return Compare(a, b) < 0 }

package matching

// SlotOverlap returns |a ∩ b| / |a ∪ b| over two sets of slot labels.
// Duplicates are ignored. Either side being empty yields 0 rather than a
// division by zero. Symmetric in its arguments.
func SlotOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	setA := make(map[string]struct{}, len(a))
	for _, s := range a {
		setA[s] = struct{}{}
	}

	seenB := make(map[string]struct{}, len(b))
	intersection := 0
	union := len(setA)
	for _, s := range b {
		if _, dup := seenB[s]; dup {
			continue
		}
		seenB[s] = struct{}{}
		if _, ok := setA[s]; ok {
			intersection++
		} else {
			union++
		}
	}

	return float64(intersection) / float64(union)
}

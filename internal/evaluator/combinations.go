package evaluator

// combinations calls fn with every k-element index combination of 0..n-1 in
// lexicographic order. The slice passed to fn is reused between calls and
// must not be retained. Kept hand-rolled so the subset enumeration stays
// auditable next to the ranking rules it feeds.
func combinations(n, k int, fn func(idx []int)) {
	if k > n || k <= 0 {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		fn(idx)

		// Advance the rightmost index that can still move
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

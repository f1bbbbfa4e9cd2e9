package card

// combinations returns a generator closure that yields each k-subset of
// {0, ..., n-1} as an index vector, in lexicographic order by subset index
// (§4.5): the canonical enumerator advances the rightmost index first,
// carrying into earlier positions, so c[0] < c[1] < ... < c[k-1] < n. The
// generator is returned as a stateful closure rather than a materialized
// slice of subsets, matching this codebase's preference for single-pass
// generators over eagerly built collections (see internal/dpll.Iterator).
//
// The returned function yields (nil, false) once every subset has been
// produced; the caller must not retain the returned slice across calls, as
// it is reused in place.
func combinations(n, k int) func() ([]int, bool) {
	if k < 0 || k > n {
		return func() ([]int, bool) { return nil, false }
	}
	if k == 0 {
		done := false
		return func() ([]int, bool) {
			if done {
				return nil, false
			}
			done = true
			return []int{}, true
		}
	}

	c := make([]int, k)
	for i := range c {
		c[i] = i
	}
	first := true

	return func() ([]int, bool) {
		if first {
			first = false
			return c, true
		}

		// Advance rightmost-first with carry.
		i := k - 1
		for i >= 0 && c[i] == n-k+i {
			i--
		}
		if i < 0 {
			return nil, false
		}
		c[i]++
		for j := i + 1; j < k; j++ {
			c[j] = c[j-1] + 1
		}
		return c, true
	}
}

// Package card implements the binomial cardinality encoders of §4.5:
// at-most-k, at-least-k, and exactly-k over a list of literals, expressed
// as CNF clauses over the same plain signed-literal representation the
// puzzle encoders and the reference solver use.
package card

// AtMost returns clauses enforcing that at most k of lits are true: for
// every (k+1)-subset S of lits, a clause of the negations of S's members.
// Returns no clauses when k >= len(lits).
func AtMost(k int, lits []int) [][]int {
	return subsetClauses(lits, k+1, negate)
}

// AtLeast returns clauses enforcing that at least k of lits are true: for
// every (n-k+1)-subset S of lits, a clause of S's members. Returns no
// clauses when k == 0 or k > len(lits).
func AtLeast(k int, lits []int) [][]int {
	n := len(lits)
	if k == 0 || k > n {
		return nil
	}
	return subsetClauses(lits, n-k+1, identity)
}

// Exactly returns clauses enforcing that exactly k of lits are true: the
// concatenation of AtMost(k, lits) and AtLeast(k, lits).
func Exactly(k int, lits []int) [][]int {
	clauses := AtMost(k, lits)
	clauses = append(clauses, AtLeast(k, lits)...)
	return clauses
}

func identity(l int) int { return l }
func negate(l int) int   { return -l }

// subsetClauses emits one clause per size-subsetSize subset of lits, in
// the lexicographic index order of the canonical subset enumerator,
// mapping each chosen literal through transform.
func subsetClauses(lits []int, subsetSize int, transform func(int) int) [][]int {
	n := len(lits)
	next := combinations(n, subsetSize)

	var clauses [][]int
	for {
		idx, ok := next()
		if !ok {
			break
		}
		clause := make([]int, len(idx))
		for i, p := range idx {
			clause[i] = transform(lits[p])
		}
		clauses = append(clauses, clause)
	}
	return clauses
}

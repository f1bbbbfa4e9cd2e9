package dpll

import "sort"

// Formula is the reference solver's clause representation (§4.4): plain
// signed DIMACS-style literals, no internal literal codec. clauses[i] is
// nil once clause i has been satisfied (removed); otherwise it holds the
// clause's remaining literals. Clause indices are stable across recursion
// so an adjacency index computed once from the original formula stays
// valid for every simplified descendant.
type Formula struct {
	numVars int
	clauses [][]int

	// unsat is set by NewFormula when one of the input clauses has length
	// zero: an empty disjunction can never be satisfied (§4.2, §6), so the
	// formula is UNSAT before any decision is ever made. Callers must check
	// this before branching, since firstClause/assign have no way to tell
	// an empty input clause apart from one already satisfied away.
	unsat bool
}

// NewFormula copies clauses into a Formula, computing numVars as the
// largest variable magnitude referenced.
func NewFormula(clauses [][]int) *Formula {
	f := &Formula{clauses: make([][]int, len(clauses))}
	for i, c := range clauses {
		if len(c) == 0 {
			f.unsat = true
			continue
		}
		cc := make([]int, len(c))
		copy(cc, c)
		f.clauses[i] = cc
		for _, l := range c {
			v := l
			if v < 0 {
				v = -v
			}
			if v > f.numVars {
				f.numVars = v
			}
		}
	}
	return f
}

// clone returns a shallow copy of f: the outer clause slice is duplicated
// so that replacing one clause's literals (on satisfy or on falsified-
// literal removal) never mutates a sibling branch's view of that clause.
func (f *Formula) clone() *Formula {
	nf := &Formula{numVars: f.numVars, clauses: make([][]int, len(f.clauses))}
	copy(nf.clauses, f.clauses)
	return nf
}

// firstClause returns the index of the first non-satisfied clause, or -1
// if every clause has been satisfied (the formula is solved).
func (f *Formula) firstClause() int {
	for i, c := range f.clauses {
		if c != nil {
			return i
		}
	}
	return -1
}

// adjacency returns, for each variable 1..numVars, the sorted list of
// clause indices in which that variable appears (in either polarity), per
// §4.4's "precomputed adjacency index".
func adjacency(clauses [][]int, numVars int) [][]int {
	adj := make([][]int, numVars+1)
	seen := make([]int, numVars+1) // last clause index recorded, to dedupe same-clause repeats
	for i := range seen {
		seen[i] = -1
	}
	for ci, c := range clauses {
		for _, l := range c {
			v := l
			if v < 0 {
				v = -v
			}
			if seen[v] == ci {
				continue
			}
			seen[v] = ci
			adj[v] = append(adj[v], ci)
		}
	}
	for v := range adj {
		sort.Ints(adj[v])
	}
	return adj
}

// assign simplifies f by fixing l to true: clauses containing l are marked
// satisfied (nil); ¬l is dropped from remaining clauses. It returns the
// simplified formula and false if a clause became empty (local UNSAT).
func (f *Formula) assign(l int) (*Formula, bool) {
	nf := f.clone()
	for i, c := range nf.clauses {
		if c == nil {
			continue
		}
		if containsLiteral(c, l) {
			nf.clauses[i] = nil
			continue
		}
		if containsLiteral(c, -l) {
			nc := removeLiteral(c, -l)
			if len(nc) == 0 {
				return nf, false
			}
			nf.clauses[i] = nc
		}
	}
	return nf, true
}

func containsLiteral(c []int, l int) bool {
	for _, x := range c {
		if x == l {
			return true
		}
	}
	return false
}

func removeLiteral(c []int, l int) []int {
	nc := make([]int, 0, len(c)-1)
	for _, x := range c {
		if x != l {
			nc = append(nc, x)
		}
	}
	return nc
}

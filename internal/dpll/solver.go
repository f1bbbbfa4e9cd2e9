package dpll

// Solve implements the simplify-and-branch reference solver of §4.4 without
// unit propagation: pick the first literal of the first unsatisfied clause,
// recurse on the formula simplified by that literal and, if that fails, by
// its negation.
func Solve(clauses [][]int) (model []int, ok bool) {
	f := NewFormula(clauses)
	if f.unsat {
		return nil, false
	}
	lits, sat := solve(f, nil)
	if !sat {
		return nil, false
	}
	return finalizeModel(lits, f.numVars), true
}

func solve(f *Formula, trail []int) ([]int, bool) {
	ci := f.firstClause()
	if ci == -1 {
		return trail, true
	}

	lit0 := f.clauses[ci][0]
	for _, l := range [2]int{lit0, -lit0} {
		nf, ok := f.assign(l)
		if !ok {
			continue
		}
		nt := make([]int, len(trail)+1)
		copy(nt, trail)
		nt[len(trail)] = l
		if model, sat := solve(nf, nt); sat {
			return model, true
		}
	}
	return nil, false
}

// SolveUnitProp adds the unit-propagation optimization described in §4.4:
// before branching, repeatedly fix any unit clause's literal and simplify,
// touching only the clauses incident to the propagated variable (via a
// precomputed adjacency index) rather than rescanning the whole formula.
func SolveUnitProp(clauses [][]int) (model []int, ok bool) {
	f := NewFormula(clauses)
	if f.unsat {
		return nil, false
	}
	adj := adjacency(f.clauses, f.numVars)
	lits, sat := solveUnitProp(f, adj, nil)
	if !sat {
		return nil, false
	}
	return finalizeModel(lits, f.numVars), true
}

func solveUnitProp(f *Formula, adj [][]int, trail []int) ([]int, bool) {
	f, unitTrail, ok := unitPropagate(f, adj)
	if !ok {
		return nil, false
	}
	trail = append(append([]int{}, trail...), unitTrail...)

	ci := f.firstClause()
	if ci == -1 {
		return trail, true
	}

	lit0 := f.clauses[ci][0]
	for _, l := range [2]int{lit0, -lit0} {
		nf, ok := f.assignIncident(l, adj, nil)
		if !ok {
			continue
		}
		nt := append(append([]int{}, trail...), l)
		if model, sat := solveUnitProp(nf, adj, nt); sat {
			return model, true
		}
	}
	return nil, false
}

// unitPropagate drains the unit-clause worklist, returning the simplified
// formula, the literals it fixed (in discovery order), and false on a
// conflict (two unit clauses forcing opposite values, or an empty clause).
//
// queued tracks which variables already have a pending entry in q, so that
// a variable forced by two different unit clauses in the same pass is only
// ever propagated once.
func unitPropagate(f *Formula, adj [][]int) (*Formula, []int, bool) {
	assignedVal := make([]int8, f.numVars+1)
	var trail []int

	q := newQueue(8)
	queued := newResetSet(f.numVars + 1)
	push := func(l int) {
		v := l
		if v < 0 {
			v = -v
		}
		if queued.contains(v) {
			return
		}
		queued.add(v)
		q.push(l)
	}

	for _, c := range f.clauses {
		if c != nil && len(c) == 1 {
			push(c[0])
		}
	}

	for !q.isEmpty() {
		l := q.pop()
		v, val := l, int8(1)
		if l < 0 {
			v, val = -l, -1
		}

		if assignedVal[v] != 0 {
			if assignedVal[v] != val {
				return f, trail, false // conflicting unit clauses
			}
			continue // already fixed to the same value
		}
		assignedVal[v] = val
		trail = append(trail, l)

		nf, ok := f.assignIncident(l, adj, push)
		if !ok {
			return nf, trail, false
		}
		f = nf
	}

	return f, trail, true
}

// assignIncident simplifies f by fixing l to true, touching only the
// clauses in adj[variable(l)]. If push is non-nil, any clause that becomes
// a unit clause as a result is reported to it for further propagation.
func (f *Formula) assignIncident(l int, adj [][]int, push func(int)) (*Formula, bool) {
	v := l
	if v < 0 {
		v = -v
	}
	nf := f.clone()
	for _, ci := range adj[v] {
		c := nf.clauses[ci]
		if c == nil {
			continue
		}
		if containsLiteral(c, l) {
			nf.clauses[ci] = nil
			continue
		}
		if containsLiteral(c, -l) {
			nc := removeLiteral(c, -l)
			if len(nc) == 0 {
				return nf, false
			}
			nf.clauses[ci] = nc
			if push != nil && len(nc) == 1 {
				push(nc[0])
			}
		}
	}
	return nf, true
}

// SolveAny returns any one satisfying assignment, or ok=false if the
// formula is unsatisfiable.
func SolveAny(clauses [][]int) (model []int, ok bool) {
	it := NewIterator(clauses)
	return it.Advance()
}

// SolveAll eagerly drains the lazy iterator and returns every model found,
// in the lexicographic-by-decision-sequence order documented on Iterator.
// An empty (non-nil) slice denotes UNSAT.
func SolveAll(clauses [][]int) [][]int {
	it := NewIterator(clauses)
	models := [][]int{}
	for {
		model, ok := it.Advance()
		if !ok {
			return models
		}
		models = append(models, model)
	}
}

// finalizeModel expands a partial trail of decided literals into a full
// V-length model, assigning every variable absent from the trail a
// default positive polarity (§6: "free variables... with an arbitrary
// polarity the solver happened to choose").
func finalizeModel(trail []int, numVars int) []int {
	decided := make([]int8, numVars+1)
	for _, l := range trail {
		if l < 0 {
			decided[-l] = -1
		} else {
			decided[l] = 1
		}
	}
	model := make([]int, numVars)
	for v := 1; v <= numVars; v++ {
		if decided[v] == -1 {
			model[v-1] = -v
		} else {
			model[v-1] = v
		}
	}
	return model
}

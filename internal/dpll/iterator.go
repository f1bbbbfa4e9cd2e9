package dpll

// Iterator lazily enumerates the models of a formula using the
// simplify-and-branch algorithm of §4.4, reified as an explicit stack of
// frames rather than a materialized list (§9: "do not flatten to a
// materialized list by default"). Each frame is one decision: the formula
// entering the frame, how many of its two branches have been tried (none,
// the first literal, or both), and the literal fixed when a branch was
// taken.
//
// One model is emitted per successful search leaf. Variables left
// undecided at that leaf are reported positive, so a leaf that covers
// several total assignments yields only one of them.
//
// Models are emitted in lexicographic order by decision sequence: each
// decision branches on the first literal of the first unsatisfied clause
// (which may be a negative literal) before its complement, and variables
// are decided in the order the clause scan reaches them (§9's resolved
// open question on enumeration order).
type Iterator struct {
	formulas  []*Formula
	lits      []int
	branchIdx []int
	done      bool
}

// NewIterator returns an iterator positioned before the first model. A
// formula containing an empty clause is UNSAT from construction (§4.2,
// §6); the iterator is created already exhausted rather than ever
// indexing into that clause.
func NewIterator(clauses [][]int) *Iterator {
	f := NewFormula(clauses)
	return &Iterator{formulas: []*Formula{f}, done: f.unsat}
}

// Advance returns the next model and true, or ok=false once every model
// has been enumerated (UNSAT if called before any model was ever
// returned).
func (it *Iterator) Advance() (model []int, ok bool) {
	if it.done {
		return nil, false
	}

	for {
		depth := len(it.formulas) - 1
		f := it.formulas[depth]

		if ci := f.firstClause(); ci == -1 {
			model := finalizeModel(it.lits, f.numVars)
			it.pop()
			if len(it.formulas) == 0 {
				it.done = true
			}
			return model, true
		} else {
			if depth == len(it.branchIdx) {
				it.branchIdx = append(it.branchIdx, 0)
			}
			lit0 := f.clauses[ci][0]

			switch it.branchIdx[depth] {
			case 0:
				it.branchIdx[depth] = 1
				if nf, ok := f.assign(lit0); ok {
					it.formulas = append(it.formulas, nf)
					it.lits = append(it.lits, lit0)
				}
			case 1:
				it.branchIdx[depth] = 2
				if nf, ok := f.assign(-lit0); ok {
					it.formulas = append(it.formulas, nf)
					it.lits = append(it.lits, -lit0)
				}
			default: // both branches tried: this frame is exhausted
				it.pop()
				if len(it.formulas) == 0 {
					it.done = true
					return nil, false
				}
			}
		}
	}
}

// pop discards the deepest frame, trimming the parallel lits and
// branchIdx slices to keep the invariant len(lits) == len(formulas)-1.
func (it *Iterator) pop() {
	it.formulas = it.formulas[:len(it.formulas)-1]
	it.branchIdx = it.branchIdx[:len(it.formulas)]
	if len(it.formulas) > 0 {
		it.lits = it.lits[:len(it.formulas)-1]
	} else {
		it.lits = nil
	}
}

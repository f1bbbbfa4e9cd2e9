package wsat

// Engine is the watched-literal search driver: Knuth's Algorithm B
// (TAOCP 7.2.2.2), reproduced as an explicit state machine over
// {B2, B3, B5, B6} (B4 folded into B3's success path), rather than as the
// non-local jumps of the original algorithm description.
type Engine struct {
	f *formula

	m int // sentinel / clause count (M)
	v int // variable count (V)

	watch []int // watch[ℓ] = head clause index of ℓ's chain, or sentinel m
	next  []int // next[i] = next clause index in i's chain, or sentinel m
	move  []int // move[d] in {0,1,2,3}, per §3's decision stack
}

// newEngine threads the initial watch chains by scanning clauses in
// reverse index order (§4.2 step 6), so chains end up in ascending
// clause-index order.
func newEngine(f *formula) *Engine {
	m := f.numClauses()
	v := f.numVars
	e := &Engine{
		f:     f,
		m:     m,
		v:     v,
		watch: make([]int, 2*v),
		next:  make([]int, m),
		move:  make([]int, v),
	}
	for i := range e.watch {
		e.watch[i] = m
	}
	for i := 0; i < m; i++ {
		e.next[i] = m
	}
	for i := m - 1; i >= 0; i-- {
		l0 := f.clause(i)[0]
		e.next[i] = e.watch[l0]
		e.watch[l0] = i
	}
	return e
}

// notFalse reports whether ℓ is not false under the partial assignment
// implied by move[0..d]: either ℓ's variable is still unassigned (index
// greater than d) or it is assigned and agrees with ℓ's polarity.
func notFalse(l lit, d int, move []int) bool {
	if l.variable() > d {
		return true
	}
	return (int(l)+move[l.variable()])&1 == 0
}

// driverState names the B2, B3, B5 and B6 steps of §4.3 as explicit
// dispatch targets. B1 is the initialization at the top of solve, and B4
// (advance) is done inline when B3 succeeds.
type driverState int

const (
	stateB2 driverState = iota
	stateB3
	stateB5
	stateB6
)

// solve runs the state machine to completion, returning the decoded model
// on SAT or ok=false on UNSAT.
func (e *Engine) solve() (model []int, ok bool) {
	d := 0
	var l lit
	st := stateB2

	for {
		switch st {
		case stateB2:
			if d == e.v {
				return e.assignment(), true
			}

			pos := lit(2 * d)
			neg := pos.complement()
			bit := 0
			if int(e.watch[pos]) >= e.m || int(e.watch[neg]) < e.m {
				bit = 1
			}
			e.move[d] = bit
			l = lit(2*d | bit)
			st = stateB3

		case stateB3:
			if e.tryStopWatching(l, d) {
				e.watch[l.complement()] = e.m
				d++
				st = stateB2
			} else {
				st = stateB5
			}

		case stateB5:
			if e.move[d] < 2 {
				e.move[d] ^= 3
				l = l.complement()
				st = stateB3
			} else {
				st = stateB6
			}

		case stateB6:
			if d == 0 {
				return nil, false
			}
			d--
			if e.move[d] < 2 {
				l = lit(2*d | (e.move[d] & 1))
				st = stateB5
			}
			// else: loop again in stateB6, decrementing further.
		}
	}
}

// tryStopWatching implements B3: drain the chain of clauses watching ¬l,
// relocating each to a literal that is not false, or reporting that the
// chain could not be fully drained (some clause must keep watching ¬l).
func (e *Engine) tryStopWatching(l lit, d int) bool {
	negl := l.complement()
	j := e.watch[negl]

	for j != e.m {
		jNext := e.next[j]
		start := e.f.start[j]
		end := e.f.start[j+1]
		if end <= start {
			invariantViolation("watched clause has no literals")
		}

		found := -1
		for k := start + 1; k < end; k++ {
			if notFalse(e.f.literals[k], d, e.move) {
				found = k
				break
			}
		}

		if found < 0 {
			// No replacement: clause j keeps watching ¬l. It becomes the
			// new head of what remains of the chain (next[j] is untouched).
			e.watch[negl] = j
			return false
		}

		lk := e.f.literals[found]
		e.f.literals[start] = lk
		e.f.literals[found] = negl
		e.next[j] = e.watch[lk]
		e.watch[lk] = j

		j = jNext
	}

	return true
}

// assignment decodes move[0..V) into the DIMACS-style signed model:
// variable k (1-indexed) maps to k*(1-2*(move[k-1]&1)).
func (e *Engine) assignment() []int {
	out := make([]int, e.v)
	for i := 0; i < e.v; i++ {
		out[i] = decode(i, e.move[i]&1)
	}
	return out
}

// Solve is the watched-literal engine's single-solution entry point. It
// validates clauses, builds the flat formula store, and runs Algorithm B.
//
// Returns (model, true, nil) on SAT, (nil, false, nil) on UNSAT, or a
// non-nil error for malformed input.
func Solve(clauses [][]int) ([]int, bool, error) {
	f, triviallyUnsat, err := buildFormula(clauses)
	if err != nil {
		return nil, false, err
	}
	if triviallyUnsat {
		return nil, false, nil
	}

	e := newEngine(f)
	model, ok := e.solve()
	return model, ok, nil
}

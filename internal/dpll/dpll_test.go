package dpll

import (
	"reflect"
	"testing"
)

func satisfies(clauses [][]int, model []int) bool {
	val := map[int]bool{}
	for _, l := range model {
		if l > 0 {
			val[l] = true
		} else {
			val[-l] = false
		}
	}
	for _, c := range clauses {
		ok := false
		for _, l := range c {
			v, want := l, true
			if v < 0 {
				v, want = -v, false
			}
			if got, present := val[v]; present && got == want {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

var shortestInteresting3CNF = [][]int{
	{1, 2, -3},
	{2, 3, -4},
	{1, 3, 4},
	{-1, 2, 4},
	{-1, -2, 3},
	{-2, -3, 4},
	{-3, -4, -1},
	{1, -2, -4},
}

func TestSolveSAT(t *testing.T) {
	clauses := [][]int{{1, 2}, {-1, 3}, {-3, 4}, {1}}
	model, ok := Solve(clauses)
	if !ok {
		t.Fatalf("expected SAT")
	}
	if !satisfies(clauses, model) {
		t.Fatalf("model %v does not satisfy %v", model, clauses)
	}
}

func TestSolveUNSAT(t *testing.T) {
	if _, ok := Solve(shortestInteresting3CNF); ok {
		t.Fatalf("expected UNSAT")
	}
}

func TestSolveUnitPropAgreesWithSolve(t *testing.T) {
	cases := [][][]int{
		{{1, 2}, {-1, 3}, {-3, 4}, {1}},
		shortestInteresting3CNF,
		{{1}, {-1}},
		{},
	}
	for _, clauses := range cases {
		model1, ok1 := Solve(clauses)
		model2, ok2 := SolveUnitProp(clauses)
		if ok1 != ok2 {
			t.Fatalf("Solve/SolveUnitProp disagree on SAT/UNSAT for %v: %v vs %v", clauses, ok1, ok2)
		}
		if ok1 {
			if !satisfies(clauses, model1) {
				t.Fatalf("Solve model %v does not satisfy %v", model1, clauses)
			}
			if !satisfies(clauses, model2) {
				t.Fatalf("SolveUnitProp model %v does not satisfy %v", model2, clauses)
			}
		}
	}
}

func TestSolveEmptyFormulaIsSAT(t *testing.T) {
	model, ok := Solve(nil)
	if !ok {
		t.Fatalf("expected SAT for empty formula")
	}
	if len(model) != 0 {
		t.Fatalf("expected empty model, got %v", model)
	}
}

// A formula containing an empty clause is UNSAT by definition (§4.2, §6):
// an empty disjunction can never be satisfied. Every public entry point
// must report this without indexing into the empty clause.
func TestEmptyClauseIsUNSAT(t *testing.T) {
	clauses := [][]int{{1, 2}, {}}

	if _, ok := Solve(clauses); ok {
		t.Fatalf("Solve: expected UNSAT for a formula with an empty clause")
	}
	if _, ok := SolveUnitProp(clauses); ok {
		t.Fatalf("SolveUnitProp: expected UNSAT for a formula with an empty clause")
	}
	if _, ok := SolveAny(clauses); ok {
		t.Fatalf("SolveAny: expected UNSAT for a formula with an empty clause")
	}
	if all := SolveAll(clauses); len(all) != 0 {
		t.Fatalf("SolveAll: expected no models, got %v", all)
	}
	if _, ok := NewIterator(clauses).Advance(); ok {
		t.Fatalf("Iterator.Advance: expected UNSAT for a formula with an empty clause")
	}
}

func TestIteratorEnumeratesAllModelsOfQueensFour(t *testing.T) {
	clauses := queensClauses(4)
	var boards []string
	it := NewIterator(clauses)
	for {
		model, ok := it.Advance()
		if !ok {
			break
		}
		if !satisfies(clauses, model) {
			t.Fatalf("model %v does not satisfy queens(4)", model)
		}
		boards = append(boards, board(4, model))
	}
	if len(boards) != 2 {
		t.Fatalf("expected exactly 2 models, got %d: %v", len(boards), boards)
	}
}

func TestSolveAllMatchesIterator(t *testing.T) {
	clauses := queensClauses(4)
	all := SolveAll(clauses)
	if len(all) != 2 {
		t.Fatalf("expected 2 models, got %d", len(all))
	}
	for _, m := range all {
		if !satisfies(clauses, m) {
			t.Fatalf("model %v does not satisfy queens(4)", m)
		}
	}
	it := NewIterator(clauses)
	for i := 0; ; i++ {
		model, ok := it.Advance()
		if !ok {
			if i != len(all) {
				t.Fatalf("iterator produced %d models, SolveAll %d", i, len(all))
			}
			break
		}
		if i >= len(all) || !reflect.DeepEqual(model, all[i]) {
			t.Fatalf("iterator model %d = %v, SolveAll = %v", i, model, all)
		}
	}
}

func TestSolveAllUNSATReturnsEmptySlice(t *testing.T) {
	all := SolveAll([][]int{{1}, {-1}})
	if all == nil {
		t.Fatalf("expected a non-nil empty slice for UNSAT")
	}
	if len(all) != 0 {
		t.Fatalf("expected no models, got %v", all)
	}
}

// queensClauses encodes N-queens the same way as the watched engine's test
// suite, so both cores can be cross-checked against the same instance.
func queensClauses(n int) [][]int {
	v := func(r, c int) int { return r*n + c + 1 }
	var clauses [][]int

	for r := 0; r < n; r++ {
		row := make([]int, n)
		for c := 0; c < n; c++ {
			row[c] = v(r, c)
		}
		clauses = append(clauses, row)
	}

	forbid := func(a, b int) { clauses = append(clauses, []int{-a, -b}) }
	for r1 := 0; r1 < n; r1++ {
		for c1 := 0; c1 < n; c1++ {
			for r2 := r1; r2 < n; r2++ {
				for c2 := 0; c2 < n; c2++ {
					if r1 == r2 && c1 >= c2 {
						continue
					}
					if r1 == r2 || c1 == c2 || r2-r1 == c2-c1 || r2-r1 == c1-c2 {
						forbid(v(r1, c1), v(r2, c2))
					}
				}
			}
		}
	}
	return clauses
}

func board(n int, model []int) string {
	cols := make([]int, n)
	for _, l := range model {
		if l <= 0 {
			continue
		}
		idx := l - 1
		r, c := idx/n, idx%n
		cols[r] = c
	}
	s := ""
	for r := 0; r < n; r++ {
		if r > 0 {
			s += " "
		}
		s += string(rune('a'+r)) + string(rune('1'+cols[r]))
	}
	return s
}

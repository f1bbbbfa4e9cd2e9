// Package sat is the public entry point for wsat: a CNF satisfiability
// solver built around the watched-literal engine of Knuth's Algorithm B
// (TAOCP 7.2.2.2), with a recursive DPLL reference solver and binomial
// cardinality encoders for puzzle reductions.
package sat

import (
	"fmt"

	"github.com/rhartert/wsat/internal/card"
	"github.com/rhartert/wsat/internal/dpll"
	"github.com/rhartert/wsat/internal/wsat"
)

// ErrMalformedInput and ErrVariableOutOfRange are returned by Solve when
// the formula fails validation (§4.6, §7).
var (
	ErrMalformedInput     = wsat.ErrMalformedInput
	ErrVariableOutOfRange = wsat.ErrVariableOutOfRange
)

// Formula is a CNF formula in the external interface's format (§6): an
// ordered sequence of clauses, each an ordered sequence of nonzero signed
// literals. Positive k denotes variable k, -k its negation.
type Formula = [][]int

// Model is a satisfying total assignment: entry at 1-indexed position k is
// +k or -k according to variable k's assignment (§6).
type Model = []int

// Solve runs the watched-literal engine (Algorithm B) on f and returns a
// model on SAT, ok=false on UNSAT, or a non-nil error if f is malformed.
//
// Solve is deterministic: repeated calls on the same f return identical
// output (§5).
func Solve(f Formula) (Model, bool, error) {
	model, ok, err := wsat.Solve(f)
	if err != nil {
		return nil, false, fmt.Errorf("sat: %w", err)
	}
	return model, ok, nil
}

// IsSAT is a convenience wrapper over Solve that discards the model.
func IsSAT(f Formula) (bool, error) {
	_, ok, err := Solve(f)
	return ok, err
}

// SolveReference runs the recursive DPLL reference solver (§4.4) without
// unit propagation, returning any one model.
func SolveReference(f Formula) (Model, bool) {
	return dpll.Solve(f)
}

// SolveReferenceUnitProp runs the DPLL reference solver with the
// unit-propagation optimization of §4.4.
func SolveReferenceUnitProp(f Formula) (Model, bool) {
	return dpll.SolveUnitProp(f)
}

// SolveAny returns any one model via the lazy enumerator, or ok=false if f
// is unsatisfiable.
func SolveAny(f Formula) (Model, bool) {
	return dpll.SolveAny(f)
}

// SolveAll eagerly collects the models of f produced by the lazy
// enumerator (§4.4, §9): one per search leaf, with variables left
// undecided there reported positive. An empty, non-nil slice denotes UNSAT.
func SolveAll(f Formula) []Model {
	return dpll.SolveAll(f)
}

// Iterator lazily enumerates the models of f; see dpll.Iterator for the
// frame-stack contract, the documented enumeration order, and how
// undecided variables are reported.
type Iterator struct {
	it *dpll.Iterator
}

// NewIterator returns an iterator positioned before f's first model.
func NewIterator(f Formula) *Iterator {
	return &Iterator{it: dpll.NewIterator(f)}
}

// Advance returns the next model and true, or ok=false once every model
// has been enumerated.
func (it *Iterator) Advance() (Model, bool) {
	return it.it.Advance()
}

// AtMost, AtLeast, and Exactly are the binomial cardinality encoders of
// §4.5, operating on the same external literal representation as Formula.
func AtMost(k int, lits []int) []Model  { return card.AtMost(k, lits) }
func AtLeast(k int, lits []int) []Model { return card.AtLeast(k, lits) }
func Exactly(k int, lits []int) []Model { return card.Exactly(k, lits) }

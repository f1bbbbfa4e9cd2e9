// Package parsers adapts the external github.com/rhartert/dimacs reader
// onto wsat's CNF formula and model representations.
package parsers

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rhartert/dimacs"

	"github.com/rhartert/wsat/sat"
)

// LoadDIMACS reads a DIMACS CNF file from r and returns the formula it
// encodes, in clause order.
func LoadDIMACS(r io.Reader) (sat.Formula, error) {
	b := &formulaBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, fmt.Errorf("parsers: %w", err)
	}
	return b.formula, nil
}

// formulaBuilder implements dimacs.Builder, appending each parsed clause
// directly onto a sat.Formula.
type formulaBuilder struct {
	formula sat.Formula
}

func (b *formulaBuilder) Problem(nVars int, nClauses int) {
	b.formula = make(sat.Formula, 0, nClauses)
}

func (b *formulaBuilder) Clause(tmpClause []int) {
	clause := make([]int, len(tmpClause))
	copy(clause, tmpClause)
	b.formula = append(b.formula, clause)
}

func (b *formulaBuilder) Comment(_ string) {} // ignore comments

// ReadModels reads a reference models file: one model per line, each line a
// whitespace-separated list of nonzero signed literals terminated by a
// trailing "0", in the same convention as a DIMACS clause line. It is used
// to compare the solver's enumeration against trusted reference output.
func ReadModels(r io.Reader) ([][]int, error) {
	scanner := bufio.NewScanner(r)
	var models [][]int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}

		parts := strings.Fields(line)
		model := make([]int, 0, len(parts))
		for i, p := range parts {
			l, err := strconv.Atoi(p)
			if err != nil {
				return nil, fmt.Errorf("parsers: invalid literal %q: %w", p, err)
			}
			if l == 0 {
				if i != len(parts)-1 {
					return nil, fmt.Errorf("parsers: zero found before end of model line: %q", line)
				}
				break
			}
			model = append(model, l)
		}
		models = append(models, model)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parsers: %w", err)
	}
	return models, nil
}

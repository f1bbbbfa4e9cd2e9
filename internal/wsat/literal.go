package wsat

import "fmt"

// maxVar is the largest variable magnitude the codec accepts. Literals with
// |L| >= maxVar are rejected as out of range.
const maxVar = 1 << 31

// lit is an internal literal code in [0, 2V) for a formula over V variables.
// Code 2k encodes the positive literal of variable k+1; code 2k+1 encodes
// the negative literal of variable k+1.
type lit int

// encode maps a nonzero signed DIMACS literal to its internal code. It
// returns an error if L is zero or |L| is out of range.
func encode(l int) (lit, error) {
	if l == 0 {
		return 0, fmt.Errorf("%w: literal is zero", ErrMalformedInput)
	}
	v := l
	if v < 0 {
		v = -v
	}
	if v >= maxVar {
		return 0, fmt.Errorf("%w: variable %d exceeds maximum %d", ErrVariableOutOfRange, v, maxVar-1)
	}
	if l < 0 {
		return lit(2*(v-1) + 1), nil
	}
	return lit(2 * (v - 1)), nil
}

// decode maps a 0-indexed variable and a chosen polarity bit back to the
// signed DIMACS literal for that variable, matching §4.6's result mapping:
// variable k (1-indexed) with polarity bit b decodes to k*(1-2b).
func decode(varID int, polarityBit int) int {
	k := varID + 1
	return k * (1 - 2*polarityBit)
}

// variable returns the 0-indexed variable of ℓ (ℓ >> 1).
func (l lit) variable() int {
	return int(l) >> 1
}

// polarity returns ℓ's polarity bit: 0 for positive, 1 for negative.
func (l lit) polarity() int {
	return int(l) & 1
}

// complement returns ¬ℓ. Complementation is involutive: ℓ.complement().complement() == ℓ.
func (l lit) complement() lit {
	return l ^ 1
}

func (l lit) String() string {
	k := l.variable() + 1
	if l.polarity() == 1 {
		return fmt.Sprintf("-%d", k)
	}
	return fmt.Sprintf("%d", k)
}

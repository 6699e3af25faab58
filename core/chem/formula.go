package chem

import (
	"strconv"
	"strings"

	"gslgen/internal/errors"
)

// Count is a molecular formula: element to non-negative atom count.
// A missing element means zero atoms of it.
type Count map[Element]int

// Delta is a signed per-element adjustment applied to a Count.
// Negative entries represent neutral losses.
type Delta map[Element]int

// NewCount builds a Count, dropping zero entries.
func NewCount(elements map[Element]int) Count {
	c := make(Count, len(elements))
	for el, n := range elements {
		if n > 0 {
			c[el] = n
		}
	}
	return c
}

// Clone returns an independent copy.
func (c Count) Clone() Count {
	out := make(Count, len(c))
	for el, n := range c {
		out[el] = n
	}
	return out
}

// Get returns the atom count for an element (zero when absent).
func (c Count) Get(el Element) int {
	return c[el]
}

// IsEmpty reports whether the formula has no atoms.
func (c Count) IsEmpty() bool {
	for _, n := range c {
		if n > 0 {
			return false
		}
	}
	return true
}

// Add returns the element-wise sum of two formulas.
func (c Count) Add(other Count) Count {
	out := c.Clone()
	for el, n := range other {
		out[el] += n
	}
	return out
}

// Apply adjusts the formula by a delta. It fails with a FORMULA_ERROR if
// any element would go negative; zero entries are dropped from the result.
func (c Count) Apply(d Delta) (Count, error) {
	out := c.Clone()
	for el, n := range d {
		out[el] += n
	}
	for el, n := range out {
		if n < 0 {
			return nil, errors.Formula("negative atom count for " + string(el) + " in " + c.String()).
				WithContext("element", string(el)).
				WithContext("count", n)
		}
		if n == 0 {
			delete(out, el)
		}
	}
	return out, nil
}

// String writes the formula in CHNOPS order, omitting the count when it
// is one ("C34H67NO3").
func (c Count) String() string {
	var b strings.Builder
	for _, el := range elementOrder {
		n := c[el]
		if n <= 0 {
			continue
		}
		b.WriteString(string(el))
		if n > 1 {
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}

// Negate returns a Delta that subtracts every atom of the formula.
func (c Count) Negate() Delta {
	d := make(Delta, len(c))
	for el, n := range c {
		d[el] = -n
	}
	return d
}

// Merge combines deltas element-wise.
func Merge(deltas ...Delta) Delta {
	out := make(Delta)
	for _, d := range deltas {
		for el, n := range d {
			out[el] += n
		}
	}
	return out
}

// Water is the formula of one water molecule, lost per condensation bond.
var Water = Count{Hydrogen: 2, Oxygen: 1}

// WaterLoss is the delta removing one water molecule.
var WaterLoss = Delta{Hydrogen: -2, Oxygen: -1}

// WaterGain is the delta adding one water molecule (glycosidic Y-ion
// hydration in negative mode).
var WaterGain = Delta{Hydrogen: 2, Oxygen: 1}

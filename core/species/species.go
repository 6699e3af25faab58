// Package species assembles concrete molecular species: one lipid class
// paired with one long-chain base and one fatty acid, condensed into a
// full molecular formula.
package species

import (
	"iter"

	"gslgen/core/blocks"
	"gslgen/core/chem"
	"gslgen/core/registry"
)

// Species is one fully specified molecule. Immutable after assembly.
type Species struct {
	Class *registry.LipidClassDef
	LCB   blocks.Structure
	FA    blocks.Structure

	// Formula is the neutral molecular formula:
	// LCB + FA - H2O (amide condensation) + headgroup residue.
	Formula chem.Count
}

// New condenses a class, an LCB and an FA into a species. The amide bond
// between base and acyl chain releases one water; the headgroup residue
// is stored dehydrated and adds directly.
func New(class *registry.LipidClassDef, lcb, fa blocks.Structure) (Species, error) {
	formula, err := lcb.Formula().Add(fa.Formula()).Apply(chem.WaterLoss)
	if err != nil {
		return Species{}, err
	}
	if !class.Headgroup.IsEmpty() {
		formula = formula.Add(class.Headgroup)
	}
	return Species{Class: class, LCB: lcb, FA: fa, Formula: formula}, nil
}

// Name returns the display name. Ceramide classes use parenthesized
// shorthand ("Cer(18:1;2/16:0)"); glycosylated classes separate the class
// from the chains with a space ("GM3 18:1;2/16:0").
func (s Species) Name() string {
	chains := s.LCB.Name() + "/" + s.FA.Name()
	if s.Class.Headgroup.IsEmpty() {
		return s.Class.Name + "(" + chains + ")"
	}
	return s.Class.Name + " " + chains
}

// Mass returns the neutral monoisotopic mass.
func (s Species) Mass() float64 {
	return chem.Mass(s.Formula)
}

// Enumerate yields the cross product of the LCB and FA lists for one
// class, LCB-major, in list order. Assembly errors are yielded in place
// so the caller can decide between skip and abort.
func Enumerate(class *registry.LipidClassDef, lcbs, fas []blocks.Structure) iter.Seq2[Species, error] {
	return func(yield func(Species, error) bool) {
		for _, lcb := range lcbs {
			for _, fa := range fas {
				sp, err := New(class, lcb, fa)
				if !yield(sp, err) {
					return
				}
			}
		}
	}
}

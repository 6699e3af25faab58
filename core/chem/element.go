// Package chem provides elemental formulas and exact monoisotopic mass
// calculation for the transition generator.
package chem

// Element is a chemical element symbol.
type Element string

// Elements used by sphingolipid formulas.
const (
	Carbon     Element = "C"
	Hydrogen   Element = "H"
	Nitrogen   Element = "N"
	Oxygen     Element = "O"
	Phosphorus Element = "P"
	Sulfur     Element = "S"
)

// elementOrder is the canonical formula writing order (CHNOPS).
var elementOrder = []Element{Carbon, Hydrogen, Nitrogen, Oxygen, Phosphorus, Sulfur}

// Monoisotopic atomic masses, IUPAC 2016.
var atomicMasses = map[Element]float64{
	Carbon:     12.0000000,
	Hydrogen:   1.00782503223,
	Nitrogen:   14.0030740048,
	Oxygen:     15.9949146223,
	Phosphorus: 30.9737619985,
	Sulfur:     31.9720711744,
}

// ProtonMass is the mass of H+, used for charge adjustment (not the same
// as the hydrogen atomic mass).
const ProtonMass = 1.007276466812

// AtomicMass returns the monoisotopic mass of an element.
func AtomicMass(el Element) (float64, bool) {
	m, ok := atomicMasses[el]
	return m, ok
}

// Isotope names a heavy isotope substitution.
type Isotope string

// Supported heavy isotopes.
const (
	Deuterium Isotope = "2H"
	Carbon13  Isotope = "13C"
	Nitrogen15 Isotope = "15N"
	Oxygen18  Isotope = "18O"
)

// isotopeOrder is the canonical summation order. Mass sums iterate this
// slice, not the substitution map, so shifts are bit-identical across runs.
var isotopeOrder = []Isotope{Deuterium, Carbon13, Nitrogen15, Oxygen18}

// Isotopes returns the supported heavy isotopes in canonical order.
func Isotopes() []Isotope {
	out := make([]Isotope, len(isotopeOrder))
	copy(out, isotopeOrder)
	return out
}

// Exact mass differences between the heavy isotope and the standard
// isotope (IUPAC values).
var isotopeDeltas = map[Isotope]float64{
	Deuterium:  1.006276746,
	Nitrogen15: 0.997034893,
	Carbon13:   1.0033548378,
	Oxygen18:   2.004244,
}

// isotopeElements maps each isotope to the element it substitutes.
var isotopeElements = map[Isotope]Element{
	Deuterium:  Hydrogen,
	Nitrogen15: Nitrogen,
	Carbon13:   Carbon,
	Oxygen18:   Oxygen,
}

// IsotopeDelta returns the heavy-minus-light mass difference for an isotope.
func IsotopeDelta(iso Isotope) (float64, bool) {
	d, ok := isotopeDeltas[iso]
	return d, ok
}

// IsotopeElement returns the element an isotope substitutes.
func IsotopeElement(iso Isotope) (Element, bool) {
	el, ok := isotopeElements[iso]
	return el, ok
}

package chem

// Substitution maps a heavy isotope to the number of atoms replaced by it.
type Substitution map[Isotope]int

// Mass returns the exact neutral monoisotopic mass of a formula.
// Double-precision summation, no rounding; rounding belongs to
// presentation, never to this stage.
func Mass(c Count) float64 {
	total := 0.0
	for _, el := range elementOrder {
		n := c[el]
		if n == 0 {
			continue
		}
		total += float64(n) * atomicMasses[el]
	}
	return total
}

// MassWithSubstitution returns the exact mass with heavy-isotope
// substitution applied: substituted atoms are priced at the heavy mass,
// the remainder at the standard mass. A substitution count larger than
// the atoms actually present is capped at the available count.
func MassWithSubstitution(c Count, subs Substitution) float64 {
	total := Mass(c)
	for _, iso := range isotopeOrder {
		want := subs[iso]
		if want <= 0 {
			continue
		}
		delta := isotopeDeltas[iso]
		el := isotopeElements[iso]
		n := want
		if avail := c[el]; n > avail {
			n = avail
		}
		total += float64(n) * delta
	}
	return total
}

// ShiftOf returns the total heavy-minus-light mass shift a substitution
// produces when applied to a formula (capped at available atoms, as in
// MassWithSubstitution).
func ShiftOf(c Count, subs Substitution) float64 {
	return MassWithSubstitution(c, subs) - Mass(c)
}

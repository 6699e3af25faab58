// Package adduct defines the ionization adduct catalog and m/z
// computation. An adduct is a mass delta plus a signed charge; m/z is
// always derived from the neutral formula mass at the last step.
package adduct

import (
	"math"
	"sort"

	"gslgen/core/chem"
	"gslgen/internal/errors"
)

// Exact masses of the charge carriers.
const (
	sodiumMass   = 22.98976928
	ammoniumMass = 18.03383
	acetateMass  = 59.013851
	formateMass  = 44.998201
)

// Def is one adduct definition.
type Def struct {
	// Name is the Skyline-style display name, e.g. "[M+2H]2+".
	Name string

	// Key is the selection key used in configuration, e.g. "[M+2H]2+"
	// (identical to Name for all built-ins).
	Key string

	// MassDelta is the mass added to the neutral molecule.
	MassDelta float64

	// Charge is the signed charge state.
	Charge int
}

// Magnitude returns the absolute charge.
func (d Def) Magnitude() int {
	if d.Charge < 0 {
		return -d.Charge
	}
	return d.Charge
}

// Positive reports the polarity sign.
func (d Def) Positive() bool {
	return d.Charge > 0
}

// Mz returns the mass-to-charge ratio of the ionized molecule.
func (d Def) Mz(neutralMass float64) float64 {
	return (neutralMass + d.MassDelta) / math.Abs(float64(d.Charge))
}

// catalog lists every built-in adduct in declaration order, grouped by
// charge magnitude. Declaration order is the output order.
var catalog = []Def{
	{Name: "[M+H]1+", Key: "[M+H]+", MassDelta: chem.ProtonMass, Charge: 1},
	{Name: "[M-H]1-", Key: "[M-H]-", MassDelta: -chem.ProtonMass, Charge: -1},
	{Name: "[M+Na]1+", Key: "[M+Na]+", MassDelta: sodiumMass, Charge: 1},
	{Name: "[M+NH4]1+", Key: "[M+NH4]+", MassDelta: ammoniumMass, Charge: 1},
	{Name: "[M+CH3COO]1-", Key: "[M+CH3COO]-", MassDelta: acetateMass, Charge: -1},
	{Name: "[M+HCOO]1-", Key: "[M+HCOO]-", MassDelta: formateMass, Charge: -1},

	{Name: "[M+2H]2+", Key: "[M+2H]2+", MassDelta: 2 * chem.ProtonMass, Charge: 2},
	{Name: "[M-2H]2-", Key: "[M-2H]2-", MassDelta: -2 * chem.ProtonMass, Charge: -2},
	{Name: "[M+H+Na]2+", Key: "[M+H+Na]2+", MassDelta: chem.ProtonMass + sodiumMass, Charge: 2},
	{Name: "[M+2Na]2+", Key: "[M+2Na]2+", MassDelta: 2 * sodiumMass, Charge: 2},

	{Name: "[M+3H]3+", Key: "[M+3H]3+", MassDelta: 3 * chem.ProtonMass, Charge: 3},
	{Name: "[M-3H]3-", Key: "[M-3H]3-", MassDelta: -3 * chem.ProtonMass, Charge: -3},
	{Name: "[M+2H+Na]3+", Key: "[M+2H+Na]3+", MassDelta: 2*chem.ProtonMass + sodiumMass, Charge: 3},
	{Name: "[M+H+2Na]3+", Key: "[M+H+2Na]3+", MassDelta: chem.ProtonMass + 2*sodiumMass, Charge: 3},
	{Name: "[M+3Na]3+", Key: "[M+3Na]3+", MassDelta: 3 * sodiumMass, Charge: 3},

	{Name: "[M+4H]4+", Key: "[M+4H]4+", MassDelta: 4 * chem.ProtonMass, Charge: 4},
	{Name: "[M-4H]4-", Key: "[M-4H]4-", MassDelta: -4 * chem.ProtonMass, Charge: -4},

	{Name: "[M+5H]5+", Key: "[M+5H]5+", MassDelta: 5 * chem.ProtonMass, Charge: 5},
	{Name: "[M-5H]5-", Key: "[M-5H]5-", MassDelta: -5 * chem.ProtonMass, Charge: -5},
}

// ProductPositive and ProductNegative are the fixed singly-charged
// product-ion adducts.
var (
	ProductPositive = Def{Name: "[M+H]1+", Key: "[M+H]+", MassDelta: chem.ProtonMass, Charge: 1}
	ProductNegative = Def{Name: "[M-H]1-", Key: "[M-H]-", MassDelta: -chem.ProtonMass, Charge: -1}

	// ProductTwoMinus is the doubly-deprotonated product adduct used by
	// selected Y-ion rules under multiply-charged negative precursors.
	ProductTwoMinus = Def{Name: "[M-2H]2-", Key: "[M-2H]2-", MassDelta: -2 * chem.ProtonMass, Charge: -2}
)

// All returns the full catalog in declaration order.
func All() []Def {
	out := make([]Def, len(catalog))
	copy(out, catalog)
	return out
}

// ForCharges returns the default protonated/deprotonated adduct pair for
// each requested charge magnitude, ascending, preserving pair order
// (positive before negative).
func ForCharges(charges []int) ([]Def, error) {
	sorted := sortedCharges(charges)
	var out []Def
	for _, z := range sorted {
		if z < 1 || z > 5 {
			return nil, errors.Configf("unsupported charge state %d (1-5)", z)
		}
		for _, d := range catalog {
			if d.Magnitude() != z {
				continue
			}
			if isProtonPair(d) {
				out = append(out, d)
			}
		}
	}
	return out, nil
}

// Select resolves named adducts across the requested charge magnitudes.
// Order is charge ascending, then catalog declaration order; names that
// match no catalog entry at any requested charge are an error.
func Select(keys []string, charges []int) ([]Def, error) {
	sorted := sortedCharges(charges)
	matched := make(map[string]bool, len(keys))
	var out []Def
	for _, z := range sorted {
		if z < 1 || z > 5 {
			return nil, errors.Configf("unsupported charge state %d (1-5)", z)
		}
		for _, d := range catalog {
			if d.Magnitude() != z {
				continue
			}
			for _, key := range keys {
				if d.Key == key || d.Name == key {
					out = append(out, d)
					matched[key] = true
					break
				}
			}
		}
	}
	for _, key := range keys {
		if !matched[key] {
			return nil, errors.NotFound("adduct", key)
		}
	}
	return out, nil
}

func isProtonPair(d Def) bool {
	switch d.Key {
	case "[M+H]+", "[M-H]-", "[M+2H]2+", "[M-2H]2-", "[M+3H]3+", "[M-3H]3-",
		"[M+4H]4+", "[M-4H]4-", "[M+5H]5+", "[M-5H]5-":
		return true
	}
	return false
}

func sortedCharges(charges []int) []int {
	out := make([]int, 0, len(charges))
	seen := make(map[int]bool, len(charges))
	for _, z := range charges {
		if !seen[z] {
			seen[z] = true
			out = append(out, z)
		}
	}
	sort.Ints(out)
	return out
}

// Package fragment interprets declarative fragmentation rules against a
// species. The interpreter is fully generic: every class-specific product
// ion is data in the class registry, and the only operations here are
// basis selection, delta application and name templating.
package fragment

import (
	"strings"

	"gslgen/core/chem"
	"gslgen/core/registry"
	"gslgen/core/species"
	"gslgen/internal/errors"
)

// chainToken in a rule name is replaced with the short name of the chain
// the rule's basis refers to.
const chainToken = "{chain}"

// Product is one computed product ion, still neutral: ionization and m/z
// happen downstream at the adduct layer.
type Product struct {
	Name    string
	Formula chem.Count

	// Intact marks the precursor (and its water loss): it is observed at
	// the precursor's own adduct and charge.
	Intact bool

	// TwoMinus marks products that additionally appear as a
	// doubly-deprotonated ion under multiply-charged negative precursors.
	TwoMinus bool
}

// Apply evaluates one rule against one species. A rule whose delta would
// drive any atom count negative does not apply to that species; the
// returned error is a RULE_SKIP carrying the rule and species names.
func Apply(rule registry.FragmentRule, sp species.Species) (Product, error) {
	base, chain := basisFormula(rule.Basis, sp)

	var formula chem.Count
	if rule.Basis == registry.BasisFixed {
		formula = rule.Fixed.Clone()
	} else {
		var err error
		formula, err = base.Apply(rule.Delta)
		if err != nil {
			return Product{}, errors.RuleSkip(rule.Name, sp.Name())
		}
	}
	if formula.IsEmpty() {
		return Product{}, errors.RuleSkip(rule.Name, sp.Name())
	}

	name := rule.Name
	if chain != "" {
		name = strings.ReplaceAll(name, chainToken, chain)
	}
	return Product{Name: name, Formula: formula, Intact: rule.Intact, TwoMinus: rule.TwoMinus}, nil
}

// basisFormula resolves the formula a rule's delta applies to, and the
// chain short name substituted into the rule name.
func basisFormula(basis registry.Basis, sp species.Species) (chem.Count, string) {
	switch basis {
	case registry.BasisLCB:
		return sp.LCB.Formula(), sp.LCB.Name()
	case registry.BasisFA:
		return sp.FA.Formula(), sp.FA.Name()
	case registry.BasisFixed:
		return nil, ""
	default:
		return sp.Formula, ""
	}
}

// Products evaluates every rule of the species' class that matches the
// precursor charge sign, in rule order. Rules that do not apply to this
// species are silently skipped; any other error aborts.
func Products(sp species.Species, chargeSign int) ([]Product, error) {
	var out []Product
	for _, rule := range sp.Class.Rules {
		if !rule.Polarity.Matches(chargeSign) {
			continue
		}
		p, err := Apply(rule, sp)
		if err != nil {
			if errors.IsType(err, errors.TypeRuleSkip) {
				continue
			}
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

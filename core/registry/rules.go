package registry

import (
	"slices"

	"gslgen/core/chem"
)

// formula is a CHNO shorthand for the fragment tables below.
func formula(c, h, n, o int) chem.Count {
	return chem.NewCount(map[chem.Element]int{
		chem.Carbon:   c,
		chem.Hydrogen: h,
		chem.Nitrogen: n,
		chem.Oxygen:   o,
	})
}

// sulfo is the CHNOS variant for sulfated headgroups.
func sulfo(c, h, n, o, s int) chem.Count {
	f := formula(c, h, n, o)
	if s > 0 {
		f[chem.Sulfur] = s
	}
	return f
}

// lossEntry is one neutral loss from the intact precursor: the Y-ion name
// and the formula of the glycan residue lost.
type lossEntry struct {
	name string
	loss chem.Count
}

// Precursor rows common to every class. Water loss is observed in
// positive mode only.
var precursorRules = []FragmentRule{
	{Name: "precursor", Basis: BasisPrecursor, Polarity: PolarityBoth, Intact: true},
	{Name: "precursor-(H2O,18)", Basis: BasisPrecursor, Delta: chem.WaterLoss, Polarity: PolarityPositive, Intact: true},
}

// Sphingoid backbone fragments in positive mode, relative to the free
// long-chain base. The dehydration series is shared by ceramides,
// sphingomyelins and every glycosphingolipid.
var lcbPositiveRules = []FragmentRule{
	{Name: "LCB {chain}(-HO)", Basis: BasisLCB,
		Delta: chem.Delta{chem.Hydrogen: -2, chem.Oxygen: -1}, Polarity: PolarityPositive},
	{Name: "LCB {chain}(-H3O2)", Basis: BasisLCB,
		Delta: chem.Delta{chem.Hydrogen: -4, chem.Oxygen: -2}, Polarity: PolarityPositive},
	{Name: "LCB {chain}(-CH3O2)", Basis: BasisLCB,
		Delta: chem.Delta{chem.Carbon: -1, chem.Hydrogen: -4, chem.Oxygen: -2}, Polarity: PolarityPositive},
}

// 1-deoxy backbone variant: the free base ionizes intact and after one
// dehydration.
var doxLCBPositiveRules = []FragmentRule{
	{Name: "doxLCB {chain}", Basis: BasisLCB, Polarity: PolarityPositive},
	{Name: "doxLCB {chain}(-H2O)", Basis: BasisLCB,
		Delta: chem.Delta{chem.Hydrogen: -2, chem.Oxygen: -1}, Polarity: PolarityPositive},
}

// Negative-mode backbone fragments, universal for GSLs and sphingomyelins.
var lcbNegativeRules = []FragmentRule{
	{Name: "LCB {chain}(-CH3O)", Basis: BasisLCB,
		Delta: chem.Delta{chem.Carbon: -1, chem.Hydrogen: -2, chem.Oxygen: -1}, Polarity: PolarityNegative},
	{Name: "LCB {chain}(-C2H8NO)", Basis: BasisLCB,
		Delta: chem.Delta{chem.Carbon: -2, chem.Hydrogen: -7, chem.Nitrogen: -1, chem.Oxygen: -1}, Polarity: PolarityNegative},
}

// Amide-linked fatty-acid fragments in negative mode, relative to the
// free fatty acid. The amide nitrogen travels with the acyl chain.
var faNegativeRules = []FragmentRule{
	{Name: "FA {chain}+(HN)", Basis: BasisFA,
		Delta: chem.Delta{chem.Hydrogen: 1, chem.Nitrogen: 1, chem.Oxygen: -1}, Polarity: PolarityNegative},
	{Name: "FA {chain}+(C2H3N)", Basis: BasisFA,
		Delta: chem.Delta{chem.Carbon: 2, chem.Hydrogen: 3, chem.Nitrogen: 1, chem.Oxygen: -1}, Polarity: PolarityNegative},
	{Name: "FA {chain}+(C2H3NO)", Basis: BasisFA,
		Delta: chem.Delta{chem.Carbon: 2, chem.Hydrogen: 3, chem.Nitrogen: 1}, Polarity: PolarityNegative},
}

func posIon(name string, f chem.Count) FragmentRule {
	return FragmentRule{Name: name, Basis: BasisFixed, Fixed: f, Polarity: PolarityPositive}
}

func negIon(name string, f chem.Count) FragmentRule {
	return FragmentRule{Name: name, Basis: BasisFixed, Fixed: f, Polarity: PolarityNegative}
}

// posLossRules turns a neutral-loss table into positive-mode precursor
// rules: the residue is simply subtracted.
func posLossRules(entries []lossEntry) []FragmentRule {
	rules := make([]FragmentRule, 0, len(entries))
	for _, e := range entries {
		rules = append(rules, FragmentRule{
			Name:     e.name,
			Basis:    BasisPrecursor,
			Delta:    e.loss.Negate(),
			Polarity: PolarityPositive,
		})
	}
	return rules
}

// negLossRules turns the same table into negative-mode Y-ion rules.
// Glycosidic cleavage in negative mode retains the water of hydration,
// so one H2O is folded into the delta. Names listed in twoMinus also
// emit a doubly-deprotonated sibling under multiply-charged precursors.
func negLossRules(entries []lossEntry, twoMinus ...string) []FragmentRule {
	rules := make([]FragmentRule, 0, len(entries))
	for _, e := range entries {
		rules = append(rules, FragmentRule{
			Name:     e.name,
			Basis:    BasisPrecursor,
			Delta:    chem.Merge(e.loss.Negate(), chem.WaterGain),
			Polarity: PolarityNegative,
			TwoMinus: slices.Contains(twoMinus, e.name),
		})
	}
	return rules
}

// ruleSet assembles the ordered rule list for one class. Order is the
// output order: precursor rows, positive backbone, positive Y-ions and
// oxonium ions, negative diagnostics and Y-ions, negative backbone and
// fatty-acid fragments.
type ruleSet struct {
	backbone    []FragmentRule
	posLoss     []lossEntry
	posIons     []FragmentRule
	negIons     []FragmentRule
	negLoss     []lossEntry
	twoMinus    []string
	negBackbone bool
}

func (rs ruleSet) build() []FragmentRule {
	var rules []FragmentRule
	rules = append(rules, precursorRules...)
	rules = append(rules, rs.backbone...)
	rules = append(rules, posLossRules(rs.posLoss)...)
	rules = append(rules, rs.posIons...)
	rules = append(rules, rs.negIons...)
	rules = append(rules, negLossRules(rs.negLoss, rs.twoMinus...)...)
	if rs.negBackbone {
		rules = append(rules, lcbNegativeRules...)
		rules = append(rules, faNegativeRules...)
	}
	return rules
}

// Shared oxonium-ion series (positive mode, B-ions and their
// dehydration ladders).

func hexOxoniumPair() []FragmentRule {
	return []FragmentRule{
		posIon("HG(Hex,162)", formula(6, 10, 0, 5)),
		posIon("HG(Hex,180)", formula(6, 12, 0, 6)),
	}
}

func hexNAcOxoniumSeries() []FragmentRule {
	return []FragmentRule{
		posIon("HG(HexNAc,221)", formula(8, 15, 1, 6)),
		posIon("HG(HexNAc,203)", formula(8, 13, 1, 5)),
		posIon("HG(HexNAc,185)", formula(8, 11, 1, 4)),
		posIon("HG(HexNAc,155)", formula(7, 9, 1, 3)),
		posIon("HG(HexNAc,137)", formula(7, 7, 1, 2)),
	}
}

func neuAcOxoniumPair() []FragmentRule {
	return []FragmentRule{
		posIon("HG(NeuAc,309)", formula(11, 19, 1, 9)),
		posIon("HG(NeuAc,291)", formula(11, 17, 1, 8)),
	}
}

func neuAc2OxoniumPair() []FragmentRule {
	return []FragmentRule{
		posIon("HG(NeuAc2,600)", formula(22, 36, 2, 17)),
		posIon("HG(NeuAc2,582)", formula(22, 34, 2, 16)),
	}
}

// Shared diagnostic anions (negative mode).

func neuAcAnion() []FragmentRule {
	return []FragmentRule{
		negIon("HG(NeuAc,291)", formula(11, 17, 1, 8)),
	}
}

func neuAc2AnionPair() []FragmentRule {
	return []FragmentRule{
		negIon("HG(NeuAc2,582)", formula(22, 34, 2, 16)),
		negIon("HG(NeuAc2-CO2,538)", formula(21, 34, 2, 14)),
	}
}

func neuAc3AnionPair() []FragmentRule {
	return []FragmentRule{
		negIon("HG(NeuAc3,873)", formula(33, 51, 3, 24)),
		negIon("HG(NeuAc3-CO2,829)", formula(32, 51, 3, 22)),
	}
}

func nLcAnionSeries() []FragmentRule {
	return []FragmentRule{
		negIon("HG(Hex,180)", formula(6, 12, 0, 6)),
		negIon("HG(Hex,162)", formula(6, 10, 0, 5)),
		negIon("HG(HexNAc,221)", formula(8, 15, 1, 6)),
		negIon("HG(HexNAc,203)", formula(8, 13, 1, 5)),
		negIon("HG(HexNAcHex,383)", formula(14, 25, 1, 11)),
		negIon("HG(HexNAcHex,365)", formula(14, 23, 1, 10)),
	}
}

func concat(groups ...[]FragmentRule) []FragmentRule {
	var out []FragmentRule
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

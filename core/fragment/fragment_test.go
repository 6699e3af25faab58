package fragment

import (
	"strings"
	"testing"

	"gslgen/core/blocks"
	"gslgen/core/chem"
	"gslgen/core/registry"
	"gslgen/core/species"
	"gslgen/internal/errors"
)

func testSpecies(t *testing.T, class string, lcbName, faName string) species.Species {
	t.Helper()
	def, err := registry.Default().Get(class)
	if err != nil {
		t.Fatalf("class %s: %v", class, err)
	}
	lcb, err := blocks.ParseChain(blocks.KindLCB, lcbName)
	if err != nil {
		t.Fatalf("lcb %s: %v", lcbName, err)
	}
	fa, err := blocks.ParseChain(blocks.KindFA, faName)
	if err != nil {
		t.Fatalf("fa %s: %v", faName, err)
	}
	sp, err := species.New(def, lcb, fa)
	if err != nil {
		t.Fatalf("species: %v", err)
	}
	return sp
}

func TestChainNameSubstitution(t *testing.T) {
	sp := testSpecies(t, "Cer", "18:1;2", "16:0")
	rule := registry.FragmentRule{
		Name:     "LCB {chain}(-HO)",
		Basis:    registry.BasisLCB,
		Delta:    chem.Delta{chem.Hydrogen: -2, chem.Oxygen: -1},
		Polarity: registry.PolarityPositive,
	}

	prod, err := Apply(rule, sp)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if prod.Name != "LCB 18:1;2(-HO)" {
		t.Errorf("name = %q, want LCB 18:1;2(-HO)", prod.Name)
	}
	// d18:1 base C18H37NO2 minus HO (as H2O relative to protonation site).
	if got := prod.Formula.String(); got != "C18H35NO" {
		t.Errorf("formula = %s, want C18H35NO", got)
	}
}

func TestFattyAcidBasis(t *testing.T) {
	sp := testSpecies(t, "GM3", "18:1;2", "16:0")
	rule := registry.FragmentRule{
		Name:     "FA {chain}+(HN)",
		Basis:    registry.BasisFA,
		Delta:    chem.Delta{chem.Hydrogen: 1, chem.Nitrogen: 1, chem.Oxygen: -1},
		Polarity: registry.PolarityNegative,
	}

	prod, err := Apply(rule, sp)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if prod.Name != "FA 16:0+(HN)" {
		t.Errorf("name = %q, want FA 16:0+(HN)", prod.Name)
	}
	if got := prod.Formula.String(); got != "C16H33NO" {
		t.Errorf("formula = %s, want C16H33NO", got)
	}
}

func TestFixedBasisIgnoresSpecies(t *testing.T) {
	sp := testSpecies(t, "GM3", "18:1;2", "16:0")
	rule := registry.FragmentRule{
		Name:     "HG(NeuAc,291)",
		Basis:    registry.BasisFixed,
		Fixed:    chem.Count{chem.Carbon: 11, chem.Hydrogen: 17, chem.Nitrogen: 1, chem.Oxygen: 8},
		Polarity: registry.PolarityNegative,
	}

	prod, err := Apply(rule, sp)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if got := prod.Formula.String(); got != "C11H17NO8" {
		t.Errorf("formula = %s, want C11H17NO8", got)
	}
}

func TestInapplicableRuleSkips(t *testing.T) {
	// A loss larger than the molecule must skip, not fail.
	sp := testSpecies(t, "Cer", "18:1;2", "16:0")
	rule := registry.FragmentRule{
		Name:     "HG(-Neu5Ac,309)",
		Basis:    registry.BasisPrecursor,
		Delta:    chem.Delta{chem.Carbon: -11, chem.Hydrogen: -17, chem.Nitrogen: -2, chem.Oxygen: -8},
		Polarity: registry.PolarityNegative,
	}

	_, err := Apply(rule, sp)
	if err == nil {
		t.Fatal("expected skip error")
	}
	if !errors.IsType(err, errors.TypeRuleSkip) {
		t.Errorf("error type = %v, want RULE_SKIP", err)
	}
}

func TestProductsFiltersByPolarity(t *testing.T) {
	sp := testSpecies(t, "Cer", "18:1;2", "16:0")

	pos, err := Products(sp, 1)
	if err != nil {
		t.Fatalf("Products(+) error: %v", err)
	}
	// Precursor, water loss, and the three LCB dehydration fragments.
	if len(pos) != 5 {
		t.Fatalf("positive products = %d, want 5", len(pos))
	}
	wantNames := []string{
		"precursor",
		"precursor-(H2O,18)",
		"LCB 18:1;2(-HO)",
		"LCB 18:1;2(-H3O2)",
		"LCB 18:1;2(-CH3O2)",
	}
	for i, p := range pos {
		if p.Name != wantNames[i] {
			t.Errorf("product %d = %q, want %q", i, p.Name, wantNames[i])
		}
	}

	// Ceramides carry no negative-mode fragment rules beyond the precursor.
	neg, err := Products(sp, -1)
	if err != nil {
		t.Fatalf("Products(-) error: %v", err)
	}
	if len(neg) != 1 || neg[0].Name != "precursor" {
		t.Errorf("negative products = %+v, want just the precursor", neg)
	}
}

func TestProductsNegativeModeGSL(t *testing.T) {
	sp := testSpecies(t, "GM3", "18:1;2", "16:0")
	neg, err := Products(sp, -1)
	if err != nil {
		t.Fatalf("Products(-) error: %v", err)
	}

	var names []string
	for _, p := range neg {
		names = append(names, p.Name)
	}
	joined := strings.Join(names, "|")

	for _, want := range []string{
		"precursor",
		"HG(NeuAc,291)",
		"HG(-Neu5Ac,309)",
		"LCB 18:1;2(-CH3O)",
		"LCB 18:1;2(-C2H8NO)",
		"FA 16:0+(HN)",
		"FA 16:0+(C2H3N)",
		"FA 16:0+(C2H3NO)",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("negative products missing %q in %s", want, joined)
		}
	}
	if strings.Contains(joined, "precursor-(H2O,18)") {
		t.Error("water loss must not appear in negative mode")
	}
}

func TestIntactFlagPropagates(t *testing.T) {
	sp := testSpecies(t, "Cer", "18:1;2", "16:0")
	pos, err := Products(sp, 1)
	if err != nil {
		t.Fatalf("Products() error: %v", err)
	}
	if !pos[0].Intact || !pos[1].Intact {
		t.Error("precursor rows must be intact")
	}
	for _, p := range pos[2:] {
		if p.Intact {
			t.Errorf("fragment %s marked intact", p.Name)
		}
	}
}

package registry

import (
	"testing"

	"gslgen/core/chem"
)

func mustGet(t *testing.T, name string) *LipidClassDef {
	t.Helper()
	def, err := Default().Get(name)
	if err != nil {
		t.Fatalf("class %s: %v", name, err)
	}
	return def
}

func TestBuiltinCatalogComplete(t *testing.T) {
	want := []string{
		"Cer", "doxCer", "SM", "SM4", "SHex2",
		"Hex", "Lac", "LC3", "LC4", "Gb3", "Gb4", "GA1", "GA2",
		"GM4", "GM3", "GM2", "GM1",
		"GD3", "GD2", "GD1a", "GD1b",
		"GT3", "GT2", "GT1a", "GT1b", "GT1c",
		"GQ1", "GP1",
		"nLc6", "nLc8", "nLc10",
	}
	reg := Default()
	for _, name := range want {
		if _, err := reg.Get(name); err != nil {
			t.Errorf("missing class %s", name)
		}
	}
	if reg.Len() != len(want) {
		t.Errorf("catalog has %d classes, want %d", reg.Len(), len(want))
	}
}

func TestCeramideClassesHaveNoHeadgroup(t *testing.T) {
	for _, name := range []string{"Cer", "doxCer"} {
		if hg := mustGet(t, name).Headgroup; !hg.IsEmpty() {
			t.Errorf("%s headgroup = %v, want none", name, hg)
		}
	}
}

func TestEveryClassStartsWithPrecursorRules(t *testing.T) {
	reg := Default()
	for _, name := range reg.Names() {
		def := mustGet(t, name)
		if len(def.Rules) < 2 {
			t.Errorf("%s has %d rules", name, len(def.Rules))
			continue
		}
		first := def.Rules[0]
		if first.Name != "precursor" || !first.Intact || first.Polarity != PolarityBoth {
			t.Errorf("%s rule 0 = %+v, want intact precursor", name, first)
		}
		second := def.Rules[1]
		if second.Name != "precursor-(H2O,18)" || !second.Intact || second.Polarity != PolarityPositive {
			t.Errorf("%s rule 1 = %+v, want positive water loss", name, second)
		}
	}
}

func TestSialicAcidCountsDriveChargeBound(t *testing.T) {
	tests := []struct {
		class  string
		sialic int
		bound  int
	}{
		{"GM3", 1, 2},
		{"GD1a", 2, 3},
		{"GT1b", 3, 4},
		{"GQ1", 4, 5},
		{"GP1", 5, 6},
		{"SM4", 0, 2}, // one sulfate
	}
	for _, tt := range tests {
		def := mustGet(t, tt.class)
		if def.SialicAcids != tt.sialic {
			t.Errorf("%s sialic acids = %d, want %d", tt.class, def.SialicAcids, tt.sialic)
		}
		if got := def.NegativeChargeBound(); got != tt.bound {
			t.Errorf("%s negative bound = %d, want %d", tt.class, got, tt.bound)
		}
	}
}

func TestNeolactoChargeOverrides(t *testing.T) {
	// Neutral extended chains ionize beyond the acidic-site bound.
	tests := []struct {
		class string
		bound int
	}{
		{"nLc6", 2},
		{"nLc8", 2},
		{"nLc10", 3},
	}
	for _, tt := range tests {
		if got := mustGet(t, tt.class).NegativeChargeBound(); got != tt.bound {
			t.Errorf("%s negative bound = %d, want %d", tt.class, got, tt.bound)
		}
	}
}

func TestAcceptsCharge(t *testing.T) {
	gd1a := mustGet(t, "GD1a")
	tests := []struct {
		magnitude, sign int
		want            bool
	}{
		{1, -1, true},
		{2, -1, true},
		{3, -1, true},
		{4, -1, false}, // above MaxCharge
		{1, 1, true},
		{3, 1, true},
	}
	for _, tt := range tests {
		if got := gd1a.AcceptsCharge(tt.magnitude, tt.sign); got != tt.want {
			t.Errorf("GD1a AcceptsCharge(%d,%d) = %v, want %v", tt.magnitude, tt.sign, got, tt.want)
		}
	}

	// GM3 carries one sialic acid: negative bound is 2, so 2- passes and
	// nothing higher is reachable within MaxCharge anyway.
	gm3 := mustGet(t, "GM3")
	if !gm3.AcceptsCharge(2, -1) {
		t.Error("GM3 should accept 2-")
	}

	// Cer is strictly singly charged.
	cer := mustGet(t, "Cer")
	if cer.AcceptsCharge(2, 1) {
		t.Error("Cer should reject 2+")
	}
}

func TestTwoMinusAssignments(t *testing.T) {
	tests := []struct {
		class string
		names []string
	}{
		{"GT1a", []string{"HG(-Neu5Ac,309)"}},
		{"GT1b", []string{"HG(-Neu5Ac,309)"}},
		{"GT1c", []string{"HG(-Neu5Ac,309)"}},
		{"GP1", []string{"HG(-Neu5Ac,309)", "HG(-Neu5Ac2,600)"}},
		{"nLc8", []string{"HG(-Hex,180)"}},
		{"nLc10", []string{"HG(-HexNAc,221)", "HG(-HexNAcHex,383)", "HG(-HexNAc2Hex,586)"}},
	}
	for _, tt := range tests {
		def := mustGet(t, tt.class)
		var got []string
		for _, rule := range def.Rules {
			if rule.TwoMinus {
				got = append(got, rule.Name)
			}
		}
		if len(got) != len(tt.names) {
			t.Errorf("%s two-minus rules = %v, want %v", tt.class, got, tt.names)
			continue
		}
		for i := range tt.names {
			if got[i] != tt.names[i] {
				t.Errorf("%s two-minus rule %d = %s, want %s", tt.class, i, got[i], tt.names[i])
			}
		}
	}

	// GQ1 intentionally has none.
	for _, rule := range mustGet(t, "GQ1").Rules {
		if rule.TwoMinus {
			t.Errorf("GQ1 unexpectedly flags %s", rule.Name)
		}
	}
}

func TestNegativeLossRulesAreHydrated(t *testing.T) {
	// Y-ions in negative mode retain the water of hydration: the sialic
	// acid loss from GM3 removes C11H17NO8, not the full C11H19NO9 residue.
	def := mustGet(t, "GM3")
	for _, rule := range def.Rules {
		if rule.Polarity != PolarityNegative || rule.Basis != BasisPrecursor || rule.Delta == nil {
			continue
		}
		if rule.Name == "HG(-Neu5Ac,309)" {
			want := chem.Delta{chem.Carbon: -11, chem.Hydrogen: -17, chem.Nitrogen: -1, chem.Oxygen: -8}
			for el, n := range want {
				if rule.Delta[el] != n {
					t.Errorf("GM3 %s delta[%s] = %d, want %d", rule.Name, el, rule.Delta[el], n)
				}
			}
			return
		}
	}
	t.Error("GM3 negative HG(-Neu5Ac,309) rule not found")
}

func TestRegisterValidation(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(&LipidClassDef{Name: "", MinCharge: 1, MaxCharge: 1}); err == nil {
		t.Error("empty name accepted")
	}
	if err := reg.Register(&LipidClassDef{Name: "X", MinCharge: 2, MaxCharge: 1}); err == nil {
		t.Error("inverted charge range accepted")
	}

	def := &LipidClassDef{Name: "X", MinCharge: 1, MaxCharge: 1}
	if err := reg.Register(def); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if err := reg.Register(def); err == nil {
		t.Error("duplicate registration accepted")
	}
}

func TestPolarityMatches(t *testing.T) {
	if !PolarityBoth.Matches(1) || !PolarityBoth.Matches(-1) {
		t.Error("PolarityBoth must match both signs")
	}
	if !PolarityPositive.Matches(1) || PolarityPositive.Matches(-1) {
		t.Error("PolarityPositive sign handling wrong")
	}
	if PolarityNegative.Matches(1) || !PolarityNegative.Matches(-1) {
		t.Error("PolarityNegative sign handling wrong")
	}
}

package species

import (
	"math"
	"testing"

	"gslgen/core/blocks"
	"gslgen/core/registry"
)

func mustClass(t *testing.T, name string) *registry.LipidClassDef {
	t.Helper()
	def, err := registry.Default().Get(name)
	if err != nil {
		t.Fatalf("class %s: %v", name, err)
	}
	return def
}

func lcb(carbons, db, oh int) blocks.Structure {
	return blocks.Structure{Kind: blocks.KindLCB, Carbons: carbons, DoubleBonds: db, Hydroxyls: oh}
}

func fa(carbons, db int) blocks.Structure {
	return blocks.Structure{Kind: blocks.KindFA, Carbons: carbons, DoubleBonds: db}
}

func TestCeramideAssembly(t *testing.T) {
	sp, err := New(mustClass(t, "Cer"), lcb(18, 1, 2), fa(16, 0))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if got := sp.Formula.String(); got != "C34H67NO3" {
		t.Errorf("Cer(18:1;2/16:0) formula = %s, want C34H67NO3", got)
	}
	if got := sp.Name(); got != "Cer(18:1;2/16:0)" {
		t.Errorf("name = %q, want Cer(18:1;2/16:0)", got)
	}
	if mass := sp.Mass(); math.Abs(mass-537.5121) > 1e-3 {
		t.Errorf("mass = %.4f, want 537.5121", mass)
	}
}

func TestGlycosylatedNaming(t *testing.T) {
	sp, err := New(mustClass(t, "GM3"), lcb(18, 1, 2), fa(16, 0))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if got := sp.Name(); got != "GM3 18:1;2/16:0" {
		t.Errorf("name = %q, want GM3 18:1;2/16:0", got)
	}
}

func TestHeadgroupAddsToBackbone(t *testing.T) {
	cer, err := New(mustClass(t, "Cer"), lcb(18, 1, 2), fa(16, 0))
	if err != nil {
		t.Fatalf("New(Cer) error: %v", err)
	}
	gm3, err := New(mustClass(t, "GM3"), lcb(18, 1, 2), fa(16, 0))
	if err != nil {
		t.Fatalf("New(GM3) error: %v", err)
	}

	// GM3 = ceramide + NeuAc-Gal-Glc residue (C23H37NO18, 615.2010).
	diff := gm3.Mass() - cer.Mass()
	if math.Abs(diff-615.2010) > 1e-3 {
		t.Errorf("headgroup mass = %.4f, want 615.2010", diff)
	}
}

func TestEnumerateOrderIsLCBMajor(t *testing.T) {
	class := mustClass(t, "Cer")
	lcbs := []blocks.Structure{lcb(18, 0, 2), lcb(18, 1, 2)}
	fas := []blocks.Structure{fa(16, 0), fa(24, 1)}

	var names []string
	for sp, err := range Enumerate(class, lcbs, fas) {
		if err != nil {
			t.Fatalf("Enumerate() error: %v", err)
		}
		names = append(names, sp.Name())
	}

	want := []string{
		"Cer(18:0;2/16:0)",
		"Cer(18:0;2/24:1)",
		"Cer(18:1;2/16:0)",
		"Cer(18:1;2/24:1)",
	}
	if len(names) != len(want) {
		t.Fatalf("enumerated %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("position %d: got %s, want %s", i, names[i], want[i])
		}
	}
}

package engine

import (
	"context"
	"math"
	"testing"

	"gslgen/core/blocks"
	"gslgen/core/label"
	"gslgen/core/registry"
	"gslgen/core/transition"
	"gslgen/internal/errors"
)

func chains(lcbNames, faNames []string) ([]blocks.Structure, []blocks.Structure) {
	var lcbs, fas []blocks.Structure
	for _, n := range lcbNames {
		st, _ := blocks.ParseChain(blocks.KindLCB, n)
		lcbs = append(lcbs, st)
	}
	for _, n := range faNames {
		st, _ := blocks.ParseChain(blocks.KindFA, n)
		fas = append(fas, st)
	}
	return lcbs, fas
}

func preparePlan(t *testing.T, req Request) *Plan {
	t.Helper()
	plan, err := Prepare(registry.Default(), req)
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}
	return plan
}

func TestPrepareUnknownClass(t *testing.T) {
	lcbs, fas := chains([]string{"18:1;2"}, []string{"16:0"})
	_, err := Prepare(registry.Default(), Request{Class: "GX9", LCBs: lcbs, FAs: fas})
	if err == nil {
		t.Fatal("expected error for unknown class")
	}
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestPrepareRejectsEmptyChains(t *testing.T) {
	lcbs, fas := chains([]string{"18:1;2"}, []string{"16:0"})
	if _, err := Prepare(registry.Default(), Request{Class: "Cer", FAs: fas}); err == nil {
		t.Error("empty LCB list accepted")
	}
	if _, err := Prepare(registry.Default(), Request{Class: "Cer", LCBs: lcbs}); err == nil {
		t.Error("empty FA list accepted")
	}
}

func TestPrepareFiltersImplausibleAdducts(t *testing.T) {
	lcbs, fas := chains([]string{"18:1;2"}, []string{"16:0"})

	// Cer is singly charged: requesting charge 2 leaves nothing.
	_, err := Prepare(registry.Default(), Request{
		Class: "Cer", Charges: []int{2}, LCBs: lcbs, FAs: fas,
	})
	if err == nil {
		t.Fatal("expected error when no adduct survives the filter")
	}
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("error = %v, want CONFIG_ERROR", err)
	}

	// GD1a accepts 2- and 3-, so the mixed request keeps both.
	plan := preparePlan(t, Request{
		Class: "GD1a", Charges: []int{2, 3}, LCBs: lcbs, FAs: fas,
	})
	if len(plan.Adducts()) != 4 {
		t.Errorf("GD1a adducts = %d, want 4 (2+/2-/3+/3-)", len(plan.Adducts()))
	}
}

func TestAutoChargesUseRecommended(t *testing.T) {
	lcbs, fas := chains([]string{"18:1;2"}, []string{"16:0"})
	plan := preparePlan(t, Request{
		Class: "GD1a", AutoCharges: true, LCBs: lcbs, FAs: fas,
	})
	// Recommended 2 and 3: proton pairs at both magnitudes.
	if len(plan.Adducts()) != 4 {
		t.Errorf("adducts = %d, want 4", len(plan.Adducts()))
	}
	for _, ad := range plan.Adducts() {
		if m := ad.Magnitude(); m != 2 && m != 3 {
			t.Errorf("unexpected charge magnitude %d", m)
		}
	}
}

func TestCeramideTransitions(t *testing.T) {
	lcbs, fas := chains([]string{"18:1;2"}, []string{"16:0"})
	plan := preparePlan(t, Request{
		Class: "Cer", Adducts: []string{"[M+H]+"}, Charges: []int{1},
		LCBs: lcbs, FAs: fas,
	})

	recs, err := plan.Collect(context.Background(), 0)
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	// Precursor, water loss, three LCB fragments.
	if len(recs) != 5 {
		t.Fatalf("rows = %d, want 5", len(recs))
	}

	first := recs[0]
	if first.Molecule != "Cer(18:1;2/16:0)" {
		t.Errorf("molecule = %q", first.Molecule)
	}
	if first.Formula != "C34H67NO3" {
		t.Errorf("formula = %q, want C34H67NO3", first.Formula)
	}
	if first.ProductName != "precursor" {
		t.Errorf("first product = %q, want precursor", first.ProductName)
	}
	if math.Abs(first.PrecursorMz-538.5194) > 1e-3 {
		t.Errorf("precursor m/z = %.4f, want 538.5194", first.PrecursorMz)
	}
	if first.ProductMz != first.PrecursorMz || first.ProductAdduct != first.PrecursorAdduct {
		t.Error("precursor row must mirror the precursor ion")
	}

	water := recs[1]
	if water.ProductName != "precursor-(H2O,18)" {
		t.Errorf("second product = %q", water.ProductName)
	}
	if math.Abs(water.ProductMz-(first.ProductMz-18.0106)) > 1e-3 {
		t.Errorf("water loss m/z = %.4f", water.ProductMz)
	}
	if water.ProductCharge != 1 {
		t.Errorf("water loss charge = %d", water.ProductCharge)
	}

	lcbFrag := recs[2]
	if lcbFrag.ProductName != "LCB 18:1;2(-HO)" {
		t.Errorf("third product = %q", lcbFrag.ProductName)
	}
	if lcbFrag.ProductAdduct != "[M+H]1+" || lcbFrag.ProductCharge != 1 {
		t.Errorf("LCB fragment ionization = %s %d", lcbFrag.ProductAdduct, lcbFrag.ProductCharge)
	}
	// C18H35NO + proton = 282.2791.
	if math.Abs(lcbFrag.ProductMz-282.2791) > 1e-3 {
		t.Errorf("LCB fragment m/z = %.4f, want 282.2791", lcbFrag.ProductMz)
	}
}

func TestNegativeProductsUseDeprotonatedAdduct(t *testing.T) {
	lcbs, fas := chains([]string{"18:1;2"}, []string{"16:0"})
	plan := preparePlan(t, Request{
		Class: "GM3", Adducts: []string{"[M-H]-"}, Charges: []int{1},
		LCBs: lcbs, FAs: fas,
	})

	recs, err := plan.Collect(context.Background(), 0)
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	for _, rec := range recs[1:] {
		if rec.ProductAdduct != "[M-H]1-" || rec.ProductCharge != -1 {
			t.Errorf("product %s ionization = %s %d", rec.ProductName, rec.ProductAdduct, rec.ProductCharge)
		}
	}
}

func TestTwoMinusSiblings(t *testing.T) {
	lcbs, fas := chains([]string{"18:1;2"}, []string{"18:0"})
	plan := preparePlan(t, Request{
		Class: "GT1b", Adducts: []string{"[M-2H]2-"}, Charges: []int{2},
		LCBs: lcbs, FAs: fas,
	})

	recs, err := plan.Collect(context.Background(), 0)
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}

	var parentIdx, sibIdx = -1, -1
	for i, rec := range recs {
		if rec.ProductName == "HG(-Neu5Ac,309)" {
			parentIdx = i
		}
		if rec.ProductName == "HG(-Neu5Ac,309) [Z=2]" {
			sibIdx = i
		}
	}
	if parentIdx < 0 || sibIdx != parentIdx+1 {
		t.Fatalf("two-minus sibling not directly after parent (parent %d, sibling %d)", parentIdx, sibIdx)
	}

	parent, sib := recs[parentIdx], recs[sibIdx]
	if sib.ProductAdduct != "[M-2H]2-" || sib.ProductCharge != -2 {
		t.Errorf("sibling ionization = %s %d", sib.ProductAdduct, sib.ProductCharge)
	}
	if sib.ProductFormula != parent.ProductFormula {
		t.Error("sibling must share the parent's neutral formula")
	}
	// Same neutral mass M: parent at M-H, sibling at (M-2H)/2.
	neutral := parent.ProductMz + 1.007276466812
	want := (neutral - 2*1.007276466812) / 2
	if math.Abs(sib.ProductMz-want) > 1e-6 {
		t.Errorf("sibling m/z = %.4f, want %.4f", sib.ProductMz, want)
	}
}

func TestNoTwoMinusAtSingleCharge(t *testing.T) {
	lcbs, fas := chains([]string{"18:1;2"}, []string{"18:0"})
	plan := preparePlan(t, Request{
		Class: "GT1b", Adducts: []string{"[M-H]-"}, Charges: []int{1},
		LCBs: lcbs, FAs: fas,
	})

	recs, err := plan.Collect(context.Background(), 0)
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	for _, rec := range recs {
		if rec.ProductCharge == -2 {
			t.Errorf("doubly-charged product %s under 1- precursor", rec.ProductName)
		}
	}
}

func TestLabelExpansion(t *testing.T) {
	lcbs, fas := chains([]string{"18:1;2"}, []string{"16:0"})
	scheme, err := label.NewScheme("M2DN15", "M2DN15", "M3D", label.DefaultKeywords)
	if err != nil {
		t.Fatalf("NewScheme() error: %v", err)
	}

	plan := preparePlan(t, Request{
		Class: "Cer", Adducts: []string{"[M+H]+"}, Charges: []int{1},
		LCBs: lcbs, FAs: fas, Labels: &scheme,
	})

	recs, err := plan.Collect(context.Background(), 0)
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if len(recs) != 10 {
		t.Fatalf("rows = %d, want 10 (5 light + 5 heavy)", len(recs))
	}

	// The light table comes first, then the heavy one.
	for i, rec := range recs[:5] {
		if rec.LabelType != transition.LabelLight {
			t.Errorf("row %d label = %q, want light", i, rec.LabelType)
		}
	}
	for i, rec := range recs[5:] {
		if rec.LabelType != transition.LabelHeavy {
			t.Errorf("row %d label = %q, want heavy", i+5, rec.LabelType)
		}
	}

	light, heavy := recs[0], recs[5]
	if heavy.PrecursorAdduct != "[M2DN15+H]1+" {
		t.Errorf("heavy precursor adduct = %q", heavy.PrecursorAdduct)
	}
	shift := 2*1.006276746 + 0.997034893
	if math.Abs(heavy.PrecursorMz-(light.PrecursorMz+shift)) > 1e-5 {
		t.Errorf("heavy precursor m/z = %.4f", heavy.PrecursorMz)
	}

	// The precursor product name matches a keyword, so it is labeled too.
	if heavy.ProductAdduct != "[M2DN15+H]1+" {
		t.Errorf("heavy product adduct = %q", heavy.ProductAdduct)
	}
	if math.Abs(heavy.ProductMz-(light.ProductMz+shift)) > 1e-5 {
		t.Errorf("heavy product m/z = %.4f", heavy.ProductMz)
	}
}

func TestHeavyPrecursorShiftDividesByCharge(t *testing.T) {
	lcbs, fas := chains([]string{"18:1;2"}, []string{"18:0"})
	scheme, err := label.NewScheme("M2DN15", "M2DN15", "M3D", label.DefaultKeywords)
	if err != nil {
		t.Fatalf("NewScheme() error: %v", err)
	}

	plan := preparePlan(t, Request{
		Class: "GD1a", Adducts: []string{"[M-2H]2-"}, Charges: []int{2},
		LCBs: lcbs, FAs: fas, Labels: &scheme,
	})

	recs, err := plan.Collect(context.Background(), 0)
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}

	var light, heavy *transition.Record
	for i := range recs {
		if recs[i].ProductName != "precursor" {
			continue
		}
		switch recs[i].LabelType {
		case transition.LabelLight:
			if light == nil {
				light = &recs[i]
			}
		case transition.LabelHeavy:
			if heavy == nil {
				heavy = &recs[i]
			}
		}
	}
	if light == nil || heavy == nil {
		t.Fatal("missing light or heavy precursor row")
	}

	shift := 2*1.006276746 + 0.997034893
	if math.Abs(heavy.PrecursorMz-(light.PrecursorMz+shift/2)) > 1e-5 {
		t.Errorf("heavy 2- precursor m/z = %.4f, want light + shift/2", heavy.PrecursorMz)
	}
}

func TestDoxCerUsesItsOwnToken(t *testing.T) {
	lcbs, fas := chains([]string{"18:1;1"}, []string{"16:0"})
	scheme, err := label.NewScheme("M2DN15", "M2DN15", "M3D", label.DefaultKeywords)
	if err != nil {
		t.Fatalf("NewScheme() error: %v", err)
	}

	plan := preparePlan(t, Request{
		Class: "doxCer", Adducts: []string{"[M+H]+"}, Charges: []int{1},
		LCBs: lcbs, FAs: fas, Labels: &scheme,
	})

	recs, err := plan.Collect(context.Background(), 0)
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	found := false
	for _, rec := range recs {
		if rec.LabelType == transition.LabelHeavy {
			found = true
			if rec.PrecursorAdduct != "[M3D+H]1+" {
				t.Errorf("heavy doxCer adduct = %q, want [M3D+H]1+", rec.PrecursorAdduct)
			}
		}
	}
	if !found {
		t.Fatal("no heavy rows produced")
	}
}

func TestCancellation(t *testing.T) {
	lcbs, fas := chains([]string{"18:0;2", "18:1;2"}, []string{"16:0", "18:0"})
	plan := preparePlan(t, Request{
		Class: "Cer", Adducts: []string{"[M+H]+"}, Charges: []int{1},
		LCBs: lcbs, FAs: fas,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := plan.Collect(ctx, 0)
	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if !errors.IsType(err, errors.TypeCancelled) {
		t.Errorf("error = %v, want CANCELLED", err)
	}
}

func TestCollectRowLimit(t *testing.T) {
	lcbs, fas := chains([]string{"18:1;2"}, []string{"16:0"})
	plan := preparePlan(t, Request{
		Class: "Cer", Adducts: []string{"[M+H]+"}, Charges: []int{1},
		LCBs: lcbs, FAs: fas,
	})

	if _, err := plan.Collect(context.Background(), 3); err == nil {
		t.Fatal("expected row limit error")
	}
	recs, err := plan.Collect(context.Background(), 5)
	if err != nil {
		t.Fatalf("Collect() within limit: %v", err)
	}
	if len(recs) != 5 {
		t.Errorf("rows = %d, want 5", len(recs))
	}
}

func TestDeterministicOutput(t *testing.T) {
	lcbs, fas := chains([]string{"18:0;2", "18:1;2"}, []string{"16:0", "24:1"})
	req := Request{
		Class: "GM3", Charges: []int{1, 2}, LCBs: lcbs, FAs: fas,
	}

	first, err := preparePlan(t, req).Collect(context.Background(), 0)
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	second, err := preparePlan(t, req).Collect(context.Background(), 0)
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("run sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("row %d differs between runs", i)
		}
	}
}

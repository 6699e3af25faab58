package registry

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"

	"gslgen/core/chem"
	"gslgen/internal/errors"
	"gslgen/internal/logging"
)

// Loader parses user-defined lipid class catalogs from *.lipid.hcl files
// and merges them into a registry. The built-in catalog stays untouched;
// duplicate class names are rejected at registration.
//
// A class block looks like:
//
//	lipid_class "Gb5" {
//	  description  = "Galβ1-3GalNAcβ1-3Galα1-4Galβ1-4Glc-Cer"
//	  headgroup    = { C = 32, H = 53, N = 1, O = 25 }
//	  min_charge   = 1
//	  max_charge   = 2
//	  mw_range     = "1400-1600"
//
//	  fragment "HG(-Hex,180)" {
//	    basis    = "precursor"
//	    polarity = "positive"
//	    delta    = { C = -6, H = -12, O = -6 }
//	  }
//	}
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates an HCL catalog loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

var classSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "lipid_class", LabelNames: []string{"name"}},
	},
}

var classBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
		{Name: "headgroup", Required: true},
		{Name: "sialic_acids"},
		{Name: "sulfates"},
		{Name: "phosphates"},
		{Name: "min_charge"},
		{Name: "max_charge"},
		{Name: "max_negative_charge"},
		{Name: "recommended_charges"},
		{Name: "mw_range"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "fragment", LabelNames: []string{"name"}},
	},
}

var fragmentBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "basis"},
		{Name: "polarity"},
		{Name: "delta"},
		{Name: "formula"},
		{Name: "two_minus"},
	},
}

// LoadDir parses every *.lipid.hcl file under dir and registers the
// classes it defines. Missing directory is not an error; an unparsable
// file is.
func (l *Loader) LoadDir(reg *Registry, dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.lipid.hcl"))
	if err != nil {
		return errors.Wrap(errors.TypeConfig, "globbing lipid catalog directory", err)
	}
	for _, file := range files {
		if err := l.LoadFile(reg, file); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile parses one catalog file and registers its classes.
func (l *Loader) LoadFile(reg *Registry, file string) error {
	hclFile, diags := l.parser.ParseHCLFile(file)
	if diags.HasErrors() {
		return errors.Parsing(diagSummary(file, diags), diags)
	}

	content, diags := hclFile.Body.Content(classSchema)
	if diags.HasErrors() {
		return errors.Parsing(diagSummary(file, diags), diags)
	}

	for _, block := range content.Blocks {
		def, err := l.parseClass(block)
		if err != nil {
			return err
		}
		if err := reg.Register(def); err != nil {
			return err
		}
		logging.Debug("registered user lipid class",
			zap.String("class", def.Name),
			zap.String("file", filepath.Base(file)),
			zap.Int("rules", len(def.Rules)))
	}
	return nil
}

func (l *Loader) parseClass(block *hcl.Block) (*LipidClassDef, error) {
	name := block.Labels[0]
	content, diags := block.Body.Content(classBodySchema)
	if diags.HasErrors() {
		return nil, errors.Parsing("lipid_class "+name+": "+diags.Error(), diags)
	}

	def := &LipidClassDef{
		Name:      name,
		MinCharge: 1,
		MaxCharge: 1,
	}

	for attrName, attr := range content.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, errors.Parsing(
				fmt.Sprintf("lipid_class %s: attribute %s: %s", name, attrName, diags.Error()), diags)
		}
		switch attrName {
		case "description":
			def.Description = val.AsString()
		case "mw_range":
			def.MWRange = val.AsString()
		case "headgroup":
			count, err := ctyCount(val)
			if err != nil {
				return nil, errors.Configf("lipid_class %s: headgroup: %v", name, err)
			}
			def.Headgroup = count
		case "sialic_acids":
			def.SialicAcids = ctyInt(val)
		case "sulfates":
			def.Sulfates = ctyInt(val)
		case "phosphates":
			def.Phosphates = ctyInt(val)
		case "min_charge":
			def.MinCharge = ctyInt(val)
		case "max_charge":
			def.MaxCharge = ctyInt(val)
		case "max_negative_charge":
			def.MaxNegativeCharge = ctyInt(val)
		case "recommended_charges":
			def.RecommendedCharges = ctyInts(val)
		}
	}

	def.Rules = append(def.Rules, precursorRules...)
	for _, fragBlock := range content.Blocks {
		rule, err := l.parseFragment(name, fragBlock)
		if err != nil {
			return nil, err
		}
		def.Rules = append(def.Rules, rule)
	}
	return def, nil
}

func (l *Loader) parseFragment(class string, block *hcl.Block) (FragmentRule, error) {
	rule := FragmentRule{Name: block.Labels[0]}
	content, diags := block.Body.Content(fragmentBodySchema)
	if diags.HasErrors() {
		return rule, errors.Parsing(
			fmt.Sprintf("lipid_class %s: fragment %s: %s", class, rule.Name, diags.Error()), diags)
	}

	for attrName, attr := range content.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return rule, errors.Parsing(
				fmt.Sprintf("lipid_class %s: fragment %s: attribute %s: %s",
					class, rule.Name, attrName, diags.Error()), diags)
		}
		switch attrName {
		case "basis":
			basis, err := parseBasis(val.AsString())
			if err != nil {
				return rule, errors.Configf("lipid_class %s: fragment %s: %v", class, rule.Name, err)
			}
			rule.Basis = basis
		case "polarity":
			pol, err := parsePolarity(val.AsString())
			if err != nil {
				return rule, errors.Configf("lipid_class %s: fragment %s: %v", class, rule.Name, err)
			}
			rule.Polarity = pol
		case "delta":
			count, err := ctyDelta(val)
			if err != nil {
				return rule, errors.Configf("lipid_class %s: fragment %s: delta: %v", class, rule.Name, err)
			}
			rule.Delta = count
		case "formula":
			count, err := ctyCount(val)
			if err != nil {
				return rule, errors.Configf("lipid_class %s: fragment %s: formula: %v", class, rule.Name, err)
			}
			rule.Fixed = count
		case "two_minus":
			rule.TwoMinus = val.True()
		}
	}

	if rule.Basis == BasisFixed && rule.Fixed == nil {
		return rule, errors.Configf("lipid_class %s: fragment %s: fixed basis requires a formula", class, rule.Name)
	}
	return rule, nil
}

func parseBasis(s string) (Basis, error) {
	switch strings.ToLower(s) {
	case "", "precursor":
		return BasisPrecursor, nil
	case "lcb":
		return BasisLCB, nil
	case "fa":
		return BasisFA, nil
	case "fixed":
		return BasisFixed, nil
	}
	return 0, fmt.Errorf("unknown basis %q", s)
}

func parsePolarity(s string) (Polarity, error) {
	switch strings.ToLower(s) {
	case "", "both":
		return PolarityBoth, nil
	case "positive":
		return PolarityPositive, nil
	case "negative":
		return PolarityNegative, nil
	}
	return 0, fmt.Errorf("unknown polarity %q", s)
}

// ctyDelta converts an HCL object of element counts to a signed delta.
func ctyDelta(val cty.Value) (chem.Delta, error) {
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("expected an element map, got %s", val.Type().FriendlyName())
	}
	delta := make(chem.Delta)
	it := val.ElementIterator()
	for it.Next() {
		k, v := it.Element()
		el := chem.Element(k.AsString())
		if _, ok := chem.AtomicMass(el); !ok {
			return nil, fmt.Errorf("unknown element %q", k.AsString())
		}
		if v.Type() != cty.Number {
			return nil, fmt.Errorf("element %s: count must be a number", el)
		}
		f, _ := v.AsBigFloat().Float64()
		delta[el] = int(f)
	}
	return delta, nil
}

// ctyCount converts an HCL object of element counts to a formula,
// rejecting negative entries.
func ctyCount(val cty.Value) (chem.Count, error) {
	delta, err := ctyDelta(val)
	if err != nil {
		return nil, err
	}
	count := make(chem.Count, len(delta))
	for el, n := range delta {
		if n < 0 {
			return nil, fmt.Errorf("element %s: count must be non-negative", el)
		}
		if n > 0 {
			count[el] = n
		}
	}
	return count, nil
}

func ctyInt(val cty.Value) int {
	if val.Type() != cty.Number {
		return 0
	}
	f, _ := val.AsBigFloat().Float64()
	return int(f)
}

func ctyInts(val cty.Value) []int {
	if !val.CanIterateElements() {
		return nil
	}
	var out []int
	it := val.ElementIterator()
	for it.Next() {
		_, v := it.Element()
		out = append(out, ctyInt(v))
	}
	return out
}

func diagSummary(file string, diags hcl.Diagnostics) string {
	var parts []string
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		line := 0
		if d.Subject != nil {
			line = d.Subject.Start.Line
		}
		parts = append(parts, fmt.Sprintf("%s:%d: %s", filepath.Base(file), line, d.Summary))
	}
	if len(parts) == 0 {
		return file + ": parse failed"
	}
	return strings.Join(parts, "; ")
}

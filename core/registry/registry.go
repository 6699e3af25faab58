// Package registry holds the static lipid class catalog: headgroup
// formulas, charge constraints, and the declarative fragmentation rules
// each class carries. The fragmentation engine is a generic interpreter
// over this data; class-specific behavior lives here, not in engine code.
package registry

import (
	"sort"
	"sync"

	"gslgen/core/chem"
	"gslgen/internal/errors"
)

// Polarity restricts a fragment rule to an ionization mode.
type Polarity int

const (
	// PolarityBoth applies in either mode.
	PolarityBoth Polarity = iota
	// PolarityPositive applies to positive-mode precursors only.
	PolarityPositive
	// PolarityNegative applies to negative-mode precursors only.
	PolarityNegative
)

// Matches reports whether the rule polarity accepts a precursor charge sign.
func (p Polarity) Matches(chargeSign int) bool {
	switch p {
	case PolarityPositive:
		return chargeSign > 0
	case PolarityNegative:
		return chargeSign < 0
	default:
		return true
	}
}

// Basis selects the formula a rule's delta is applied to.
type Basis int

const (
	// BasisPrecursor applies the delta to the intact precursor formula.
	BasisPrecursor Basis = iota
	// BasisLCB applies the delta to the long-chain-base formula.
	BasisLCB
	// BasisFA applies the delta to the fatty-acid formula.
	BasisFA
	// BasisFixed uses an absolute fragment formula (headgroup oxonium
	// ions and diagnostic anions).
	BasisFixed
)

// FragmentRule is one declarative product-ion rule. Product formula =
// basis formula ⊕ Delta (or Fixed for BasisFixed). Rules whose result
// would contain a negative atom count are skipped per species, never
// fatal. The name may contain "{chain}", replaced with the LCB or FA
// short name at application time.
type FragmentRule struct {
	Name     string
	Basis    Basis
	Delta    chem.Delta
	Fixed    chem.Count
	Polarity Polarity

	// Intact marks the precursor and its simple water loss: the product
	// keeps the precursor's own adduct and charge instead of the fixed
	// singly-charged product adduct.
	Intact bool

	// TwoMinus additionally emits a doubly-deprotonated [M-2H]2- product
	// when the precursor charge magnitude is at least two (large
	// gangliosides and extended neolacto chains).
	TwoMinus bool
}

// LipidClassDef describes one lipid class. Immutable after registration;
// shared read-only by all generation runs.
type LipidClassDef struct {
	// Name is the class identifier, e.g. "GD1a".
	Name string

	// Headgroup is the dehydrated headgroup residue formula.
	Headgroup chem.Count

	// SialicAcids is the Neu5Ac residue count (drives fragmentation and
	// the negative-mode charge bound).
	SialicAcids int

	// Sulfates and Phosphates count additional acidic sites.
	Sulfates   int
	Phosphates int

	// MinCharge and MaxCharge bound the accepted charge magnitudes.
	MinCharge int
	MaxCharge int

	// MaxNegativeCharge overrides the ionizable-site bound for
	// negative-mode ions; zero means derive it from the acidic sites.
	MaxNegativeCharge int

	// RecommendedCharges are the charge states suggested for acquisition.
	RecommendedCharges []int

	// MWRange is an informational molecular-weight range in Da.
	MWRange string

	// Description is the glycan structure in short linkage notation.
	Description string

	// Rules is the ordered fragmentation rule list. Order determines
	// output row order.
	Rules []FragmentRule
}

// NegativeChargeBound returns the maximum plausible negative charge
// magnitude: one ionizable site per sialic acid, sulfate and phosphate,
// plus one.
func (d *LipidClassDef) NegativeChargeBound() int {
	if d.MaxNegativeCharge > 0 {
		return d.MaxNegativeCharge
	}
	return d.SialicAcids + d.Sulfates + d.Phosphates + 1
}

// AcceptsCharge reports whether a charge magnitude is valid for the
// class in the given mode. The negative-mode bound is the domain
// plausibility filter, applied identically to precursor and product ions.
func (d *LipidClassDef) AcceptsCharge(magnitude, sign int) bool {
	if magnitude < d.MinCharge || magnitude > d.MaxCharge {
		return false
	}
	if sign < 0 && magnitude > 1 && magnitude > d.NegativeChargeBound() {
		return false
	}
	return true
}

// Registry is the lipid class catalog. Safe for unsynchronized concurrent
// reads after loading; registration is guarded for the HCL merge path.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]*LipidClassDef
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]*LipidClassDef)}
}

// Register adds a class definition. Duplicate names are rejected.
func (r *Registry) Register(def *LipidClassDef) error {
	if def.Name == "" {
		return errors.Config("lipid class name is empty")
	}
	if def.MinCharge <= 0 || def.MaxCharge < def.MinCharge {
		return errors.Configf("lipid class %s has invalid charge range [%d,%d]",
			def.Name, def.MinCharge, def.MaxCharge)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.classes[def.Name]; exists {
		return errors.Configf("lipid class already registered: %s", def.Name)
	}
	r.classes[def.Name] = def
	return nil
}

// Get returns a class definition by name.
func (r *Registry) Get(name string) (*LipidClassDef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.classes[name]
	if !ok {
		return nil, errors.NotFound("lipid class", name)
	}
	return def, nil
}

// Names returns all registered class names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered classes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.classes)
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the built-in catalog, loaded once per process.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
		for _, def := range builtinClasses() {
			if err := defaultReg.Register(def); err != nil {
				panic(err)
			}
		}
	})
	return defaultReg
}

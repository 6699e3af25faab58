// Package engine orchestrates transition generation: it validates a
// request up front, then streams transition rows lazily in a single
// deterministic order. Nothing is buffered unless the caller collects.
package engine

import (
	"context"
	"iter"

	"go.uber.org/zap"

	"gslgen/core/adduct"
	"gslgen/core/blocks"
	"gslgen/core/chem"
	"gslgen/core/fragment"
	"gslgen/core/label"
	"gslgen/core/registry"
	"gslgen/core/species"
	"gslgen/core/transition"
	"gslgen/internal/errors"
	"gslgen/internal/logging"
)

// Request describes one generation run. Everything is validated by
// Prepare before any row is produced.
type Request struct {
	// Class is the lipid class name.
	Class string

	// Charges are the charge magnitudes to generate (1-5). Empty means
	// singly charged only.
	Charges []int

	// AutoCharges replaces Charges with the class's recommended set.
	AutoCharges bool

	// Adducts are the selection keys ("[M+H]+"). Empty means the
	// protonated/deprotonated pair at each requested charge.
	Adducts []string

	// LCBs and FAs are the chain lists; the species set is their cross
	// product.
	LCBs []blocks.Structure
	FAs  []blocks.Structure

	// Labels enables light/heavy expansion when non-nil.
	Labels *label.Scheme
}

// Plan is a validated request, ready to stream. Immutable.
type Plan struct {
	class   *registry.LipidClassDef
	adducts []adduct.Def
	lcbs    []blocks.Structure
	fas     []blocks.Structure
	labels  *label.Scheme
}

// Prepare resolves and validates a request against the registry.
// All configuration errors surface here, before generation starts.
func Prepare(reg *registry.Registry, req Request) (*Plan, error) {
	class, err := reg.Get(req.Class)
	if err != nil {
		return nil, err
	}

	charges := req.Charges
	if req.AutoCharges {
		charges = class.RecommendedCharges
	}
	if len(charges) == 0 {
		charges = []int{1}
	}

	var adducts []adduct.Def
	if len(req.Adducts) > 0 {
		adducts, err = adduct.Select(req.Adducts, charges)
	} else {
		adducts, err = adduct.ForCharges(charges)
	}
	if err != nil {
		return nil, err
	}

	// Domain plausibility filter: drop adducts the class cannot carry.
	kept := adducts[:0]
	for _, ad := range adducts {
		sign := 1
		if !ad.Positive() {
			sign = -1
		}
		if !class.AcceptsCharge(ad.Magnitude(), sign) {
			logging.Debug("adduct rejected by charge bounds",
				zap.String("class", class.Name),
				zap.String("adduct", ad.Name))
			continue
		}
		kept = append(kept, ad)
	}
	if len(kept) == 0 {
		return nil, errors.Configf("no adduct is compatible with class %s at charges %v",
			class.Name, charges)
	}

	if len(req.LCBs) == 0 {
		return nil, errors.Config("long-chain base list is empty")
	}
	if len(req.FAs) == 0 {
		return nil, errors.Config("fatty acid list is empty")
	}

	return &Plan{
		class:   class,
		adducts: kept,
		lcbs:    req.LCBs,
		fas:     req.FAs,
		labels:  req.Labels,
	}, nil
}

// Class returns the resolved class definition.
func (p *Plan) Class() *registry.LipidClassDef { return p.class }

// Adducts returns the adducts that survived the plausibility filter.
func (p *Plan) Adducts() []adduct.Def { return p.adducts }

// SpeciesCount returns the number of species the plan enumerates.
func (p *Plan) SpeciesCount() int { return len(p.lcbs) * len(p.fas) }

// Stream yields transition rows lazily. Order is deterministic: species
// in enumeration order, adducts in charge-then-catalog order, products in
// rule order with doubly-charged siblings directly after their parent.
// With labeling enabled, the complete light table precedes the heavy one.
// Cancellation surfaces as a CANCELLED error and ends the stream.
func (p *Plan) Stream(ctx context.Context) iter.Seq2[transition.Record, error] {
	return func(yield func(transition.Record, error) bool) {
		if p.labels == nil {
			p.streamPass(ctx, "", yield)
			return
		}
		if !p.streamPass(ctx, transition.LabelLight, yield) {
			return
		}
		p.streamPass(ctx, transition.LabelHeavy, yield)
	}
}

// Collect drains the stream into a slice. A positive maxRows bounds the
// result; exceeding it is a configuration error, not a truncation.
func (p *Plan) Collect(ctx context.Context, maxRows int) ([]transition.Record, error) {
	var out []transition.Record
	for rec, err := range p.Stream(ctx) {
		if err != nil {
			return nil, err
		}
		if maxRows > 0 && len(out) >= maxRows {
			return nil, errors.Configf("transition count exceeds row limit %d", maxRows)
		}
		out = append(out, rec)
	}
	logging.Info("generation complete",
		zap.String("class", p.class.Name),
		zap.Int("rows", len(out)))
	return out, nil
}

// streamPass emits one full table (one label type). Returns false when
// the consumer stopped or the context was cancelled.
func (p *Plan) streamPass(ctx context.Context, labelType string, yield func(transition.Record, error) bool) bool {
	lab := label.Label{}
	if labelType == transition.LabelHeavy {
		lab = p.labels.ForClass(p.class.Name)
	}

	for sp, err := range species.Enumerate(p.class, p.lcbs, p.fas) {
		if ctx.Err() != nil {
			yield(transition.Record{}, errors.Cancelled(ctx.Err()))
			return false
		}
		if err != nil {
			yield(transition.Record{}, err)
			return false
		}
		if !p.emitSpecies(sp, labelType, lab, yield) {
			return false
		}
	}
	return true
}

func (p *Plan) emitSpecies(sp species.Species, labelType string, lab label.Label, yield func(transition.Record, error) bool) bool {
	name := sp.Name()
	formulaStr := sp.Formula.String()
	mass := sp.Mass()

	for _, ad := range p.adducts {
		sign := 1
		if !ad.Positive() {
			sign = -1
		}

		products, err := fragment.Products(sp, sign)
		if err != nil {
			return yield(transition.Record{}, err)
		}

		precursorAdduct := ad.Name
		precursorMz := ad.Mz(mass)
		if labelType == transition.LabelHeavy && !lab.IsZero() {
			precursorAdduct = lab.HeavyAdduct(ad.Name)
			precursorMz += lab.Shift / float64(ad.Magnitude())
		}

		base := transition.Record{
			MoleculeList:    p.class.Name,
			Molecule:        name,
			Formula:         formulaStr,
			PrecursorAdduct: precursorAdduct,
			PrecursorMz:     precursorMz,
			PrecursorCharge: ad.Charge,
			LabelType:       labelType,
		}

		for _, prod := range products {
			rec := base
			rec.ProductName = prod.Name
			rec.ProductFormula = prod.Formula.String()

			prodAd := productAdduct(prod, ad)
			rec.ProductAdduct = prodAd.Name
			rec.ProductCharge = prodAd.Charge
			rec.ProductMz = prodAd.Mz(chem.Mass(prod.Formula))

			if labelType == transition.LabelHeavy && !lab.IsZero() && p.labels.LabelsProduct(prod.Name) {
				rec.ProductAdduct = lab.HeavyAdduct(prodAd.Name)
				rec.ProductMz += lab.Shift
			}
			if !yield(rec, nil) {
				return false
			}

			if prod.TwoMinus && sign < 0 && ad.Magnitude() >= 2 {
				sib := rec
				sib.ProductName = prod.Name + " [Z=2]"
				sib.ProductAdduct = adduct.ProductTwoMinus.Name
				sib.ProductCharge = adduct.ProductTwoMinus.Charge
				sib.ProductMz = adduct.ProductTwoMinus.Mz(chem.Mass(prod.Formula))
				if labelType == transition.LabelHeavy && !lab.IsZero() && p.labels.LabelsProduct(sib.ProductName) {
					sib.ProductAdduct = lab.HeavyAdduct(adduct.ProductTwoMinus.Name)
					sib.ProductMz += lab.Shift
				}
				if !yield(sib, nil) {
					return false
				}
			}
		}
	}
	return true
}

// productAdduct picks the ionization of a product ion: intact products
// keep the precursor adduct, everything else is fixed at charge one in
// the precursor's polarity.
func productAdduct(prod fragment.Product, precursor adduct.Def) adduct.Def {
	if prod.Intact {
		return precursor
	}
	if precursor.Positive() {
		return adduct.ProductPositive
	}
	return adduct.ProductNegative
}

// Package blocks enumerates the structural building blocks of a
// sphingolipid species: long-chain bases (LCB) and N-acyl fatty acids (FA).
package blocks

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"gslgen/core/chem"
	"gslgen/internal/errors"
)

// Kind distinguishes the two chain families.
type Kind int

const (
	// KindLCB is the sphingoid long-chain base.
	KindLCB Kind = iota
	// KindFA is the N-acyl fatty acid.
	KindFA
)

// Parity filters fatty-acid chain lengths.
type Parity int

const (
	// ParityBoth accepts every chain length.
	ParityBoth Parity = iota
	// ParityEven accepts even chain lengths only.
	ParityEven
	// ParityOdd accepts odd chain lengths only.
	ParityOdd
)

func (p Parity) accepts(carbons int) bool {
	switch p {
	case ParityEven:
		return carbons%2 == 0
	case ParityOdd:
		return carbons%2 != 0
	default:
		return true
	}
}

// Structure is one concrete chain: carbon count, double bonds, hydroxyls.
// Immutable once enumerated.
type Structure struct {
	Kind        Kind
	Carbons     int
	DoubleBonds int
	Hydroxyls   int
}

// Name returns the canonical short name: "18:1;2" for an LCB,
// "16:0" for an FA.
func (s Structure) Name() string {
	if s.Kind == KindLCB {
		return fmt.Sprintf("%d:%d;%d", s.Carbons, s.DoubleBonds, s.Hydroxyls)
	}
	return fmt.Sprintf("%d:%d", s.Carbons, s.DoubleBonds)
}

// Formula returns the elemental contribution of the chain.
//
// LCB: C(n) H(2n+3-2db) N O(oh) — the free sphingoid base.
// FA:  C(n) H(2n-2db) O2       — the free fatty acid.
func (s Structure) Formula() chem.Count {
	switch s.Kind {
	case KindLCB:
		c := chem.Count{
			chem.Carbon:   s.Carbons,
			chem.Hydrogen: 2*s.Carbons + 3 - 2*s.DoubleBonds,
			chem.Nitrogen: 1,
		}
		if s.Hydroxyls > 0 {
			c[chem.Oxygen] = s.Hydroxyls
		}
		return c
	default:
		return chem.Count{
			chem.Carbon:   s.Carbons,
			chem.Hydrogen: 2*s.Carbons - 2*s.DoubleBonds,
			chem.Oxygen:   2,
		}
	}
}

// LCBSpec describes the long-chain-base family to enumerate.
type LCBSpec struct {
	MinCarbons  int
	MaxCarbons  int
	DoubleBonds []int
	Hydroxyls   []int
}

// Validate rejects inconsistent specs before enumeration begins.
func (s LCBSpec) Validate() error {
	if s.MinCarbons <= 0 || s.MaxCarbons <= 0 {
		return errors.Config("LCB carbon counts must be positive")
	}
	if s.MinCarbons > s.MaxCarbons {
		return errors.Configf("LCB carbon range inverted: %d > %d", s.MinCarbons, s.MaxCarbons)
	}
	if len(s.DoubleBonds) == 0 {
		return errors.Config("LCB double-bond set is empty")
	}
	if len(s.Hydroxyls) == 0 {
		return errors.Config("LCB hydroxylation set is empty")
	}
	for _, db := range s.DoubleBonds {
		if db < 0 {
			return errors.Config("LCB double-bond count must be non-negative")
		}
	}
	for _, oh := range s.Hydroxyls {
		if oh < 0 {
			return errors.Config("LCB hydroxylation count must be non-negative")
		}
	}
	return nil
}

// Enumerate yields every LCB structure in the spec, ordered by ascending
// carbon count, then double bonds, then hydroxyls. An empty intersection
// yields nothing; validation is the caller's job.
func (s LCBSpec) Enumerate() iter.Seq[Structure] {
	dbs := sortedSet(s.DoubleBonds)
	ohs := sortedSet(s.Hydroxyls)
	return func(yield func(Structure) bool) {
		for carbons := s.MinCarbons; carbons <= s.MaxCarbons; carbons++ {
			for _, db := range dbs {
				for _, oh := range ohs {
					st := Structure{Kind: KindLCB, Carbons: carbons, DoubleBonds: db, Hydroxyls: oh}
					if !yield(st) {
						return
					}
				}
			}
		}
	}
}

// FASpec describes the fatty-acid family to enumerate.
type FASpec struct {
	MinCarbons     int
	MaxCarbons     int
	MaxDoubleBonds int
	Parity         Parity
}

// Validate rejects inconsistent specs before enumeration begins.
func (s FASpec) Validate() error {
	if s.MinCarbons <= 0 || s.MaxCarbons <= 0 {
		return errors.Config("FA carbon counts must be positive")
	}
	if s.MinCarbons > s.MaxCarbons {
		return errors.Configf("FA carbon range inverted: %d > %d", s.MinCarbons, s.MaxCarbons)
	}
	if s.MaxDoubleBonds < 0 {
		return errors.Config("FA double-bond maximum must be non-negative")
	}
	return nil
}

// Enumerate yields every FA structure in the spec, ordered by ascending
// carbon count then double bonds, respecting the parity filter.
func (s FASpec) Enumerate() iter.Seq[Structure] {
	return func(yield func(Structure) bool) {
		for carbons := s.MinCarbons; carbons <= s.MaxCarbons; carbons++ {
			if !s.Parity.accepts(carbons) {
				continue
			}
			for db := 0; db <= s.MaxDoubleBonds; db++ {
				st := Structure{Kind: KindFA, Carbons: carbons, DoubleBonds: db}
				if !yield(st) {
					return
				}
			}
		}
	}
}

// ParseChain parses a chain short name ("18:1;2" or "16:0") into a
// Structure of the given kind. The hydroxyl part is optional and only
// meaningful for LCBs.
func ParseChain(kind Kind, name string) (Structure, error) {
	carbonPart, rest, ok := strings.Cut(strings.TrimSpace(name), ":")
	if !ok {
		return Structure{}, errors.Parsing("malformed chain name "+name, nil)
	}
	dbPart, ohPart, hasOH := strings.Cut(rest, ";")

	carbons, err := strconv.Atoi(carbonPart)
	if err != nil {
		return Structure{}, errors.Parsing("malformed carbon count in "+name, err)
	}
	db, err := strconv.Atoi(dbPart)
	if err != nil {
		return Structure{}, errors.Parsing("malformed double-bond count in "+name, err)
	}
	st := Structure{Kind: kind, Carbons: carbons, DoubleBonds: db}
	if hasOH {
		oh, err := strconv.Atoi(ohPart)
		if err != nil {
			return Structure{}, errors.Parsing("malformed hydroxyl count in "+name, err)
		}
		st.Hydroxyls = oh
	}
	return st, nil
}

func sortedSet(values []int) []int {
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}

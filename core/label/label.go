// Package label implements stable-isotope label tokens and the light/heavy
// row expansion they drive. A token like "M2DN15" names a labeling scheme:
// two deuteriums plus one 15N, written in the vendor shorthand used on
// internal-standard certificates.
package label

import (
	"regexp"
	"strings"

	"gslgen/core/chem"
	"gslgen/internal/errors"
)

// Defaults mirror the commercially available labeled standards.
const (
	DefaultToken       = "M2DN15"
	DefaultDoxCerToken = "M3D"
	DefaultKeywords    = "LCB,precursor,HG(-Hex"
)

// Label is one parsed isotope token.
type Label struct {
	// Token is the normalized (uppercase) token, e.g. "M2DN15".
	Token string

	// Substitution is the heavy-isotope composition the token encodes.
	Substitution chem.Substitution

	// Shift is the total heavy-minus-light mass shift in Da.
	Shift float64
}

// Parse decodes an isotope token. Grammar: an optional leading "M", then
// a sequence of [count]CODE groups where CODE is D, N15, C13 or O18 and a
// missing count means one. Case-insensitive; an empty token parses to the
// zero Label.
//
//	"M2DN15"  -> 2x2H + 1x15N
//	"M3D"     -> 3x2H
//	"M4D2N15" -> 4x2H + 2x15N
func Parse(token string) (Label, error) {
	normalized := strings.ToUpper(strings.TrimSpace(token))
	if normalized == "" {
		return Label{}, nil
	}

	body := strings.TrimPrefix(normalized, "M")
	subs := make(chem.Substitution)
	for i := 0; i < len(body); {
		count := 0
		digits := false
		for i < len(body) && body[i] >= '0' && body[i] <= '9' {
			count = count*10 + int(body[i]-'0')
			digits = true
			i++
		}
		if !digits {
			count = 1
		}
		if i >= len(body) {
			break
		}

		var iso chem.Isotope
		switch {
		case body[i] == 'D':
			iso = chem.Deuterium
			i++
		case strings.HasPrefix(body[i:], "N15"):
			iso = chem.Nitrogen15
			i += 3
		case strings.HasPrefix(body[i:], "C13"):
			iso = chem.Carbon13
			i += 3
		case strings.HasPrefix(body[i:], "O18"):
			iso = chem.Oxygen18
			i += 3
		default:
			return Label{}, errors.Configf(
				"unrecognized isotope code at %q in token %s (valid: D, N15, C13, O18)",
				body[i:], normalized)
		}
		subs[iso] += count
	}

	return Label{Token: normalized, Substitution: subs, Shift: shiftOf(subs)}, nil
}

// IsZero reports whether the label carries no substitution.
func (l Label) IsZero() bool {
	return len(l.Substitution) == 0
}

// shiftOf sums the per-isotope mass deltas in canonical isotope order,
// keeping the shift bit-identical across runs. The token states the label
// count outright, so no capping against a formula applies here.
func shiftOf(subs chem.Substitution) float64 {
	total := 0.0
	for _, iso := range chem.Isotopes() {
		n := subs[iso]
		if n == 0 {
			continue
		}
		if d, ok := chem.IsotopeDelta(iso); ok {
			total += d * float64(n)
		}
	}
	return total
}

// adductInsertRe matches the molecule part of an adduct name:
// "[M", or "[2M" for multimers. The token replaces the "M".
var adductInsertRe = regexp.MustCompile(`^\[(\d*)M`)

// HeavyAdduct rewrites an adduct name to carry the label token,
// e.g. "[M+H]1+" with "M2DN15" becomes "[M2DN15+H]1+".
func (l Label) HeavyAdduct(adduct string) string {
	if l.IsZero() || adduct == "" {
		return adduct
	}
	return adductInsertRe.ReplaceAllString(adduct, "[${1}"+l.Token)
}

// Scheme selects the label applied to each lipid class and which product
// ions carry it.
type Scheme struct {
	// Standard applies to glycosphingolipids and sphingomyelins,
	// Cer to ceramides, DoxCer to 1-deoxyceramides.
	Standard Label
	Cer      Label
	DoxCer   Label

	// Keywords gate product labeling: a product is labeled when any
	// keyword is a case-insensitive substring of its name. Backbone
	// fragments retain the label; distal headgroup fragments do not.
	Keywords []string
}

// NewScheme parses the three class tokens and the keyword list.
func NewScheme(standard, cer, doxCer, keywords string) (Scheme, error) {
	s := Scheme{}
	var err error
	if s.Standard, err = Parse(standard); err != nil {
		return Scheme{}, err
	}
	if s.Cer, err = Parse(cer); err != nil {
		return Scheme{}, err
	}
	if s.DoxCer, err = Parse(doxCer); err != nil {
		return Scheme{}, err
	}
	for _, k := range strings.Split(keywords, ",") {
		if k = strings.TrimSpace(k); k != "" {
			s.Keywords = append(s.Keywords, k)
		}
	}
	return s, nil
}

// ForClass returns the label applied to a lipid class.
func (s Scheme) ForClass(className string) Label {
	switch className {
	case "doxCer":
		return s.DoxCer
	case "Cer":
		return s.Cer
	default:
		return s.Standard
	}
}

// LabelsProduct reports whether a product ion retains the label.
func (s Scheme) LabelsProduct(productName string) bool {
	lower := strings.ToLower(productName)
	for _, k := range s.Keywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// Package transition defines the output row of the generator: one
// precursor/product pair with the metadata a transition list carries.
package transition

// Label type values for the optional isotope column.
const (
	LabelLight = "light"
	LabelHeavy = "heavy"
)

// Record is one transition row. Masses are exact; rounding happens in the
// writer, not here.
type Record struct {
	// MoleculeList is the lipid class name, grouping rows in the target
	// application ("GM3", "Cer").
	MoleculeList string

	// Molecule is the species display name ("GM3 18:1;2/16:0").
	Molecule string

	// Formula is the neutral molecular formula of the precursor.
	Formula string

	// PrecursorAdduct names the precursor ionization ("[M+2H]2+"),
	// including the isotope token on heavy rows.
	PrecursorAdduct string
	PrecursorMz     float64
	PrecursorCharge int

	// ProductName identifies the fragment ("LCB 18:1;2(-HO)").
	ProductName string

	// ProductFormula is the neutral product formula.
	ProductFormula string

	ProductAdduct string
	ProductMz     float64
	ProductCharge int

	// LabelType is "light" or "heavy" when isotope labeling is enabled,
	// empty otherwise.
	LabelType string
}

// Columns is the fixed column order of the transition list.
var Columns = []string{
	"Molecule List Name",
	"Molecule",
	"Molecule Formula",
	"Precursor Adduct",
	"Precursor m/z",
	"Precursor Charge",
	"Product Name",
	"Product Formula",
	"Product Adduct",
	"Product m/z",
	"Product Charge",
}

// LabelColumn is appended when isotope labeling is enabled.
const LabelColumn = "Isotope Label Type"

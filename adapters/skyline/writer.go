// Package skyline renders transition records as the CSV transition list
// the Skyline small-molecule importer reads.
package skyline

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"gslgen/core/transition"
	"gslgen/internal/errors"
)

// mzPlaces is the mass precision of the output. Exact masses stay
// unrounded through the whole pipeline; this is the only rounding point.
const mzPlaces = 4

// Options controls the output shape.
type Options struct {
	// IncludeLabels appends the "Isotope Label Type" column.
	IncludeLabels bool

	// BlankMz writes empty m/z cells, letting the importer recompute
	// them from formula and adduct.
	BlankMz bool
}

// Writer streams transition records to CSV. Not safe for concurrent use.
type Writer struct {
	csv         *csv.Writer
	opts        Options
	wroteHeader bool
}

// NewWriter wraps an output stream.
func NewWriter(w io.Writer, opts Options) *Writer {
	return &Writer{csv: csv.NewWriter(w), opts: opts}
}

// Write emits one record, writing the header first when needed.
func (w *Writer) Write(rec transition.Record) error {
	if !w.wroteHeader {
		header := transition.Columns
		if w.opts.IncludeLabels {
			header = append(append([]string{}, header...), transition.LabelColumn)
		}
		if err := w.csv.Write(header); err != nil {
			return errors.Internal("writing transition list header", err)
		}
		w.wroteHeader = true
	}

	row := []string{
		rec.MoleculeList,
		rec.Molecule,
		rec.Formula,
		rec.PrecursorAdduct,
		w.mz(rec.PrecursorMz),
		strconv.Itoa(rec.PrecursorCharge),
		rec.ProductName,
		rec.ProductFormula,
		rec.ProductAdduct,
		w.mz(rec.ProductMz),
		strconv.Itoa(rec.ProductCharge),
	}
	if w.opts.IncludeLabels {
		row = append(row, rec.LabelType)
	}
	if err := w.csv.Write(row); err != nil {
		return errors.Internal("writing transition row", err)
	}
	return nil
}

// WriteAll emits a full table and flushes.
func (w *Writer) WriteAll(recs []transition.Record) error {
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush drains buffered rows to the underlying stream.
func (w *Writer) Flush() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return errors.Internal("flushing transition list", err)
	}
	return nil
}

func (w *Writer) mz(v float64) string {
	if w.opts.BlankMz {
		return ""
	}
	return decimal.NewFromFloat(v).Round(mzPlaces).String()
}

package profiler

import (
	"fmt"
	"io"
	"strings"

	"dataprobe/internal/dataset"
)

const (
	// PreviewSamples is how many values per text column the console preview shows.
	PreviewSamples = 2
	// PreviewWidth is where console sample values get cut off.
	PreviewWidth = 100
	previewRows  = 3
)

// ColumnDescriptor is the per-column schema summary.
type ColumnDescriptor struct {
	Name    string
	Kind    dataset.Kind
	NonNull int
}

// Analysis is the derived schema and content summary for one dataset.
type Analysis struct {
	Descriptors []ColumnDescriptor
	TextColumns []string
}

// Analyze derives the column descriptors and the textual-column subset.
// It performs no numeric statistics.
func Analyze(ds *dataset.Dataset) *Analysis {
	a := &Analysis{
		Descriptors: make([]ColumnDescriptor, 0, ds.NumCols()),
	}
	for i := range ds.Columns {
		c := &ds.Columns[i]
		a.Descriptors = append(a.Descriptors, ColumnDescriptor{
			Name:    c.Name,
			Kind:    c.Kind,
			NonNull: c.NonNull(),
		})
		if c.Kind.Textual() {
			a.TextColumns = append(a.TextColumns, c.Name)
		}
	}
	return a
}

// Print writes the human-oriented summary: shape, per-column schema, the
// first rows, and samples from each text column.
func (a *Analysis) Print(w io.Writer, ds *dataset.Dataset) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "Data analysis")
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "Format: %s\n", ds.Format)
	fmt.Fprintf(w, "Shape: %d rows x %d columns\n", ds.NumRows(), ds.NumCols())

	fmt.Fprintln(w, "\nColumns:")
	for i, d := range a.Descriptors {
		fmt.Fprintf(w, "  %2d. %-30s %-10s non-null: %d/%d\n",
			i+1, d.Name, d.Kind, d.NonNull, ds.NumRows())
	}

	fmt.Fprintf(w, "\nFirst %d rows:\n", previewRows)
	fmt.Fprintf(w, "  %s\n", strings.Join(ds.Names(), " | "))
	for _, row := range ds.Head(previewRows) {
		fmt.Fprintf(w, "  %s\n", strings.Join(row, " | "))
	}

	fmt.Fprintf(w, "\nText columns (%d):\n", len(a.TextColumns))
	for i := range ds.Columns {
		c := &ds.Columns[i]
		if !c.Kind.Textual() {
			continue
		}
		fmt.Fprintf(w, "\n  Column %q:\n", c.Name)
		for j, sample := range c.Samples(PreviewSamples) {
			fmt.Fprintf(w, "    sample %d: %s\n", j+1, Truncate(sample, PreviewWidth))
		}
	}
}

// Truncate cuts s at max runes and appends an ellipsis marker.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

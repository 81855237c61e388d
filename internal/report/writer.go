package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"dataprobe/internal/dataset"
)

// WriteJSON writes the machine-readable report. Output is UTF-8 with HTML
// escaping off, so non-ASCII sample text survives verbatim.
func (r *Report) WriteJSON(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// WriteMarkdown writes the prose report: file facts, the column roster, and
// per-text-column samples truncated for readability.
func (r *Report) WriteMarkdown(path string) error {
	var b strings.Builder

	b.WriteString("# Data Analysis Report\n\n")
	b.WriteString("## File\n")
	fmt.Fprintf(&b, "- Name: `%s`\n", r.FileName)
	fmt.Fprintf(&b, "- Format: %s\n", r.FileFormat)
	fmt.Fprintf(&b, "- Shape: %s rows x %d columns\n\n",
		humanize.Comma(int64(r.DataShape.Rows)), r.DataShape.Columns)

	fmt.Fprintf(&b, "## Columns\n%d columns:\n\n", r.DataShape.Columns)
	for i, d := range r.descriptors {
		fmt.Fprintf(&b, "%d. **%s** - kind: `%s`, non-null: %d\n", i+1, d.Name, d.Kind, d.NonNull)
	}

	fmt.Fprintf(&b, "\n## Text columns\nFound %d text columns:\n\n", len(r.TextColumns))
	for _, name := range r.TextColumns {
		fmt.Fprintf(&b, "### %s\n", name)
		for i, sample := range r.SampleData[name] {
			fmt.Fprintf(&b, "Sample %d: `%s`\n\n", i+1, truncate(sample, markdownSampleWidth))
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteSampleCSV writes the header plus the first n rows of the dataset, all
// columns in source order.
func WriteSampleCSV(path string, ds *dataset.Dataset, n int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(ds.Names()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range ds.Head(n) {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

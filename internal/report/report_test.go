package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dataprobe/internal/dataset"
	"dataprobe/internal/profiler"
)

func textColumn(name string, rows int) dataset.Column {
	c := dataset.Column{Name: name, Kind: dataset.KindString}
	for i := 0; i < rows; i++ {
		c.Values = append(c.Values, fmt.Sprintf("%s-%d", name, i))
		c.Valid = append(c.Valid, true)
	}
	return c
}

func fixture(textCols, rows int) *dataset.Dataset {
	ds := &dataset.Dataset{Source: "input.parquet", Format: "parquet"}
	id := dataset.Column{Name: "id", Kind: dataset.KindInt}
	for i := 0; i < rows; i++ {
		id.Values = append(id.Values, fmt.Sprintf("%d", i))
		id.Valid = append(id.Valid, true)
	}
	ds.Columns = append(ds.Columns, id)
	for i := 0; i < textCols; i++ {
		ds.Columns = append(ds.Columns, textColumn(fmt.Sprintf("t%d", i), rows))
	}
	return ds
}

func TestBuildCapsSamples(t *testing.T) {
	ds := fixture(7, 10)
	r := Build(ds, profiler.Analyze(ds))

	if r.DataShape.Rows != 10 || r.DataShape.Columns != 8 {
		t.Errorf("Shape = %dx%d", r.DataShape.Rows, r.DataShape.Columns)
	}
	if len(r.TextColumns) != 7 {
		t.Errorf("Expected 7 text columns, got %d", len(r.TextColumns))
	}
	if len(r.SampleData) != MaxSampledColumns {
		t.Errorf("Expected %d sampled columns, got %d", MaxSampledColumns, len(r.SampleData))
	}
	for name, samples := range r.SampleData {
		if len(samples) > MaxSamples {
			t.Errorf("Column %s has %d samples", name, len(samples))
		}
	}
	if r.Dtypes["id"] != "int64" {
		t.Errorf("Dtypes[id] = %s", r.Dtypes["id"])
	}
}

func TestWriteJSON(t *testing.T) {
	ds := fixture(1, 2)
	ds.Columns[1].Values[0] = "残留量 <100 & >50"
	r := Build(ds, profiler.Analyze(ds))

	path := filepath.Join(t.TempDir(), "report.json")
	if err := r.WriteJSON(path); err != nil {
		t.Fatalf("WriteJSON() failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), `<`) {
		t.Error("Expected raw UTF-8 output, found escaped HTML")
	}
	if !strings.Contains(string(raw), "残留量 <100 & >50") {
		t.Error("Sample text not preserved verbatim")
	}

	var decoded Report
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Report does not round-trip: %v", err)
	}
	if decoded.FileName != "input.parquet" || decoded.FileFormat != "parquet" {
		t.Errorf("Decoded identity = %s/%s", decoded.FileName, decoded.FileFormat)
	}
	if decoded.DataShape.Rows != ds.NumRows() || decoded.DataShape.Columns != ds.NumCols() {
		t.Errorf("Recorded shape %dx%d does not match dataset %dx%d",
			decoded.DataShape.Rows, decoded.DataShape.Columns, ds.NumRows(), ds.NumCols())
	}
}

func TestWriteMarkdownTruncates(t *testing.T) {
	ds := fixture(1, 1)
	ds.Columns[1].Values[0] = strings.Repeat("a", 300)
	r := Build(ds, profiler.Analyze(ds))

	path := filepath.Join(t.TempDir(), "report.md")
	if err := r.WriteMarkdown(path); err != nil {
		t.Fatalf("WriteMarkdown() failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(raw)
	if !strings.Contains(out, "`"+strings.Repeat("a", 200)+"`") {
		t.Error("Expected sample truncated to 200 characters")
	}
	if strings.Contains(out, strings.Repeat("a", 201)) {
		t.Error("Sample exceeds 200 characters")
	}
	if !strings.Contains(out, "# Data Analysis Report") {
		t.Error("Missing report title")
	}
}

func TestWriteSampleCSV(t *testing.T) {
	cases := []struct {
		rows     int
		wantData int
	}{
		{5, 5},
		{250, 100},
	}
	for _, tc := range cases {
		ds := fixture(1, tc.rows)
		path := filepath.Join(t.TempDir(), "sample.csv")
		if err := WriteSampleCSV(path, ds, SampleRows); err != nil {
			t.Fatalf("WriteSampleCSV() failed: %v", err)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		records, err := csv.NewReader(f).ReadAll()
		f.Close()
		if err != nil {
			t.Fatalf("Sample output is not valid CSV: %v", err)
		}
		if len(records) != tc.wantData+1 {
			t.Errorf("Expected %d records incl header, got %d", tc.wantData+1, len(records))
		}
		if records[0][0] != "id" || records[0][1] != "t0" {
			t.Errorf("Header = %v", records[0])
		}
	}
}

package profiler

import (
	"strings"
	"testing"

	"dataprobe/internal/dataset"
)

func column(name string, values ...string) dataset.Column {
	c := dataset.Column{Name: name}
	for _, v := range values {
		c.Values = append(c.Values, v)
		c.Valid = append(c.Valid, v != "")
	}
	return c
}

func TestInferKind(t *testing.T) {
	cases := []struct {
		values []string
		want   dataset.Kind
	}{
		{[]string{"1", "2", "3"}, dataset.KindInt},
		{[]string{"1.5", "2", "3"}, dataset.KindFloat},
		{[]string{"true", "false"}, dataset.KindBool},
		{[]string{"2024-01-02", "2024-03-04"}, dataset.KindDate},
		{[]string{"01/02/2006", "", "03/04/2007"}, dataset.KindDate},
		{[]string{"1", "abc"}, dataset.KindString},
		{[]string{"hello", "world"}, dataset.KindString},
		{[]string{"", ""}, dataset.KindString},
	}
	for _, tc := range cases {
		c := column("c", tc.values...)
		if got := InferKind(&c); got != tc.want {
			t.Errorf("InferKind(%v) = %s, want %s", tc.values, got, tc.want)
		}
	}
}

func TestAnalyze(t *testing.T) {
	ds := &dataset.Dataset{
		Source: "test.csv",
		Format: "csv",
		Columns: []dataset.Column{
			{Name: "id", Kind: dataset.KindInt,
				Values: []string{"1", "2"}, Valid: []bool{true, true}},
			{Name: "name", Kind: dataset.KindString,
				Values: []string{"a", ""}, Valid: []bool{true, false}},
			{Name: "blob", Kind: dataset.KindBinary,
				Values: []string{"x", "y"}, Valid: []bool{true, true}},
		},
	}

	a := Analyze(ds)

	if len(a.Descriptors) != 3 {
		t.Fatalf("Expected 3 descriptors, got %d", len(a.Descriptors))
	}
	if a.Descriptors[1].NonNull != 1 {
		t.Errorf("Expected 1 non-null for name, got %d", a.Descriptors[1].NonNull)
	}
	if len(a.TextColumns) != 2 {
		t.Fatalf("Expected 2 text columns, got %d", len(a.TextColumns))
	}
	if a.TextColumns[0] != "name" || a.TextColumns[1] != "blob" {
		t.Errorf("TextColumns = %v", a.TextColumns)
	}
}

func TestPrint(t *testing.T) {
	long := strings.Repeat("x", 150)
	ds := &dataset.Dataset{
		Source: "test.csv",
		Format: "csv",
		Columns: []dataset.Column{
			{Name: "note", Kind: dataset.KindString,
				Values: []string{long}, Valid: []bool{true}},
		},
	}

	var b strings.Builder
	Analyze(ds).Print(&b, ds)
	out := b.String()

	if !strings.Contains(out, "Shape: 1 rows x 1 columns") {
		t.Errorf("Missing shape line in output:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("x", PreviewWidth)+"...") {
		t.Error("Expected truncated sample with ellipsis")
	}
	if strings.Contains(out, "sample 1: "+long+"\n") {
		t.Error("Sample should not appear untruncated")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 100); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
	got := Truncate(strings.Repeat("é", 120), 100)
	if want := strings.Repeat("é", 100) + "..."; got != want {
		t.Errorf("Truncate over rune boundary = %q", got)
	}
}

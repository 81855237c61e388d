package dataset

// Kind is the declared value kind of a column. Every decoder normalizes its
// source types into this set.
type Kind string

const (
	KindInt       Kind = "int64"
	KindFloat     Kind = "float64"
	KindBool      Kind = "bool"
	KindString    Kind = "string"
	KindTimestamp Kind = "timestamp"
	KindDate      Kind = "date"
	KindBinary    Kind = "binary"
)

// Textual reports whether the kind is unstructured/string-like.
func (k Kind) Textual() bool {
	return k == KindString || k == KindBinary
}

// Column holds one named column. Values and Valid are aligned; a false Valid
// entry marks a missing value and its Values slot is empty.
type Column struct {
	Name   string
	Kind   Kind
	Values []string
	Valid  []bool
}

// NonNull returns the count of non-missing values.
func (c *Column) NonNull() int {
	n := 0
	for _, ok := range c.Valid {
		if ok {
			n++
		}
	}
	return n
}

// Samples returns up to n non-missing values in row order.
func (c *Column) Samples(n int) []string {
	var out []string
	for i, ok := range c.Valid {
		if !ok {
			continue
		}
		out = append(out, c.Values[i])
		if len(out) == n {
			break
		}
	}
	return out
}

// Dataset is the in-memory table produced by a successful decode. All columns
// have equal length.
type Dataset struct {
	Source  string
	Format  string
	Columns []Column
}

func (d *Dataset) NumRows() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Values)
}

func (d *Dataset) NumCols() int {
	return len(d.Columns)
}

// Names returns the column names in source order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// Row returns row i across all columns, missing values as empty strings.
func (d *Dataset) Row(i int) []string {
	row := make([]string, len(d.Columns))
	for j, c := range d.Columns {
		row[j] = c.Values[i]
	}
	return row
}

// Head returns the first n rows, or fewer if the dataset is shorter.
func (d *Dataset) Head(n int) [][]string {
	if n > d.NumRows() {
		n = d.NumRows()
	}
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, d.Row(i))
	}
	return rows
}

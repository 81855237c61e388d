package prober

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/klauspost/compress/gzip"

	"dataprobe/internal/dataset"
)

// DecodeParquet reads a parquet file into a dataset via Arrow.
func DecodeParquet(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	return readParquet(f)
}

// DecodeGzipParquet handles the explicit-codec case: a parquet file that was
// gzip-compressed as a whole, outside parquet's own column codecs.
func DecodeGzipParquet(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}

	return readParquet(bytes.NewReader(raw))
}

func readParquet(r parquet.ReaderAtSeeker) (*dataset.Dataset, error) {
	pf, err := file.NewParquetReader(r, file.WithReadProps(&parquet.ReaderProperties{}))
	if err != nil {
		return nil, fmt.Errorf("parquet reader: %w", err)
	}
	defer pf.Close()

	reader, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, memory.NewGoAllocator())
	if err != nil {
		return nil, fmt.Errorf("arrow reader: %w", err)
	}

	table, err := reader.ReadTable(context.Background())
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	defer table.Release()

	return fromArrowTable(table)
}

func fromArrowTable(table arrow.Table) (*dataset.Dataset, error) {
	schema := table.Schema()
	ds := &dataset.Dataset{Columns: make([]dataset.Column, schema.NumFields())}
	for i, field := range schema.Fields() {
		ds.Columns[i] = dataset.Column{Name: field.Name, Kind: kindOf(field.Type)}
	}

	tr := array.NewTableReader(table, table.NumRows())
	defer tr.Release()

	for tr.Next() {
		rec := tr.Record()
		for colIdx, col := range rec.Columns() {
			c := &ds.Columns[colIdx]
			for pos := 0; pos < int(rec.NumRows()); pos++ {
				if col.IsNull(pos) {
					c.Values = append(c.Values, "")
					c.Valid = append(c.Valid, false)
					continue
				}
				c.Values = append(c.Values, formatValue(col, pos))
				c.Valid = append(c.Valid, true)
			}
		}
	}
	if err := tr.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	return ds, nil
}

func kindOf(dt arrow.DataType) dataset.Kind {
	switch dt.ID() {
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return dataset.KindInt
	case arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64,
		arrow.DECIMAL128, arrow.DECIMAL256:
		return dataset.KindFloat
	case arrow.BOOL:
		return dataset.KindBool
	case arrow.TIMESTAMP:
		return dataset.KindTimestamp
	case arrow.DATE32, arrow.DATE64:
		return dataset.KindDate
	case arrow.BINARY, arrow.LARGE_BINARY, arrow.FIXED_SIZE_BINARY:
		return dataset.KindBinary
	case arrow.STRING, arrow.LARGE_STRING:
		return dataset.KindString
	default:
		// structs, lists and friends surface as object-like text
		return dataset.KindString
	}
}

// formatValue renders one cell as a string. Dates and timestamps get stable
// layouts; everything else uses Arrow's own formatting.
func formatValue(col arrow.Array, pos int) string {
	switch c := col.(type) {
	case *array.String:
		return c.Value(pos)
	case *array.LargeString:
		return c.Value(pos)
	case *array.Binary:
		return string(c.Value(pos))
	case *array.Date32:
		return c.Value(pos).ToTime().Format("2006-01-02")
	case *array.Date64:
		return c.Value(pos).ToTime().Format("2006-01-02")
	case *array.Timestamp:
		unit := c.DataType().(*arrow.TimestampType).Unit
		return c.Value(pos).ToTime(unit).Format("2006-01-02 15:04:05")
	default:
		return col.ValueStr(pos)
	}
}

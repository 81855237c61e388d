package prober

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"dataprobe/internal/dataset"
	"dataprobe/internal/profiler"
)

// DecodeExcel reads the first sheet of an xlsx workbook into a dataset. The
// first row is the header; column kinds are inferred from the cell values.
func DecodeExcel(path string) (*dataset.Dataset, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheets[0])
	}

	headers := rows[0]
	ds := &dataset.Dataset{Columns: make([]dataset.Column, len(headers))}
	for i, h := range headers {
		ds.Columns[i] = dataset.Column{Name: h}
	}

	for _, row := range rows[1:] {
		// trailing empty cells are trimmed per row; pad back out
		for i := range ds.Columns {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			c := &ds.Columns[i]
			c.Values = append(c.Values, value)
			c.Valid = append(c.Valid, value != "")
		}
	}

	for i := range ds.Columns {
		ds.Columns[i].Kind = profiler.InferKind(&ds.Columns[i])
	}

	return ds, nil
}

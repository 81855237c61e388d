package prober

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"dataprobe/internal/dataset"
	"dataprobe/internal/profiler"
)

// DecodeCSV reads a comma-delimited file into a dataset. The first record is
// the header; column kinds are inferred from the values.
func DecodeCSV(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read headers: %w", err)
	}
	for _, h := range headers {
		if !utf8.ValidString(h) || strings.ContainsRune(h, '\x00') {
			return nil, fmt.Errorf("header is not plain text")
		}
	}

	ds := &dataset.Dataset{Columns: make([]dataset.Column, len(headers))}
	for i, h := range headers {
		ds.Columns[i] = dataset.Column{Name: h}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		for i, value := range record {
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

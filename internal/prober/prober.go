package prober

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"dataprobe/internal/dataset"
)

// ErrNoFormat is returned when every decoder rejected the file.
var ErrNoFormat = errors.New("no supported format matched")

// Decoder pairs a format tag with its decode attempt. Decode returns an error
// for any mismatch or corruption; the prober swallows it and moves on.
type Decoder struct {
	Tag    string
	Decode func(path string) (*dataset.Dataset, error)
}

// decodersFor returns the probe sequence for one candidate file. Priority
// order is fixed: parquet, then CSV, then spreadsheet. Files named *.gz or
// *.gzip get a final attempt as gzip-wrapped parquet.
func decodersFor(path string) []Decoder {
	decoders := []Decoder{
		{Tag: "parquet", Decode: DecodeParquet},
		{Tag: "csv", Decode: DecodeCSV},
		{Tag: "excel", Decode: DecodeExcel},
	}
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".gz") || strings.HasSuffix(lower, ".gzip") {
		decoders = append(decoders, Decoder{Tag: "parquet.gzip", Decode: DecodeGzipParquet})
	}
	return decoders
}

// Probe tries each decoder in priority order and returns the first dataset
// that decodes, tagged with its format. One status line is printed per
// attempt.
func Probe(path string, status io.Writer) (*dataset.Dataset, string, error) {
	for _, dec := range decodersFor(path) {
		ds, err := dec.Decode(path)
		if err != nil {
			fmt.Fprintf(status, "  not %s: %v\n", dec.Tag, err)
			continue
		}
		fmt.Fprintf(status, "  decoded as %s\n", dec.Tag)
		ds.Source = filepath.Base(path)
		ds.Format = dec.Tag
		return ds, dec.Tag, nil
	}
	return nil, "", ErrNoFormat
}

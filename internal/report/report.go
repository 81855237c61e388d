package report

import (
	"time"

	"dataprobe/internal/dataset"
	"dataprobe/internal/profiler"
)

const (
	// MaxSampledColumns caps how many text columns get samples in the report.
	MaxSampledColumns = 5
	// MaxSamples caps samples per text column.
	MaxSamples = 3
	// SampleRows is the default size of the CSV extract.
	SampleRows = 100
	// markdownSampleWidth is where markdown sample values get cut off.
	markdownSampleWidth = 200
)

// Shape is the row/column count of the analyzed dataset.
type Shape struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// Report is the structured analysis document. It is built once per run and
// written out as JSON and markdown.
type Report struct {
	FileName    string              `json:"file_name"`
	FileFormat  string              `json:"file_format"`
	GeneratedAt time.Time           `json:"generated_at"`
	DataShape   Shape               `json:"data_shape"`
	Columns     []string            `json:"columns"`
	Dtypes      map[string]string   `json:"dtypes"`
	TextColumns []string            `json:"text_columns"`
	SampleData  map[string][]string `json:"sample_data"`

	descriptors []profiler.ColumnDescriptor
}

// Build assembles the report from a decoded dataset and its analysis.
// Samples are stored untruncated; writers truncate where their format asks
// for it.
func Build(ds *dataset.Dataset, a *profiler.Analysis) *Report {
	r := &Report{
		FileName:    ds.Source,
		FileFormat:  ds.Format,
		GeneratedAt: time.Now().UTC(),
		DataShape:   Shape{Rows: ds.NumRows(), Columns: ds.NumCols()},
		Columns:     ds.Names(),
		Dtypes:      make(map[string]string, ds.NumCols()),
		TextColumns: a.TextColumns,
		SampleData:  make(map[string][]string),
		descriptors: a.Descriptors,
	}
	for _, d := range a.Descriptors {
		r.Dtypes[d.Name] = string(d.Kind)
	}

	sampled := a.TextColumns
	if len(sampled) > MaxSampledColumns {
		sampled = sampled[:MaxSampledColumns]
	}
	for _, name := range sampled {
		for i := range ds.Columns {
			if ds.Columns[i].Name == name {
				r.SampleData[name] = ds.Columns[i].Samples(MaxSamples)
				break
			}
		}
	}

	return r
}

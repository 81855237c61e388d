package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"dataprobe/internal/config"
	"dataprobe/internal/connectors"
	"dataprobe/internal/prober"
	"dataprobe/internal/profiler"
	"dataprobe/internal/report"
)

const (
	jsonReportName = "data_analysis_report.json"
	mdReportName   = "data_analysis_report.md"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Find, identify and summarize a data file",
	Long: `Scan the data directory, probe each file against the supported
formats in priority order (parquet, CSV, xlsx, gzip-wrapped parquet),
and for the first file that decodes write the analysis reports and a
truncated CSV sample`,
	Run: func(cmd *cobra.Command, args []string) {
		runExplore()
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

func runExplore() {
	if err := explore(loadSettings(), os.Stdout); err != nil {
		log.Fatalf("Explore failed: %v", err)
	}
}

// explore runs the whole pipeline: locate candidates, probe each in listing
// order, analyze the first one that decodes, write the three outputs.
// Report-writing failures are the only errors it returns.
func explore(settings config.Settings, out io.Writer) error {
	fmt.Fprintln(out, "Exploring data files")

	files, err := connectors.ListFiles(settings.DataDir)
	if err != nil {
		log.Fatalf("Failed to list %s: %v", settings.DataDir, err)
	}
	if len(files) == 0 {
		fmt.Fprintf(out, "No files found in %s/\n", settings.DataDir)
		fmt.Fprintln(out, "\nSuggestions:")
		fmt.Fprintf(out, "1. Create the directory: mkdir -p %s\n", settings.DataDir)
		fmt.Fprintf(out, "2. Move your data files into %s/\n", settings.DataDir)
		fmt.Fprintln(out, "3. Run this tool again")
		return nil
	}

	fmt.Fprintf(out, "Found %d files in %s/:\n", len(files), settings.DataDir)
	for _, f := range files {
		fmt.Fprintf(out, "  - %s (%s)\n", filepath.Base(f.Path), humanize.Bytes(uint64(f.Size)))
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[cyan][reset] Probing files..."),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)

	for _, f := range files {
		bar.Add(1)
		fmt.Fprintf(out, "\nTrying to read: %s\n", filepath.Base(f.Path))

		ds, tag, err := prober.Probe(f.Path, out)
		if err != nil {
			continue
		}
		bar.Finish()

		fmt.Fprintf(out, "\nSuccessfully read %s as %s\n", filepath.Base(f.Path), tag)

		analysis := profiler.Analyze(ds)
		analysis.Print(out, ds)

		rep := report.Build(ds, analysis)
		jsonPath := filepath.Join(settings.OutputDir, jsonReportName)
		if err := rep.WriteJSON(jsonPath); err != nil {
			return err
		}
		mdPath := filepath.Join(settings.OutputDir, mdReportName)
		if err := rep.WriteMarkdown(mdPath); err != nil {
			return err
		}
		samplePath := filepath.Join(settings.OutputDir, settings.SampleFile)
		if err := report.WriteSampleCSV(samplePath, ds, settings.SampleRows); err != nil {
			return err
		}

		fmt.Fprintln(out, "\nReports saved:")
		fmt.Fprintf(out, "  - %s (machine-readable)\n", jsonPath)
		fmt.Fprintf(out, "  - %s (human-readable)\n", mdPath)
		fmt.Fprintf(out, "  - %s (first %d rows)\n", samplePath, settings.SampleRows)

		fmt.Fprintln(out, "\nNext steps:")
		fmt.Fprintf(out, "1. Read %s for the data structure\n", mdReportName)
		fmt.Fprintf(out, "2. Open %s to inspect the data itself\n", settings.SampleFile)
		return nil
	}
	bar.Finish()

	fmt.Fprintln(out, "\nNo file could be read in any supported format")
	fmt.Fprintln(out, "\nPossible causes:")
	fmt.Fprintln(out, "1. The files are corrupted - download them again")
	fmt.Fprintln(out, "2. The files use an encoding this tool does not support")
	fmt.Fprintln(out, "3. The files are in a format other than parquet, CSV or xlsx")
	return nil
}

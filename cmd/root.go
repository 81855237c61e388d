package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"dataprobe/internal/config"
)

var (
	cfgFile    string
	dirPath    string
	outputDir  string
	sampleRows int
)

var rootCmd = &cobra.Command{
	Use:   "dataprobe",
	Short: "Data file exploration CLI",
	Long: `A data exploration tool that scans a directory for an unknown
data file, detects its format (parquet, CSV, xlsx), summarizes its
schema, and writes an analysis report plus a CSV sample`,
	Run: func(cmd *cobra.Command, args []string) {
		runExplore()
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.dataprobe.yaml)")
	rootCmd.PersistentFlags().StringVarP(&dirPath, "dir", "d", "",
		"Directory to scan for data files (default \"data\")")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", "",
		"Directory for the report files (default \".\")")
	rootCmd.PersistentFlags().IntVar(&sampleRows, "sample-rows", 0,
		"Rows to keep in the CSV sample (default 100)")
}

// loadSettings merges the config file with any flags the user set.
func loadSettings() config.Settings {
	settings, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if dirPath != "" {
		settings.DataDir = dirPath
	}
	if outputDir != "" {
		settings.OutputDir = outputDir
	}
	if sampleRows > 0 {
		settings.SampleRows = sampleRows
	}
	return settings
}

package cmd

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"dataprobe/internal/connectors"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List candidate data files without probing them",
	Run: func(cmd *cobra.Command, args []string) {
		settings := loadSettings()

		files, err := connectors.ListFiles(settings.DataDir)
		if err != nil {
			log.Fatalf("Failed to list %s: %v", settings.DataDir, err)
		}
		if len(files) == 0 {
			fmt.Printf("No files found in %s/\n", settings.DataDir)
			return
		}

		fmt.Printf("Found %d files in %s/:\n", len(files), settings.DataDir)
		for _, f := range files {
			fmt.Printf("  - %s (%s)\n", filepath.Base(f.Path), humanize.Bytes(uint64(f.Size)))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

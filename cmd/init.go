package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"dataprobe/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Run: func(cmd *cobra.Command, args []string) {
		path, err := config.Save(config.Defaults(), cfgFile)
		if err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		fmt.Printf("Config written to %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	buildCommit = "none"
	buildDate   = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lnkctl %s\n", rootCmd.Version)
		fmt.Printf("  commit: %s\n", buildCommit)
		fmt.Printf("  built: %s\n", buildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

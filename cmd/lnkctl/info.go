package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/lnkkit/cmd/lnkctl/logger"
	"github.com/joshuapare/lnkkit/pkg/lnk"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <shortcut.lnk>",
		Short: "Print a one-line summary of a shortcut file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

type infoSummary struct {
	Path             string `json:"path"`
	RefersToFile     bool   `json:"refers_to_file"`
	LocalPath        string `json:"local_path,omitempty"`
	NetworkPath      string `json:"network_path,omitempty"`
	FileSize         uint32 `json:"file_size"`
	DataBlocks       int    `json:"data_block_count"`
	WarningCount     int    `json:"warning_count"`
	ModificationTime string `json:"modification_time"`
}

func runInfo(path string) error {
	logger.Debug("opening shortcut", "path", path)

	sf, err := lnk.OpenFile(path, nil)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer sf.Close()

	summary := infoSummary{
		Path:             path,
		RefersToFile:     sf.LinkRefersToFile(),
		FileSize:         sf.FileSize(),
		DataBlocks:       len(sf.DataBlocks()),
		WarningCount:     len(sf.Warnings()),
		ModificationTime: sf.ModificationTime().Format("2006-01-02 15:04:05"),
	}
	if lp, ok := sf.LocalPath().UTF8(); ok {
		summary.LocalPath = lp
	}
	if np, ok := sf.NetworkPath().UTF8(); ok {
		summary.NetworkPath = np
	}

	if jsonOut {
		return printJSON(summary)
	}

	fmt.Printf("%s\n", path)
	fmt.Printf("  refers to file: %v\n", summary.RefersToFile)
	if summary.LocalPath != "" {
		fmt.Printf("  local path:     %s\n", summary.LocalPath)
	}
	if summary.NetworkPath != "" {
		fmt.Printf("  network path:   %s\n", summary.NetworkPath)
	}
	fmt.Printf("  file size:      %d\n", summary.FileSize)
	fmt.Printf("  data blocks:    %d\n", summary.DataBlocks)
	fmt.Printf("  warnings:       %d\n", summary.WarningCount)
	fmt.Printf("  modified:       %s\n", summary.ModificationTime)
	return nil
}

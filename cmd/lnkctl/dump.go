package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/lnkkit/cmd/lnkctl/logger"
	"github.com/joshuapare/lnkkit/pkg/lnk"
)

var dumpShowBlocks bool

func init() {
	cmd := newDumpCmd()
	cmd.Flags().BoolVar(&dumpShowBlocks, "blocks", true, "Show decoded extra data blocks")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <shortcut.lnk>",
		Short: "Print every decoded field of a shortcut file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
}

type dumpOutput struct {
	Path                 string             `json:"path"`
	DataFlags            lnk.DataFlags      `json:"data_flags"`
	FileAttributes       lnk.FileAttributes `json:"file_attributes"`
	CreationTime         string             `json:"creation_time"`
	AccessTime           string             `json:"access_time"`
	ModificationTime     string             `json:"modification_time"`
	FileSize             uint32             `json:"file_size"`
	IconIndex            int32              `json:"icon_index"`
	ShowWindow           uint32             `json:"show_window"`
	HotKey               lnk.HotKey         `json:"hot_key"`
	Description          string             `json:"description,omitempty"`
	RelativePath         string             `json:"relative_path,omitempty"`
	WorkingDirectory     string             `json:"working_directory,omitempty"`
	CommandLineArguments string             `json:"command_line_arguments,omitempty"`
	IconLocation         string             `json:"icon_location,omitempty"`
	LocalPath            string             `json:"local_path,omitempty"`
	NetworkPath          string             `json:"network_path,omitempty"`
	VolumeLabel          string             `json:"volume_label,omitempty"`
	DataBlockKinds       []string           `json:"data_block_kinds,omitempty"`
	Warnings             []string           `json:"warnings,omitempty"`
}

func runDump(path string) error {
	logger.Debug("opening shortcut", "path", path)

	sf, err := lnk.OpenFile(path, nil)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer sf.Close()

	out := dumpOutput{
		Path:             path,
		DataFlags:        sf.Flags(),
		FileAttributes:   sf.FileAttributes(),
		CreationTime:     sf.CreationTime().Format("2006-01-02 15:04:05"),
		AccessTime:       sf.AccessTime().Format("2006-01-02 15:04:05"),
		ModificationTime: sf.ModificationTime().Format("2006-01-02 15:04:05"),
		FileSize:         sf.FileSize(),
		IconIndex:        sf.IconIndex(),
		ShowWindow:       sf.ShowWindow(),
		HotKey:           sf.HotKey(),
	}
	if v, ok := sf.Description().UTF8(); ok {
		out.Description = v
	}
	if v, ok := sf.RelativePath().UTF8(); ok {
		out.RelativePath = v
	}
	if v, ok := sf.WorkingDirectory().UTF8(); ok {
		out.WorkingDirectory = v
	}
	if v, ok := sf.CommandLineArguments().UTF8(); ok {
		out.CommandLineArguments = v
	}
	if v, ok := sf.IconLocation().UTF8(); ok {
		out.IconLocation = v
	}
	if v, ok := sf.LocalPath().UTF8(); ok {
		out.LocalPath = v
	}
	if v, ok := sf.NetworkPath().UTF8(); ok {
		out.NetworkPath = v
	}
	if v, ok := sf.VolumeLabel().UTF8(); ok {
		out.VolumeLabel = v
	}
	if dumpShowBlocks {
		for _, b := range sf.DataBlocks() {
			out.DataBlockKinds = append(out.DataBlockKinds, b.Value.Kind.String())
		}
	}
	for _, w := range sf.Warnings() {
		out.Warnings = append(out.Warnings, w.String())
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("%s\n", path)
	fmt.Printf("  flags:        %+v\n", out.DataFlags)
	fmt.Printf("  attributes:   %+v\n", out.FileAttributes)
	fmt.Printf("  created:      %s\n", out.CreationTime)
	fmt.Printf("  accessed:     %s\n", out.AccessTime)
	fmt.Printf("  modified:     %s\n", out.ModificationTime)
	fmt.Printf("  size:         %d\n", out.FileSize)
	fmt.Printf("  icon index:   %d\n", out.IconIndex)
	fmt.Printf("  show window:  %d\n", out.ShowWindow)
	if out.HotKey.Key != "" {
		fmt.Printf("  hot key:      %+v\n", out.HotKey)
	}
	printIfSet("description", out.Description)
	printIfSet("relative path", out.RelativePath)
	printIfSet("working dir", out.WorkingDirectory)
	printIfSet("arguments", out.CommandLineArguments)
	printIfSet("icon location", out.IconLocation)
	printIfSet("local path", out.LocalPath)
	printIfSet("network path", out.NetworkPath)
	printIfSet("volume label", out.VolumeLabel)
	if dumpShowBlocks && len(out.DataBlockKinds) > 0 {
		fmt.Printf("  data blocks:\n")
		for _, k := range out.DataBlockKinds {
			fmt.Printf("    - %s\n", k)
		}
	}
	for _, w := range out.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
	return nil
}

func printIfSet(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("  %s: %s\n", label, value)
}

// Package reader implements the outer parse driver: it threads a
// FileHeader's data flags through the link-target, location-information,
// data-string, and data-block readers in internal/format, in the fixed
// order the format mandates, and assembles the result every accessor in
// pkg/lnk reads from.
package reader

import (
	"github.com/joshuapare/lnkkit/internal/codepage"
	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/internal/source"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// The Slot* constants index Result.Strings in the fixed order the format
// defines.
const (
	SlotDescription = iota
	SlotRelativePath
	SlotWorkingDirectory
	SlotCommandLineArguments
	SlotIconLocation
	numStringSlots
)

var stringFlags = [numStringSlots]struct {
	flag uint32
	name string
}{
	SlotDescription:          {format.FlagHasDescription, "description"},
	SlotRelativePath:         {format.FlagHasRelativePath, "relative_path"},
	SlotWorkingDirectory:     {format.FlagHasWorkingDir, "working_directory"},
	SlotCommandLineArguments: {format.FlagHasArguments, "command_line_arguments"},
	SlotIconLocation:         {format.FlagHasIconLocation, "icon_location"},
}

// Result is the fully decoded output of one parse pass.
type Result struct {
	Header     format.Header
	LinkTarget *format.LinkTargetIdentifier
	Location   format.LocationInformation
	Strings    [numStringSlots]*format.DataString
	DataBlocks []types.DataBlock
	Warnings   []types.Warning
}

// Parse reads src in full and runs the outer driver over it.
func Parse(src source.ByteSource, opts types.ParseOptions) (*Result, error) {
	total := src.Len()
	buf := make([]byte, total)
	if err := src.ReadExact(0, buf); err != nil {
		return nil, types.NewError(types.ErrKindTruncated, "file", "", 0, "reading source", err)
	}
	return ParseBytes(buf, opts)
}

// ParseBytes runs the outer driver directly over an in-memory buffer.
func ParseBytes(b []byte, opts types.ParseOptions) (*Result, error) {
	header, err := format.ParseHeader(b)
	if err != nil {
		return nil, wrapFormatErr("file_header", "", 0, err)
	}

	cursor := format.HeaderSize
	tc := codepage.Default
	cp := opts.AsciiCodepage
	result := &Result{Header: header}
	var warnings types.WarningList

	if header.HasFlag(format.FlagHasLinkTargetIDList) {
		ltid, n, err := format.ParseLinkTargetIdentifier(b, cursor)
		if err != nil {
			return nil, wrapFormatErr("link_target_identifier", "", cursor, err)
		}
		result.LinkTarget = &ltid
		cursor += n
	}

	if header.HasFlag(format.FlagHasLocationInformation) && !header.HasFlag(format.FlagForceNoLinkInfo) {
		loc, n, err := format.ParseLocationInformation(b, cursor, tc, cp)
		if err != nil {
			return nil, wrapFormatErr("location_information", "", cursor, err)
		}
		result.Location = loc
		cursor += n
	}

	isUnicode := header.HasFlag(format.FlagIsUnicode)
	for slot, sf := range stringFlags {
		if !header.HasFlag(sf.flag) {
			continue
		}
		ds, n, err := format.ParseDataString(b, cursor, isUnicode, tc, cp)
		if err != nil {
			return nil, wrapFormatErr("data_string", sf.name, cursor, err)
		}
		result.Strings[slot] = &ds
		cursor += n
	}

	blocks, n, err := format.ParseDataBlocks(b, cursor, opts.MaxAllocOrDefault(), tc, cp, &warnings, opts.Tolerant)
	if err != nil {
		return nil, wrapFormatErr("data_block_stream", "", cursor, err)
	}
	result.DataBlocks = blocks
	cursor += n

	if opts.CollectWarnings {
		result.Warnings = warnings.All()
	}

	return result, nil
}

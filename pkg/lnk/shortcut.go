package lnk

import (
	"time"

	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/internal/reader"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// ShortcutFile is the fully decoded, read-only representation of a parsed
// .lnk file. It is immutable after construction and safe for concurrent
// accessor calls.
type ShortcutFile struct {
	res    *reader.Result
	opts   types.ParseOptions
	closer interface{ Close() error }
}

// Close releases the underlying ByteSource when Open created or owns one
// (OpenFile). It is a no-op for ShortcutFiles built from OpenBytes/Open with
// a caller-owned source.
func (sf *ShortcutFile) Close() error {
	if sf.closer == nil {
		return nil
	}
	return sf.closer.Close()
}

// AsciiCodepage reports the codepage this ShortcutFile was opened with. The
// codepage only affects interpretation of ANSI byte fields and, since a
// ShortcutFile is immutable once parsed, is fixed at Open time rather than
// mutable afterward — re-open with a different ParseOptions to reinterpret.
func (sf *ShortcutFile) AsciiCodepage() types.Codepage {
	return sf.opts.AsciiCodepage
}

// DataFlags returns the raw data_flags bitfield from the FileHeader.
func (sf *ShortcutFile) DataFlags() uint32 {
	return sf.res.Header.DataFlags
}

// FileAttributeFlags returns the raw file_attribute_flags bitfield.
func (sf *ShortcutFile) FileAttributeFlags() uint32 {
	return sf.res.Header.FileAttributeFlags
}

// CreationTime returns the shortcut's creation FILETIME as a time.Time.
func (sf *ShortcutFile) CreationTime() time.Time {
	return format.FiletimeToTime(sf.res.Header.CreationTime)
}

// AccessTime returns the shortcut's access FILETIME as a time.Time.
func (sf *ShortcutFile) AccessTime() time.Time {
	return format.FiletimeToTime(sf.res.Header.AccessTime)
}

// ModificationTime returns the shortcut's modification FILETIME as a time.Time.
func (sf *ShortcutFile) ModificationTime() time.Time {
	return format.FiletimeToTime(sf.res.Header.ModificationTime)
}

// FileSize returns the cached target file size from the FileHeader. It is
// not verified against the live filesystem.
func (sf *ShortcutFile) FileSize() uint32 {
	return sf.res.Header.FileSize
}

// IconIndex returns the icon index into the icon location's resource.
func (sf *ShortcutFile) IconIndex() int32 {
	return sf.res.Header.IconIndex
}

// ShowWindow returns the raw ShowWindow command value.
func (sf *ShortcutFile) ShowWindow() uint32 {
	return sf.res.Header.ShowWindow
}

// HotKeyRaw returns the raw 16-bit hot-key field.
func (sf *ShortcutFile) HotKeyRaw() uint16 {
	return sf.res.Header.HotKey
}

// LinkRefersToFile reports whether location information is present, i.e.
// the link points at a file/volume/network share rather than purely a
// shell namespace item.
func (sf *ShortcutFile) LinkRefersToFile() bool {
	return sf.res.Location.Present
}

// Warnings returns the recoverable-failure warnings accumulated during the
// parse, in the order encountered. Nil if ParseOptions never requested
// collection or none occurred.
func (sf *ShortcutFile) Warnings() []types.Warning {
	return sf.res.Warnings
}

// LinkTargetIdentifier returns the raw, length-prefixed ItemIDList bytes and
// whether the section was present.
func (sf *ShortcutFile) LinkTargetIdentifier() ([]byte, bool) {
	if sf.res.LinkTarget == nil {
		return nil, false
	}
	return sf.res.LinkTarget.Raw, true
}

// DataBlocks returns every decoded data block in file order.
func (sf *ShortcutFile) DataBlocks() []types.DataBlock {
	return sf.res.DataBlocks
}

// DataBlock returns the i-th data block, if index i exists.
func (sf *ShortcutFile) DataBlock(i int) (types.DataBlock, bool) {
	if i < 0 || i >= len(sf.res.DataBlocks) {
		return types.DataBlock{}, false
	}
	return sf.res.DataBlocks[i], true
}

func (sf *ShortcutFile) firstBlockOfKind(sig types.DataBlockSignature) (types.DataBlockValue, bool) {
	for _, b := range sf.res.DataBlocks {
		if b.Value.Kind == sig {
			return b.Value, true
		}
	}
	return types.DataBlockValue{}, false
}

// SpecialFolder returns the first SpecialFolderLocation data block, if any.
func (sf *ShortcutFile) SpecialFolder() (types.SpecialFolderLocation, bool) {
	v, ok := sf.firstBlockOfKind(types.SigSpecialFolderLocation)
	if !ok {
		return types.SpecialFolderLocation{}, false
	}
	return v.SpecialFolder, true
}

// KnownFolder returns the first KnownFolderLocation data block, if any.
func (sf *ShortcutFile) KnownFolder() (types.KnownFolderLocation, bool) {
	v, ok := sf.firstBlockOfKind(types.SigKnownFolderLocation)
	if !ok {
		return types.KnownFolderLocation{}, false
	}
	return v.KnownFolder, true
}

// ConsoleProperties returns the first console-properties data block, if any.
func (sf *ShortcutFile) ConsoleProperties() (types.ConsoleProperties, bool) {
	v, ok := sf.firstBlockOfKind(types.SigConsoleProperties)
	if !ok {
		return types.ConsoleProperties{}, false
	}
	return v.Console, true
}

// ConsoleCodepage returns the first console-codepage data block, if any.
func (sf *ShortcutFile) ConsoleCodepage() (types.ConsoleCodepage, bool) {
	v, ok := sf.firstBlockOfKind(types.SigConsoleCodepage)
	if !ok {
		return types.ConsoleCodepage{}, false
	}
	return v.ConsoleCp, true
}

func linkTrackerBlock(sf *ShortcutFile) (types.DistributedLinkTracker, bool) {
	v, ok := sf.firstBlockOfKind(types.SigDistributedLinkTracker)
	if !ok {
		return types.DistributedLinkTracker{}, false
	}
	return v.LinkTracker, true
}

// DroidVolumeIdentifier returns the droid volume GUID from the distributed
// link tracker block, if present.
func (sf *ShortcutFile) DroidVolumeIdentifier() (types.GUID, bool) {
	dlt, ok := linkTrackerBlock(sf)
	if !ok {
		return types.GUID{}, false
	}
	return dlt.DroidVolumeIdentifier, true
}

// DroidFileIdentifier returns the droid file GUID from the distributed link
// tracker block, if present.
func (sf *ShortcutFile) DroidFileIdentifier() (types.GUID, bool) {
	dlt, ok := linkTrackerBlock(sf)
	if !ok {
		return types.GUID{}, false
	}
	return dlt.DroidFileIdentifier, true
}

// BirthDroidVolumeIdentifier returns the birth droid volume GUID from the
// distributed link tracker block, if present.
func (sf *ShortcutFile) BirthDroidVolumeIdentifier() (types.GUID, bool) {
	dlt, ok := linkTrackerBlock(sf)
	if !ok {
		return types.GUID{}, false
	}
	return dlt.BirthDroidVolumeIdentifier, true
}

// BirthDroidFileIdentifier returns the birth droid file GUID from the
// distributed link tracker block, if present.
func (sf *ShortcutFile) BirthDroidFileIdentifier() (types.GUID, bool) {
	dlt, ok := linkTrackerBlock(sf)
	if !ok {
		return types.GUID{}, false
	}
	return dlt.BirthDroidFileIdentifier, true
}

// MachineIdentifier returns the decoded machine identifier from the
// distributed link tracker block, if present.
func (sf *ShortcutFile) MachineIdentifier() StringValue {
	dlt, ok := linkTrackerBlock(sf)
	if !ok {
		return StringValue{}
	}
	return StringValue{Text: dlt.MachineIdentifier, Present: true}
}

package lnk

import (
	"unicode/utf16"

	"github.com/joshuapare/lnkkit/internal/reader"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// StringValue is the decoded result of a string accessor: UTF-8 text plus
// whether the underlying field was present at all. A caller that only
// needs a length check (the spec's "size-query mode") can call Size()
// without ever materializing a UTF-16 copy.
type StringValue struct {
	Text    string
	Present bool
}

// UTF8 returns the decoded text and whether it was present.
func (s StringValue) UTF8() (string, bool) {
	return s.Text, s.Present
}

// UTF16 returns the decoded text re-encoded as UTF-16 code units.
func (s StringValue) UTF16() ([]uint16, bool) {
	if !s.Present {
		return nil, false
	}
	return utf16.Encode([]rune(s.Text)), true
}

// Size returns the UTF-8 byte length, or 0 when absent.
func (s StringValue) Size() int {
	if !s.Present {
		return 0
	}
	return len(s.Text)
}

func slotValue(s *reader.Result, slot int) StringValue {
	ds := s.Strings[slot]
	if ds == nil {
		return StringValue{}
	}
	return StringValue{Text: ds.Text, Present: true}
}

// Description returns the shortcut's optional description string.
func (sf *ShortcutFile) Description() StringValue {
	return slotValue(sf.res, reader.SlotDescription)
}

// RelativePath returns the shortcut's optional relative-path string.
func (sf *ShortcutFile) RelativePath() StringValue {
	return slotValue(sf.res, reader.SlotRelativePath)
}

// WorkingDirectory returns the shortcut's optional working-directory string.
func (sf *ShortcutFile) WorkingDirectory() StringValue {
	return slotValue(sf.res, reader.SlotWorkingDirectory)
}

// CommandLineArguments returns the shortcut's optional command-line
// arguments string.
func (sf *ShortcutFile) CommandLineArguments() StringValue {
	return slotValue(sf.res, reader.SlotCommandLineArguments)
}

// IconLocation returns the shortcut's optional icon-location string (the
// DataString form, not the icon-location data block).
func (sf *ShortcutFile) IconLocation() StringValue {
	return slotValue(sf.res, reader.SlotIconLocation)
}

// LocalPath is the concatenation of LocationInformation's local_path and
// common_path, preferring each half's UTF-16 mirror when present.
func (sf *ShortcutFile) LocalPath() StringValue {
	loc := sf.res.Location
	if !loc.Present {
		return StringValue{}
	}
	text := loc.LocalPath.Value() + loc.CommonPath.Value()
	if !loc.LocalPath.Present() && !loc.CommonPath.Present() {
		return StringValue{}
	}
	return StringValue{Text: text, Present: true}
}

// NetworkPath is the concatenation of the network-share sub-record's
// share name and LocationInformation's common_path.
func (sf *ShortcutFile) NetworkPath() StringValue {
	loc := sf.res.Location
	if !loc.Present || loc.Network == nil {
		return StringValue{}
	}
	text := loc.Network.ShareName.Value() + loc.CommonPath.Value()
	if !loc.Network.ShareName.Present() && !loc.CommonPath.Present() {
		return StringValue{}
	}
	return StringValue{Text: text, Present: true}
}

// VolumeLabel returns the decoded volume label, if a volume sub-record is
// present.
func (sf *ShortcutFile) VolumeLabel() StringValue {
	loc := sf.res.Location
	if !loc.Present || loc.Volume == nil || !loc.Volume.VolumeLabel.Present() {
		return StringValue{}
	}
	return StringValue{Text: loc.Volume.VolumeLabel.Value(), Present: true}
}

// EnvironmentVariablesLocation returns the decoded environment-variables
// strings-block, if present.
func (sf *ShortcutFile) EnvironmentVariablesLocation() StringValue {
	v, ok := sf.firstBlockOfKind(types.SigEnvironmentVariables)
	if !ok || !v.EnvironmentVariables.Present {
		return StringValue{}
	}
	return StringValue{Text: v.EnvironmentVariables.Value, Present: true}
}

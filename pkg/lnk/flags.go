package lnk

import "github.com/joshuapare/lnkkit/internal/format"

// DataFlags is a named-boolean view over the raw data_flags bitfield,
// additive to the raw DataFlags() accessor.
type DataFlags struct {
	HasLinkTargetIDList      bool
	HasLocationInformation   bool
	HasDescription           bool
	HasRelativePath          bool
	HasWorkingDir            bool
	HasArguments             bool
	HasIconLocation          bool
	IsUnicode                bool
	ForceNoLinkInfo          bool
	HasExpString             bool
	RunInSeparateProcess     bool
	HasDarwinID              bool
	RunAsUser                bool
	HasExpIcon               bool
	NoPidlAlias              bool
	RunWithShimLayer         bool
	ForceNoLinkTrack         bool
	HasMetadataPropertyStore bool
}

// Flags decodes the raw data_flags bitfield into named booleans.
func (sf *ShortcutFile) Flags() DataFlags {
	f := sf.res.Header.DataFlags
	has := func(bit uint32) bool { return f&bit == bit }
	return DataFlags{
		HasLinkTargetIDList:      has(format.FlagHasLinkTargetIDList),
		HasLocationInformation:   has(format.FlagHasLocationInformation),
		HasDescription:           has(format.FlagHasDescription),
		HasRelativePath:          has(format.FlagHasRelativePath),
		HasWorkingDir:            has(format.FlagHasWorkingDir),
		HasArguments:             has(format.FlagHasArguments),
		HasIconLocation:          has(format.FlagHasIconLocation),
		IsUnicode:                has(format.FlagIsUnicode),
		ForceNoLinkInfo:          has(format.FlagForceNoLinkInfo),
		HasExpString:             has(format.FlagHasExpString),
		RunInSeparateProcess:     has(format.FlagRunInSeparateProcess),
		HasDarwinID:              has(format.FlagHasDarwinID),
		RunAsUser:                has(format.FlagRunAsUser),
		HasExpIcon:               has(format.FlagHasExpIcon),
		NoPidlAlias:              has(format.FlagNoPidlAlias),
		RunWithShimLayer:         has(format.FlagRunWithShimLayer),
		ForceNoLinkTrack:         has(format.FlagForceNoLinkTrack),
		HasMetadataPropertyStore: has(format.FlagHasMetadataPropStore),
	}
}

// FileAttributes is a named-boolean view over the raw file_attribute_flags
// bitfield, additive to the raw FileAttributeFlags() accessor.
type FileAttributes struct {
	ReadOnly          bool
	Hidden            bool
	System            bool
	Directory         bool
	Archive           bool
	Normal            bool
	Temporary         bool
	SparseFile        bool
	ReparsePoint      bool
	Compressed        bool
	Offline           bool
	NotContentIndexed bool
	Encrypted         bool
}

const (
	fileAttrReadOnly          uint32 = 0x00000001
	fileAttrHidden            uint32 = 0x00000002
	fileAttrSystem            uint32 = 0x00000004
	fileAttrDirectory         uint32 = 0x00000010
	fileAttrArchive           uint32 = 0x00000020
	fileAttrNormal            uint32 = 0x00000080
	fileAttrTemporary         uint32 = 0x00000100
	fileAttrSparseFile        uint32 = 0x00000200
	fileAttrReparsePoint      uint32 = 0x00000400
	fileAttrCompressed        uint32 = 0x00000800
	fileAttrOffline           uint32 = 0x00001000
	fileAttrNotContentIndexed uint32 = 0x00002000
	fileAttrEncrypted         uint32 = 0x00004000
)

// FileAttributes decodes the raw file_attribute_flags bitfield into named
// booleans per the Windows FILE_ATTRIBUTE_* constants.
func (sf *ShortcutFile) FileAttributes() FileAttributes {
	f := sf.res.Header.FileAttributeFlags
	has := func(bit uint32) bool { return f&bit == bit }
	return FileAttributes{
		ReadOnly:          has(fileAttrReadOnly),
		Hidden:            has(fileAttrHidden),
		System:            has(fileAttrSystem),
		Directory:         has(fileAttrDirectory),
		Archive:           has(fileAttrArchive),
		Normal:            has(fileAttrNormal),
		Temporary:         has(fileAttrTemporary),
		SparseFile:        has(fileAttrSparseFile),
		ReparsePoint:      has(fileAttrReparsePoint),
		Compressed:        has(fileAttrCompressed),
		Offline:           has(fileAttrOffline),
		NotContentIndexed: has(fileAttrNotContentIndexed),
		Encrypted:         has(fileAttrEncrypted),
	}
}

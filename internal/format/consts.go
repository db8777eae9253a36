package format

// Fixed sizes and sentinel values from the LNK wire format. Offsets below
// are relative to the start of the structure they annotate.
const (
	// HeaderSize is the fixed length of the FileHeader record.
	//
	//	Offset  Size  Field
	//	------  ----  -----------------------------
	//	 0x00    4    header_size (must equal 76)
	//	 0x04   16    class_identifier
	//	 0x14    4    data_flags
	//	 0x18    4    file_attribute_flags
	//	 0x1C    8    creation_time
	//	 0x24    8    access_time
	//	 0x2C    8    modification_time
	//	 0x34    4    file_size
	//	 0x38    4    icon_index
	//	 0x3C    4    show_window
	//	 0x40    2    hot_key
	//	 0x42   10    reserved
	HeaderSize = 76

	headerSizeOffset       = 0x00
	classIdentifierOffset  = 0x04
	dataFlagsOffset        = 0x14
	fileAttributesOffset   = 0x18
	creationTimeOffset     = 0x1C
	accessTimeOffset       = 0x24
	modificationTimeOffset = 0x2C
	fileSizeOffset         = 0x34
	iconIndexOffset        = 0x38
	showWindowOffset       = 0x3C
	hotKeyOffset           = 0x40

	// GUIDSize is the length in bytes of every GUID field in the format.
	GUIDSize = 16

	// LocationInformation header sizes the format accepts. The two larger
	// values add the optional Unicode mirror offset fields.
	LocationHeaderSizeBase       = 28
	LocationHeaderSizeUnicode1   = 32
	LocationHeaderSizeUnicode2   = 36

	// StringsBlockANSISize and StringsBlockUnicodeSize are the fixed
	// widths of the two halves of a strings-style data block payload.
	StringsBlockANSISize    = 260
	StringsBlockUnicodeSize = 520

	// DistributedLinkTrackerMinSize is the minimum legal data_size for a
	// distributed-link-tracker payload.
	DistributedLinkTrackerMinSize = 88

	// dataBlockHeaderSize is the {size(4), signature(4)} prefix common to
	// every data-block record.
	dataBlockHeaderSize = 8
)

// Data flag bits, authoritative per the format.
const (
	FlagHasLinkTargetIDList    uint32 = 0x00000001
	FlagHasLocationInformation uint32 = 0x00000002
	FlagHasDescription         uint32 = 0x00000004
	FlagHasRelativePath        uint32 = 0x00000008
	FlagHasWorkingDir          uint32 = 0x00000010
	FlagHasArguments           uint32 = 0x00000020
	FlagHasIconLocation        uint32 = 0x00000040
	FlagIsUnicode              uint32 = 0x00000080
	FlagForceNoLinkInfo        uint32 = 0x00000100
	FlagHasExpString           uint32 = 0x00000200
	FlagRunInSeparateProcess   uint32 = 0x00000400
	FlagHasDarwinID            uint32 = 0x00001000
	FlagRunAsUser              uint32 = 0x00002000
	FlagHasExpIcon             uint32 = 0x00004000
	FlagNoPidlAlias            uint32 = 0x00008000
	FlagRunWithShimLayer       uint32 = 0x00020000
	FlagForceNoLinkTrack       uint32 = 0x00040000
	FlagHasMetadataPropStore   uint32 = 0x00080000
)

// DataBlock signatures, authoritative per the format.
const (
	SigEnvironmentVariables    uint32 = 0xA0000001
	SigConsoleProperties       uint32 = 0xA0000002
	SigDistributedLinkTracker  uint32 = 0xA0000003
	SigConsoleCodepage         uint32 = 0xA0000004
	SigSpecialFolderLocation   uint32 = 0xA0000005
	SigDarwinProperties        uint32 = 0xA0000006
	SigIconLocation            uint32 = 0xA0000007
	SigShimLayerProperties     uint32 = 0xA0000008
	SigMetadataPropertyStore   uint32 = 0xA0000009
	SigKnownFolderLocation     uint32 = 0xA000000B
	SigShellItemIdentifierList uint32 = 0xA000000C
)

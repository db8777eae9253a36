package types

// DataBlockSignature identifies the decoded shape of a DataBlock's payload.
type DataBlockSignature uint32

const (
	SigEnvironmentVariables    DataBlockSignature = 0xA0000001
	SigConsoleProperties       DataBlockSignature = 0xA0000002
	SigDistributedLinkTracker  DataBlockSignature = 0xA0000003
	SigConsoleCodepage         DataBlockSignature = 0xA0000004
	SigSpecialFolderLocation   DataBlockSignature = 0xA0000005
	SigDarwinProperties        DataBlockSignature = 0xA0000006
	SigIconLocation            DataBlockSignature = 0xA0000007
	SigShimLayerProperties     DataBlockSignature = 0xA0000008
	SigMetadataPropertyStore   DataBlockSignature = 0xA0000009
	SigKnownFolderLocation     DataBlockSignature = 0xA000000B
	SigShellItemIdentifierList DataBlockSignature = 0xA000000C
)

// String returns the block's well-known name, or "unknown" for a signature
// not in the registered set.
func (s DataBlockSignature) String() string {
	switch s {
	case SigEnvironmentVariables:
		return "environment_variables"
	case SigConsoleProperties:
		return "console_properties"
	case SigDistributedLinkTracker:
		return "distributed_link_tracker"
	case SigConsoleCodepage:
		return "console_codepage"
	case SigSpecialFolderLocation:
		return "special_folder_location"
	case SigDarwinProperties:
		return "darwin_properties"
	case SigIconLocation:
		return "icon_location"
	case SigShimLayerProperties:
		return "shim_layer_properties"
	case SigMetadataPropertyStore:
		return "metadata_property_store"
	case SigKnownFolderLocation:
		return "known_folder_location"
	case SigShellItemIdentifierList:
		return "shell_item_identifier_list"
	default:
		return "unknown"
	}
}

// StringPair is the decoded result of a strings-style data block: an ANSI
// half and a UTF-16LE half, at most one of which is canonical.
type StringPair struct {
	// Value is the canonical decoded text: the UTF-16 half when present,
	// else the ANSI half, else empty.
	Value string
	// IsUnicode reports which half won.
	IsUnicode bool
	// Present reports whether either half decoded to a usable string.
	Present bool
}

// DistributedLinkTracker is the decoded payload of signature 0xA0000003.
type DistributedLinkTracker struct {
	MachineIdentifier          string
	DroidVolumeIdentifier      GUID
	DroidFileIdentifier        GUID
	BirthDroidVolumeIdentifier GUID
	BirthDroidFileIdentifier   GUID
}

// SpecialFolderLocation is the decoded payload of signature 0xA0000005.
type SpecialFolderLocation struct {
	FolderIdentifier        uint32
	FirstChildSegmentOffset uint32
}

// KnownFolderLocation is the decoded payload of signature 0xA000000B.
type KnownFolderLocation struct {
	FolderIdentifier        GUID
	FirstChildSegmentOffset uint32
}

// ConsoleProperties is the decoded payload of signature 0xA0000002. Only the
// fields liblnk itself treats as stable are decoded; the whole payload,
// decoded fields included, is kept in Raw.
type ConsoleProperties struct {
	FillAttributes      uint16
	PopupFillAttributes uint16
	ScreenBufferSizeX   int16
	ScreenBufferSizeY   int16
	WindowSizeX         int16
	WindowSizeY         int16
	FontSize            uint32
	FontFamily          uint32
	FontWeight          uint32
	FaceName            string
	CursorSize          uint32
	Raw                 []byte
}

// ConsoleCodepage is the decoded payload of signature 0xA0000004.
type ConsoleCodepage struct {
	Codepage uint32
}

// MetadataPropertyStore wraps the opaque payload of signature 0xA0000009;
// the property-store sub-format itself is not decoded.
type MetadataPropertyStore struct {
	Raw []byte
}

// DataBlockValue is a tagged union over the decoded shape of a DataBlock's
// payload. Exactly one field is meaningful, selected by Kind.
type DataBlockValue struct {
	Kind DataBlockSignature

	EnvironmentVariables StringPair
	DarwinProperties     StringPair
	IconLocation         StringPair
	LinkTracker          DistributedLinkTracker
	SpecialFolder        SpecialFolderLocation
	KnownFolder          KnownFolderLocation
	Console              ConsoleProperties
	ConsoleCp            ConsoleCodepage
	PropertyStore        MetadataPropertyStore

	// Opaque holds the raw payload for signatures without a typed decode,
	// and for known signatures whose decode failed recoverably.
	Opaque []byte
}

// DataBlock is one {size, signature, payload} record from the data-block
// stream, in file order.
type DataBlock struct {
	Index     int
	Size      uint32
	Signature uint32
	Payload   []byte
	Value     DataBlockValue
}

package format

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// Header is the decoded 76-byte FileHeader prefix of every shortcut file.
type Header struct {
	ClassIdentifier     types.GUID
	DataFlags           uint32
	FileAttributeFlags  uint32
	CreationTime        uint64
	AccessTime          uint64
	ModificationTime    uint64
	FileSize            uint32
	IconIndex           int32
	ShowWindow          uint32
	HotKey              uint16
}

// ParseHeader validates and decodes the fixed 76-byte FileHeader prefix. b
// must be at least HeaderSize bytes; only the first HeaderSize bytes are
// consulted.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("file header: %w", ErrTruncated)
	}
	headerSize := buf.U32LE(b[headerSizeOffset:])
	if headerSize != HeaderSize {
		return Header{}, fmt.Errorf("file header: header_size=%d: %w", headerSize, ErrBadHeaderSize)
	}
	classID := ParseGUID(b[classIdentifierOffset:])
	if classID != types.LNKClassIdentifier {
		return Header{}, fmt.Errorf("file header: class_identifier=%s: %w", classID, ErrBadClassIdentifier)
	}
	return Header{
		ClassIdentifier:    classID,
		DataFlags:          buf.U32LE(b[dataFlagsOffset:]),
		FileAttributeFlags: buf.U32LE(b[fileAttributesOffset:]),
		CreationTime:       buf.U64LE(b[creationTimeOffset:]),
		AccessTime:         buf.U64LE(b[accessTimeOffset:]),
		ModificationTime:   buf.U64LE(b[modificationTimeOffset:]),
		FileSize:           buf.U32LE(b[fileSizeOffset:]),
		IconIndex:          buf.I32LE(b[iconIndexOffset:]),
		ShowWindow:         buf.U32LE(b[showWindowOffset:]),
		HotKey:             buf.U16LE(b[hotKeyOffset:]),
	}, nil
}

// HasFlag reports whether every bit in mask is set in the header's data
// flags.
func (h Header) HasFlag(mask uint32) bool {
	return h.DataFlags&mask == mask
}

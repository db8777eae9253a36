package format

import "errors"

var (
	// ErrSignatureMismatch indicates a structure had an unexpected magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrFreeCell indicates a cell marked free was encountered where allocation was required.
	ErrFreeCell = errors.New("format: cell not in use")
	// ErrNotFound indicates a requested subkey or value was missing.
	ErrNotFound = errors.New("format: not found")
	// ErrUnsupported indicates the structure or feature is not yet supported.
	ErrUnsupported = errors.New("format: unsupported feature")

	// ErrBoundsCheck indicates a buffer access exceeded bounds, i.e. the
	// offset or required size would exceed the buffer length.
	ErrBoundsCheck = errors.New("format: buffer bounds exceeded")

	// ErrSanityLimit indicates a parsed value exceeded sanity limits.
	// This prevents integer overflow attacks and excessive allocations
	// from malformed shortcut files.
	ErrSanityLimit = errors.New("format: value exceeds sanity limit")

	// ErrIntegerOverflow indicates an integer operation would overflow.
	// This is returned when count * elementSize or similar calculations
	// would exceed the maximum int value.
	ErrIntegerOverflow = errors.New("format: integer overflow")

	// ErrBadHeaderSize indicates a fixed-size header field did not match
	// the value the format mandates (e.g. FileHeader.header_size != 76,
	// or a LocationInformation header_size outside {28, 32, 36}).
	ErrBadHeaderSize = errors.New("format: bad header size")

	// ErrBadClassIdentifier indicates the FileHeader's class GUID did not
	// match the LNK class identifier.
	ErrBadClassIdentifier = errors.New("format: bad class identifier")

	// ErrUnsupportedVersion indicates a sub-record's version field held a
	// value this parser does not support (e.g. DistributedLinkTracker
	// data_version != 0).
	ErrUnsupportedVersion = errors.New("format: unsupported version")

	// ErrOffsetOutOfRange indicates an internal offset field fell outside
	// the bounds its containing record requires.
	ErrOffsetOutOfRange = errors.New("format: offset out of range")

	// ErrSizeOverflow indicates a length field, once scaled or added to a
	// base offset, would overflow or exceed the available buffer.
	ErrSizeOverflow = errors.New("format: size overflow")

	// ErrUnterminatedString indicates a NUL-terminated ANSI or UTF-16
	// string lacked its terminator within the bounds allotted to it.
	ErrUnterminatedString = errors.New("format: unterminated string")
)

package format

import (
	"encoding/binary"
	"errors"
	"testing"
)

func validHeaderBytes(dataFlags uint32) []byte {
	b := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(b[headerSizeOffset:], HeaderSize)
	copy(b[classIdentifierOffset:], []byte{0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46})
	binary.LittleEndian.PutUint32(b[dataFlagsOffset:], dataFlags)
	return b
}

func TestParseHeader_Minimal(t *testing.T) {
	b := validHeaderBytes(0)
	h, err := ParseHeader(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.DataFlags != 0 {
		t.Fatalf("got data_flags %d", h.DataFlags)
	}
	if h.ClassIdentifier.IsZero() {
		t.Fatalf("class identifier should not be zero")
	}
}

func TestParseHeader_BadHeaderSize(t *testing.T) {
	b := validHeaderBytes(0)
	binary.LittleEndian.PutUint32(b[headerSizeOffset:], 75)
	_, err := ParseHeader(b)
	if !errors.Is(err, ErrBadHeaderSize) {
		t.Fatalf("got %v, want ErrBadHeaderSize", err)
	}
}

func TestParseHeader_BadClassIdentifier(t *testing.T) {
	b := validHeaderBytes(0)
	b[classIdentifierOffset] = 0xFF
	_, err := ParseHeader(b)
	if !errors.Is(err, ErrBadClassIdentifier) {
		t.Fatalf("got %v, want ErrBadClassIdentifier", err)
	}
}

func TestParseHeader_Truncated(t *testing.T) {
	_, err := ParseHeader(make([]byte, 10))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("got %v, want ErrTruncated", err)
	}
}

func TestHeader_HasFlag(t *testing.T) {
	h := Header{DataFlags: FlagHasDescription | FlagIsUnicode}
	if !h.HasFlag(FlagHasDescription) {
		t.Fatalf("expected HasDescription flag set")
	}
	if h.HasFlag(FlagHasLocationInformation) {
		t.Fatalf("did not expect location information flag")
	}
}

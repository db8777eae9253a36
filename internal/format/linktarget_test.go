package format

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestParseLinkTargetIdentifier(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	b := make([]byte, 2+len(payload))
	binary.LittleEndian.PutUint16(b, uint16(len(payload)))
	copy(b[2:], payload)

	ltid, consumed, err := ParseLinkTargetIdentifier(b, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if consumed != len(b) {
		t.Fatalf("consumed %d, want %d", consumed, len(b))
	}
	if ltid.Size != len(b) {
		t.Fatalf("size %d, want %d", ltid.Size, len(b))
	}
	if len(ltid.Raw) != len(b) {
		t.Fatalf("raw len %d, want %d", len(ltid.Raw), len(b))
	}
}

func TestParseLinkTargetIdentifier_Truncated(t *testing.T) {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, 0x0100)
	_, _, err := ParseLinkTargetIdentifier(b, 0)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("got %v, want ErrTruncated", err)
	}
}

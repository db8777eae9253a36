package reader

import (
	"encoding/binary"
	"errors"
	"testing"
	"unicode/utf16"

	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/pkg/types"
)

func baseHeader(dataFlags uint32) []byte {
	b := make([]byte, format.HeaderSize)
	binary.LittleEndian.PutUint32(b[0:], format.HeaderSize)
	copy(b[4:], []byte{0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46})
	binary.LittleEndian.PutUint32(b[0x14:], dataFlags)
	return b
}

func TestParseBytes_MinimalHeaderNoSections(t *testing.T) {
	b := baseHeader(0)
	b = append(b, 0, 0, 0, 0) // sentinel

	res, err := ParseBytes(b, types.DefaultParseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Header.DataFlags != 0 {
		t.Fatalf("got data_flags %d", res.Header.DataFlags)
	}
	if res.LinkTarget != nil {
		t.Fatalf("expected no link target")
	}
	if res.Location.Present {
		t.Fatalf("expected no location")
	}
	for i, s := range res.Strings {
		if s != nil {
			t.Fatalf("slot %d: expected no string", i)
		}
	}
	if len(res.DataBlocks) != 0 {
		t.Fatalf("expected no data blocks")
	}
}

func TestParseBytes_StringsOnly(t *testing.T) {
	b := baseHeader(format.FlagHasDescription | format.FlagIsUnicode)
	text := `%windir%\system32\mspaint.exe`
	units := utf16.Encode([]rune(text))
	strSection := make([]byte, 2+2*len(units))
	binary.LittleEndian.PutUint16(strSection, uint16(len(units)))
	for i, u := range units {
		binary.LittleEndian.PutUint16(strSection[2+2*i:], u)
	}
	b = append(b, strSection...)
	b = append(b, 0, 0, 0, 0)

	res, err := ParseBytes(b, types.DefaultParseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Strings[SlotDescription] == nil || res.Strings[SlotDescription].Text != text {
		t.Fatalf("got description %+v", res.Strings[SlotDescription])
	}
	if res.Header.CreationTime != 0 {
		t.Fatalf("expected zero creation time")
	}
}

func TestParseBytes_TruncatedLinkTargetIsFatal(t *testing.T) {
	b := baseHeader(format.FlagHasLinkTargetIDList)
	sizeField := make([]byte, 2)
	binary.LittleEndian.PutUint16(sizeField, 0x0100)
	b = append(b, sizeField...)
	b = append(b, make([]byte, 14)...) // only 16 bytes remain total, not 256

	_, err := ParseBytes(b, types.DefaultParseOptions())
	var typedErr *types.Error
	if !errors.As(err, &typedErr) {
		t.Fatalf("expected typed error, got %v", err)
	}
	if typedErr.Section != "link_target_identifier" {
		t.Fatalf("got section %q", typedErr.Section)
	}
	if typedErr.Kind != types.ErrKindTruncated {
		t.Fatalf("got kind %v", typedErr.Kind)
	}
}

func TestParseBytes_NoSentinelIsFatal(t *testing.T) {
	b := baseHeader(0)
	_, err := ParseBytes(b, types.DefaultParseOptions())
	if err == nil {
		t.Fatalf("expected error for missing sentinel")
	}
}

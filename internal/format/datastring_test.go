package format

import (
	"encoding/binary"
	"testing"
	"unicode/utf16"

	"github.com/joshuapare/lnkkit/internal/codepage"
	"github.com/joshuapare/lnkkit/pkg/types"
)

func TestParseDataString_Unicode(t *testing.T) {
	text := `%windir%\system32\mspaint.exe`
	units := utf16.Encode([]rune(text))
	b := make([]byte, 2+2*len(units))
	binary.LittleEndian.PutUint16(b, uint16(len(units)))
	for i, u := range units {
		binary.LittleEndian.PutUint16(b[2+2*i:], u)
	}

	ds, consumed, err := ParseDataString(b, 0, true, codepage.Default, types.CodepageASCII)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Text != text {
		t.Fatalf("got %q, want %q", ds.Text, text)
	}
	if consumed != len(b) {
		t.Fatalf("consumed %d, want %d", consumed, len(b))
	}
}

func TestParseDataString_ANSI(t *testing.T) {
	text := "notepad.exe"
	b := make([]byte, 2+len(text))
	binary.LittleEndian.PutUint16(b, uint16(len(text)))
	copy(b[2:], text)

	ds, _, err := ParseDataString(b, 0, false, codepage.Default, types.CodepageASCII)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Text != text {
		t.Fatalf("got %q, want %q", ds.Text, text)
	}
	if ds.IsUnicode {
		t.Fatalf("expected IsUnicode false")
	}
}

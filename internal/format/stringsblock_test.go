package format

import (
	"testing"
	"unicode/utf16"

	"github.com/joshuapare/lnkkit/internal/codepage"
)

func TestDecodeStringsBlock_UnicodeWinsOverMissingAnsi(t *testing.T) {
	payload := make([]byte, StringsBlockANSISize+StringsBlockUnicodeSize)
	text := "%USERPROFILE%"
	units := utf16.Encode([]rune(text))
	for i, u := range units {
		payload[StringsBlockANSISize+2*i] = byte(u)
		payload[StringsBlockANSISize+2*i+1] = byte(u >> 8)
	}

	pair, err := decodeStringsBlock(payload, codepage.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pair.Present || !pair.IsUnicode {
		t.Fatalf("expected unicode half present")
	}
	if pair.Value != text {
		t.Fatalf("got %q", pair.Value)
	}
}

func TestDecodeStringsBlock_BothAbsent(t *testing.T) {
	payload := make([]byte, StringsBlockANSISize+StringsBlockUnicodeSize)
	pair, err := decodeStringsBlock(payload, codepage.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.Present {
		t.Fatalf("expected absent")
	}
}

func TestDecodeStringsBlock_AnsiOnly(t *testing.T) {
	payload := make([]byte, StringsBlockANSISize+StringsBlockUnicodeSize)
	copy(payload, "notepad.exe")

	pair, err := decodeStringsBlock(payload, codepage.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pair.Present || pair.IsUnicode {
		t.Fatalf("expected ansi half present")
	}
	if pair.Value != "notepad.exe" {
		t.Fatalf("got %q", pair.Value)
	}
}

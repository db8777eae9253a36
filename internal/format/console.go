package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// Field offsets within the console-properties payload (after signature).
// Only the fields liblnk itself treats as stable are decoded; the rest of
// the fixed-size record is retained verbatim in Raw.
const (
	consoleFillAttributesOff      = 0
	consolePopupFillAttributesOff = 2
	consoleScreenBufferXOff       = 4
	consoleScreenBufferYOff       = 6
	consoleWindowSizeXOff         = 8
	consoleWindowSizeYOff         = 10
	consoleFontSizeOff            = 24
	consoleFontFamilyOff          = 28
	consoleFontWeightOff          = 32
	consoleFaceNameOff            = 36
	consoleFaceNameSize           = 64
	consoleCursorSizeOff          = consoleFaceNameOff + consoleFaceNameSize
	consoleMinPayloadSize         = consoleCursorSizeOff + 4
)

// decodeConsoleProperties decodes the payload (after signature) of
// signature 0xA0000002.
func decodeConsoleProperties(payload []byte) (types.ConsoleProperties, error) {
	if len(payload) < consoleMinPayloadSize {
		return types.ConsoleProperties{}, fmt.Errorf("console properties: %w", ErrTruncated)
	}
	faceNameRaw := payload[consoleFaceNameOff : consoleFaceNameOff+consoleFaceNameSize]
	faceName := decodeFaceName(faceNameRaw)

	return types.ConsoleProperties{
		FillAttributes:      buf.U16LE(payload[consoleFillAttributesOff:]),
		PopupFillAttributes: buf.U16LE(payload[consolePopupFillAttributesOff:]),
		ScreenBufferSizeX:   int16(buf.U16LE(payload[consoleScreenBufferXOff:])),
		ScreenBufferSizeY:   int16(buf.U16LE(payload[consoleScreenBufferYOff:])),
		WindowSizeX:         int16(buf.U16LE(payload[consoleWindowSizeXOff:])),
		WindowSizeY:         int16(buf.U16LE(payload[consoleWindowSizeYOff:])),
		FontSize:            buf.U32LE(payload[consoleFontSizeOff:]),
		FontFamily:          buf.U32LE(payload[consoleFontFamilyOff:]),
		FontWeight:          buf.U32LE(payload[consoleFontWeightOff:]),
		FaceName:            faceName,
		CursorSize:          buf.U32LE(payload[consoleCursorSizeOff:]),
		Raw:                 append([]byte(nil), payload...),
	}, nil
}

// decodeConsoleCodepage decodes the payload (after signature) of signature
// 0xA0000004: a single u32 codepage identifier.
func decodeConsoleCodepage(payload []byte) (types.ConsoleCodepage, error) {
	if len(payload) < 4 {
		return types.ConsoleCodepage{}, fmt.Errorf("console codepage: %w", ErrTruncated)
	}
	return types.ConsoleCodepage{Codepage: buf.U32LE(payload[0:])}, nil
}

func decodeFaceName(raw []byte) string {
	idx := -1
	for i := 0; i+1 < len(raw); i += 2 {
		if raw[i] == 0 && raw[i+1] == 0 {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = len(raw) - (len(raw) % 2)
	}
	units := raw[:idx]
	var buf2 bytes.Buffer
	for i := 0; i+1 < len(units); i += 2 {
		r := rune(uint16(units[i]) | uint16(units[i+1])<<8)
		if r == 0 {
			continue
		}
		buf2.WriteRune(r)
	}
	return buf2.String()
}

package format

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/internal/codepage"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// DataString is one of the five optional length-prefixed strings in the
// fixed middle section of a shortcut file.
type DataString struct {
	IsUnicode bool
	Text      string
}

// ParseDataString reads a DataString section starting at off within b,
// returning the decoded string and the number of bytes consumed
// (2 + byte_length).
func ParseDataString(b []byte, off int, isUnicode bool, tc codepage.Transcoder, cp types.Codepage) (DataString, int, error) {
	if !buf.Has(b, off, 2) {
		return DataString{}, 0, fmt.Errorf("data string: %w", ErrTruncated)
	}
	chars := int(buf.U16LE(b[off:]))
	width := 1
	if isUnicode {
		width = 2
	}
	byteLen, ok := buf.AddOverflowSafe(0, chars*width)
	if !ok {
		return DataString{}, 0, fmt.Errorf("data string: number_of_characters=%d: %w", chars, ErrSizeOverflow)
	}
	sl, ok := buf.Slice(b, off+2, byteLen)
	if !ok {
		return DataString{}, 0, fmt.Errorf("data string: byte_length=%d: %w", byteLen, ErrTruncated)
	}

	var text string
	var err error
	if isUnicode {
		text, err = tc.DecodeUTF16LE(sl)
	} else {
		text, err = tc.DecodeANSI(sl, cp)
	}
	if err != nil {
		return DataString{}, 0, fmt.Errorf("data string: %w", err)
	}
	return DataString{IsUnicode: isUnicode, Text: text}, 2 + byteLen, nil
}

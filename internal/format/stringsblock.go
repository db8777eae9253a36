package format

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/codepage"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// decodeStringsBlock decodes the shared payload shape of signatures
// 0xA0000001 (environment variables), 0xA0000006 (Darwin properties), and
// 0xA0000007 (icon location): a 260-byte ANSI half followed by a 520-byte
// UTF-16LE half, either of which may be all zeros to mean "absent".
func decodeStringsBlock(payload []byte, tc codepage.Transcoder) (types.StringPair, error) {
	if len(payload) < StringsBlockANSISize+StringsBlockUnicodeSize {
		return types.StringPair{}, fmt.Errorf("strings block: %w", ErrTruncated)
	}
	ansiHalf := payload[:StringsBlockANSISize]
	uniHalf := payload[StringsBlockANSISize : StringsBlockANSISize+StringsBlockUnicodeSize]

	ansiLen := -1
	for i, c := range ansiHalf {
		if c == 0 {
			ansiLen = i
			break
		}
	}

	uniLen := -1
	for i := 0; i+1 < len(uniHalf); i += 2 {
		if uniHalf[i] == 0 && uniHalf[i+1] == 0 {
			uniLen = i
			break
		}
	}

	if uniLen > 0 {
		text, err := tc.DecodeUTF16LE(uniHalf[:uniLen])
		if err == nil {
			return types.StringPair{Value: text, IsUnicode: true, Present: true}, nil
		}
	}
	if ansiLen > 0 {
		// The ANSI half is always decoded as ASCII; the caller's
		// ParseOptions.AsciiCodepage is not applied to strings blocks.
		text, err := tc.DecodeANSI(ansiHalf[:ansiLen], types.CodepageASCII)
		if err == nil {
			return types.StringPair{Value: text, IsUnicode: false, Present: true}, nil
		}
	}
	return types.StringPair{}, nil
}

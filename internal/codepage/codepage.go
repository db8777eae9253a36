// Package codepage implements the spec's external Codepage collaborator: it
// transcodes ANSI byte strings in one of the enumerated Windows codepages,
// and UTF-16LE byte strings, to UTF-8.
//
// Nothing outside this package hard-codes a codepage table; internal/format
// consumes the Transcoder interface so the decoding pipeline stays agnostic
// of any particular encoding implementation.
package codepage

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/lnkkit/pkg/types"
)

// utf16LE decodes UTF-16LE code units with no BOM handling: a shortcut
// file's string fields are declared UTF-16LE by the format itself, not
// sniffed, so a leading U+FEFF is data, not a byte-order mark to strip.
var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Transcoder is the contract internal/format relies on for every ANSI byte
// field in a shortcut file.
type Transcoder interface {
	// DecodeANSI transcodes b, interpreted in cp, to a UTF-8 string.
	DecodeANSI(b []byte, cp types.Codepage) (string, error)
	// DecodeUTF16LE transcodes b (UTF-16LE code units) to a UTF-8 string.
	DecodeUTF16LE(b []byte) (string, error)
}

// ErrUnsupportedCodepage is returned by DecodeANSI for a Codepage value
// outside the enumerated supported set.
var ErrUnsupportedCodepage = fmt.Errorf("codepage: unsupported codepage")

// Default is the package-provided Transcoder, backed by golang.org/x/text.
var Default Transcoder = textTranscoder{}

type textTranscoder struct{}

func (textTranscoder) DecodeANSI(b []byte, cp types.Codepage) (string, error) {
	enc, err := encodingFor(cp)
	if err != nil {
		return "", err
	}
	if cp == types.CodepageASCII || isASCII(b) {
		return string(asciiSanitize(b)), nil
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("codepage: decode ansi: %w", err)
	}
	return string(out), nil
}

func (textTranscoder) DecodeUTF16LE(b []byte) (string, error) {
	if len(b)%2 != 0 {
		b = b[:len(b)-1]
	}
	out, err := utf16LE.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("codepage: decode utf16le: %w", err)
	}
	return string(out), nil
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

func asciiSanitize(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c >= 0x80 {
			out = append(out, "�"...)
			continue
		}
		out = append(out, c)
	}
	return out
}

func encodingFor(cp types.Codepage) (encoding.Encoding, error) {
	switch cp {
	case types.CodepageASCII:
		return encoding.Nop, nil
	case types.CodepageWindows874:
		return charmap.Windows874, nil
	case types.CodepageWindows932:
		return japanese.ShiftJIS, nil
	case types.CodepageWindows936:
		return simplifiedchinese.GBK, nil
	case types.CodepageWindows949:
		return korean.EUCKR, nil
	case types.CodepageWindows950:
		return traditionalchinese.Big5, nil
	case types.CodepageWindows1250:
		return charmap.Windows1250, nil
	case types.CodepageWindows1251:
		return charmap.Windows1251, nil
	case types.CodepageWindows1252:
		return charmap.Windows1252, nil
	case types.CodepageWindows1253:
		return charmap.Windows1253, nil
	case types.CodepageWindows1254:
		return charmap.Windows1254, nil
	case types.CodepageWindows1255:
		return charmap.Windows1255, nil
	case types.CodepageWindows1256:
		return charmap.Windows1256, nil
	case types.CodepageWindows1257:
		return charmap.Windows1257, nil
	case types.CodepageWindows1258:
		return charmap.Windows1258, nil
	default:
		return nil, ErrUnsupportedCodepage
	}
}

// Supported reports whether cp is one of the enumerated codepages. The
// source's own validation of this (liblnk_file_set_ascii_codepage) compares
// against a disjunction with != that always evaluates true; we do the
// opposite and actually reject unknown values.
func Supported(cp types.Codepage) bool {
	_, err := encodingFor(cp)
	return err == nil
}

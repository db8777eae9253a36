package format

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
)

// LinkTargetIdentifier is the length-prefixed opaque ItemIDList. Raw
// includes the 2-byte size prefix; Size equals len(Raw).
type LinkTargetIdentifier struct {
	Raw  []byte
	Size int
}

// ParseLinkTargetIdentifier reads a LinkTargetIdentifier section starting
// at off within b, returning the decoded section and the number of bytes
// consumed.
func ParseLinkTargetIdentifier(b []byte, off int) (LinkTargetIdentifier, int, error) {
	if !buf.Has(b, off, 2) {
		return LinkTargetIdentifier{}, 0, fmt.Errorf("link target identifier: %w", ErrTruncated)
	}
	size := int(buf.U16LE(b[off:]))
	total := 2 + size
	sl, ok := buf.Slice(b, off, total)
	if !ok {
		return LinkTargetIdentifier{}, 0, fmt.Errorf("link target identifier: size=%d: %w", size, ErrTruncated)
	}
	raw := make([]byte, len(sl))
	copy(raw, sl)
	return LinkTargetIdentifier{Raw: raw, Size: total}, total, nil
}

package format

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// decodeSpecialFolder decodes the payload (after signature) of signature
// 0xA0000005.
func decodeSpecialFolder(payload []byte) (types.SpecialFolderLocation, error) {
	if len(payload) < 8 {
		return types.SpecialFolderLocation{}, fmt.Errorf("special folder location: %w", ErrTruncated)
	}
	return types.SpecialFolderLocation{
		FolderIdentifier:        buf.U32LE(payload[0:]),
		FirstChildSegmentOffset: buf.U32LE(payload[4:]),
	}, nil
}

package format

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// decodeKnownFolder decodes the payload (after signature) of signature
// 0xA000000B.
func decodeKnownFolder(payload []byte) (types.KnownFolderLocation, error) {
	if len(payload) < GUIDSize+4 {
		return types.KnownFolderLocation{}, fmt.Errorf("known folder location: %w", ErrTruncated)
	}
	return types.KnownFolderLocation{
		FolderIdentifier:        ParseGUID(payload[0:]),
		FirstChildSegmentOffset: buf.U32LE(payload[GUIDSize:]),
	}, nil
}

package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/internal/codepage"
	"github.com/joshuapare/lnkkit/pkg/types"
)

const machineIdentifierSize = 16

// decodeLinkTracker decodes the payload (after signature) of signature
// 0xA0000003.
func decodeLinkTracker(payload []byte, tc codepage.Transcoder, cp types.Codepage) (types.DistributedLinkTracker, error) {
	if len(payload) < 8 {
		return types.DistributedLinkTracker{}, fmt.Errorf("distributed link tracker: %w", ErrTruncated)
	}
	dataSize := buf.U32LE(payload[0:])
	dataVersion := buf.U32LE(payload[4:])
	if dataSize < DistributedLinkTrackerMinSize {
		return types.DistributedLinkTracker{}, fmt.Errorf("distributed link tracker: data_size=%d: %w", dataSize, ErrSanityLimit)
	}
	if dataVersion != 0 {
		return types.DistributedLinkTracker{}, fmt.Errorf("distributed link tracker: data_version=%d: %w", dataVersion, ErrUnsupportedVersion)
	}

	const (
		machineOff      = 8
		droidVolOff     = machineOff + machineIdentifierSize
		droidFileOff    = droidVolOff + GUIDSize
		birthVolOff     = droidFileOff + GUIDSize
		birthFileOff    = birthVolOff + GUIDSize
		totalFixedSize  = birthFileOff + GUIDSize
	)
	if len(payload) < totalFixedSize {
		return types.DistributedLinkTracker{}, fmt.Errorf("distributed link tracker: %w", ErrTruncated)
	}

	raw := payload[machineOff : machineOff+machineIdentifierSize]
	nul := bytes.IndexByte(raw, 0)
	if nul < 0 {
		nul = len(raw)
	}
	machineID, err := tc.DecodeANSI(raw[:nul], cp)
	if err != nil {
		return types.DistributedLinkTracker{}, fmt.Errorf("distributed link tracker: machine_identifier: %w", err)
	}

	return types.DistributedLinkTracker{
		MachineIdentifier:          machineID,
		DroidVolumeIdentifier:      ParseGUID(payload[droidVolOff:]),
		DroidFileIdentifier:        ParseGUID(payload[droidFileOff:]),
		BirthDroidVolumeIdentifier: ParseGUID(payload[birthVolOff:]),
		BirthDroidFileIdentifier:   ParseGUID(payload[birthFileOff:]),
	}, nil
}

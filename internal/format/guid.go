package format

import "github.com/joshuapare/lnkkit/pkg/types"

// ParseGUID reads a 16-byte little-endian-encoded GUID from b. Callers must
// ensure len(b) >= GUIDSize.
func ParseGUID(b []byte) types.GUID {
	var g types.GUID
	copy(g[:], b[:GUIDSize])
	return g
}

package format

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/joshuapare/lnkkit/internal/codepage"
	"github.com/joshuapare/lnkkit/pkg/types"
)

func appendBlock(b []byte, signature uint32, payloadAfterSig []byte) []byte {
	blockSize := 4 + 4 + len(payloadAfterSig)
	block := make([]byte, blockSize)
	binary.LittleEndian.PutUint32(block, uint32(blockSize))
	binary.LittleEndian.PutUint32(block[4:], signature)
	copy(block[8:], payloadAfterSig)
	return append(b, block...)
}

func appendSentinel(b []byte) []byte {
	s := make([]byte, 4)
	return append(b, s...)
}

func TestParseDataBlocks_Empty(t *testing.T) {
	b := appendSentinel(nil)
	blocks, consumed, err := ParseDataBlocks(b, 0, types.DefaultMaxAlloc, codepage.Default, types.CodepageASCII, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 0 {
		t.Fatalf("got %d blocks", len(blocks))
	}
	if consumed != 4 {
		t.Fatalf("consumed %d, want 4", consumed)
	}
}

func TestParseDataBlocks_DistributedLinkTracker(t *testing.T) {
	payload := make([]byte, 8+16+16+16+16+16)
	binary.LittleEndian.PutUint32(payload[0:], DistributedLinkTrackerMinSize)
	binary.LittleEndian.PutUint32(payload[4:], 0)
	copy(payload[8:], "desktop-abc\x00\x00\x00\x00\x00")
	for i := 0; i < 4; i++ {
		off := 24 + i*16
		for j := 0; j < 16; j++ {
			payload[off+j] = byte(i*16 + j)
		}
	}

	b := appendBlock(nil, SigDistributedLinkTracker, payload)
	b = appendSentinel(b)

	blocks, _, err := ParseDataBlocks(b, 0, types.DefaultMaxAlloc, codepage.Default, types.CodepageASCII, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks", len(blocks))
	}
	dlt := blocks[0].Value.LinkTracker
	if dlt.MachineIdentifier != "desktop-abc" {
		t.Fatalf("got machine id %q", dlt.MachineIdentifier)
	}
	want := [16]byte{}
	for j := 0; j < 16; j++ {
		want[j] = byte(j)
	}
	if dlt.DroidVolumeIdentifier != types.GUID(want) {
		t.Fatalf("droid volume identifier mismatch")
	}
}

func TestParseDataBlocks_SpecialFolder(t *testing.T) {
	payload := make([]byte, 8)
	binary.LittleEndian.PutUint32(payload[0:], 0x00000005)
	binary.LittleEndian.PutUint32(payload[4:], 0x34)

	b := appendBlock(nil, SigSpecialFolderLocation, payload)
	b = appendSentinel(b)

	blocks, _, err := ParseDataBlocks(b, 0, types.DefaultMaxAlloc, codepage.Default, types.CodepageASCII, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sf := blocks[0].Value.SpecialFolder
	if sf.FolderIdentifier != 0x00000005 || sf.FirstChildSegmentOffset != 0x34 {
		t.Fatalf("got %+v", sf)
	}
}

func TestParseDataBlocks_UnknownSignatureIsOpaque(t *testing.T) {
	b := appendBlock(nil, 0xDEADBEEF, []byte{1, 2, 3, 4})
	b = appendSentinel(b)

	warnings := &types.WarningList{}
	blocks, _, err := ParseDataBlocks(b, 0, types.DefaultMaxAlloc, codepage.Default, types.CodepageASCII, warnings, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blocks[0].Value.Kind != types.DataBlockSignature(0xDEADBEEF) {
		t.Fatalf("got kind %v", blocks[0].Value.Kind)
	}
	if warnings.Len() != 0 {
		t.Fatalf("unknown signatures should not warn")
	}
}

func TestParseDataBlocks_NoSentinelIsFatal(t *testing.T) {
	b := appendBlock(nil, SigSpecialFolderLocation, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	_, _, err := ParseDataBlocks(b, 0, types.DefaultMaxAlloc, codepage.Default, types.CodepageASCII, nil, false)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("got %v, want ErrTruncated", err)
	}
}

func TestParseDataBlocks_NoSentinelIsToleratedInTolerantMode(t *testing.T) {
	b := appendBlock(nil, SigSpecialFolderLocation, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	warnings := &types.WarningList{}
	blocks, _, err := ParseDataBlocks(b, 0, types.DefaultMaxAlloc, codepage.Default, types.CodepageASCII, warnings, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks", len(blocks))
	}
	if warnings.Len() != 1 {
		t.Fatalf("expected one warning, got %d", warnings.Len())
	}
}

func TestParseDataBlocks_UnsupportedLinkTrackerVersionIsFatal(t *testing.T) {
	// data_version != 0 is a fatal condition even though the outer
	// {size,signature} frame read cleanly.
	payload := make([]byte, 8)
	binary.LittleEndian.PutUint32(payload[0:], DistributedLinkTrackerMinSize)
	binary.LittleEndian.PutUint32(payload[4:], 1)

	b := appendBlock(nil, SigDistributedLinkTracker, payload)
	b = appendSentinel(b)

	warnings := &types.WarningList{}
	_, _, err := ParseDataBlocks(b, 0, types.DefaultMaxAlloc, codepage.Default, types.CodepageASCII, warnings, false)
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("got %v, want ErrUnsupportedVersion", err)
	}
	if warnings.Len() != 0 {
		t.Fatalf("expected no warnings on a fatal failure, got %d", warnings.Len())
	}
}

func TestParseDataBlocks_KnownSignatureDecodeFailureIsRecoverable(t *testing.T) {
	// Special folder location payload too short to decode: the outer
	// {size,signature} frame is fine, so this is recoverable, not fatal.
	b := appendBlock(nil, SigSpecialFolderLocation, []byte{1, 2, 3})
	b = appendSentinel(b)

	warnings := &types.WarningList{}
	blocks, _, err := ParseDataBlocks(b, 0, types.DefaultMaxAlloc, codepage.Default, types.CodepageASCII, warnings, false)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if blocks[0].Value.Opaque == nil {
		t.Fatalf("expected opaque retention on recoverable failure")
	}
	if warnings.Len() != 1 {
		t.Fatalf("expected one warning, got %d", warnings.Len())
	}
}

package format

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/joshuapare/lnkkit/internal/codepage"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// buildLocationRecord assembles a LocationInformation record with a volume
// sub-record and a local path, mirroring spec.md scenario 3.
func buildLocationRecord(t *testing.T, driveType, driveSerial uint32, volumeLabel, localPath string) []byte {
	t.Helper()

	const headerSize = 28
	volOff := headerSize
	volSubHeaderSize := 16
	labelOff := volOff + volSubHeaderSize
	localOff := labelOff + len(volumeLabel) + 1
	totalSize := localOff + len(localPath) + 1

	rec := make([]byte, totalSize)
	binary.LittleEndian.PutUint32(rec[0:], uint32(totalSize))
	binary.LittleEndian.PutUint32(rec[4:], headerSize)
	binary.LittleEndian.PutUint32(rec[8:], locFlagHasVolumeInfo)
	binary.LittleEndian.PutUint32(rec[12:], uint32(volOff))
	binary.LittleEndian.PutUint32(rec[16:], uint32(localOff))
	binary.LittleEndian.PutUint32(rec[20:], 0)
	binary.LittleEndian.PutUint32(rec[24:], 0)

	binary.LittleEndian.PutUint32(rec[volOff:], uint32(volSubHeaderSize))
	binary.LittleEndian.PutUint32(rec[volOff+4:], driveType)
	binary.LittleEndian.PutUint32(rec[volOff+8:], driveSerial)
	binary.LittleEndian.PutUint32(rec[volOff+12:], uint32(volSubHeaderSize))
	copy(rec[labelOff:], volumeLabel)
	rec[labelOff+len(volumeLabel)] = 0

	copy(rec[localOff:], localPath)
	rec[localOff+len(localPath)] = 0

	return rec
}

func TestParseLocationInformation_FileTarget(t *testing.T) {
	rec := buildLocationRecord(t, 3, 0x12345678, "C", `C:\Windows\notepad.exe`)

	loc, consumed, err := ParseLocationInformation(rec, 0, codepage.Default, types.CodepageASCII)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if consumed != len(rec) {
		t.Fatalf("consumed %d, want %d", consumed, len(rec))
	}
	if !loc.Present {
		t.Fatalf("expected Present")
	}
	if loc.Volume == nil {
		t.Fatalf("expected volume info")
	}
	if loc.Volume.DriveSerialNumber != 0x12345678 {
		t.Fatalf("got serial 0x%X", loc.Volume.DriveSerialNumber)
	}
	if loc.Volume.VolumeLabel.Value() != "C" {
		t.Fatalf("got volume label %q", loc.Volume.VolumeLabel.Value())
	}
	if loc.LocalPath.Value() != `C:\Windows\notepad.exe` {
		t.Fatalf("got local path %q", loc.LocalPath.Value())
	}
}

func TestParseLocationInformation_EmptyRecord(t *testing.T) {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, 4)
	loc, consumed, err := ParseLocationInformation(b, 0, codepage.Default, types.CodepageASCII)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Present {
		t.Fatalf("expected empty location to report Present=false")
	}
	if consumed != 4 {
		t.Fatalf("consumed %d, want 4", consumed)
	}
}

func TestParseLocationInformation_BadHeaderSize(t *testing.T) {
	rec := buildLocationRecord(t, 3, 1, "C", "x")
	binary.LittleEndian.PutUint32(rec[4:], 27)
	_, _, err := ParseLocationInformation(rec, 0, codepage.Default, types.CodepageASCII)
	if !errors.Is(err, ErrBadHeaderSize) {
		t.Fatalf("got %v, want ErrBadHeaderSize", err)
	}
}

func TestParseLocationInformation_OffsetOutOfRange(t *testing.T) {
	rec := buildLocationRecord(t, 3, 1, "C", "x")
	// Point the volume offset at a location past the record's own bounds.
	binary.LittleEndian.PutUint32(rec[12:], uint32(len(rec)+10))
	_, _, err := ParseLocationInformation(rec, 0, codepage.Default, types.CodepageASCII)
	if !errors.Is(err, ErrOffsetOutOfRange) {
		t.Fatalf("got %v, want ErrOffsetOutOfRange", err)
	}
}

func TestParseLocationInformation_UnterminatedLocalPathIsFatal(t *testing.T) {
	rec := buildLocationRecord(t, 3, 1, "C", "x")
	// Overwrite the local path's NUL terminator so the string runs off the
	// end of the record with nothing to stop it.
	rec[len(rec)-1] = 'y'
	_, _, err := ParseLocationInformation(rec, 0, codepage.Default, types.CodepageASCII)
	if !errors.Is(err, ErrUnterminatedString) {
		t.Fatalf("got %v, want ErrUnterminatedString", err)
	}
}

package format

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/internal/codepage"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// StringField is a dual ANSI/UTF-16 mirror of a single path or label. The
// UTF-16 half, when present, is canonical.
type StringField struct {
	AnsiText    string
	UnicodeText string
	HasAnsi     bool
	HasUnicode  bool
}

// Value returns the canonical decoded text, preferring the UTF-16 mirror.
func (s StringField) Value() string {
	if s.HasUnicode {
		return s.UnicodeText
	}
	if s.HasAnsi {
		return s.AnsiText
	}
	return ""
}

// Present reports whether either half of the field decoded.
func (s StringField) Present() bool {
	return s.HasAnsi || s.HasUnicode
}

// VolumeInfo is the decoded volume sub-record of a LocationInformation.
type VolumeInfo struct {
	DriveType         uint32
	DriveSerialNumber uint32
	VolumeLabel       StringField
}

// NetworkShareInfo is the decoded network-share sub-record of a
// LocationInformation.
type NetworkShareInfo struct {
	ShareType           uint32
	ShareName           StringField
	DeviceName          StringField
	NetworkProviderType uint32
}

// LocationInformation is the decoded optional location record. Present is
// false when the section's total_size field was <= 4 (a legal, empty
// record).
type LocationInformation struct {
	Present    bool
	HeaderSize uint32
	Flags      uint32
	Volume     *VolumeInfo
	Network    *NetworkShareInfo
	LocalPath  StringField
	CommonPath StringField
}

const (
	locFlagHasVolumeInfo       uint32 = 0x01
	locFlagHasNetworkShareInfo uint32 = 0x02
)

// HasVolumeInfo reports whether the volume-info flag bit is set.
func (l LocationInformation) HasVolumeInfo() bool {
	return l.Flags&locFlagHasVolumeInfo != 0
}

// HasNetworkShareInfo reports whether the network-share-info flag bit is set.
func (l LocationInformation) HasNetworkShareInfo() bool {
	return l.Flags&locFlagHasNetworkShareInfo != 0
}

// ParseLocationInformation reads a LocationInformation section starting at
// off within b, returning the decoded section and the number of bytes
// consumed (equal to the section's own total_size field).
func ParseLocationInformation(b []byte, off int, tc codepage.Transcoder, cp types.Codepage) (LocationInformation, int, error) {
	if !buf.Has(b, off, 4) {
		return LocationInformation{}, 0, fmt.Errorf("location information: %w", ErrTruncated)
	}
	totalSize := int(buf.U32LE(b[off:]))
	if totalSize <= 4 {
		return LocationInformation{}, totalSize, nil
	}

	record, ok := buf.Slice(b, off, totalSize)
	if !ok {
		return LocationInformation{}, 0, fmt.Errorf("location information: total_size=%d: %w", totalSize, ErrTruncated)
	}
	if !buf.Has(record, 4, 4) {
		return LocationInformation{}, 0, fmt.Errorf("location information: %w", ErrTruncated)
	}

	headerSize := int(buf.U32LE(record[4:]))
	if headerSize != LocationHeaderSizeBase && headerSize != LocationHeaderSizeUnicode1 && headerSize != LocationHeaderSizeUnicode2 {
		return LocationInformation{}, 0, fmt.Errorf("location information: header_size=%d: %w", headerSize, ErrBadHeaderSize)
	}
	if !buf.Has(record, 8, headerSize-8) {
		return LocationInformation{}, 0, fmt.Errorf("location information: %w", ErrTruncated)
	}

	flags := buf.U32LE(record[8:])
	volOff := int(buf.U32LE(record[12:]))
	localOff := int(buf.U32LE(record[16:]))
	netOff := int(buf.U32LE(record[20:]))
	commonOff := int(buf.U32LE(record[24:]))

	var uLocalOff, uCommonOff int
	if headerSize > LocationHeaderSizeBase {
		uLocalOff = int(buf.U32LE(record[28:]))
	}
	if headerSize > LocationHeaderSizeUnicode1 {
		uCommonOff = int(buf.U32LE(record[32:]))
	}

	result := LocationInformation{Present: true, HeaderSize: uint32(headerSize), Flags: flags}

	validate := func(o int) error {
		if o < headerSize || o >= totalSize {
			return fmt.Errorf("location information: offset=%d header_size=%d total_size=%d: %w", o, headerSize, totalSize, ErrOffsetOutOfRange)
		}
		return nil
	}

	if result.HasVolumeInfo() && volOff != 0 {
		if err := validate(volOff); err != nil {
			return LocationInformation{}, 0, err
		}
		vol, err := parseVolumeInfo(record, volOff, totalSize, tc, cp)
		if err != nil {
			return LocationInformation{}, 0, err
		}
		result.Volume = &vol
	}

	if localOff != 0 {
		if err := validate(localOff); err != nil {
			return LocationInformation{}, 0, err
		}
		text, err := readNulAnsi(record, localOff, totalSize, tc, cp)
		if err != nil {
			return LocationInformation{}, 0, fmt.Errorf("location information: local_path: %w", err)
		}
		result.LocalPath.AnsiText = text
		result.LocalPath.HasAnsi = true
	}

	if result.HasNetworkShareInfo() && netOff != 0 {
		if err := validate(netOff); err != nil {
			return LocationInformation{}, 0, err
		}
		net, err := parseNetworkShareInfo(record, netOff, totalSize, tc, cp)
		if err != nil {
			return LocationInformation{}, 0, err
		}
		result.Network = &net
	}

	if commonOff != 0 {
		if err := validate(commonOff); err != nil {
			return LocationInformation{}, 0, err
		}
		text, err := readNulAnsi(record, commonOff, totalSize, tc, cp)
		if err != nil {
			return LocationInformation{}, 0, fmt.Errorf("location information: common_path: %w", err)
		}
		result.CommonPath.AnsiText = text
		result.CommonPath.HasAnsi = true
	}

	if uLocalOff != 0 {
		if err := validate(uLocalOff); err != nil {
			return LocationInformation{}, 0, err
		}
		text, err := readNulUTF16(record, uLocalOff, totalSize, tc)
		if err != nil {
			return LocationInformation{}, 0, fmt.Errorf("location information: local_path (unicode): %w", err)
		}
		result.LocalPath.UnicodeText = text
		result.LocalPath.HasUnicode = true
	}

	if uCommonOff != 0 {
		if err := validate(uCommonOff); err != nil {
			return LocationInformation{}, 0, err
		}
		text, err := readNulUTF16(record, uCommonOff, totalSize, tc)
		if err != nil {
			return LocationInformation{}, 0, fmt.Errorf("location information: common_path (unicode): %w", err)
		}
		result.CommonPath.UnicodeText = text
		result.CommonPath.HasUnicode = true
	}

	return result, totalSize, nil
}

func parseVolumeInfo(record []byte, base, limit int, tc codepage.Transcoder, cp types.Codepage) (VolumeInfo, error) {
	if !buf.Has(record, base, 16) {
		return VolumeInfo{}, fmt.Errorf("volume info: %w", ErrTruncated)
	}
	driveType := buf.U32LE(record[base+4:])
	serial := buf.U32LE(record[base+8:])
	labelOff := int(buf.U32LE(record[base+12:]))

	vol := VolumeInfo{DriveType: driveType, DriveSerialNumber: serial}

	var uLabelOff int
	if labelOff > 16 {
		if !buf.Has(record, base+16, 4) {
			return VolumeInfo{}, fmt.Errorf("volume info: %w", ErrTruncated)
		}
		uLabelOff = int(buf.U32LE(record[base+16:]))
	}

	if labelOff != 0 {
		if base+labelOff >= limit || base+labelOff < base {
			return VolumeInfo{}, fmt.Errorf("volume info: volume_label_offset=%d: %w", labelOff, ErrOffsetOutOfRange)
		}
		text, err := readNulAnsi(record, base+labelOff, limit, tc, cp)
		if err != nil {
			return VolumeInfo{}, fmt.Errorf("volume info: volume_label: %w", err)
		}
		vol.VolumeLabel.AnsiText = text
		vol.VolumeLabel.HasAnsi = true
	}
	if uLabelOff != 0 {
		if base+uLabelOff >= limit || base+uLabelOff < base {
			return VolumeInfo{}, fmt.Errorf("volume info: unicode_volume_label_offset=%d: %w", uLabelOff, ErrOffsetOutOfRange)
		}
		text, err := readNulUTF16(record, base+uLabelOff, limit, tc)
		if err != nil {
			return VolumeInfo{}, fmt.Errorf("volume info: volume_label (unicode): %w", err)
		}
		vol.VolumeLabel.UnicodeText = text
		vol.VolumeLabel.HasUnicode = true
	}
	return vol, nil
}

func parseNetworkShareInfo(record []byte, base, limit int, tc codepage.Transcoder, cp types.Codepage) (NetworkShareInfo, error) {
	if !buf.Has(record, base, 20) {
		return NetworkShareInfo{}, fmt.Errorf("network share info: %w", ErrTruncated)
	}
	shareType := buf.U32LE(record[base+4:])
	shareNameOff := int(buf.U32LE(record[base+8:]))
	deviceNameOff := int(buf.U32LE(record[base+12:]))
	providerType := buf.U32LE(record[base+16:])

	net := NetworkShareInfo{ShareType: shareType, NetworkProviderType: providerType}

	var uShareNameOff, uDeviceNameOff int
	if shareNameOff > 20 {
		if !buf.Has(record, base+20, 8) {
			return NetworkShareInfo{}, fmt.Errorf("network share info: %w", ErrTruncated)
		}
		uShareNameOff = int(buf.U32LE(record[base+20:]))
		uDeviceNameOff = int(buf.U32LE(record[base+24:]))
	}

	if shareNameOff != 0 {
		if base+shareNameOff >= limit || base+shareNameOff < base {
			return NetworkShareInfo{}, fmt.Errorf("network share info: network_share_name_offset=%d: %w", shareNameOff, ErrOffsetOutOfRange)
		}
		text, err := readNulAnsi(record, base+shareNameOff, limit, tc, cp)
		if err != nil {
			return NetworkShareInfo{}, fmt.Errorf("network share info: share_name: %w", err)
		}
		net.ShareName.AnsiText = text
		net.ShareName.HasAnsi = true
	}
	if deviceNameOff != 0 {
		if base+deviceNameOff >= limit || base+deviceNameOff < base {
			return NetworkShareInfo{}, fmt.Errorf("network share info: device_name_offset=%d: %w", deviceNameOff, ErrOffsetOutOfRange)
		}
		text, err := readNulAnsi(record, base+deviceNameOff, limit, tc, cp)
		if err != nil {
			return NetworkShareInfo{}, fmt.Errorf("network share info: device_name: %w", err)
		}
		net.DeviceName.AnsiText = text
		net.DeviceName.HasAnsi = true
	}
	if uShareNameOff != 0 {
		if base+uShareNameOff >= limit || base+uShareNameOff < base {
			return NetworkShareInfo{}, fmt.Errorf("network share info: unicode share name offset=%d: %w", uShareNameOff, ErrOffsetOutOfRange)
		}
		text, err := readNulUTF16(record, base+uShareNameOff, limit, tc)
		if err != nil {
			return NetworkShareInfo{}, fmt.Errorf("network share info: share_name (unicode): %w", err)
		}
		net.ShareName.UnicodeText = text
		net.ShareName.HasUnicode = true
	}
	if uDeviceNameOff != 0 {
		if base+uDeviceNameOff >= limit || base+uDeviceNameOff < base {
			return NetworkShareInfo{}, fmt.Errorf("network share info: unicode device name offset=%d: %w", uDeviceNameOff, ErrOffsetOutOfRange)
		}
		text, err := readNulUTF16(record, base+uDeviceNameOff, limit, tc)
		if err != nil {
			return NetworkShareInfo{}, fmt.Errorf("network share info: device_name (unicode): %w", err)
		}
		net.DeviceName.UnicodeText = text
		net.DeviceName.HasUnicode = true
	}
	return net, nil
}

// readNulAnsi decodes a NUL-terminated ANSI string starting at off, bounded
// by limit. A missing terminator within that range is a fatal condition per
// spec: it means the field's declared length or offset escapes its
// containing region, so this returns ErrUnterminatedString rather than
// treating the field as absent.
func readNulAnsi(b []byte, off, limit int, tc codepage.Transcoder, cp types.Codepage) (string, error) {
	if off < 0 || off > len(b) {
		return "", fmt.Errorf("%w", ErrUnterminatedString)
	}
	end := limit
	if end > len(b) {
		end = len(b)
	}
	idx := -1
	for i := off; i < end; i++ {
		if b[i] == 0 {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", fmt.Errorf("%w", ErrUnterminatedString)
	}
	text, err := tc.DecodeANSI(b[off:idx], cp)
	if err != nil {
		return "", err
	}
	return text, nil
}

// readNulUTF16 decodes a NUL16-terminated UTF-16LE string starting at off,
// bounded by limit. A missing terminator within that range is fatal; see
// readNulAnsi.
func readNulUTF16(b []byte, off, limit int, tc codepage.Transcoder) (string, error) {
	if off < 0 || off > len(b) {
		return "", fmt.Errorf("%w", ErrUnterminatedString)
	}
	end := limit
	if end > len(b) {
		end = len(b)
	}
	idx := -1
	for i := off; i+1 < end; i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", fmt.Errorf("%w", ErrUnterminatedString)
	}
	text, err := tc.DecodeUTF16LE(b[off:idx])
	if err != nil {
		return "", err
	}
	return text, nil
}

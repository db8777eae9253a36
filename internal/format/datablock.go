package format

import (
	"errors"
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/internal/codepage"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// ParseDataBlocks reads the tagged {size, signature, payload} stream
// starting at off within b until a size-zero sentinel is read, dispatching
// each block by signature. It returns the decoded blocks in file order and
// the total number of bytes consumed, including the sentinel.
//
// A stream that runs out of bytes before a sentinel is read is normally
// fatal (ErrTruncated). When tolerant is set, that specific condition is
// downgraded to a warning and the blocks decoded so far are returned; it
// does not relax any other check in this function.
func ParseDataBlocks(b []byte, off int, maxAlloc int, tc codepage.Transcoder, cp types.Codepage, warnings *types.WarningList, tolerant bool) ([]types.DataBlock, int, error) {
	var blocks []types.DataBlock
	cursor := off
	index := 0

	for {
		if !buf.Has(b, cursor, 4) {
			if tolerant {
				recordWarning(warnings, cursor, "data block stream", "missing terminal sentinel, treating end of file as end of stream")
				break
			}
			return nil, 0, fmt.Errorf("data block stream: %w", ErrTruncated)
		}
		blockSize := int(buf.U32LE(b[cursor:]))
		if blockSize == 0 {
			cursor += 4
			break
		}
		if blockSize < 4 || blockSize > maxAlloc+4 {
			return nil, 0, fmt.Errorf("data block stream: block_size=%d: %w", blockSize, ErrSanityLimit)
		}

		payloadAll, ok := buf.Slice(b, cursor+4, blockSize-4)
		if !ok {
			return nil, 0, fmt.Errorf("data block stream: block_size=%d: %w", blockSize, ErrTruncated)
		}

		block := types.DataBlock{Index: index, Size: uint32(blockSize)}
		if len(payloadAll) >= 4 {
			block.Signature = buf.U32LE(payloadAll)
			block.Payload = append([]byte(nil), payloadAll[4:]...)
		} else {
			block.Payload = append([]byte(nil), payloadAll...)
		}
		value, err := decodeDataBlockValue(block.Signature, block.Payload, tc, cp, index, cursor, warnings)
		if err != nil {
			return nil, 0, err
		}
		block.Value = value

		blocks = append(blocks, block)
		cursor += blockSize
		index++
	}

	return blocks, cursor - off, nil
}

// decodeDataBlockValue dispatches payload (the bytes following the
// signature) to the decoder matching signature. Decode failures for known
// signatures are recoverable and retain the raw payload as Opaque with a
// warning, except a DistributedLinkTracker with an unsupported data_version,
// which the format treats as fatal and propagates to the caller.
func decodeDataBlockValue(signature uint32, payload []byte, tc codepage.Transcoder, cp types.Codepage, index, offset int, warnings *types.WarningList) (types.DataBlockValue, error) {
	switch signature {
	case SigEnvironmentVariables, SigDarwinProperties, SigIconLocation:
		pair, err := decodeStringsBlock(payload, tc)
		if err != nil {
			recordWarning(warnings, offset, "data block", fmt.Sprintf("block %d: strings block: %v", index, err))
			return types.DataBlockValue{Kind: types.DataBlockSignature(signature), Opaque: payload}, nil
		}
		return stringsBlockValue(signature, pair), nil

	case SigDistributedLinkTracker:
		dlt, err := decodeLinkTracker(payload, tc, cp)
		if err != nil {
			if errors.Is(err, ErrUnsupportedVersion) {
				return types.DataBlockValue{}, fmt.Errorf("data block %d: distributed link tracker: %w", index, err)
			}
			recordWarning(warnings, offset, "data block", fmt.Sprintf("block %d: distributed link tracker: %v", index, err))
			return types.DataBlockValue{Kind: types.DataBlockSignature(signature), Opaque: payload}, nil
		}
		return types.DataBlockValue{Kind: types.DataBlockSignature(signature), LinkTracker: dlt}, nil

	case SigSpecialFolderLocation:
		sf, err := decodeSpecialFolder(payload)
		if err != nil {
			recordWarning(warnings, offset, "data block", fmt.Sprintf("block %d: special folder location: %v", index, err))
			return types.DataBlockValue{Kind: types.DataBlockSignature(signature), Opaque: payload}, nil
		}
		return types.DataBlockValue{Kind: types.DataBlockSignature(signature), SpecialFolder: sf}, nil

	case SigKnownFolderLocation:
		kf, err := decodeKnownFolder(payload)
		if err != nil {
			recordWarning(warnings, offset, "data block", fmt.Sprintf("block %d: known folder location: %v", index, err))
			return types.DataBlockValue{Kind: types.DataBlockSignature(signature), Opaque: payload}, nil
		}
		return types.DataBlockValue{Kind: types.DataBlockSignature(signature), KnownFolder: kf}, nil

	case SigConsoleProperties:
		cons, err := decodeConsoleProperties(payload)
		if err != nil {
			recordWarning(warnings, offset, "data block", fmt.Sprintf("block %d: console properties: %v", index, err))
			return types.DataBlockValue{Kind: types.DataBlockSignature(signature), Opaque: payload}, nil
		}
		return types.DataBlockValue{Kind: types.DataBlockSignature(signature), Console: cons}, nil

	case SigConsoleCodepage:
		ccp, err := decodeConsoleCodepage(payload)
		if err != nil {
			recordWarning(warnings, offset, "data block", fmt.Sprintf("block %d: console codepage: %v", index, err))
			return types.DataBlockValue{Kind: types.DataBlockSignature(signature), Opaque: payload}, nil
		}
		return types.DataBlockValue{Kind: types.DataBlockSignature(signature), ConsoleCp: ccp}, nil

	case SigMetadataPropertyStore:
		return types.DataBlockValue{Kind: types.DataBlockSignature(signature), PropertyStore: types.MetadataPropertyStore{Raw: payload}}, nil

	default:
		return types.DataBlockValue{Kind: types.DataBlockSignature(signature), Opaque: payload}, nil
	}
}

func stringsBlockValue(signature uint32, pair types.StringPair) types.DataBlockValue {
	v := types.DataBlockValue{Kind: types.DataBlockSignature(signature)}
	switch signature {
	case SigEnvironmentVariables:
		v.EnvironmentVariables = pair
	case SigDarwinProperties:
		v.DarwinProperties = pair
	case SigIconLocation:
		v.IconLocation = pair
	}
	return v
}

func recordWarning(warnings *types.WarningList, offset int, section, msg string) {
	if warnings == nil {
		return
	}
	warnings.Add(section, offset, msg)
}

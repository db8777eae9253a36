package reader

import (
	"errors"

	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// wrapFormatErr maps a sentinel error from internal/format into the typed
// *types.Error the public API surfaces, attaching the breadcrumb of where
// in the outer driver the failure occurred.
func wrapFormatErr(section, field string, offset int, err error) error {
	kind := types.ErrKindFormat
	switch {
	case errors.Is(err, format.ErrTruncated):
		kind = types.ErrKindTruncated
	case errors.Is(err, format.ErrOffsetOutOfRange), errors.Is(err, format.ErrSizeOverflow), errors.Is(err, format.ErrBoundsCheck):
		kind = types.ErrKindBounds
	case errors.Is(err, format.ErrUnsupportedVersion), errors.Is(err, format.ErrUnsupported):
		kind = types.ErrKindUnsupported
	case errors.Is(err, format.ErrBadHeaderSize), errors.Is(err, format.ErrBadClassIdentifier),
		errors.Is(err, format.ErrSignatureMismatch), errors.Is(err, format.ErrSanityLimit),
		errors.Is(err, format.ErrUnterminatedString):
		kind = types.ErrKindFormat
	}
	return types.NewError(kind, section, field, offset, err.Error(), err)
}

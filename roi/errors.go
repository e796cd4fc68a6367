package roi

import "github.com/pkg/errors"

var (
	// ErrMismatchedArrays is returned when parallel x/y coordinate
	// arrays differ in length.
	ErrMismatchedArrays = errors.New("lengths of x and y arrays are not the same")

	// ErrUnsupportedOperation is returned when an operation is
	// requested on a ROI kind that deliberately does not support it.
	ErrUnsupportedOperation = errors.New("operation not supported for this ROI kind")

	// ErrSnapshotRequired is returned when raw persisted bytes are
	// deserialized directly into a live ROI instead of going through
	// the snapshot path.
	ErrSnapshotRequired = errors.New("snapshot required for reading")

	// ErrUnsupportedVersion is returned for snapshot or file version
	// tags this package does not understand.
	ErrUnsupportedVersion = errors.New("unsupported roi version")
)

func newMismatchedArraysError(nx, ny int) error {
	return errors.Wrapf(ErrMismatchedArrays, "%d and %d", nx, ny)
}

func newUnsupportedOperationError(op string, r ROI) error {
	return errors.Wrapf(ErrUnsupportedOperation, "%s on a %s ROI", op, r.Kind())
}

package roi

import (
	"encoding/json"
	"io"
	"math"
	"os"
	"time"

	"github.com/edaniels/golog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// roiFileVersion is the current collection file schema version.
const roiFileVersion = 1

// Coordinates outside this range lose integer precision when truncated
// to the snapshot's float32 representation.
const maxPreciseFloat32 = float64(1 << 24)

type roiFile struct {
	Version int               `json:"version"`
	ID      string            `json:"id"`
	Saved   time.Time         `json:"saved"`
	ROIs    []*PointsSnapshot `json:"rois"`
}

// WriteROIs writes the given ROIs as a single JSON collection document.
// If any coordinate could lose precision in the snapshot's
// single-precision representation, it's reported but is not an error.
func WriteROIs(rois []*PointsROI, out io.Writer, logger golog.Logger) error {
	f := roiFile{
		Version: roiFileVersion,
		ID:      uuid.NewString(),
		Saved:   time.Now().UTC(),
		ROIs:    make([]*PointsSnapshot, 0, len(rois)),
	}
	for i, r := range rois {
		for _, pt := range r.points {
			if math.Abs(pt.X) > maxPreciseFloat32 || math.Abs(pt.Y) > maxPreciseFloat32 {
				logger.Warnf("potential floating point lossiness for roi %d point %v, range [-%f,%f]",
					i, pt, maxPreciseFloat32, maxPreciseFloat32)
			}
		}
		f.ROIs = append(f.ROIs, r.Snapshot())
	}
	return json.NewEncoder(out).Encode(&f)
}

// WriteROIsToFile writes the given ROIs to the named file.
func WriteROIsToFile(rois []*PointsROI, fn string, logger golog.Logger) (err error) {
	//nolint:gosec
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()
	return WriteROIs(rois, f, logger)
}

// ReadROIs reads a collection document and restores each entry through
// the snapshot path. Restore failures are aggregated per entry, so one
// corrupt entry does not silently drop the rest; the successfully
// restored ROIs are returned alongside the combined error.
func ReadROIs(in io.Reader) ([]*PointsROI, error) {
	var f roiFile
	if err := json.NewDecoder(in).Decode(&f); err != nil {
		return nil, errors.Wrap(err, "error decoding roi file")
	}
	if f.Version != roiFileVersion {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "roi file version %d", f.Version)
	}

	rois := make([]*PointsROI, 0, len(f.ROIs))
	var restoreErr error
	for i, s := range f.ROIs {
		r, err := s.Restore()
		if err != nil {
			restoreErr = multierr.Append(restoreErr, errors.Wrapf(err, "roi %d", i))
			continue
		}
		rois = append(rois, r)
	}
	return rois, restoreErr
}

// ReadROIsFromFile reads a collection document from the named file,
// logging how many entries could not be restored.
func ReadROIsFromFile(fn string, logger golog.Logger) (rois []*PointsROI, err error) {
	//nolint:gosec
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()
	rois, err = ReadROIs(f)
	if err != nil && len(rois) > 0 {
		logger.Warnf("restored %d rois from %q with errors: %v", len(rois), fn, err)
	}
	return rois, err
}

package roi

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// SnapshotVersion is the current persisted snapshot schema version.
const SnapshotVersion = 1

// PointsSnapshot is the minimal primitive record persisted for a
// PointsROI: reduced-precision parallel coordinate arrays plus the
// image-plane identity tuple. Derived caches are never persisted.
//
// The Name field is historical; it is always empty on write and ignored
// on read.
type PointsSnapshot struct {
	Version int       `json:"version"`
	Name    string    `json:"name,omitempty"`
	X       []float32 `json:"x"`
	Y       []float32 `json:"y"`
	C       int       `json:"c"`
	Z       int       `json:"z"`
	T       int       `json:"t"`
}

// Snapshot projects the ROI into its persisted form. Coordinates are
// truncated to single precision, so round trips through a snapshot are
// precision-bounded rather than bit-exact.
func (p *PointsROI) Snapshot() *PointsSnapshot {
	n := len(p.points)
	s := &PointsSnapshot{
		Version: SnapshotVersion,
		X:       make([]float32, n),
		Y:       make([]float32, n),
		C:       p.c,
		Z:       p.z,
		T:       p.t,
	}
	for i, pt := range p.points {
		s.X[i] = float32(pt.X)
		s.Y[i] = float32(pt.Y)
	}
	return s
}

// Restore reconstructs a live PointsROI from the snapshot by replaying
// the parallel-array constructor, so ingestion invariants apply to
// reloaded data exactly as they do to fresh construction.
func (s *PointsSnapshot) Restore() (*PointsROI, error) {
	if s.Version != SnapshotVersion {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "snapshot version %d", s.Version)
	}
	if len(s.X) != len(s.Y) {
		return nil, newMismatchedArraysError(len(s.X), len(s.Y))
	}
	xs := make([]float64, len(s.X))
	ys := make([]float64, len(s.Y))
	for i := range s.X {
		xs[i] = float64(s.X[i])
		ys[i] = float64(s.Y[i])
	}
	return NewPointsROIFromArrays(xs, ys, s.C, s.Z, s.T)
}

// MarshalJSON serializes the ROI through its snapshot.
func (p *PointsROI) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Snapshot())
}

// UnmarshalJSON always fails: live instances must be reconstructed via
// PointsSnapshot.Restore so the persisted format cannot drift from the
// validating constructor logic.
func (p *PointsROI) UnmarshalJSON([]byte) error {
	return errors.Wrap(ErrSnapshotRequired, "cannot unmarshal directly into a PointsROI")
}

package roi

import (
	"fmt"
	"math"
	"sync"

	"github.com/lgp0509/qupath/geom"
	"github.com/lgp0509/qupath/roi/measure"
)

// PointsROI is a ROI representing a collection of discrete 2D points.
// It is immutable after construction, so concurrent readers need no
// synchronization. It carries points and a derived convex hull but has
// no intrinsic area, so it deliberately refuses conversion to a filled
// shape or a general geometry.
type PointsROI struct {
	basePathROI
	points []geom.Point2

	xMin, yMin, xMax, yMax float64

	hullOnce sync.Once
	hull     *PolygonROI
}

// NewPointsROI returns a ROI holding a single point on the given image plane.
func NewPointsROI(x, y float64, c, z, t int) *PointsROI {
	p := &PointsROI{basePathROI: basePathROI{c, z, t}}
	p.addPoint(x, y)
	p.recomputeBounds()
	return p
}

// NewPointsROIFromList returns a ROI holding a copy of the given points
// on the given image plane. Points with a NaN coordinate are dropped.
func NewPointsROIFromList(points []geom.Point2, c, z, t int) *PointsROI {
	p := &PointsROI{
		basePathROI: basePathROI{c, z, t},
		points:      make([]geom.Point2, 0, len(points)),
	}
	for _, pt := range points {
		p.addPoint(pt.X, pt.Y)
	}
	p.recomputeBounds()
	return p
}

// NewPointsROIFromArrays returns a ROI built from parallel x/y
// coordinate arrays. The arrays must have equal length; nothing is
// constructed otherwise.
func NewPointsROIFromArrays(xs, ys []float64, c, z, t int) (*PointsROI, error) {
	if len(xs) != len(ys) {
		return nil, newMismatchedArraysError(len(xs), len(ys))
	}
	p := &PointsROI{
		basePathROI: basePathROI{c, z, t},
		points:      make([]geom.Point2, 0, len(xs)),
	}
	for i := range xs {
		p.addPoint(xs[i], ys[i])
	}
	p.recomputeBounds()
	return p, nil
}

// addPoint appends a point, silently dropping NaN coordinates. Bounds
// are not updated; constructors recompute them after bulk ingestion.
func (p *PointsROI) addPoint(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	p.points = append(p.points, geom.Point2{X: x, Y: y})
}

func (p *PointsROI) recomputeBounds() {
	if len(p.points) == 0 {
		p.resetBounds()
		return
	}
	p.xMin = math.Inf(1)
	p.yMin = math.Inf(1)
	p.xMax = math.Inf(-1)
	p.yMax = math.Inf(-1)
	for _, pt := range p.points {
		if pt.X < p.xMin {
			p.xMin = pt.X
		}
		if pt.X > p.xMax {
			p.xMax = pt.X
		}
		if pt.Y < p.yMin {
			p.yMin = pt.Y
		}
		if pt.Y > p.yMax {
			p.yMax = pt.Y
		}
	}
}

func (p *PointsROI) resetBounds() {
	p.xMin = math.NaN()
	p.yMin = math.NaN()
	p.xMax = math.NaN()
	p.yMax = math.NaN()
}

// Kind returns KindPoint.
func (p *PointsROI) Kind() Kind { return KindPoint }

func (p *PointsROI) String() string {
	return fmt.Sprintf("Points (%d points)", len(p.points))
}

// IsEmpty reports whether the ROI contains no points. A single-point
// ROI has zero-size bounds but is not empty.
func (p *PointsROI) IsEmpty() bool { return len(p.points) == 0 }

// Bounds returns the tight axis-aligned bounding box of the points.
// All fields are NaN for an empty ROI.
func (p *PointsROI) Bounds() Bounds {
	return Bounds{X: p.xMin, Y: p.yMin, Width: p.xMax - p.xMin, Height: p.yMax - p.yMin}
}

// Centroid returns the arithmetic mean of the point coordinates, a NaN
// point when empty.
func (p *PointsROI) Centroid() geom.Point2 {
	return measure.Centroid(p.points)
}

// Points returns a copy of the stored points in insertion order.
func (p *PointsROI) Points() []geom.Point2 {
	out := make([]geom.Point2, len(p.points))
	copy(out, p.points)
	return out
}

// NumPoints returns the number of stored points.
func (p *PointsROI) NumPoints() int { return len(p.points) }

// PolygonPoints returns the stored points as outline vertices.
func (p *PointsROI) PolygonPoints() []geom.Point2 { return p.Points() }

// Nearest returns the closest stored point to (x, y) within maxDist, or
// false if the ROI is empty or no point is in range. Comparison uses
// squared distances; the strict < against the running minimum keeps the
// earliest-inserted point on exact-distance ties.
func (p *PointsROI) Nearest(x, y, maxDist float64) (geom.Point2, bool) {
	maxDistSq := maxDist * maxDist
	var closest geom.Point2
	found := false
	closestDistSq := math.Inf(1)
	for _, pt := range p.points {
		distSq := pt.DistanceSquaredTo(x, y)
		if distSq <= maxDistSq && distSq < closestDistSq {
			closest = pt
			closestDistSq = distSq
			found = true
		}
	}
	return closest, found
}

// ContainsExactPoint reports whether a stored point has exactly the
// coordinates (x, y).
func (p *PointsROI) ContainsExactPoint(x, y float64) bool {
	for _, pt := range p.points {
		if pt.X == x && pt.Y == y {
			return true
		}
	}
	return false
}

// ConvexHull returns the convex hull of the points as an area-bearing
// polygon ROI on the same image plane, or nil if the ROI is empty. The
// hull is computed at most once and cached; points are immutable after
// construction so the cache never needs invalidation.
func (p *PointsROI) ConvexHull() PathArea {
	if len(p.points) == 0 {
		return nil
	}
	p.hullOnce.Do(func() {
		p.hull = NewPolygonROI(measure.ConvexHull(p.points), p.c, p.z, p.t)
	})
	return p.hull
}

// ConvexArea returns the area enclosed by the convex hull, NaN when the
// ROI is empty.
func (p *PointsROI) ConvexArea() float64 {
	hull := p.ConvexHull()
	if hull == nil {
		return math.NaN()
	}
	return hull.Area()
}

// ScaledConvexArea returns the hull area scaled by the physical pixel
// size, NaN when the ROI is empty.
func (p *PointsROI) ScaledConvexArea(pixelWidth, pixelHeight float64) float64 {
	hull := p.ConvexHull()
	if hull == nil {
		return math.NaN()
	}
	return hull.ScaledArea(pixelWidth, pixelHeight)
}

// Shape fails with ErrUnsupportedOperation: a point collection has no
// fill semantics of its own, and silently substituting the convex hull
// would mislead callers expecting the ROI's own shape.
func (p *PointsROI) Shape() (Shape, error) {
	return nil, newUnsupportedOperationError("Shape", p)
}

// Geometry fails with ErrUnsupportedOperation for the same reason as Shape.
func (p *PointsROI) Geometry() (geom.Polygon, error) {
	return nil, newUnsupportedOperationError("Geometry", p)
}

// Duplicate returns an independent copy of the ROI on the same image
// plane. The copy starts with empty derived caches.
func (p *PointsROI) Duplicate() ROI {
	return NewPointsROIFromList(p.points, p.c, p.z, p.t)
}

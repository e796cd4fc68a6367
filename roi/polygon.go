package roi

import (
	"fmt"
	"math"

	"github.com/lgp0509/qupath/geom"
	"github.com/lgp0509/qupath/roi/measure"
)

// PolygonROI is a closed-ring area ROI. Within this package it mostly
// serves as the shape handed back by PointsROI.ConvexHull, but it is a
// full area-bearing ROI in its own right. Like PointsROI it is
// immutable after construction.
type PolygonROI struct {
	basePathROI
	points []geom.Point2

	xMin, yMin, xMax, yMax float64
}

// NewPolygonROI returns a polygon ROI over a copy of the given vertex
// ring on the given image plane. Vertices with a NaN coordinate are
// dropped.
func NewPolygonROI(points []geom.Point2, c, z, t int) *PolygonROI {
	pg := &PolygonROI{
		basePathROI: basePathROI{c, z, t},
		points:      make([]geom.Point2, 0, len(points)),
	}
	for _, pt := range points {
		pg.addPoint(pt.X, pt.Y)
	}
	pg.recomputeBounds()
	return pg
}

func (pg *PolygonROI) addPoint(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	pg.points = append(pg.points, geom.Point2{X: x, Y: y})
}

func (pg *PolygonROI) recomputeBounds() {
	if len(pg.points) == 0 {
		pg.xMin = math.NaN()
		pg.yMin = math.NaN()
		pg.xMax = math.NaN()
		pg.yMax = math.NaN()
		return
	}
	pg.xMin = math.Inf(1)
	pg.yMin = math.Inf(1)
	pg.xMax = math.Inf(-1)
	pg.yMax = math.Inf(-1)
	for _, pt := range pg.points {
		if pt.X < pg.xMin {
			pg.xMin = pt.X
		}
		if pt.X > pg.xMax {
			pg.xMax = pt.X
		}
		if pt.Y < pg.yMin {
			pg.yMin = pt.Y
		}
		if pt.Y > pg.yMax {
			pg.yMax = pt.Y
		}
	}
}

// Kind returns KindArea.
func (pg *PolygonROI) Kind() Kind { return KindArea }

func (pg *PolygonROI) String() string {
	return fmt.Sprintf("Polygon (%d points)", len(pg.points))
}

// IsEmpty reports whether the polygon has no vertices.
func (pg *PolygonROI) IsEmpty() bool { return len(pg.points) == 0 }

// Bounds returns the tight axis-aligned bounding box of the vertices.
// All fields are NaN for an empty polygon.
func (pg *PolygonROI) Bounds() Bounds {
	return Bounds{X: pg.xMin, Y: pg.yMin, Width: pg.xMax - pg.xMin, Height: pg.yMax - pg.yMin}
}

// Centroid returns the area-weighted centroid of the ring, falling back
// to the vertex mean for degenerate zero-area rings. NaN point when empty.
func (pg *PolygonROI) Centroid() geom.Point2 {
	return measure.PolygonCentroid(pg.points)
}

// Points returns a copy of the vertices in ring order.
func (pg *PolygonROI) Points() []geom.Point2 {
	out := make([]geom.Point2, len(pg.points))
	copy(out, pg.points)
	return out
}

// NumPoints returns the number of vertices.
func (pg *PolygonROI) NumPoints() int { return len(pg.points) }

// PolygonPoints returns the vertices as outline vertices.
func (pg *PolygonROI) PolygonPoints() []geom.Point2 { return pg.Points() }

// Nearest returns the closest vertex to (x, y) within maxDist, with the
// same tie-break as PointsROI.Nearest.
func (pg *PolygonROI) Nearest(x, y, maxDist float64) (geom.Point2, bool) {
	maxDistSq := maxDist * maxDist
	var closest geom.Point2
	found := false
	closestDistSq := math.Inf(1)
	for _, pt := range pg.points {
		distSq := pt.DistanceSquaredTo(x, y)
		if distSq <= maxDistSq && distSq < closestDistSq {
			closest = pt
			closestDistSq = distSq
			found = true
		}
	}
	return closest, found
}

// ContainsExactPoint reports whether a vertex has exactly the
// coordinates (x, y).
func (pg *PolygonROI) ContainsExactPoint(x, y float64) bool {
	for _, pt := range pg.points {
		if pt.X == x && pt.Y == y {
			return true
		}
	}
	return false
}

// Area returns the absolute shoelace area of the closed ring, 0 for
// degenerate rings with fewer than 3 vertices.
func (pg *PolygonROI) Area() float64 {
	return measure.PolygonArea(pg.points)
}

// ScaledArea returns the area scaled by the physical pixel size.
func (pg *PolygonROI) ScaledArea(pixelWidth, pixelHeight float64) float64 {
	return pg.Area() * pixelWidth * pixelHeight
}

// Perimeter returns the total edge length of the closed ring.
func (pg *PolygonROI) Perimeter() float64 {
	return measure.PolygonPerimeter(pg.points)
}

// ScaledPerimeter returns the perimeter scaled by the physical pixel
// size. Exact for square pixels; non-square pixels are approximated
// with the mean pixel size.
func (pg *PolygonROI) ScaledPerimeter(pixelWidth, pixelHeight float64) float64 {
	if pixelWidth == pixelHeight {
		return pg.Perimeter() * pixelWidth
	}
	return pg.Perimeter() * (pixelWidth + pixelHeight) / 2
}

// Shape returns the polygon itself as a filled-region shape using the
// even-odd rule.
func (pg *PolygonROI) Shape() (Shape, error) {
	return pg, nil
}

// ContainsPoint reports whether (x, y) lies inside the closed ring
// under the even-odd rule.
func (pg *PolygonROI) ContainsPoint(x, y float64) bool {
	inside := false
	n := len(pg.points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := pg.points[i], pg.points[j]
		if (pi.Y > y) != (pj.Y > y) &&
			x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}

// Geometry returns the vertex ring as a general polygonal geometry.
func (pg *PolygonROI) Geometry() (geom.Polygon, error) {
	return geom.Polygon(pg.Points()), nil
}

// Duplicate returns an independent copy of the polygon on the same
// image plane.
func (pg *PolygonROI) Duplicate() ROI {
	return NewPolygonROI(pg.points, pg.c, pg.z, pg.t)
}

// Package geom provides the primitive 2D value types used by ROIs:
// points in image coordinates and polygonal vertex rings.
package geom

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Point2 is an immutable 2D coordinate in image space.
type Point2 r2.Point

// NewPoint2 returns the point at (x, y).
func NewPoint2(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

// DistanceSquaredTo returns the squared Euclidean distance to (x, y).
// Used on comparison paths to avoid the square root.
func (p Point2) DistanceSquaredTo(x, y float64) float64 {
	dx := p.X - x
	dy := p.Y - y
	return dx*dx + dy*dy
}

// DistanceTo returns the Euclidean distance to (x, y).
func (p Point2) DistanceTo(x, y float64) float64 {
	return math.Hypot(p.X-x, p.Y-y)
}

// Distance returns the Euclidean distance to another point.
func (p Point2) Distance(other Point2) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Equals reports exact coordinate equality.
func (p Point2) Equals(other Point2) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point2) String() string {
	return fmt.Sprintf("Point: %.2f, %.2f", p.X, p.Y)
}

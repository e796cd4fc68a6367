package measure

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/lgp0509/qupath/geom"
)

// SignedPolygonArea returns the shoelace area of the closed vertex ring,
// positive for counter-clockwise winding and negative for clockwise.
// Rings with fewer than 3 vertices have zero area.
func SignedPolygonArea(points []geom.Point2) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return sum / 2
}

// PolygonArea returns the absolute shoelace area of the closed vertex ring.
func PolygonArea(points []geom.Point2) float64 {
	return math.Abs(SignedPolygonArea(points))
}

// PolygonPerimeter returns the total edge length of the closed vertex
// ring, including the implicit closing edge. Rings with fewer than 2
// vertices have zero perimeter.
func PolygonPerimeter(points []geom.Point2) float64 {
	n := len(points)
	if n < 2 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += points[i].Distance(points[(i+1)%n])
	}
	return sum
}

// Centroid returns the arithmetic mean of the point coordinates, or a
// NaN point for empty input.
func Centroid(points []geom.Point2) geom.Point2 {
	if len(points) == 0 {
		return geom.NewPoint2(math.NaN(), math.NaN())
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return geom.NewPoint2(stat.Mean(xs, nil), stat.Mean(ys, nil))
}

// PolygonCentroid returns the area-weighted centroid of the closed
// vertex ring via shoelace moments. Degenerate rings with zero area
// fall back to the vertex mean.
func PolygonCentroid(points []geom.Point2) geom.Point2 {
	a := SignedPolygonArea(points)
	if a == 0 {
		return Centroid(points)
	}
	n := len(points)
	var cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		f := points[i].X*points[j].Y - points[j].X*points[i].Y
		cx += (points[i].X + points[j].X) * f
		cy += (points[i].Y + points[j].Y) * f
	}
	return geom.NewPoint2(cx/(6*a), cy/(6*a))
}

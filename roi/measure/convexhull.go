// Package measure implements the pure geometric algorithms backing ROI
// measurements: convex hulls, polygon areas, perimeters and centroids.
package measure

import (
	"sort"

	"github.com/lgp0509/qupath/geom"
)

// cross returns the z component of the cross product of OA and OB.
// Positive when the turn O->A->B is counter-clockwise.
func cross(o, a, b geom.Point2) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// ConvexHull returns the convex hull of the given points in
// counter-clockwise order using Andrew's monotone chain algorithm.
// Collinear points on the hull boundary are excluded, so a fully
// collinear input degenerates to its two extreme points and a single
// point hulls to itself. The input slice is not modified; nil or empty
// input returns nil.
func ConvexHull(points []geom.Point2) []geom.Point2 {
	n := len(points)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []geom.Point2{points[0]}
	}

	sorted := make([]geom.Point2, n)
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X == sorted[j].X {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lower []geom.Point2
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []geom.Point2
	for i := n - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// The last point of each chain repeats the first point of the other.
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) == 2 && hull[0].Equals(hull[1]) {
		// Every input point was identical; collapse to a single vertex.
		return hull[:1]
	}
	return hull
}

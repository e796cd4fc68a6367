// Package roi implements the region-of-interest geometric data model
// used to annotate whole-slide images: the capability contracts shared
// by every ROI kind, the point-collection ROI, the polygon ROI that
// carries derived convex hulls, and the versioned snapshot format used
// to persist them.
package roi

import (
	"fmt"

	"github.com/lgp0509/qupath/geom"
)

// Kind broadly categorizes a ROI by what its coordinates describe.
type Kind int

const (
	// KindPoint is a collection of discrete coordinates with no area.
	KindPoint Kind = iota
	// KindLine is an open path with length but no area.
	KindLine
	// KindArea is a closed region with a well-defined interior.
	KindArea
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindArea:
		return "area"
	default:
		return "unknown"
	}
}

// Bounds is the axis-aligned bounding box of a ROI. All fields are NaN
// for an empty ROI.
type Bounds struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// ROI is the contract satisfied by every region of interest regardless
// of its concrete shape representation.
type ROI interface {
	fmt.Stringer

	// Kind returns the broad category of the ROI.
	Kind() Kind

	// C returns the channel index, or -1 if the ROI applies to all channels.
	C() int
	// Z returns the z-slice index.
	Z() int
	// T returns the time-point index.
	T() int

	// Bounds returns the tight axis-aligned bounding box, all NaN when empty.
	Bounds() Bounds

	// Centroid returns the center of the ROI, a NaN point when empty.
	Centroid() geom.Point2

	// IsEmpty reports whether the ROI contains no coordinates. A
	// single-point ROI has zero-size bounds but is not empty.
	IsEmpty() bool

	// PolygonPoints returns the vertices a collaborator would use to
	// outline the ROI. The returned slice does not alias internal state.
	PolygonPoints() []geom.Point2

	// Shape converts the ROI to a filled-region shape. Kinds without
	// intrinsic fill semantics fail with ErrUnsupportedOperation.
	Shape() (Shape, error)

	// Geometry converts the ROI to a general polygonal geometry. Kinds
	// without such a conversion fail with ErrUnsupportedOperation.
	Geometry() (geom.Polygon, error)

	// Duplicate returns an independent deep copy on the same image
	// plane. Derived caches are not carried over.
	Duplicate() ROI
}

// PathPoints is the capability contract for ROIs whose primitive
// content is an ordered point collection.
type PathPoints interface {
	// Points returns the points in insertion order. The returned slice
	// does not alias internal state.
	Points() []geom.Point2

	// NumPoints returns the number of stored points.
	NumPoints() int

	// Nearest returns the closest stored point to (x, y) within
	// maxDist, or false if the ROI is empty or no point is in range.
	// Exact-distance ties keep the earliest-inserted point.
	Nearest(x, y, maxDist float64) (geom.Point2, bool)

	// ContainsExactPoint reports whether a stored point has exactly the
	// coordinates (x, y).
	ContainsExactPoint(x, y float64) bool
}

// PathArea is the capability contract for area-bearing ROIs.
type PathArea interface {
	// Area returns the enclosed area in pixel units.
	Area() float64

	// ScaledArea returns the area scaled by the physical pixel size,
	// i.e. Area() * pixelWidth * pixelHeight.
	ScaledArea(pixelWidth, pixelHeight float64) float64

	// Perimeter returns the boundary length in pixel units.
	Perimeter() float64

	// ScaledPerimeter returns the perimeter scaled by the physical
	// pixel size. Exact for square pixels, approximated by the mean
	// pixel size otherwise.
	ScaledPerimeter(pixelWidth, pixelHeight float64) float64
}

// ROIWithHull is the capability contract for ROIs that expose a derived
// convex-hull shape.
type ROIWithHull interface {
	// ConvexHull returns the area-bearing convex hull of the ROI, or
	// nil if the ROI is empty.
	ConvexHull() PathArea

	// ConvexArea returns the hull's enclosed area, NaN when the hull is
	// absent.
	ConvexArea() float64

	// ScaledConvexArea returns the hull's area scaled by the physical
	// pixel size, NaN when the hull is absent.
	ScaledConvexArea(pixelWidth, pixelHeight float64) float64
}

// Shape is a filled-region abstraction consumed opaquely by rendering
// and analytics collaborators.
type Shape interface {
	// ContainsPoint reports whether (x, y) lies inside the shape.
	ContainsPoint(x, y float64) bool

	// Bounds returns the axis-aligned bounding box of the shape.
	Bounds() Bounds
}

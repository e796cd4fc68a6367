package roi

import (
	"math"
	"testing"

	"go.viam.com/test"

	"github.com/lgp0509/qupath/geom"
)

var (
	_ ROI        = (*PolygonROI)(nil)
	_ PathPoints = (*PolygonROI)(nil)
	_ PathArea   = (*PolygonROI)(nil)
	_ Shape      = (*PolygonROI)(nil)
)

func makeRectPolygon() *PolygonROI {
	return NewPolygonROI([]geom.Point2{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3},
	}, 0, 1, 2)
}

func TestPolygonROIBasic(t *testing.T) {
	pg := makeRectPolygon()

	test.That(t, pg.Kind(), test.ShouldEqual, KindArea)
	test.That(t, pg.IsEmpty(), test.ShouldBeFalse)
	test.That(t, pg.NumPoints(), test.ShouldEqual, 4)
	test.That(t, pg.String(), test.ShouldEqual, "Polygon (4 points)")
	test.That(t, pg.Z(), test.ShouldEqual, 1)
	test.That(t, pg.T(), test.ShouldEqual, 2)

	test.That(t, pg.Bounds(), test.ShouldResemble, Bounds{X: 0, Y: 0, Width: 4, Height: 3})
	test.That(t, pg.Centroid(), test.ShouldResemble, geom.NewPoint2(2, 1.5))
}

func TestPolygonROIMeasurements(t *testing.T) {
	pg := makeRectPolygon()

	test.That(t, pg.Area(), test.ShouldEqual, 12)
	test.That(t, pg.ScaledArea(0.5, 0.25), test.ShouldAlmostEqual, 12*0.5*0.25, 1e-9)
	test.That(t, pg.Perimeter(), test.ShouldEqual, 14)

	// Square pixels scale exactly; non-square pixels use the mean size.
	test.That(t, pg.ScaledPerimeter(0.5, 0.5), test.ShouldAlmostEqual, 7, 1e-9)
	test.That(t, pg.ScaledPerimeter(0.5, 0.25), test.ShouldAlmostEqual, 14*0.375, 1e-9)
}

func TestPolygonROIDegenerate(t *testing.T) {
	// Fewer than 3 vertices encloses nothing.
	line := NewPolygonROI([]geom.Point2{{X: 0, Y: 0}, {X: 5, Y: 0}}, 0, 0, 0)
	test.That(t, line.Area(), test.ShouldEqual, 0)
	test.That(t, line.Perimeter(), test.ShouldEqual, 10)

	empty := NewPolygonROI(nil, 0, 0, 0)
	test.That(t, empty.IsEmpty(), test.ShouldBeTrue)
	test.That(t, empty.Area(), test.ShouldEqual, 0)
	test.That(t, math.IsNaN(empty.Bounds().X), test.ShouldBeTrue)
	c := empty.Centroid()
	test.That(t, math.IsNaN(c.X), test.ShouldBeTrue)
	test.That(t, empty.ContainsPoint(0, 0), test.ShouldBeFalse)
}

func TestPolygonROINaNFiltering(t *testing.T) {
	nan := math.NaN()
	pg := NewPolygonROI([]geom.Point2{{X: 0, Y: 0}, {X: nan, Y: 1}, {X: 2, Y: 0}, {X: 2, Y: 2}}, 0, 0, 0)
	test.That(t, pg.NumPoints(), test.ShouldEqual, 3)
	test.That(t, pg.Area(), test.ShouldEqual, 2)
}

func TestPolygonROIShape(t *testing.T) {
	pg := makeRectPolygon()

	shape, err := pg.Shape()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, shape.ContainsPoint(2, 1.5), test.ShouldBeTrue)
	test.That(t, shape.ContainsPoint(5, 1), test.ShouldBeFalse)
	test.That(t, shape.ContainsPoint(-1, -1), test.ShouldBeFalse)
	test.That(t, shape.Bounds(), test.ShouldResemble, pg.Bounds())
}

func TestPolygonROIGeometry(t *testing.T) {
	pg := makeRectPolygon()

	g, err := pg.Geometry()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, g, test.ShouldHaveLength, 4)
	test.That(t, []geom.Point2(g), test.ShouldResemble, pg.Points())

	// The returned ring is a copy, not a view.
	g[0] = geom.NewPoint2(99, 99)
	test.That(t, pg.Points()[0], test.ShouldResemble, geom.NewPoint2(0, 0))
}

func TestPolygonROINearest(t *testing.T) {
	pg := makeRectPolygon()

	nearest, ok := pg.Nearest(3.8, 0.1, 1)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, nearest, test.ShouldResemble, geom.NewPoint2(4, 0))

	_, ok = pg.Nearest(10, 10, 1)
	test.That(t, ok, test.ShouldBeFalse)

	test.That(t, pg.ContainsExactPoint(4, 3), test.ShouldBeTrue)
	test.That(t, pg.ContainsExactPoint(4, 2), test.ShouldBeFalse)
}

func TestPolygonROIDuplicate(t *testing.T) {
	orig := makeRectPolygon()
	dup, ok := orig.Duplicate().(*PolygonROI)
	test.That(t, ok, test.ShouldBeTrue)

	test.That(t, dup.Points(), test.ShouldResemble, orig.Points())
	test.That(t, dup.C(), test.ShouldEqual, orig.C())
	test.That(t, dup.Area(), test.ShouldEqual, orig.Area())

	dup.points[0] = geom.NewPoint2(-5, -5)
	test.That(t, orig.Points()[0], test.ShouldResemble, geom.NewPoint2(0, 0))
}

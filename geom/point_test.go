package geom

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestPoint2Distances(t *testing.T) {
	p := NewPoint2(1, 2)

	test.That(t, p.DistanceSquaredTo(4, 6), test.ShouldEqual, 25)
	test.That(t, p.DistanceTo(4, 6), test.ShouldEqual, 5)
	test.That(t, p.Distance(NewPoint2(4, 6)), test.ShouldEqual, 5)
	test.That(t, p.DistanceTo(1, 2), test.ShouldEqual, 0)
}

func TestPoint2Equals(t *testing.T) {
	test.That(t, NewPoint2(1, 2).Equals(NewPoint2(1, 2)), test.ShouldBeTrue)
	test.That(t, NewPoint2(1, 2).Equals(NewPoint2(2, 1)), test.ShouldBeFalse)

	// NaN is never equal to itself, matching float semantics.
	nan := math.NaN()
	test.That(t, NewPoint2(nan, 0).Equals(NewPoint2(nan, 0)), test.ShouldBeFalse)
}

func TestPolygonClone(t *testing.T) {
	var empty Polygon
	test.That(t, empty.Clone(), test.ShouldBeNil)

	ring := Polygon{NewPoint2(0, 0), NewPoint2(1, 0), NewPoint2(0, 1)}
	clone := ring.Clone()
	test.That(t, clone, test.ShouldResemble, ring)

	clone[0] = NewPoint2(5, 5)
	test.That(t, ring[0], test.ShouldResemble, NewPoint2(0, 0))
}

package geom

// Polygon is an ordered ring of vertices describing a closed polygonal
// geometry. The closing edge from the last vertex back to the first is
// implicit.
type Polygon []Point2

// Clone returns an independent copy of the vertex ring.
func (pg Polygon) Clone() Polygon {
	if pg == nil {
		return nil
	}
	out := make(Polygon, len(pg))
	copy(out, pg)
	return out
}

package roi

// basePathROI carries the image-plane identity shared by every ROI
// kind: channel, z-slice and time-point indices. The tuple is set at
// construction and never changes.
type basePathROI struct {
	c, z, t int
}

func (b *basePathROI) C() int { return b.c }

func (b *basePathROI) Z() int { return b.z }

func (b *basePathROI) T() int { return b.t }

// SamePlane reports whether the other ROI lies on the same image plane,
// i.e. has an identical (c, z, t) tuple.
func (b *basePathROI) SamePlane(other ROI) bool {
	return b.c == other.C() && b.z == other.Z() && b.t == other.T()
}

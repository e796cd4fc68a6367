package roi

import (
	"github.com/fogleman/gg"
)

// PlotROIs renders the given ROIs into a PNG for debugging. Point ROIs
// are drawn as small filled circles, area ROIs as stroked outlines.
// Rendering style lives here, not on the ROIs themselves.
func PlotROIs(rois []ROI, width, height int, outName string) error {
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for _, r := range rois {
		if r.IsEmpty() {
			continue
		}
		switch r.Kind() {
		case KindPoint:
			dc.SetRGBA(0, 0, 1, 0.5)
			for _, p := range r.PolygonPoints() {
				dc.DrawCircle(p.X, p.Y, 3.0)
				dc.Fill()
			}
		case KindLine, KindArea:
			dc.SetRGBA(1, 0, 0, 0.8)
			pts := r.PolygonPoints()
			for _, p := range pts {
				dc.LineTo(p.X, p.Y)
			}
			if r.Kind() == KindArea {
				dc.ClosePath()
			}
			dc.SetLineWidth(1.5)
			dc.Stroke()
		}
	}
	return dc.SavePNG(outName)
}

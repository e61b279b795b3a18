package render

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/soypat/fingerjoint"
)

// CreatePNG renders a raster preview of the drawing for quick visual
// checking without a cutter. Axes are in millimetres with y pointing up, so
// the preview is mirrored vertically relative to the SVG output.
func CreatePNG(path string, d fingerjoint.Drawing) error {
	if len(d.Vertices) == 0 {
		return errEmptyDrawing
	}
	xys := make(plotter.XYs, len(d.Vertices)+1)
	for i, v := range d.Vertices {
		xys[i].X = v.X
		xys[i].Y = v.Y
	}
	xys[len(d.Vertices)] = xys[0] // close the outline
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	p := plot.New()
	p.X.Label.Text = svgUnit
	p.Y.Label.Text = svgUnit
	p.Add(line)
	return p.Save(vg.Length(d.Size.X)*vg.Millimeter, vg.Length(d.Size.Y)*vg.Millimeter, path)
}

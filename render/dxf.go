package render

import (
	"github.com/soypat/fingerjoint"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/table"
)

// CreateDXF writes the drawing as a DXF file with one LINE entity per
// outline segment on a cut layer. Most laser cutter toolchains accept DXF
// directly.
func CreateDXF(path string, d fingerjoint.Drawing) error {
	if len(d.Vertices) == 0 {
		return errEmptyDrawing
	}
	drawing := dxf.NewDrawing()
	_, err := drawing.AddLayer("cut", color.Red, table.LT_CONTINUOUS, true)
	if err != nil {
		return err
	}
	n := len(d.Vertices)
	for i, v := range d.Vertices {
		next := d.Vertices[(i+1)%n]
		if _, err := drawing.Line(v.X, v.Y, 0, next.X, next.Y, 0); err != nil {
			return err
		}
	}
	return drawing.SaveAs(path)
}

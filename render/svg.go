// Package render writes finger-jointed panel drawings to the vector and
// raster formats laser-cutting workflows consume.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo/float"
	"github.com/soypat/fingerjoint"
)

const (
	svgUnit     = "mm"
	strokeColor = "black"
	strokeWidth = 0.1
)

var errEmptyDrawing = errors.New("drawing has no vertices")

// CreateSVG renders a drawing as an SVG file.
func CreateSVG(path string, d fingerjoint.Drawing) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteSVG(file, d)
}

// WriteSVG writes SVG markup for a drawing: a millimetre-unit viewport sized
// to the drawing, a stylesheet for cut strokes and one line element per
// outline segment. The final segment wraps around to close the outline.
func WriteSVG(w io.Writer, d fingerjoint.Drawing) error {
	if len(d.Vertices) == 0 {
		return errEmptyDrawing
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Startunit(d.Size.X, d.Size.Y, svgUnit)
	canvas.Def()
	canvas.Style("text/css", cutStyle())
	canvas.DefEnd()
	n := len(d.Vertices)
	for i, v := range d.Vertices {
		next := d.Vertices[(i+1)%n]
		canvas.Line(v.X, v.Y, next.X, next.Y)
	}
	canvas.End()
	return ew.err
}

func cutStyle() string {
	return fmt.Sprintf(`line {
	stroke: %s;
	stroke-width: %g%s;
}
polygon {
	stroke: %s;
	stroke-width: %g%s;
}`, strokeColor, strokeWidth, svgUnit, strokeColor, strokeWidth, svgUnit)
}

// errWriter records the first write error so markup generation can run to
// completion and still report I/O failures.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}

// Package fingerjoint generates laser-cutter-ready outlines of rectangular
// panels with interlocking finger (box) joints. Panels cut from flat sheet
// stock with matching finger patterns assemble into enclosures without
// fasteners.
//
// All dimensions are in millimetres. The outline is an ordered vertex
// sequence; consecutive vertices are joined by cut segments and the sequence
// is implicitly closed.
package fingerjoint

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/fingerjoint/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Margin is the padding in millimetres between the drawing bounds and the
// outline after centering.
const Margin = 10

// Errors returned by NewPanel for degenerate panel parameters.
var (
	ErrBadSize         = errors.New("panel dimensions must be positive")
	ErrBadFingerWidth  = errors.New("finger width must be positive")
	ErrNegativeKerf    = errors.New("kerf must be non-negative")
	ErrNegativeSafety  = errors.New("finger width safety margin must be non-negative")
	ErrBadSuppression  = errors.New("suppressed finger counts must be non-negative")
	ErrNoFingersOnEdge = errors.New("finger width and suppression leave no fingers on edge")
)

// PanelParams defines a rectangular finger-jointed panel.
type PanelParams struct {
	Size         r2.Vec  // interior panel dimensions
	FingerWidth  float64 // width of each finger, commonly the material thickness
	Suppressed   [4]int  // fingers dropped per edge: top, right, bottom, left
	Kerf         float64 // material width destroyed by the cutting beam
	SafetyMargin float64 // extra finger depth absorbing material thickness variance
}

// edgeNames follows the Suppressed index order.
var edgeNames = [4]string{"top", "right", "bottom", "left"}

// fingerCount returns the number of finger intervals that fit on an edge
// after suppression. The count is forced odd so that every edge begins and
// ends with the same finger/gap polarity and the traversal closes around the
// rectangle.
func fingerCount(length, fingerWidth float64, suppressed int) int {
	n := int(math.Floor(length/fingerWidth)) - suppressed
	if n%2 == 0 {
		n--
	}
	return n
}

// Panel builds the outline of a single finger-jointed panel. A Panel handles
// exactly one outline and is not safe for concurrent use.
type Panel struct {
	k        PanelParams
	vertices d2.Set
	size     r2.Vec
	centered bool
}

// NewPanel validates the panel parameters and returns a panel builder.
func NewPanel(k PanelParams) (*Panel, error) {
	if d2.LTEZero(k.Size) {
		return nil, ErrBadSize
	}
	if k.FingerWidth <= 0 {
		return nil, ErrBadFingerWidth
	}
	if k.Kerf < 0 {
		return nil, ErrNegativeKerf
	}
	if k.SafetyMargin < 0 {
		return nil, ErrNegativeSafety
	}
	lengths := [4]float64{k.Size.X, k.Size.Y, k.Size.X, k.Size.Y}
	for i, suppressed := range k.Suppressed {
		if suppressed < 0 {
			return nil, ErrBadSuppression
		}
		if fingerCount(lengths[i], k.FingerWidth, suppressed) < 1 {
			return nil, fmt.Errorf("%s edge (%g mm): %w", edgeNames[i], lengths[i], ErrNoFingersOnEdge)
		}
	}
	return &Panel{k: k}, nil
}

// Params returns the parameters the panel was built with.
func (p *Panel) Params() PanelParams {
	return p.k
}

// makeEdge constructs one notched edge of the given length in the local
// frame, beginning at the origin and running along +x. The finger pattern is
// centered on the edge: leftover length not filled by fingers is split into
// equal margins at both ends. Transitions are offset by half the kerf so the
// beam restores nominal finger widths, and fingers overshoot the baseline by
// FingerWidth+SafetyMargin.
func (p *Panel) makeEdge(length float64, suppressed int) d2.Set {
	vertices := d2.Set{{}}

	numFingers := fingerCount(length, p.k.FingerWidth, suppressed)
	spare := length - float64(numFingers)*p.k.FingerWidth

	x := (p.k.Kerf + spare) / 2
	y := p.k.Kerf / 2
	yOffset := p.k.FingerWidth + p.k.SafetyMargin
	xOffset := p.k.Kerf / 2

	for i := 0; x <= length+p.k.Kerf-spare/2; i++ {
		if i%2 == 0 {
			// finger interval: rise off the baseline.
			vertices = append(vertices,
				r2.Vec{X: x - xOffset, Y: y},
				r2.Vec{X: x - xOffset, Y: y + yOffset})
		} else {
			// gap interval: return to the baseline.
			vertices = append(vertices,
				r2.Vec{X: x + xOffset, Y: y + yOffset},
				r2.Vec{X: x + xOffset, Y: y})
		}
		x += p.k.FingerWidth
	}
	return append(vertices, r2.Vec{X: length + p.k.Kerf, Y: y})
}

// Make populates the panel outline. Each of the four edges is authored at
// the local origin; the whole accumulated vertex buffer is then translated
// by -(edge length + kerf) and rotated a quarter turn so the next edge again
// starts at the origin. Applying the transforms to every vertex so far, in
// exactly this order, is what walks the outline around the rectangle.
// Repeated calls are no-ops.
func (p *Panel) Make() {
	if p.vertices != nil {
		return
	}
	lengths := [4]float64{p.k.Size.X, p.k.Size.Y, p.k.Size.X, p.k.Size.Y}
	for i, length := range lengths {
		p.vertices = append(p.vertices, p.makeEdge(length, p.k.Suppressed[i])...)
		p.Translate(r2.Vec{X: -(length + p.k.Kerf)})
		p.Rotate(math.Pi / 2)
	}
}

// Rotate rotates every outline vertex about the origin by theta radians,
// counterclockwise in the y-down drawing frame.
func (p *Panel) Rotate(theta float64) {
	d2.Rotation(theta).ApplySet(p.vertices)
}

// Translate moves every outline vertex by v.
func (p *Panel) Translate(v r2.Vec) {
	d2.Translation(v).ApplySet(p.vertices)
}

// Bounds returns the bounding box of the outline as built so far.
func (p *Panel) Bounds() r2.Box {
	return r2.Box(p.vertices.Bounds())
}

// Center shifts the outline into non-negative coordinate space with the
// minimum corner at (Margin, Margin) and records the drawing size as the
// bounding box span plus a margin on every side. Bounds are re-derived from
// the vertices each call, so calling Center more than once is stable.
func (p *Panel) Center() {
	bb := p.vertices.Bounds()
	p.Translate(r2.Sub(d2.Elem(Margin), bb.Min))
	p.size = r2.Add(bb.Size(), d2.Elem(2*Margin))
	p.centered = true
}

// Vertices returns a copy of the outline vertex sequence.
func (p *Panel) Vertices() []r2.Vec {
	v := make([]r2.Vec, len(p.vertices))
	copy(v, p.vertices)
	return v
}

// Drawing is a centered outline ready for rendering. Vertices trace the
// closed panel outline; Size is the drawing viewport including margins.
type Drawing struct {
	Vertices []r2.Vec
	Size     r2.Vec
}

// Drawing builds and centers the outline as needed and returns the
// render-ready drawing.
func (p *Panel) Drawing() Drawing {
	p.Make()
	if !p.centered {
		p.Center()
	}
	return Drawing{
		Vertices: p.Vertices(),
		Size:     p.size,
	}
}

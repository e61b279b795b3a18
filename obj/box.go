// Package obj composes finger-jointed panels into complete cut layouts for
// common enclosures.
package obj

import (
	"fmt"

	"github.com/soypat/fingerjoint"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// BoxParams defines a closed rectangular enclosure cut from flat sheet
// stock.
type BoxParams struct {
	Size         r3.Vec  // interior box dimensions: X width, Y height, Z depth
	FingerWidth  float64 // finger width, commonly the material thickness
	Suppressed   [4]int  // fingers dropped per edge on every panel: top, right, bottom, left
	Kerf         float64
	SafetyMargin float64
}

// BoxPanel pairs a generated panel with its place in the box.
type BoxPanel struct {
	Name  string
	Panel *fingerjoint.Panel
}

// Box returns the six panels of a closed finger-jointed box. Opposed panels
// share dimensions, so mating edges carry identical centered finger patterns
// and interlock when one panel is flipped into place.
func Box(k BoxParams) ([]BoxPanel, error) {
	faces := []struct {
		name string
		size r2.Vec
	}{
		{"front", r2.Vec{X: k.Size.X, Y: k.Size.Y}},
		{"back", r2.Vec{X: k.Size.X, Y: k.Size.Y}},
		{"left", r2.Vec{X: k.Size.Z, Y: k.Size.Y}},
		{"right", r2.Vec{X: k.Size.Z, Y: k.Size.Y}},
		{"top", r2.Vec{X: k.Size.X, Y: k.Size.Z}},
		{"bottom", r2.Vec{X: k.Size.X, Y: k.Size.Z}},
	}
	panels := make([]BoxPanel, len(faces))
	for i, face := range faces {
		p, err := fingerjoint.NewPanel(fingerjoint.PanelParams{
			Size:         face.size,
			FingerWidth:  k.FingerWidth,
			Suppressed:   k.Suppressed,
			Kerf:         k.Kerf,
			SafetyMargin: k.SafetyMargin,
		})
		if err != nil {
			return nil, fmt.Errorf("%s panel: %w", face.name, err)
		}
		p.Make()
		panels[i] = BoxPanel{Name: face.name, Panel: p}
	}
	return panels, nil
}

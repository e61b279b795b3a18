package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Transform represents a 2D spatial transformation
// including translation and rotation.
type Transform struct {
	data [3 * 3]float64 // stack stronk
}

func Identity() Transform {
	t := Transform{}
	t.Set(0, 0, 1)
	t.Set(1, 1, 1)
	t.Set(2, 2, 1)
	return t
}

// Rotation returns a rotation by theta radians, counterclockwise in the
// y-down drawing frame. The matrix orientation is
//
//	[ cos   sin  0]
//	[-sin   cos  0]
//	[  0     0   1]
//
// which mirrors the conventional y-up counterclockwise matrix. Outline
// traversal depends on this orientation.
func Rotation(theta float64) Transform {
	sin, cos := math.Sincos(theta)
	t := Identity()
	t.Set(0, 0, cos)
	t.Set(0, 1, sin)
	t.Set(1, 0, -sin)
	t.Set(1, 1, cos)
	return t
}

// Translation returns a translation by v.
func Translation(v r2.Vec) Transform {
	t := Identity()
	t.Set(0, 2, v.X)
	t.Set(1, 2, v.Y)
	return t
}

func (t *Transform) At(i, j int) float64 {
	return t.data[i*3+j]
}

func (t *Transform) Set(i, j int, v float64) {
	t.data[i*3+j] = v
}

// Mul multiplies 3x3 matrices.
func (a Transform) Mul(b Transform) Transform {
	m := Transform{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, a.At(i, 0)*b.At(0, j)+a.At(i, 1)*b.At(1, j)+a.At(i, 2)*b.At(2, j))
		}
	}
	return m
}

func (t Transform) ApplyPos(b r2.Vec) r2.Vec {
	return r2.Vec{
		X: t.At(0, 0)*b.X + t.At(0, 1)*b.Y + t.At(0, 2),
		Y: t.At(1, 0)*b.X + t.At(1, 1)*b.Y + t.At(1, 2),
	}
}

// ApplySet transforms every vertex of a set in place.
func (t Transform) ApplySet(v Set) {
	for i := range v {
		v[i] = t.ApplyPos(v[i])
	}
}

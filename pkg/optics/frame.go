package optics

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Frame is the rigid transform pair between the global plane and an
// element's local coordinate system. The local frame is centered on the
// element's position and rotated by the element's orientation, so the
// element surface lies along the local Y axis and the element plane is
// the line x = 0.
type Frame struct {
	h    *mat.Dense // global -> local
	hinv *mat.Dense // local -> global
}

// NewFrame builds the homogeneous transform H = R·T for an element at
// (px, py) with orientation theta, plus its inverse. Translation runs
// before rotation, matching the H·[x y 1] convention throughout the
// package.
//
// The inverse comes from full matrix inversion, not from a hand-derived
// inverse rotation, so that H·Hinv holds to floating-point tolerance as
// a checked invariant.
func NewFrame(theta, px, py float64) *Frame {
	sin, cos := math.Sincos(theta)
	r := mat.NewDense(3, 3, []float64{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	})
	t := mat.NewDense(3, 3, []float64{
		1, 0, -px,
		0, 1, -py,
		0, 0, 1,
	})

	h := mat.NewDense(3, 3, nil)
	h.Mul(r, t)

	hinv := mat.NewDense(3, 3, nil)
	if err := hinv.Inverse(h); err != nil {
		// A rigid rotation+translation is always invertible.
		panic(err)
	}
	return &Frame{h: h, hinv: hinv}
}

// ToLocal maps a global point into the element's local frame.
func (f *Frame) ToLocal(x, y float64) (float64, float64) {
	return apply(f.h, x, y)
}

// ToGlobal maps a local point back to the global plane.
func (f *Frame) ToGlobal(x, y float64) (float64, float64) {
	return apply(f.hinv, x, y)
}

func apply(m *mat.Dense, x, y float64) (float64, float64) {
	var p mat.VecDense
	p.MulVec(m, mat.NewVecDense(3, []float64{x, y, 1}))
	return p.AtVec(0), p.AtVec(1)
}

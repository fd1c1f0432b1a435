// Package geometry implements the 2D affine model used to place imported
// drawing primitives: points, sizes and composed transformations.
package geometry

import (
	"fmt"
	"math"
)

// Epsilon is the float64 machine epsilon, the tolerance used when comparing
// derived scale factors and coordinates for equality.
const Epsilon = 2.220446049250313e-16

// Transformation describes an affine map as a 3x3 homogeneous matrix,
// stored row-major:
//
//	| m0 m1 m2 |
//	| m3 m4 m5 |
//	| m6 m7 m8 |
//
// A point (x, y) maps to (m0*x + m1*y + m2, m3*x + m4*y + m5).
//
// Operations are composed so that each new one applies after the ones already
// accumulated: NewTransformation().Scale(2, 1).Translate(3, 0) first scales,
// then translates, mapping (1, 1) to (5, 1).
//
// The zero value is not the identity; start from [NewTransformation].
type Transformation struct {
	m [9]float64

	scale, scaleX, scaleY float64
}

// NewTransformation returns the identity transformation.
func NewTransformation() Transformation {
	return Transformation{
		m:      [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
		scale:  1,
		scaleX: 1,
		scaleY: 1,
	}
}

// Scale returns t followed by a scaling of (sx, sy).
func (t Transformation) Scale(sx, sy float64) Transformation {
	return t.multiply([9]float64{sx, 0, 0, 0, sy, 0, 0, 0, 1})
}

// Translate returns t followed by a translation of (dx, dy).
func (t Transformation) Translate(dx, dy float64) Transformation {
	return t.multiply([9]float64{1, 0, dx, 0, 1, dy, 0, 0, 1})
}

// TransformPoint applies t to p in place.
func (t Transformation) TransformPoint(p *Point) {
	x := t.m[0]*p.X + t.m[1]*p.Y + t.m[2]
	y := t.m[3]*p.X + t.m[4]*p.Y + t.m[5]
	p.X, p.Y = x, y
}

// ScaleX is the length of the image of the x basis vector.
func (t Transformation) ScaleX() float64 { return t.scaleX }

// ScaleY is the length of the image of the y basis vector.
func (t Transformation) ScaleY() float64 { return t.scaleY }

// ScaleFactor is a single representative scale: ScaleX when both axes scale
// equally, otherwise the quadratic mean of ScaleX and ScaleY.
func (t Transformation) ScaleFactor() float64 { return t.scale }

// Matrix returns the row-major coefficients of t.
func (t Transformation) Matrix() [9]float64 { return t.m }

func (t Transformation) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g]", t.m[0], t.m[1], t.m[2], t.m[3], t.m[4], t.m[5])
}

// multiply computes n * t.m, so that n is applied after t.
func (t Transformation) multiply(n [9]float64) Transformation {
	m := t.m
	t.m = [9]float64{
		n[0]*m[0] + n[1]*m[3] + n[2]*m[6],
		n[0]*m[1] + n[1]*m[4] + n[2]*m[7],
		n[0]*m[2] + n[1]*m[5] + n[2]*m[8],
		n[3]*m[0] + n[4]*m[3] + n[5]*m[6],
		n[3]*m[1] + n[4]*m[4] + n[5]*m[7],
		n[3]*m[2] + n[4]*m[5] + n[5]*m[8],
		n[6]*m[0] + n[7]*m[3] + n[8]*m[6],
		n[6]*m[1] + n[7]*m[4] + n[8]*m[7],
		n[6]*m[2] + n[7]*m[5] + n[8]*m[8],
	}
	t.scaleX = math.Sqrt(t.m[0]*t.m[0] + t.m[3]*t.m[3])
	t.scaleY = math.Sqrt(t.m[1]*t.m[1] + t.m[4]*t.m[4])
	if math.Abs(t.scaleX-t.scaleY) < Epsilon {
		t.scale = t.scaleX
	} else {
		t.scale = math.Sqrt((t.scaleX*t.scaleX + t.scaleY*t.scaleY) / 2)
	}
	return t
}

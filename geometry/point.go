package geometry

import (
	"fmt"
	"iter"
	"math"
)

// Transformer is implemented by values a [Transformation] can be applied to.
// Applying a transformation never mutates the receiver.
type Transformer[T any] interface {
	Transform(t Transformation) T
}

// Scale applies a one-shot scaling of (sx, sy) to v.
func Scale[T Transformer[T]](v T, sx, sy float64) T {
	return v.Transform(NewTransformation().Scale(sx, sy))
}

// Transform yields every value of seq with t applied.
func Transform[T Transformer[T]](seq iter.Seq[T], t Transformation) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(t)) {
				break
			}
		}
	}
}

// Point is a location in the plane.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Transform returns p mapped through t, translation included.
func (p Point) Transform(t Transformation) Point {
	t.TransformPoint(&p)
	return p
}

// Scale returns p scaled about the origin.
func (p Point) Scale(sx, sy float64) Point {
	return Scale(p, sx, sy)
}

// DistanceTo returns the euclidean distance between p and o.
func (p Point) DistanceTo(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Size is a magnitude along each axis. It has no position, so a
// transformation only scales it.
type Size struct {
	X float64
	Y float64
}

// Sz returns the size (x, y).
func Sz(x, y float64) Size {
	return Size{X: x, Y: y}
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.X, s.Y)
}

// Transform multiplies s by the scale factors of t.
func (s Size) Transform(t Transformation) Size {
	s.X *= t.ScaleX()
	s.Y *= t.ScaleY()
	return s
}

// Scale returns s scaled by (sx, sy).
func (s Size) Scale(sx, sy float64) Size {
	return Scale(s, sx, sy)
}

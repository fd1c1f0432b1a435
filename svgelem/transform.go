package svgelem

import (
	"math"
	"slices"

	"github.com/qeda/svgprim/geometry"
)

// Transform returns a copy of el, moved by t. Points follow the full
// transformation, while sizes (radii, font heights) only follow its scale factors
// and line widths follow t.ScaleFactor().
func Transform(el Element, t geometry.Transformation) Element {
	switch el := el.(type) {
	case *HLine:
		p0 := geometry.Pt(el.X0, el.Y).Transform(t)
		p1 := geometry.Pt(el.X1, el.Y).Transform(t)
		return &HLine{X0: p0.X, X1: p1.X, Y: p0.Y, Width: el.Width * t.ScaleFactor()}
	case *VLine:
		p0 := geometry.Pt(el.X, el.Y0).Transform(t)
		p1 := geometry.Pt(el.X, el.Y1).Transform(t)
		return &VLine{X: p0.X, Y0: p0.Y, Y1: p1.Y, Width: el.Width * t.ScaleFactor()}
	case *Line:
		return &Line{
			P:     [2]Point{el.P[0].Transform(t), el.P[1].Transform(t)},
			Width: el.Width * t.ScaleFactor(),
		}
	case *Polygon:
		out := &Polygon{LineWidth: el.LineWidth * t.ScaleFactor(), Filled: el.Filled}
		for p := range geometry.Transform(slices.Values(el.Points), t) {
			out.Points = append(out.Points, p)
		}
		return out
	case *Rect:
		// t may flip an axis
		p0 := geometry.Pt(el.X, el.Y).Transform(t)
		p1 := geometry.Pt(el.X+el.Width, el.Y+el.Height).Transform(t)
		return &Rect{
			X: math.Min(p0.X, p1.X), Y: math.Min(p0.Y, p1.Y),
			Width: math.Abs(p1.X - p0.X), Height: math.Abs(p1.Y - p0.Y),
			LineWidth: el.LineWidth * t.ScaleFactor(),
			Filled:    el.Filled,
		}
	case *Ellipse:
		c := geometry.Pt(el.Cx, el.Cy).Transform(t)
		r := geometry.Sz(el.Rx, el.Ry).Transform(t)
		return &Ellipse{Cx: c.X, Cy: c.Y, Rx: r.X, Ry: r.Y, LineWidth: el.LineWidth * t.ScaleFactor(), Filled: el.Filled}
	case *Text:
		out := *el
		p := geometry.Pt(el.X, el.Y).Transform(t)
		out.X, out.Y = p.X, p.Y
		out.Height = geometry.Sz(0, el.Height).Transform(t).Y
		return &out
	}
	return el
}

// Transform returns a new collection with the same ids and order,
// where every element is moved by t.
func (es Elements) Transform(t geometry.Transformation) Elements {
	var out Elements
	for id, el := range es.All() {
		out.set(id, Transform(el, t))
	}
	return out
}

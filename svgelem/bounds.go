package svgelem

import "math"

// Bounds defines a bounding box, such as
// the extent of an element collection.
type Bounds struct{ X, Y, W, H float64 }

// extent accumulates min and max coordinates
type extent struct {
	minX, minY, maxX, maxY float64
}

func newExtent() extent {
	return extent{minX: math.Inf(1), minY: math.Inf(1), maxX: math.Inf(-1), maxY: math.Inf(-1)}
}

func (e *extent) add(x, y float64) {
	e.minX = math.Min(x, e.minX)
	e.minY = math.Min(y, e.minY)
	e.maxX = math.Max(x, e.maxX)
	e.maxY = math.Max(y, e.maxY)
}

func (e *extent) addElement(el Element) {
	switch el := el.(type) {
	case *HLine:
		e.add(el.X0, el.Y)
		e.add(el.X1, el.Y)
	case *VLine:
		e.add(el.X, el.Y0)
		e.add(el.X, el.Y1)
	case *Line:
		e.add(el.P[0].X, el.P[0].Y)
		e.add(el.P[1].X, el.P[1].Y)
	case *Polygon:
		for _, p := range el.Points {
			e.add(p.X, p.Y)
		}
	case *Rect:
		e.add(el.X, el.Y)
		e.add(el.X+el.Width, el.Y+el.Height)
	case *Ellipse:
		e.add(el.Cx-el.Rx, el.Cy-el.Ry)
		e.add(el.Cx+el.Rx, el.Cy+el.Ry)
	case *Text: // only the anchor is known, the glyphs are not measured
		e.add(el.X, el.Y)
	}
}

// Bounds returns the smallest box containing the geometry
// of all the elements, ignoring line widths.
// An empty collection has empty bounds.
func (es Elements) Bounds() Bounds {
	e := newExtent()
	for _, el := range es.All() {
		e.addElement(el)
	}
	if e.minX > e.maxX { // no points
		return Bounds{}
	}
	return Bounds{X: e.minX, Y: e.minY, W: e.maxX - e.minX, H: e.maxY - e.minY}
}

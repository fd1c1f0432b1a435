// Given an imported element collection, implements how to
// draw it on screen.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.
package svgdraw

import (
	"github.com/qeda/svgprim/geometry"
	"github.com/qeda/svgprim/svgelem"
)

// Driver implements the primitive drawing operations.
// Coordinates and widths are expressed in the driver unit,
// that is after the transformation passed to Draw.
type Driver interface {
	// Line strokes a segment.
	Line(p0, p1 geometry.Point, width float64)
	// Polygon strokes the open polyline `points`, and
	// fills its closed area if `filled` is true.
	Polygon(points []geometry.Point, lineWidth float64, filled bool)
	Rect(x, y, w, h, lineWidth float64, filled bool)
	Ellipse(cx, cy, rx, ry, lineWidth float64, filled bool)
	// Text draws a single line anchored at (x, y).
	Text(x, y, height float64, text string, hAlign svgelem.HAlign, vAlign svgelem.VAlign)
}

// Draw draws the elements into the driver `d`, in collection
// order, while applying the transform t.
func Draw(d Driver, es svgelem.Elements, t geometry.Transformation) {
	for _, el := range es.All() {
		drawElement(d, svgelem.Transform(el, t))
	}
}

func drawElement(d Driver, el svgelem.Element) {
	switch el := el.(type) {
	case *svgelem.HLine:
		d.Line(geometry.Pt(el.X0, el.Y), geometry.Pt(el.X1, el.Y), el.Width)
	case *svgelem.VLine:
		d.Line(geometry.Pt(el.X, el.Y0), geometry.Pt(el.X, el.Y1), el.Width)
	case *svgelem.Line:
		d.Line(el.P[0].Point, el.P[1].Point, el.Width)
	case *svgelem.Polygon:
		if len(el.Points) == 0 {
			return
		}
		points := make([]geometry.Point, len(el.Points))
		for i, p := range el.Points {
			points[i] = p.Point
		}
		d.Polygon(points, el.LineWidth, el.Filled)
	case *svgelem.Rect:
		d.Rect(el.X, el.Y, el.Width, el.Height, el.LineWidth, el.Filled)
	case *svgelem.Ellipse:
		d.Ellipse(el.Cx, el.Cy, el.Rx, el.Ry, el.LineWidth, el.Filled)
	case *svgelem.Text:
		if el.Text == "" {
			return
		}
		d.Text(el.X, el.Y, el.Height, el.Text, el.HAlign, el.VAlign)
	}
}

// Target describes how the elements are placed on the output.
type Target struct {
	Scale  float64 // output units per millimeter
	Margin float64 // in millimeters, around the elements bounds
	FlipY  bool    // use an upward Y axis
}

// Fit returns the transformation mapping the bounds `b`, grown by the margin, to the
// output rectangle (0, 0, size.X, size.Y).
func (tg Target) Fit(b svgelem.Bounds) (t geometry.Transformation, size geometry.Size) {
	w, h := b.W+2*tg.Margin, b.H+2*tg.Margin
	t = geometry.NewTransformation().Translate(tg.Margin-b.X, tg.Margin-b.Y)
	if tg.FlipY {
		t = t.Scale(1, -1).Translate(0, h)
	}
	t = t.Scale(tg.Scale, tg.Scale)
	return t, geometry.Sz(w*tg.Scale, h*tg.Scale)
}

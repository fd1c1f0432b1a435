// Implements a PDF backend to preview imported elements,
// by wrapping github.com/jung-kurt/gofpdf.
// Since gofpdf works in millimeters with a downward Y axis,
// the elements are drawn at their natural size.
package svgpdf

import (
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/qeda/svgprim/geometry"
	"github.com/qeda/svgprim/svgdraw"
	"github.com/qeda/svgprim/svgelem"
)

var _ svgdraw.Driver = Renderer{} // assert interface conformance

// used for texts without font size, in millimeters
const defaultTextHeight = 1.

type Renderer struct {
	pdf *gofpdf.Fpdf
}

// NewRenderer return a renderer which will
// write to the given `pdf`, whose unit must be the millimeter.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf}
}

// RenderElementsToPDF draws the elements on a one page document
// sized to fit their bounds, and writes it to `out`.
// The scale of the target is ignored.
func RenderElementsToPDF(es svgelem.Elements, target svgdraw.Target, out io.Writer) error {
	target.Scale = 1
	t, size := target.Fit(es.Bounds())

	pdf := gofpdf.New("P", "mm", "", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: max(size.X, 1), Ht: max(size.Y, 1)})
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetFillColor(0, 0, 0)
	pdf.SetTextColor(0, 0, 0)

	svgdraw.Draw(NewRenderer(pdf), es, t)
	return pdf.Output(out)
}

func styleStr(filled bool) string {
	if filled {
		return "FD"
	}
	return "D"
}

func (r Renderer) Line(p0, p1 geometry.Point, width float64) {
	r.pdf.SetLineWidth(width)
	r.pdf.Line(p0.X, p0.Y, p1.X, p1.Y)
}

func (r Renderer) Polygon(points []geometry.Point, lineWidth float64, filled bool) {
	r.pdf.SetLineWidth(lineWidth)
	if filled {
		pts := make([]gofpdf.PointType, len(points))
		for i, p := range points {
			pts[i] = gofpdf.PointType{X: p.X, Y: p.Y}
		}
		r.pdf.Polygon(pts, styleStr(true))
		return
	}
	// open polyline
	if len(points) == 1 {
		r.pdf.Line(points[0].X, points[0].Y, points[0].X, points[0].Y)
		return
	}
	for i := 1; i < len(points); i++ {
		r.pdf.Line(points[i-1].X, points[i-1].Y, points[i].X, points[i].Y)
	}
}

func (r Renderer) Rect(x, y, w, h, lineWidth float64, filled bool) {
	r.pdf.SetLineWidth(lineWidth)
	r.pdf.Rect(x, y, w, h, styleStr(filled))
}

func (r Renderer) Ellipse(cx, cy, rx, ry, lineWidth float64, filled bool) {
	r.pdf.SetLineWidth(lineWidth)
	r.pdf.Ellipse(cx, cy, rx, ry, 0, styleStr(filled))
}

// Text approximates the vertical alignments from the font size,
// since gofpdf only positions the baseline.
func (r Renderer) Text(x, y, height float64, text string, hAlign svgelem.HAlign, vAlign svgelem.VAlign) {
	if height <= 0 {
		height = defaultTextHeight
	}
	r.pdf.SetFontUnitSize(height)
	width := r.pdf.GetStringWidth(text)
	switch hAlign {
	case svgelem.Center:
		x -= width / 2
	case svgelem.Right:
		x -= width
	}
	switch vAlign {
	case svgelem.Middle:
		y += 0.35 * height
	case svgelem.Top:
		y += 0.7 * height
	}
	r.pdf.Text(x, y, text)
}

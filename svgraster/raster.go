// Implements a raster backend to preview imported elements,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/qeda/svgprim/geometry"
	"github.com/qeda/svgprim/svgdraw"
	"github.com/qeda/svgprim/svgelem"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var _ svgdraw.Driver = (*Renderer)(nil) // assert interface conformance

// thinnest stroke, in pixels
const hairline = 1.

type Renderer struct {
	dasher *rasterx.Dasher
	filler *rasterx.Filler
	dst    draw.Image // text is drawn directly into the image
	color  color.Color
}

// NewRenderer returns a renderer drawing in `dst` with the color `c`,
// using a rasterx.ScannerGV.
func NewRenderer(dst draw.Image, c color.Color) *Renderer {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	return &Renderer{
		dasher: rasterx.NewDasher(w, h, scanner),
		filler: rasterx.NewFiller(w, h, scanner),
		dst:    dst,
		color:  c,
	}
}

// RasterElements renders the elements into a new white image,
// sized to fit their bounds.
func RasterElements(es svgelem.Elements, target svgdraw.Target) *image.RGBA {
	t, size := target.Fit(es.Bounds())
	w, h := int(math.Ceil(size.X)), int(math.Ceil(size.Y))
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	svgdraw.Draw(NewRenderer(img, color.Black), es, t)
	return img
}

func toFixed(p geometry.Point) fixed.Point26_6 { return rasterx.ToFixedP(p.X, p.Y) }

func (rd *Renderer) stroke(width float64, add func(rasterx.Adder)) {
	rd.dasher.Clear()
	rd.dasher.SetStroke(fixed.Int26_6(math.Max(width, hairline)*64), 4*64,
		rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.Round, nil, 0)
	add(rd.dasher)
	rd.dasher.SetColor(rd.color)
	rd.dasher.Draw()
}

func (rd *Renderer) fill(add func(rasterx.Adder)) {
	rd.filler.Clear()
	rd.filler.SetWinding(true)
	add(rd.filler)
	rd.filler.SetColor(rd.color)
	rd.filler.Draw()
}

func (rd *Renderer) Line(p0, p1 geometry.Point, width float64) {
	rd.stroke(width, func(a rasterx.Adder) {
		a.Start(toFixed(p0))
		a.Line(toFixed(p1))
		a.Stop(false)
	})
}

func (rd *Renderer) Polygon(points []geometry.Point, lineWidth float64, filled bool) {
	path := func(a rasterx.Adder) {
		a.Start(toFixed(points[0]))
		for _, p := range points[1:] {
			a.Line(toFixed(p))
		}
		a.Stop(filled)
	}
	if filled {
		rd.fill(path)
	}
	rd.stroke(lineWidth, path)
}

func (rd *Renderer) Rect(x, y, w, h, lineWidth float64, filled bool) {
	path := func(a rasterx.Adder) { rasterx.AddRect(x, y, x+w, y+h, 0, a) }
	if filled {
		rd.fill(path)
	}
	rd.stroke(lineWidth, path)
}

func (rd *Renderer) Ellipse(cx, cy, rx, ry, lineWidth float64, filled bool) {
	if rx <= 0 || ry <= 0 { // not drawn
		return
	}
	path := func(a rasterx.Adder) { rasterx.AddEllipse(cx, cy, rx, ry, 0, a) }
	if filled {
		rd.fill(path)
	}
	rd.stroke(lineWidth, path)
}

// Text uses a fixed size bitmap font, so that height is ignored.
func (rd *Renderer) Text(x, y, height float64, text string, hAlign svgelem.HAlign, vAlign svgelem.VAlign) {
	d := font.Drawer{
		Dst:  rd.dst,
		Src:  image.NewUniform(rd.color),
		Face: basicfont.Face7x13,
		Dot:  rasterx.ToFixedP(x, y),
	}
	advance := d.MeasureString(text)
	switch hAlign {
	case svgelem.Center:
		d.Dot.X -= advance / 2
	case svgelem.Right:
		d.Dot.X -= advance
	}
	ascent := d.Face.Metrics().Ascent
	switch vAlign {
	case svgelem.Middle:
		d.Dot.Y += ascent / 2
	case svgelem.Top:
		d.Dot.Y += ascent
	}
	d.DrawString(text)
}

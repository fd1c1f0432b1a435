package svgraster

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/qeda/svgprim/geometry"
	"github.com/qeda/svgprim/svgdraw"
	"github.com/qeda/svgprim/svgelem"
)

func toPngBytes(m image.Image) ([]byte, error) {
	var b bytes.Buffer
	// Write the image into the buffer
	err := png.Encode(&b, m)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r < 0x8000 && g < 0x8000 && b < 0x8000
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestRasterFootprint(t *testing.T) {
	es, err := svgelem.ReadElements(filepath.Join("..", "svgelem", "testdata", "soic8.svg"), nil)
	if err != nil {
		t.Fatalf("can't import svg source: %s", err)
	}
	img := RasterElements(es, svgdraw.Target{Scale: 10, Margin: 1})

	// bounds are (0, 0.25, 8, 5.25) in millimeters
	if got := img.Bounds(); got != image.Rect(0, 0, 100, 73) {
		t.Fatalf("unexpected image bounds %v", got)
	}
	if c := img.At(17, 17); !isDark(c) { // inside pad 1
		t.Errorf("expected filled pad, got %v", c)
	}
	if c := img.At(50, 62); !isDark(c) { // bottom silkscreen line
		t.Errorf("expected stroked line, got %v", c)
	}
	if c := img.At(50, 60); !isWhite(c) {
		t.Errorf("expected background, got %v", c)
	}

	b, err := toPngBytes(img)
	if err != nil {
		t.Fatalf("can't encode image: %s", err)
	}
	if err = os.WriteFile(filepath.Join(t.TempDir(), "soic8.png"), b, os.ModePerm); err != nil {
		t.Fatalf("can't save rasterized image: %s", err)
	}
}

func TestEmptyElements(t *testing.T) {
	img := RasterElements(svgelem.Elements{}, svgdraw.Target{Scale: 10})
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		t.Errorf("unexpected bounds %v", img.Bounds())
	}
}

func TestText(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 60, 30))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	rd := NewRenderer(img, color.Black)
	rd.Text(30, 15, 1, "U1", svgelem.Center, svgelem.Middle)

	// the glyphs straddle the anchor
	var left, right int
	for x := 0; x < 60; x++ {
		for y := 0; y < 30; y++ {
			if !isWhite(img.At(x, y)) {
				if x < 30 {
					left++
				} else {
					right++
				}
			}
		}
	}
	if left == 0 || right == 0 {
		t.Errorf("unexpected text placement: %d pixels on the left, %d on the right", left, right)
	}
}

func TestHairline(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	rd := NewRenderer(img, color.Black)
	rd.Line(geometry.Pt(2, 10.5), geometry.Pt(18, 10.5), 0)
	if isWhite(img.At(10, 10)) {
		t.Error("zero width lines should be visible")
	}
}

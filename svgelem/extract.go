package svgelem

import (
	"errors"
	"strings"

	"github.com/qeda/svgprim/geometry"
)

// readLength parses a single length, in millimeters
func readLength(s string) (float64, error) {
	l, err := parseLength(s)
	if err != nil {
		return 0, err
	}
	return ToMillimeters(l)
}

// readFirstLength parses a list of lengths and returns the first one, in millimeters
func readFirstLength(s string) (float64, error) {
	ls, err := parseLengthList(s)
	if err != nil {
		return 0, err
	}
	return ToMillimeters(ls[0])
}

// attributeError wraps a value error. Unit errors are returned as is.
func attributeError(tag string, attr attribute, err error) error {
	var ue *UnitsError
	if errors.As(err, &ue) {
		return ue
	}
	return &AttributeError{Element: tag, Name: attr.name, Value: attr.value, Err: err}
}

func isFilled(value string) bool { return strings.TrimSpace(value) != "none" }

func toEllipse(attrs []attribute, fillByDefault bool) (*Ellipse, error) {
	el := &Ellipse{Filled: fillByDefault}
	for _, attr := range attrs {
		if err := checkAttribute("ellipse", attr); err != nil {
			return nil, err
		}
		var err error
		switch attr.name {
		case "cx":
			el.Cx, err = readLength(attr.value)
		case "cy":
			el.Cy, err = readLength(attr.value)
		case "rx":
			el.Rx, err = readLength(attr.value)
		case "ry":
			el.Ry, err = readLength(attr.value)
		case "stroke-width":
			el.LineWidth, err = readLength(attr.value)
		case "fill":
			el.Filled = isFilled(attr.value)
		}
		if err != nil {
			return nil, attributeError("ellipse", attr, err)
		}
	}
	return el, nil
}

func toRect(attrs []attribute, fillByDefault bool) (*Rect, error) {
	el := &Rect{Filled: fillByDefault}
	for _, attr := range attrs {
		if err := checkAttribute("rect", attr); err != nil {
			return nil, err
		}
		var err error
		switch attr.name {
		case "x":
			el.X, err = readLength(attr.value)
		case "y":
			el.Y, err = readLength(attr.value)
		case "width":
			el.Width, err = readLength(attr.value)
		case "height":
			el.Height, err = readLength(attr.value)
		case "stroke-width":
			el.LineWidth, err = readLength(attr.value)
		case "fill":
			el.Filled = isFilled(attr.value)
		}
		if err != nil {
			return nil, attributeError("rect", attr, err)
		}
	}
	return el, nil
}

// toPolygon reads a path element. Only the straight line commands
// are interpreted: curves, arcs and closepath are dropped and don't
// move the current point.
func toPolygon(attrs []attribute, fillByDefault bool) (*Polygon, error) {
	el := &Polygon{Filled: fillByDefault}
	for _, attr := range attrs {
		if err := checkAttribute("path", attr); err != nil {
			return nil, err
		}
		var err error
		switch attr.name {
		case "d":
			var segments []pathSegment
			segments, err = parsePathData(attr.value)
			el.Points = polygonPoints(segments)
		case "stroke-width":
			el.LineWidth, err = readLength(attr.value)
		case "fill":
			el.Filled = isFilled(attr.value)
		}
		if err != nil {
			return nil, attributeError("path", attr, err)
		}
	}
	return el, nil
}

func polygonPoints(segments []pathSegment) []Point {
	var (
		cur    geometry.Point
		points []Point
	)
	for _, seg := range segments {
		switch seg.cmd {
		case pathMoveTo, pathLineTo:
			if seg.abs {
				cur = geometry.Pt(seg.args[0], seg.args[1])
			} else {
				cur.X += seg.args[0]
				cur.Y += seg.args[1]
			}
		case pathHLineTo:
			if seg.abs {
				cur.X = seg.args[0]
			} else {
				cur.X += seg.args[0]
			}
		case pathVLineTo:
			if seg.abs {
				cur.Y = seg.args[0]
			} else {
				cur.Y += seg.args[0]
			}
		default:
			continue
		}
		points = append(points, Point{Point: cur})
	}
	return points
}

// toText updates t with the text attributes found in attrs, leaving
// the other fields untouched. It is used for <text> and for
// its <tspan> children, which only override the position and
// the alignments: the height always comes from <text>.
func toText(t *Text, tag string, attrs []attribute) error {
	for _, attr := range attrs {
		if err := checkAttribute(tag, attr); err != nil {
			return err
		}
		var err error
		switch attr.name {
		case "x":
			t.X, err = readFirstLength(attr.value)
		case "y":
			t.Y, err = readFirstLength(attr.value)
		case "font-size":
			if tag == "text" {
				t.Height, err = readLength(attr.value)
			}
		case "text-anchor":
			switch attr.value {
			case "middle":
				t.HAlign = Center
			case "end":
				t.HAlign = Right
			default:
				t.HAlign = Left
			}
		case "dominant-baseline":
			switch attr.value {
			case "middle":
				t.VAlign = Middle
			case "text-before-edge":
				t.VAlign = Top
			default:
				t.VAlign = Bottom
			}
		}
		if err != nil {
			return attributeError(tag, attr, err)
		}
	}
	return nil
}

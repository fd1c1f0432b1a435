package svgelem

import (
	"encoding/json"
	"iter"
	"math"
	"slices"

	"github.com/qeda/svgprim/geometry"
)

// Point is a vertex of an imported polygon or line.
type Point struct {
	geometry.Point
	Marker bool // reserved for vertex markers, never set by the importer
}

// Transform returns the transformed point, keeping the marker.
func (p Point) Transform(t geometry.Transformation) Point {
	return Point{Point: p.Point.Transform(t), Marker: p.Marker}
}

// HAlign is the horizontal alignment of a text, relative to its anchor.
type HAlign uint8

const (
	Left HAlign = iota
	Center
	Right
)

func (h HAlign) String() string {
	switch h {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	default:
		return "<unknown HAlign>"
	}
}

// ParseHAlign is the inverse of HAlign.String.
// Unknown values fall back to Left.
func ParseHAlign(s string) HAlign {
	switch s {
	case "center":
		return Center
	case "right":
		return Right
	default:
		return Left
	}
}

// MarshalText encodes h with its String form, such as "center".
func (h HAlign) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// UnmarshalText decodes h with ParseHAlign.
func (h *HAlign) UnmarshalText(text []byte) error {
	*h = ParseHAlign(string(text))
	return nil
}

// VAlign is the vertical alignment of a text, relative to its anchor.
type VAlign uint8

const (
	Bottom VAlign = iota
	Middle
	Top
)

func (v VAlign) String() string {
	switch v {
	case Bottom:
		return "bottom"
	case Middle:
		return "middle"
	case Top:
		return "top"
	default:
		return "<unknown VAlign>"
	}
}

// ParseVAlign is the inverse of VAlign.String.
// Unknown values fall back to Bottom.
func ParseVAlign(s string) VAlign {
	switch s {
	case "middle":
		return Middle
	case "top":
		return Top
	default:
		return Bottom
	}
}

func (v VAlign) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *VAlign) UnmarshalText(text []byte) error {
	*v = ParseVAlign(string(text))
	return nil
}

// Element is one of the primitives produced by the import:
// *HLine, *VLine, *Line, *Polygon, *Rect, *Ellipse or *Text.
type Element interface {
	// Kind returns the lower case name of the primitive
	Kind() string

	isElement()
}

// HLine is an horizontal segment.
type HLine struct {
	X0, X1, Y float64
	Width     float64
}

// Cx returns the abscissa of the middle of the line.
func (l *HLine) Cx() float64 { return (l.X0 + l.X1) / 2 }

// Len returns the (non negative) length of the line.
func (l *HLine) Len() float64 { return math.Abs(l.X1 - l.X0) }

// VLine is a vertical segment.
type VLine struct {
	X, Y0, Y1 float64
	Width     float64
}

// Cy returns the ordinate of the middle of the line.
func (l *VLine) Cy() float64 { return (l.Y0 + l.Y1) / 2 }

// Len returns the (non negative) length of the line.
func (l *VLine) Len() float64 { return math.Abs(l.Y1 - l.Y0) }

// Line is a segment which is neither horizontal nor vertical.
type Line struct {
	P     [2]Point
	Width float64
}

type Polygon struct {
	Points    []Point
	LineWidth float64
	Filled    bool
}

type Rect struct {
	X, Y, Width, Height float64
	LineWidth           float64
	Filled              bool
}

type Ellipse struct {
	Cx, Cy, Rx, Ry float64
	LineWidth      float64
	Filled         bool
}

// Text is a single line of text anchored at (X, Y).
type Text struct {
	X, Y   float64
	Height float64 // font size
	Text   string
	HAlign HAlign
	VAlign VAlign
}

func (*HLine) Kind() string   { return "hline" }
func (*VLine) Kind() string   { return "vline" }
func (*Line) Kind() string    { return "line" }
func (*Polygon) Kind() string { return "polygon" }
func (*Rect) Kind() string    { return "rect" }
func (*Ellipse) Kind() string { return "ellipse" }
func (*Text) Kind() string    { return "text" }

func (*HLine) isElement()   {}
func (*VLine) isElement()   {}
func (*Line) isElement()    {}
func (*Polygon) isElement() {}
func (*Rect) isElement()    {}
func (*Ellipse) isElement() {}
func (*Text) isElement()    {}

// Elements maps element ids to primitives, and remembers
// the order in which they were stored. The zero value is an empty collection.
type Elements struct {
	keys []string
	m    map[string]Element
}

// set stores el under id. If id is already present, its value is
// replaced and the id moves to the end of the order.
func (es *Elements) set(id string, el Element) {
	if es.m == nil {
		es.m = make(map[string]Element)
	}
	if _, has := es.m[id]; has {
		for i, k := range es.keys {
			if k == id {
				es.keys = append(es.keys[:i], es.keys[i+1:]...)
				break
			}
		}
	}
	es.keys = append(es.keys, id)
	es.m[id] = el
}

// Get returns a copy of the element stored with `id`, or nil.
func (es Elements) Get(id string) Element {
	el, ok := es.m[id]
	if !ok {
		return nil
	}
	return clone(el)
}

func (es Elements) Len() int { return len(es.keys) }

// Keys returns a copy of the ids, in storage order.
func (es Elements) Keys() []string { return append([]string(nil), es.keys...) }

// All iterates over the (id, element) pairs, in storage order.
// The elements are copies: the collection can't be modified after the import.
func (es Elements) All() iter.Seq2[string, Element] {
	return func(yield func(string, Element) bool) {
		for _, k := range es.keys {
			if !yield(k, clone(es.m[k])) {
				return
			}
		}
	}
}

// clone returns a deep copy of el.
func clone(el Element) Element {
	switch el := el.(type) {
	case *HLine:
		out := *el
		return &out
	case *VLine:
		out := *el
		return &out
	case *Line:
		out := *el
		return &out
	case *Polygon:
		out := *el
		out.Points = slices.Clone(el.Points)
		return &out
	case *Rect:
		out := *el
		return &out
	case *Ellipse:
		out := *el
		return &out
	case *Text:
		out := *el
		return &out
	}
	return el
}

type jsonElement struct {
	ID      string  `json:"id"`
	Kind    string  `json:"kind"`
	Element Element `json:"element"`
}

// MarshalJSON encodes the collection as an array, preserving the order.
func (es Elements) MarshalJSON() ([]byte, error) {
	out := make([]jsonElement, 0, len(es.keys))
	for id, el := range es.All() {
		out = append(out, jsonElement{ID: id, Kind: el.Kind(), Element: el})
	}
	return json.Marshal(out)
}

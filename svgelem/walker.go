package svgelem

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/qeda/svgprim/geometry"
)

// importer accumulates the primitives found while walking
// one document.
type importer struct {
	elements Elements
	nextID   int // next synthetic id, for anonymous paths
	options  Options
	logger   *log.Logger
}

// attributes returns the resolved attributes of n, logging
// the style properties which are ignored.
func (im *importer) attributes(n *node) []attribute {
	attrs, skipped := resolveAttributes(n.attrs)
	for _, property := range skipped {
		im.logger.Debug("skipping style property", "element", n.name.Local, "property", property)
	}
	return attrs
}

func (im *importer) store(id string, el Element) {
	im.logger.Debug("storing element", "id", id, "kind", el.Kind())
	im.elements.set(id, el)
}

// syntheticID returns the id of an anonymous path.
func (im *importer) syntheticID() string {
	id := strconv.Itoa(im.nextID)
	im.nextID++
	return id
}

// addNode visits n and its descendants, in document order.
// The content of <defs> is never visited.
func (im *importer) addNode(n *node) error {
	if n.kind == elementNode {
		switch {
		case n.is("defs"):
			im.logger.Debug("skipping definitions", "id", n.id())
			return nil
		case n.is("path"):
			poly, err := toPolygon(im.attributes(n), im.options.FillByDefault)
			if err != nil {
				return err
			}
			id := n.id()
			if id == "" {
				id = im.syntheticID()
			}
			im.store(id, classifyPolygon(poly))
		case n.is("rect"):
			rect, err := toRect(im.attributes(n), im.options.FillByDefault)
			if err != nil {
				return err
			}
			im.store(n.id(), rect)
		case n.is("ellipse"):
			ellipse, err := toEllipse(im.attributes(n), im.options.FillByDefault)
			if err != nil {
				return err
			}
			im.store(n.id(), ellipse)
		case n.is("text"):
			text, err := im.readText(n)
			if err != nil {
				return err
			}
			im.store(n.id(), text)
		default:
			im.logger.Debug("ignoring element", "tag", n.name.Local, "namespace", n.name.Space)
		}
	}

	for _, child := range n.children {
		if child.kind != elementNode {
			continue
		}
		if err := im.addNode(child); err != nil {
			return err
		}
	}
	return nil
}

// classifyPolygon returns the straight line equivalent to
// a two-points polygon, or poly itself.
func classifyPolygon(poly *Polygon) Element {
	if len(poly.Points) != 2 {
		return poly
	}
	p0, p1 := poly.Points[0], poly.Points[1]
	switch {
	case math.Abs(p0.Y-p1.Y) < geometry.Epsilon:
		return &HLine{X0: p0.X, X1: p1.X, Y: p0.Y, Width: poly.LineWidth}
	case math.Abs(p0.X-p1.X) < geometry.Epsilon:
		return &VLine{X: p0.X, Y0: p0.Y, Y1: p1.Y, Width: poly.LineWidth}
	default:
		return &Line{P: [2]Point{p0, p1}, Width: poly.LineWidth}
	}
}

// readText reads a <text> element and its direct children.
// Among the character data and <tspan> children, the last
// one with some content provides the text.
func (im *importer) readText(n *node) (*Text, error) {
	text := new(Text)
	if err := toText(text, "text", im.attributes(n)); err != nil {
		return nil, err
	}
	for _, child := range n.children {
		switch {
		case child.kind == textNode:
			if s := strings.TrimSpace(child.text); s != "" {
				text.Text = s
			}
		case child.is("tspan"):
			if err := toText(text, "tspan", im.attributes(child)); err != nil {
				return nil, err
			}
			if s := strings.TrimSpace(directText(child)); s != "" {
				text.Text = s
			}
		}
	}
	return text, nil
}

// directText concatenates the character data children of n.
func directText(n *node) string {
	var b strings.Builder
	for _, child := range n.children {
		if child.kind == textNode {
			b.WriteString(child.text)
		}
	}
	return b.String()
}

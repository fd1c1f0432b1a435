package svgelem

import (
	"encoding/xml"
	"strings"
)

// attribute is a resolved attribute: its name is the local name
// for SVG attributes, and "xlink:" or "xml:" prefixed for the
// attributes of these two namespaces.
type attribute struct {
	name, value string
}

type attrClass uint8

const (
	regularAttr      attrClass = iota + 1
	presentationAttr           // may also be given as a style declaration
)

// svgAttributes lists the attribute names of the SVG 1.1 schema.
var svgAttributes = map[string]attrClass{
	// core, conditional and event attributes
	"id": regularAttr, "class": regularAttr, "style": regularAttr, "lang": regularAttr,
	"tabindex": regularAttr, "version": regularAttr, "baseProfile": regularAttr,
	"requiredFeatures": regularAttr, "requiredExtensions": regularAttr, "systemLanguage": regularAttr,
	"externalResourcesRequired": regularAttr, "contentScriptType": regularAttr, "contentStyleType": regularAttr,
	"onload": regularAttr, "onclick": regularAttr, "onmousedown": regularAttr, "onmouseup": regularAttr,
	"onmouseover": regularAttr, "onmousemove": regularAttr, "onmouseout": regularAttr,
	"onfocusin": regularAttr, "onfocusout": regularAttr, "onactivate": regularAttr,
	"xml:space": regularAttr, "xml:lang": regularAttr, "xml:base": regularAttr,
	"xlink:href": regularAttr, "xlink:type": regularAttr, "xlink:role": regularAttr,
	"xlink:arcrole": regularAttr, "xlink:title": regularAttr, "xlink:show": regularAttr, "xlink:actuate": regularAttr,

	// geometry and layout
	"x": regularAttr, "y": regularAttr, "x1": regularAttr, "y1": regularAttr, "x2": regularAttr, "y2": regularAttr,
	"cx": regularAttr, "cy": regularAttr, "r": regularAttr, "rx": regularAttr, "ry": regularAttr,
	"fx": regularAttr, "fy": regularAttr, "dx": regularAttr, "dy": regularAttr,
	"width": regularAttr, "height": regularAttr, "d": regularAttr, "points": regularAttr, "pathLength": regularAttr,
	"transform": regularAttr, "viewBox": regularAttr, "preserveAspectRatio": regularAttr,
	"rotate": regularAttr, "textLength": regularAttr, "lengthAdjust": regularAttr,
	"startOffset": regularAttr, "method": regularAttr, "spacing": regularAttr,
	"gradientUnits": regularAttr, "gradientTransform": regularAttr, "spreadMethod": regularAttr,
	"offset": regularAttr, "patternUnits": regularAttr, "patternContentUnits": regularAttr,
	"patternTransform": regularAttr, "clipPathUnits": regularAttr, "maskUnits": regularAttr,
	"maskContentUnits": regularAttr, "markerUnits": regularAttr, "markerWidth": regularAttr,
	"markerHeight": regularAttr, "refX": regularAttr, "refY": regularAttr, "orient": regularAttr,
	"zoomAndPan": regularAttr, "media": regularAttr, "type": regularAttr, "title": regularAttr,
	"target": regularAttr, "filterUnits": regularAttr, "primitiveUnits": regularAttr,

	// presentation attributes
	"alignment-baseline": presentationAttr, "baseline-shift": presentationAttr, "clip": presentationAttr,
	"clip-path": presentationAttr, "clip-rule": presentationAttr, "color": presentationAttr,
	"color-interpolation": presentationAttr, "color-interpolation-filters": presentationAttr,
	"color-profile": presentationAttr, "color-rendering": presentationAttr, "cursor": presentationAttr,
	"direction": presentationAttr, "display": presentationAttr, "dominant-baseline": presentationAttr,
	"enable-background": presentationAttr, "fill": presentationAttr, "fill-opacity": presentationAttr,
	"fill-rule": presentationAttr, "filter": presentationAttr, "flood-color": presentationAttr,
	"flood-opacity": presentationAttr, "font": presentationAttr, "font-family": presentationAttr,
	"font-size": presentationAttr, "font-size-adjust": presentationAttr, "font-stretch": presentationAttr,
	"font-style": presentationAttr, "font-variant": presentationAttr, "font-weight": presentationAttr,
	"glyph-orientation-horizontal": presentationAttr, "glyph-orientation-vertical": presentationAttr,
	"image-rendering": presentationAttr, "kerning": presentationAttr, "letter-spacing": presentationAttr,
	"lighting-color": presentationAttr, "marker": presentationAttr, "marker-end": presentationAttr,
	"marker-mid": presentationAttr, "marker-start": presentationAttr, "mask": presentationAttr,
	"opacity": presentationAttr, "overflow": presentationAttr, "pointer-events": presentationAttr,
	"shape-rendering": presentationAttr, "stop-color": presentationAttr, "stop-opacity": presentationAttr,
	"stroke": presentationAttr, "stroke-dasharray": presentationAttr, "stroke-dashoffset": presentationAttr,
	"stroke-linecap": presentationAttr, "stroke-linejoin": presentationAttr, "stroke-miterlimit": presentationAttr,
	"stroke-opacity": presentationAttr, "stroke-width": presentationAttr, "text-anchor": presentationAttr,
	"text-decoration": presentationAttr, "text-rendering": presentationAttr, "unicode-bidi": presentationAttr,
	"visibility": presentationAttr, "word-spacing": presentationAttr, "writing-mode": presentationAttr,
}

// checkAttribute returns an *AttributeError if attr is not part of the SVG schema.
func checkAttribute(tag string, attr attribute) error {
	if _, ok := svgAttributes[attr.name]; !ok {
		return &AttributeError{Element: tag, Name: attr.name, Value: attr.value}
	}
	return nil
}

// resolveAttributes normalizes the attributes of an element:
//   - namespace declarations and attributes of foreign namespaces
//     (editor metadata like inkscape: or sodipodi:) are dropped
//   - the declarations of the style attribute are appended after
//     the plain attributes, in their written order
//
// The returned slice of skipped holds the style properties which are not
// presentation attributes.
func resolveAttributes(attrs []xml.Attr) (out []attribute, skipped []string) {
	var style []attribute
	for _, attr := range attrs {
		var name string
		switch attr.Name.Space {
		case "", svgNamespace:
			name = attr.Name.Local
			if name == "xmlns" {
				continue
			}
		case xlinkNamespace, "xlink":
			name = "xlink:" + attr.Name.Local
		case xmlNamespace, "xml":
			name = "xml:" + attr.Name.Local
		default: // xmlns declarations and foreign namespaces
			continue
		}
		if name == "style" {
			var sk []string
			style, sk = parseStyle(attr.Value)
			skipped = append(skipped, sk...)
			continue
		}
		out = append(out, attribute{name: name, value: attr.Value})
	}
	return append(out, style...), skipped
}

// parseStyle splits the content of a style attribute into declarations.
func parseStyle(s string) (decls []attribute, skipped []string) {
	for _, pair := range strings.Split(s, ";") {
		k, v, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "!important"))
		if svgAttributes[k] != presentationAttr {
			skipped = append(skipped, k)
			continue
		}
		decls = append(decls, attribute{name: k, value: v})
	}
	return decls, skipped
}

package svgelem

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/qeda/svgprim/geometry"
)

const header = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"
	xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" width="10mm" height="10mm">`

func doc(body string) string { return header + body + "</svg>" }

func pt(x, y float64) Point { return Point{Point: geometry.Pt(x, y)} }

func TestLineClassification(t *testing.T) {
	es := mustImport(t, doc(`
		<path id="h" d="M 0 0 L 10 0" stroke-width="0.2"/>
		<path id="v" d="M 0 0 L 0 10" stroke-width="0.2"/>
		<path id="d" d="M 0 0 L 3 4" stroke-width="0.2"/>
		<path id="p" d="M 0 0 L 10 0 L 10 10" stroke-width="0.2"/>
		<path id="r" d="m 5 5 h 2"/>
	`), nil)

	want := []entry{
		{"h", &HLine{X0: 0, X1: 10, Y: 0, Width: 0.2}},
		{"v", &VLine{X: 0, Y0: 0, Y1: 10, Width: 0.2}},
		{"d", &Line{P: [2]Point{pt(0, 0), pt(3, 4)}, Width: 0.2}},
		{"p", &Polygon{Points: []Point{pt(0, 0), pt(10, 0), pt(10, 10)}, LineWidth: 0.2}},
		{"r", &HLine{X0: 5, X1: 7, Y: 5}},
	}
	diff(t, want, entries(es))
}

func TestIdempotence(t *testing.T) {
	svg := doc(`<path d="M 0 0 L 1 1 L 2 0"/><rect id="r" x="1" y="2" width="3" height="4"/>`)
	first := mustImport(t, svg, nil)
	second := mustImport(t, svg, nil)
	diff(t, entries(first), entries(second))
}

func TestSyntheticIDs(t *testing.T) {
	es := mustImport(t, doc(`
		<path d="M 0 0 L 1 0"/>
		<path id="named" d="M 0 0 L 0 1"/>
		<g><path d="M 0 0 L 1 1"/></g>
	`), nil)
	diff(t, []string{"0", "named", "1"}, es.Keys())
	if _, ok := es.Get("1").(*Line); !ok {
		t.Errorf("expected a line, got %T", es.Get("1"))
	}
}

func TestDuplicateIDs(t *testing.T) {
	// the last write wins, and takes the last position
	es := mustImport(t, doc(`
		<rect id="a" width="1" height="1"/>
		<rect id="b" width="2" height="2"/>
		<rect id="a" width="3" height="3"/>
		<rect width="4" height="4"/>
		<ellipse rx="5" ry="5"/>
	`), nil)
	diff(t, []string{"b", "a", ""}, es.Keys())
	if r := es.Get("a").(*Rect); r.Width != 3 {
		t.Errorf("unexpected rect %v", r)
	}
	if _, ok := es.Get("").(*Ellipse); !ok {
		t.Errorf("expected an ellipse, got %T", es.Get(""))
	}
}

func TestSkipDefs(t *testing.T) {
	es := mustImport(t, doc(`
		<defs>
			<path id="hidden" d="M 0 0 L 1 1"/>
			<rect width="1" height="1"/>
			<ellipse id="dot" rx="1" ry="1"/>
			<text id="label" x="1" y="1">hidden</text>
			<g><path d="M 0 0 L 2 2"/></g>
		</defs>
		<path d="M 0 0 L 1 1"/>
	`), nil)
	diff(t, []string{"0"}, es.Keys())
}

func TestShapes(t *testing.T) {
	es := mustImport(t, doc(`
		<g inkscape:label="layer">
			<rect id="r" x="1" y="2mm" width="3mm" height="4" stroke-width="0.1" fill="none"/>
			<rect id="f" width="1" height="1" fill="#000"/>
			<ellipse id="e" cx="1" cy="2" rx="3" ry="4" stroke-width="0.5" fill="red"/>
			<ellipse id="n" cx="1" cy="2" rx="3" ry="4"/>
		</g>
	`), nil)
	want := []entry{
		{"r", &Rect{X: 1, Y: 2, Width: 3, Height: 4, LineWidth: 0.1}},
		{"f", &Rect{Width: 1, Height: 1, Filled: true}},
		{"e", &Ellipse{Cx: 1, Cy: 2, Rx: 3, Ry: 4, LineWidth: 0.5, Filled: true}},
		{"n", &Ellipse{Cx: 1, Cy: 2, Rx: 3, Ry: 4}},
	}
	diff(t, want, entries(es))
}

func TestFillByDefault(t *testing.T) {
	svg := doc(`
		<rect id="r" width="1" height="1"/>
		<path id="p" d="M 0 0 L 1 0 L 1 1" fill="none"/>
		<ellipse id="e" rx="1" ry="1" fill=" none "/>
	`)
	es := mustImport(t, svg, &Options{FillByDefault: true})
	if !es.Get("r").(*Rect).Filled {
		t.Error("expected filled rect")
	}
	if es.Get("p").(*Polygon).Filled {
		t.Error("expected unfilled polygon")
	}
	if es.Get("e").(*Ellipse).Filled {
		t.Error("expected unfilled ellipse")
	}
}

func TestStyleAttribute(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	es := mustImport(t, doc(`
		<rect id="r" width="1" height="1" fill="none" style="fill: #fff; stroke-width:0.3 ; -inkscape-font-specification:Sans"/>
	`), &Options{Logger: logger})
	diff(t, &Rect{Width: 1, Height: 1, LineWidth: 0.3, Filled: true}, es.Get("r"))
	if !strings.Contains(buf.String(), "-inkscape-font-specification") {
		t.Errorf("expected the skipped property to be logged, got %q", buf.String())
	}
}

func TestText(t *testing.T) {
	es := mustImport(t, doc(`
		<text id="plain" x="1 2 3" y="4,5" font-size="2" text-anchor="middle" dominant-baseline="middle">
			REF**
		</text>
		<text id="span" x="1" y="1" font-size="1.5" text-anchor="end">
			<tspan x="7" dominant-baseline="text-before-edge">  VAL  </tspan>
		</text>
		<text id="last" x="0" y="0">first<tspan>second</tspan>third</text>
		<text id="empty" x="1" y="2" text-anchor="start"><tspan x="3"/></text>
		<text id="h" font-size="2"><tspan font-size="5">A</tspan></text>
	`), nil)
	want := []entry{
		{"plain", &Text{X: 1, Y: 4, Height: 2, Text: "REF**", HAlign: Center, VAlign: Middle}},
		{"span", &Text{X: 7, Y: 1, Height: 1.5, Text: "VAL", HAlign: Right, VAlign: Top}},
		{"last", &Text{Text: "third"}},
		{"empty", &Text{X: 3, Y: 2}},
		{"h", &Text{Height: 2, Text: "A"}},
	}
	diff(t, want, entries(es))
}

func TestNamespaces(t *testing.T) {
	es := mustImport(t, `<svg><path d="M 0 0 L 1 0"/><foreign xmlns="urn:other"><path d="M 0 0 L 0 1"/></foreign></svg>`, nil)
	diff(t, []string{"0"}, es.Keys())

	es = mustImport(t, doc(`<rect id="r" xml:space="preserve" xlink:title="t" width="1" height="1"/>`), nil)
	if es.Len() != 1 {
		t.Errorf("unexpected elements %v", es.Keys())
	}
}

func TestUnsupportedUnits(t *testing.T) {
	for _, body := range []string{
		`<rect x="1in" width="1" height="1"/>`,
		`<ellipse rx="1cm" ry="1"/>`,
		`<path d="M 0 0 L 1 1" stroke-width="1px"/>`,
		`<text x="1em">a</text>`,
	} {
		es, err := ToElements(doc(body), nil)
		if !errors.Is(err, ErrUnsupportedUnits) {
			t.Errorf("%s: expected unsupported units, got %v", body, err)
		}
		if es.Len() != 0 {
			t.Errorf("%s: expected no elements on error", body)
		}
	}
}

func TestInvalidAttribute(t *testing.T) {
	_, err := ToElements(doc(`<path d="M 0 0 L 1 1"/><rect width="1" height="1" bogus="1"/>`), nil)
	var ae *AttributeError
	if !errors.As(err, &ae) {
		t.Fatalf("expected attribute error, got %v", err)
	}
	if ae.Element != "rect" || ae.Name != "bogus" || !errors.Is(err, ErrInvalidAttribute) {
		t.Errorf("unexpected error %v", ae)
	}

	// unknown attributes on ignored elements are fine
	if _, err := ToElements(doc(`<g bogus="1"/>`), nil); err != nil {
		t.Error(err)
	}

	for _, body := range []string{
		`<path d="L 1 1"/>`,
		`<rect width="wide"/>`,
		`<text x="">a</text>`,
	} {
		if _, err := ToElements(doc(body), nil); !errors.Is(err, ErrInvalidAttribute) {
			t.Errorf("%s: expected invalid attribute, got %v", body, err)
		}
	}
}

func TestParseError(t *testing.T) {
	for _, svg := range []string{
		"",
		"   ",
		"<svg><path></svg>",
		"<svg>",
		"not xml at all <",
	} {
		_, err := ToElements(svg, nil)
		if !errors.Is(err, ErrDocumentParse) {
			t.Errorf("%q: expected parse error, got %v", svg, err)
		}
	}
}

func TestReadElements(t *testing.T) {
	es, err := ReadElements("testdata/soic8.svg", nil)
	if err != nil {
		t.Fatal(err)
	}
	counts := map[string]int{}
	for _, el := range es.All() {
		counts[el.Kind()]++
	}
	diff(t, map[string]int{"hline": 2, "vline": 2, "line": 1, "rect": 8, "ellipse": 1, "text": 2}, counts)
	if _, ok := es.Get("ref").(*Text); !ok {
		t.Errorf("expected a reference text, got %T", es.Get("ref"))
	}

	if _, err := ReadElements("testdata/missing.svg", nil); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCharset(t *testing.T) {
	// "é" in latin-1
	svg := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>" + doc("<text id=\"t\">caf\xe9</text>")
	es := mustImport(t, svg, nil)
	if got := es.Get("t").(*Text).Text; got != "café" {
		t.Errorf("unexpected text %q", got)
	}
}

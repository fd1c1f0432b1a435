// Package svgelem imports the drawing primitives of an SVG document:
// straight lines, polygons, rectangles, ellipses and texts.
// It is not an SVG renderer: curves, transforms, gradients and CSS selectors
// are not supported. Lengths are normalized to millimeters.
//
// See the svgdraw package to draw the imported primitives.
package svgelem

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Options tunes the import. The zero value is ready to use.
type Options struct {
	// Logger receives debug records about skipped content.
	// If nil, nothing is logged.
	Logger *log.Logger

	// FillByDefault is used as the Filled field of the shapes
	// without a fill attribute.
	FillByDefault bool
}

// ToElements imports the primitives of the SVG document `svg`.
// opts may be nil.
func ToElements(svg string, opts *Options) (Elements, error) {
	return ReadElementsStream(strings.NewReader(svg), opts)
}

// ReadElementsStream imports the primitives of the SVG document read from `stream`.
// The first error aborts the import, and no elements are returned.
func ReadElementsStream(stream io.Reader, opts *Options) (Elements, error) {
	root, err := parseDocument(stream)
	if err != nil {
		return Elements{}, err
	}
	im := importer{}
	if opts != nil {
		im.options = *opts
	}
	im.logger = im.options.Logger
	if im.logger == nil {
		im.logger = log.New(io.Discard)
	}
	if err = im.addNode(root); err != nil {
		return Elements{}, err
	}
	return im.elements, nil
}

// ReadElements imports the primitives of the named SVG file.
func ReadElements(file string, opts *Options) (Elements, error) {
	fin, err := os.Open(file)
	if err != nil {
		return Elements{}, err
	}
	defer fin.Close()
	return ReadElementsStream(fin, opts)
}

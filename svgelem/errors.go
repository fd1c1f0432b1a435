package svgelem

import (
	"errors"
	"fmt"
)

// Sentinel errors, to be matched with errors.Is. The concrete errors
// returned by the package carry more details and may be inspected with errors.As.
var (
	ErrUnsupportedUnits = errors.New("unsupported svg units")
	ErrInvalidAttribute = errors.New("invalid svg attribute")
	ErrDocumentParse    = errors.New("invalid svg document")
)

// UnitsError is returned when a length uses a unit other than
// none, millimeters or points.
type UnitsError struct {
	Unit Unit
}

func (e *UnitsError) Error() string {
	return fmt.Sprintf("unsupported svg units: %s", e.Unit)
}

func (e *UnitsError) Is(target error) bool { return target == ErrUnsupportedUnits }

// AttributeError is returned when an attribute of a recognized element is not
// part of the SVG schema, or when its value can't be read.
type AttributeError struct {
	Element string // tag of the element holding the attribute
	Name    string
	Value   string
	Err     error // optional cause, for malformed values
}

func (e *AttributeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid attribute %s=%q on <%s>: %v", e.Name, e.Value, e.Element, e.Err)
	}
	return fmt.Sprintf("invalid attribute %s on <%s>", e.Name, e.Element)
}

func (e *AttributeError) Unwrap() error { return e.Err }

func (e *AttributeError) Is(target error) bool { return target == ErrInvalidAttribute }

// ParseError is returned when the input is not a well formed document.
// Err is the error reported by the XML decoder.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid svg document: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrDocumentParse }

var (
	errNoRootElement = errors.New("no root element")
	errEmptyList     = errors.New("empty length list")
)

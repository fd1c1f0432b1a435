package svgelem

import "fmt"

// Unit is the unit suffix of an SVG length.
type Unit uint8

const (
	UnitNone Unit = iota // plain number, user units
	UnitEm
	UnitEx
	UnitPx
	UnitIn
	UnitCm
	UnitMm
	UnitPt
	UnitPc
	UnitPercent
)

var unitSuffixes = map[string]Unit{
	"":   UnitNone,
	"em": UnitEm,
	"ex": UnitEx,
	"px": UnitPx,
	"in": UnitIn,
	"cm": UnitCm,
	"mm": UnitMm,
	"pt": UnitPt,
	"pc": UnitPc,
	"%":  UnitPercent,
}

func (u Unit) String() string {
	switch u {
	case UnitNone:
		return "none"
	case UnitEm:
		return "em"
	case UnitEx:
		return "ex"
	case UnitPx:
		return "px"
	case UnitIn:
		return "in"
	case UnitCm:
		return "cm"
	case UnitMm:
		return "mm"
	case UnitPt:
		return "pt"
	case UnitPc:
		return "pc"
	case UnitPercent:
		return "%"
	default:
		return "<unknown Unit>"
	}
}

// Length is a number with its unit, as written in the document.
type Length struct {
	Num  float64
	Unit Unit
}

func (l Length) String() string {
	if l.Unit == UnitNone {
		return fmt.Sprintf("%g", l.Num)
	}
	return fmt.Sprintf("%g%s", l.Num, l.Unit)
}

// ToMillimeters normalizes l to millimeters. Unitless lengths are taken
// as millimeters; points are converted with 72 points per inch.
// Any other unit is rejected with a *UnitsError.
func ToMillimeters(l Length) (float64, error) {
	switch l.Unit {
	case UnitNone, UnitMm:
		return l.Num, nil
	case UnitPt:
		return l.Num * 25.4 / 72, nil
	default:
		return 0, &UnitsError{Unit: l.Unit}
	}
}

// length reads a number followed by an optional unit suffix.
func (sc *scanner) length() (Length, error) {
	num, err := sc.number()
	if err != nil {
		return Length{}, err
	}
	start := sc.pos
	if sc.peek() == '%' {
		sc.pos++
	} else {
		for c := sc.peek(); ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z'); c = sc.peek() {
			sc.pos++
		}
	}
	suffix := sc.s[start:sc.pos]
	unit, ok := unitSuffixes[suffix]
	if !ok {
		return Length{}, fmt.Errorf("unknown unit %q", suffix)
	}
	return Length{Num: num, Unit: unit}, nil
}

// parseLength parses a single length, surrounded by optional white space.
func parseLength(s string) (Length, error) {
	sc := scanner{s: s}
	sc.skipSpaces()
	l, err := sc.length()
	if err != nil {
		return Length{}, err
	}
	sc.skipSpaces()
	if !sc.eof() {
		return Length{}, fmt.Errorf("unexpected %q after length", sc.s[sc.pos:])
	}
	return l, nil
}

// parseLengthList parses a comma or space separated list of lengths.
func parseLengthList(s string) ([]Length, error) {
	sc := scanner{s: s}
	var out []Length
	sc.skipSpaces()
	for !sc.eof() {
		l, err := sc.length()
		if err != nil {
			return nil, err
		}
		out = append(out, l)
		sc.skipSeparator()
	}
	if len(out) == 0 {
		return nil, errEmptyList
	}
	return out, nil
}

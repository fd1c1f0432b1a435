package svgelem

import (
	"errors"
	"fmt"
	"strings"
)

// This file implements the parsing of the path data micro syntax ("d" attribute).
// Every command is parsed, so that malformed data is reported,
// even if only straight lines are later interpreted.

type pathCommand uint8

const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathHLineTo
	pathVLineTo
	pathCubicTo
	pathSmoothCubicTo
	pathQuadTo
	pathSmoothQuadTo
	pathArcTo
	pathClose
)

var pathLetters = map[byte]pathCommand{
	'M': pathMoveTo,
	'L': pathLineTo,
	'H': pathHLineTo,
	'V': pathVLineTo,
	'C': pathCubicTo,
	'S': pathSmoothCubicTo,
	'Q': pathQuadTo,
	'T': pathSmoothQuadTo,
	'A': pathArcTo,
	'Z': pathClose,
}

// number of arguments expected by each command
var pathArity = [...]int{
	pathMoveTo:        2,
	pathLineTo:        2,
	pathHLineTo:       1,
	pathVLineTo:       1,
	pathCubicTo:       6,
	pathSmoothCubicTo: 4,
	pathQuadTo:        4,
	pathSmoothQuadTo:  2,
	pathArcTo:         7,
	pathClose:         0,
}

func (c pathCommand) letter() byte {
	return "MLHVCSQTAZ"[c]
}

// pathSegment is one command of a path, with its arguments
// as written (relative coordinates are not resolved).
type pathSegment struct {
	cmd  pathCommand
	abs  bool
	args []float64
}

func (s pathSegment) String() string {
	l := s.cmd.letter()
	if !s.abs {
		l += 'a' - 'A'
	}
	chunks := []string{string(l)}
	for _, a := range s.args {
		chunks = append(chunks, fmt.Sprintf("%g", a))
	}
	return strings.Join(chunks, " ")
}

var errMissingMoveTo = errors.New("path data must start with a moveto")

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// parsePathData parses the content of a "d" attribute.
// A command letter may be omitted when it repeats the previous one;
// coordinates following a moveto are implicit linetos.
func parsePathData(d string) ([]pathSegment, error) {
	sc := scanner{s: d}
	var (
		segments []pathSegment
		previous byte
	)
	sc.skipSpaces()
	for !sc.eof() {
		c := sc.peek()
		var letter byte
		if _, isCommand := pathLetters[upper(c)]; isCommand {
			letter = c
			sc.pos++
		} else if sc.startsNumber() && previous != 0 && upper(previous) != 'Z' {
			letter = previous
			switch previous {
			case 'M':
				letter = 'L'
			case 'm':
				letter = 'l'
			}
		} else {
			return nil, fmt.Errorf("unexpected %q at offset %d", c, sc.pos)
		}
		if len(segments) == 0 && upper(letter) != 'M' {
			return nil, errMissingMoveTo
		}

		seg := pathSegment{cmd: pathLetters[upper(letter)], abs: letter == upper(letter)}
		n := pathArity[seg.cmd]
		seg.args = make([]float64, 0, n)
		sc.skipSpaces()
		for i := 0; i < n; i++ {
			if i > 0 {
				sc.skipSeparator()
			}
			var (
				v   float64
				err error
			)
			if seg.cmd == pathArcTo && (i == 3 || i == 4) {
				v, err = sc.flag()
			} else {
				v, err = sc.number()
			}
			if err != nil {
				return nil, fmt.Errorf("command %c: %w", letter, err)
			}
			seg.args = append(seg.args, v)
		}
		segments = append(segments, seg)
		previous = letter
		sc.skipSeparator()
	}
	return segments, nil
}

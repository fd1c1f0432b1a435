package svgelem

import (
	"fmt"
	"strconv"
)

// scanner reads the numeric micro syntaxes used by attribute values:
// numbers, lengths, lists and path data.
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) eof() bool { return sc.pos >= len(sc.s) }

// peek returns the current byte, or 0 at the end of input.
func (sc *scanner) peek() byte {
	if sc.eof() {
		return 0
	}
	return sc.s[sc.pos]
}

func (sc *scanner) peekAt(offset int) byte {
	if sc.pos+offset >= len(sc.s) {
		return 0
	}
	return sc.s[sc.pos+offset]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func (sc *scanner) skipSpaces() {
	for !sc.eof() && isSpace(sc.s[sc.pos]) {
		sc.pos++
	}
}

// skipSeparator skips white space with at most one comma.
func (sc *scanner) skipSeparator() {
	sc.skipSpaces()
	if sc.peek() == ',' {
		sc.pos++
		sc.skipSpaces()
	}
}

// startsNumber reports whether a number may begin at the current position.
func (sc *scanner) startsNumber() bool {
	c := sc.peek()
	return isDigit(c) || c == '.' || c == '-' || c == '+'
}

// number reads a float, following the SVG number grammar:
// sign? (digits ('.' digits?)? | '.' digits) exponent?
func (sc *scanner) number() (float64, error) {
	start := sc.pos
	if c := sc.peek(); c == '+' || c == '-' {
		sc.pos++
	}
	digits := 0
	for isDigit(sc.peek()) {
		sc.pos++
		digits++
	}
	if sc.peek() == '.' {
		sc.pos++
		for isDigit(sc.peek()) {
			sc.pos++
			digits++
		}
	}
	if digits == 0 {
		sc.pos = start
		return 0, fmt.Errorf("expected number at offset %d", start)
	}
	// an 'e' not followed by digits belongs to a unit (em, ex)
	if c := sc.peek(); c == 'e' || c == 'E' {
		next := sc.peekAt(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(sc.peekAt(2))) {
			sc.pos += 2
			for isDigit(sc.peek()) {
				sc.pos++
			}
		}
	}
	f, err := strconv.ParseFloat(sc.s[start:sc.pos], 64)
	if err != nil {
		return 0, err
	}
	return f, nil
}

// flag reads an arc flag, which is a single '0' or '1' and
// may be written without separator.
func (sc *scanner) flag() (float64, error) {
	switch sc.peek() {
	case '0':
		sc.pos++
		return 0, nil
	case '1':
		sc.pos++
		return 1, nil
	}
	return 0, fmt.Errorf("expected flag at offset %d", sc.pos)
}

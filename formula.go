package gridcalc

import (
	"strings"
)

// Formula is the raw, unevaluated split of a "=NAME(LEFT,RIGHT)" cell.
// operands are literal or reference tokens, never nested formulas.
type Formula struct {
	Operation string
	Left      string
	Right     string
}

// ToString rebuilds the canonical formula text
func (f Formula) ToString() string {
	return string(charFormula) + f.Operation + string(charLParen) + f.Left + string(charComma) + f.Right + string(charRParen)
}

// ParseFormula extracts the operation name and the two operand tokens from
// formula text. it scans for three spans in order: "=" to the first "(",
// that "(" to the next ",", and that "," to the last ")". every span must be
// non-empty. nesting is not understood, so "=ADD(MUL(1,2),3)" splits into
// operation "ADD" with operands "MUL(1" and "2),3".
func ParseFormula(text string) (Formula, error) {
	eq := strings.IndexByte(text, charFormula)
	if eq < 0 {
		return Formula{}, &ParseError{Text: text, Delimiter: "=...("}
	}

	open := strings.IndexByte(text[eq+1:], charLParen)
	if open <= 0 {
		return Formula{}, &ParseError{Text: text, Delimiter: "=...("}
	}
	open += eq + 1

	comma := strings.IndexByte(text[open+1:], charComma)
	if comma <= 0 {
		return Formula{}, &ParseError{Text: text, Delimiter: "(...,"}
	}
	comma += open + 1

	closing := strings.LastIndexByte(text, charRParen)
	if closing <= comma+1 {
		return Formula{}, &ParseError{Text: text, Delimiter: ",...)"}
	}

	return Formula{
		Operation: text[eq+1 : open],
		Left:      text[open+1 : comma],
		Right:     text[comma+1 : closing],
	}, nil
}

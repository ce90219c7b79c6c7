package gridcalc

import (
	"fmt"
	"strings"
)

// sigils that decide how a cell's text is read
const (
	charFormula   = '='
	charReference = '$'
	charLParen    = '('
	charRParen    = ')'
	charComma     = ','
)

// CellKind tags what a cell's raw text holds.
type CellKind uint8

const (
	CellKindLiteral   CellKind = 0 // a decimal number, e.g. "-1.5"
	CellKindReference CellKind = 1 // a reference to another cell, e.g. "$B2"
	CellKindFormula   CellKind = 2 // a two operand formula, e.g. "=ADD($A1,4)"
)

// CellKindMapper maps cell kinds to their display names
var CellKindMapper = map[CellKind]string{
	CellKindLiteral:   "literal",
	CellKindReference: "reference",
	CellKindFormula:   "formula",
}

func (k CellKind) String() string {
	if name, ok := CellKindMapper[k]; ok {
		return name
	}
	return fmt.Sprintf("CellKind(%d)", uint8(k))
}

// Classify reports the kind of a cell's text. the formula marker wins over
// the reference sigil, so "=ADD($A1,1)" is a formula even though it holds a
// reference. anything else is treated as a literal.
func Classify(text string) CellKind {
	switch {
	case strings.IndexByte(text, charFormula) >= 0:
		return CellKindFormula
	case strings.IndexByte(text, charReference) >= 0:
		return CellKindReference
	default:
		return CellKindLiteral
	}
}

// CellAddress is a zero-based position in a grid.
type CellAddress struct {
	Row    int
	Column int
}

// String renders the address in reference notation, "$A1" for (0, 0).
// columns outside A-Z fall back to a numeric form.
func (a CellAddress) String() string {
	if a.Column >= 0 && a.Column < maxColumns {
		return fmt.Sprintf("%c%c%d", charReference, 'A'+rune(a.Column), a.Row+1)
	}
	return fmt.Sprintf("(%d,%d)", a.Row, a.Column)
}

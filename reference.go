package gridcalc

import (
	"fmt"
	"strconv"
)

// single-letter column encoding limits grids to A..Z
const maxColumns = 26

// ParseReference decodes a reference token like "$A1" into a zero-based
// address. the letter after the sigil is the column (A=0 ... Z=25) and the
// remaining digits are the 1-based row.
func ParseReference(token string) (CellAddress, error) {
	if len(token) < 3 || token[0] != charReference {
		return CellAddress{}, &FormatError{Text: token, Err: fmt.Errorf("not a reference")}
	}

	// parse column (single letter only)
	letter := token[1]
	if letter < 'A' || letter > 'Z' {
		return CellAddress{}, &FormatError{Text: token, Err: fmt.Errorf("column %q is not a letter A-Z", letter)}
	}
	col := int(letter - 'A')

	// parse row (1-based in notation, but we want 0-based)
	rowStr := token[2:]
	for i := 0; i < len(rowStr); i++ {
		if rowStr[i] < '0' || rowStr[i] > '9' {
			return CellAddress{}, &FormatError{Text: token, Err: strconv.ErrSyntax}
		}
	}
	rowNum, err := strconv.Atoi(rowStr)
	if err != nil {
		return CellAddress{}, &FormatError{Text: token, Err: err}
	}

	return CellAddress{Row: rowNum - 1, Column: col}, nil
}

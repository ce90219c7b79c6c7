package gridcalc

import "iter"

// Grid is a rectangular, read-only table of cell texts. row and column
// indices are zero-based.
type Grid struct {
	cells   [][]string
	rows    int
	columns int
}

// NewGrid wraps rows of cell text. every row must have as many cells as the
// first one. the rows are copied so later edits by the caller do not leak
// into an evaluation.
func NewGrid(rows [][]string) (*Grid, error) {
	g := &Grid{rows: len(rows)}
	if len(rows) == 0 {
		return g, nil
	}

	g.columns = len(rows[0])
	g.cells = make([][]string, len(rows))
	for i, row := range rows {
		if len(row) != g.columns {
			return nil, &ShapeError{Row: i, Want: g.columns, Got: len(row)}
		}
		g.cells[i] = append([]string(nil), row...)
	}
	return g, nil
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the number of columns
func (g *Grid) Columns() int {
	return g.columns
}

// Contains reports whether addr lies within the grid
func (g *Grid) Contains(addr CellAddress) bool {
	return addr.Row >= 0 && addr.Row < g.rows && addr.Column >= 0 && addr.Column < g.columns
}

// GetCell returns the text at addr, or false if addr is out of bounds
func (g *Grid) GetCell(addr CellAddress) (string, bool) {
	if !g.Contains(addr) {
		return "", false
	}
	return g.cells[addr.Row][addr.Column], true
}

// Iterate yields every cell in row-major order
func (g *Grid) Iterate() iter.Seq2[CellAddress, string] {
	return func(yield func(CellAddress, string) bool) {
		for row := 0; row < g.rows; row++ {
			for col := 0; col < g.columns; col++ {
				if !yield(CellAddress{Row: row, Column: col}, g.cells[row][col]) {
					return
				}
			}
		}
	}
}

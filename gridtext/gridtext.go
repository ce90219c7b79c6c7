// Package gridtext reads and writes grids in their line-oriented text form.
// each line is a row and cells are separated by commas, except commas that
// sit inside a formula's parentheses, so "1,=ADD(1,2)" is two cells.
package gridtext

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// SplitRow splits one line into cells. a "(" opens a parenthesized span and
// a ")" closes it; nesting is not counted, the first ")" ends the span.
func SplitRow(line string) []string {
	var cells []string
	var current strings.Builder
	inParens := false

	for _, ch := range line {
		switch ch {
		case '(':
			inParens = true
		case ')':
			inParens = false
		}
		if ch == ',' && !inParens {
			cells = append(cells, current.String())
			current.Reset()
			continue
		}
		current.WriteRune(ch)
	}
	return append(cells, current.String())
}

// JoinRow is the inverse of SplitRow
func JoinRow(cells []string) string {
	return strings.Join(cells, ",")
}

// Read parses every line of r into a row of cells. lines may end in "\n" or
// "\r\n"; a final line without a terminator is still read. row lengths are
// not checked here.
func Read(r io.Reader) ([][]string, error) {
	var rows [][]string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		rows = append(rows, SplitRow(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading grid: %w", err)
	}
	return rows, nil
}

// Write renders rows one per line, each terminated by "\n"
func Write(w io.Writer, rows [][]string) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		if _, err := bw.WriteString(JoinRow(row)); err != nil {
			return fmt.Errorf("writing grid: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing grid: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing grid: %w", err)
	}
	return nil
}

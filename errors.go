package gridcalc

import (
	"fmt"
	"strings"
)

// ErrorCode identifies the kind of failure that aborted an evaluation
type ErrorCode uint8

const (
	ErrorCodeParse  ErrorCode = 1 // formula text is not shaped =NAME(A,B)
	ErrorCodeFormat ErrorCode = 2 // a token expected to be numeric is not
	ErrorCodeRef    ErrorCode = 3 // a reference points outside the grid
	ErrorCodeCycle  ErrorCode = 4 // a reference chain loops back on itself
	ErrorCodeShape  ErrorCode = 5 // input rows differ in length
)

// ErrorMapper maps error codes to their short names
var ErrorMapper = map[ErrorCode]string{
	ErrorCodeParse:  "#PARSE!",
	ErrorCodeFormat: "#FORMAT!",
	ErrorCodeRef:    "#REF!",
	ErrorCodeCycle:  "#CYCLE!",
	ErrorCodeShape:  "#SHAPE!",
}

// CodedError is implemented by every error the evaluator returns
type CodedError interface {
	error
	Code() ErrorCode
}

var (
	_ CodedError = (*ParseError)(nil)
	_ CodedError = (*FormatError)(nil)
	_ CodedError = (*ReferenceError)(nil)
	_ CodedError = (*CycleError)(nil)
	_ CodedError = (*ShapeError)(nil)
)

// ParseError reports formula text that does not match =NAME(A,B) at one of
// its delimiter boundaries. Delimiter holds the pair that was missing, e.g.
// "(...,".
type ParseError struct {
	Text      string
	Delimiter string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not extract formula '%s' elements: missing %s span", e.Text, e.Delimiter)
}

func (e *ParseError) Code() ErrorCode { return ErrorCodeParse }

// FormatError reports a literal, or the row digits of a reference, that is
// not a valid number.
type FormatError struct {
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid number %q: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("invalid number %q", e.Text)
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Code() ErrorCode { return ErrorCodeFormat }

// ReferenceError reports a reference whose decoded position lies outside
// the grid being evaluated
type ReferenceError struct {
	Reference string
	Address   CellAddress
	Rows      int
	Columns   int
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("reference %s resolves to row %d, column %d outside a %dx%d grid",
		e.Reference, e.Address.Row, e.Address.Column, e.Rows, e.Columns)
}

func (e *ReferenceError) Code() ErrorCode { return ErrorCodeRef }

// CycleError is returned only by evaluators built with WithCycleDetection.
// Chain lists the positions on the reference stack, ending with the one
// that was revisited.
type CycleError struct {
	Address CellAddress
	Chain   []CellAddress
}

func (e *CycleError) Error() string {
	parts := make([]string, 0, len(e.Chain))
	for _, addr := range e.Chain {
		parts = append(parts, addr.String())
	}
	return fmt.Sprintf("circular reference at %s: %s", e.Address, strings.Join(parts, " -> "))
}

func (e *CycleError) Code() ErrorCode { return ErrorCodeCycle }

// ShapeError reports a grid whose rows are not all the same length
type ShapeError struct {
	Row  int
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("row %d has %d cells, want %d", e.Row+1, e.Got, e.Want)
}

func (e *ShapeError) Code() ErrorCode { return ErrorCodeShape }

package gridcalc

import (
	"errors"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// Evaluator resolves the cells of one grid. it owns the text and position
// caches for a single evaluation session and is not safe for concurrent
// use; build a new one per grid.
type Evaluator struct {
	grid             *Grid
	storage          *Storage
	operations       *BuiltInOperations
	calculationStack *CalculationStack // nil unless cycle detection is on
	logger           *slog.Logger
}

// Option configures an Evaluator
type Option func(*Evaluator)

// WithLogger sets the logger used for debug tracing of an evaluation
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithCycleDetection makes circular references fail with a *CycleError.
// without it a cycle recurses until the goroutine stack is exhausted.
func WithCycleDetection() Option {
	return func(e *Evaluator) {
		e.calculationStack = NewCalculationStack()
	}
}

// NewEvaluator creates an evaluator over grid with empty caches
func NewEvaluator(grid *Grid, opts ...Option) *Evaluator {
	e := &Evaluator{
		grid:       grid,
		storage:    NewStorage(),
		operations: NewDefaultBuiltInOperations(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate computes every cell of rows with a fresh evaluator and returns
// the floored integer results as text, shaped like the input.
func Evaluate(rows [][]string, opts ...Option) ([][]string, error) {
	grid, err := NewGrid(rows)
	if err != nil {
		return nil, err
	}
	return NewEvaluator(grid, opts...).Calculate()
}

// Calculate walks the grid in row-major order and evaluates every cell.
// the first malformed cell aborts the pass; no partial output is returned.
func (e *Evaluator) Calculate() ([][]string, error) {
	e.logger.Debug("Grid evaluation started.", "rows", e.grid.Rows(), "columns", e.grid.Columns())

	out := make([][]string, e.grid.Rows())
	for row := range out {
		out[row] = make([]string, e.grid.Columns())
	}

	for addr, text := range e.grid.Iterate() {
		result, err := e.CalculateCell(text)
		if err != nil {
			e.logger.Debug("Grid evaluation aborted.", "cell", addr.String(), "error", err)
			return nil, err
		}
		out[addr.Row][addr.Column] = FormatResult(result)
	}

	e.logger.Debug("Grid evaluation finished.", "stats", e.storage.Stats())
	return out, nil
}

// CalculateCell evaluates one cell's text against the evaluator's grid.
// formulas are split and their operands resolved, references are followed
// recursively, and anything else is parsed as a number. the result is
// cached by text.
func (e *Evaluator) CalculateCell(text string) (float64, error) {
	if v, exists := e.storage.texts.Get(text); exists {
		e.logger.Debug("Text cache hit.", "text", text)
		return v, nil
	}

	var result float64
	var err error
	switch Classify(text) {
	case CellKindFormula:
		result, err = e.calculateFormula(text)
	case CellKindReference:
		result, err = e.resolveElement(text)
	default:
		result, err = parseLiteral(text)
	}
	if err != nil {
		return 0, err
	}

	e.storage.texts.Put(text, result)
	return result, nil
}

// calculateFormula splits a formula and applies its operation to the
// resolved operands
func (e *Evaluator) calculateFormula(text string) (float64, error) {
	formula, err := ParseFormula(text)
	if err != nil {
		return 0, err
	}

	left, err := e.resolveElement(formula.Left)
	if err != nil {
		return 0, err
	}
	right, err := e.resolveElement(formula.Right)
	if err != nil {
		return 0, err
	}

	if !e.operations.IsKnown(formula.Operation) {
		e.logger.Debug("Unknown operation evaluates to zero.", "operation", formula.Operation, "text", text)
	}
	return e.operations.Call(formula.Operation, left, right), nil
}

// resolveElement turns a literal or reference token into a number. this is
// the only place evaluation recurses: a reference reads the target cell's
// text and evaluates it, caching the value by position.
func (e *Evaluator) resolveElement(token string) (float64, error) {
	if strings.IndexByte(token, charReference) < 0 {
		return parseLiteral(token)
	}

	addr, err := ParseReference(token)
	if err != nil {
		return 0, err
	}

	if v, exists := e.storage.positions.Get(addr); exists {
		return v, nil
	}

	target, ok := e.grid.GetCell(addr)
	if !ok {
		return 0, &ReferenceError{
			Reference: token,
			Address:   addr,
			Rows:      e.grid.Rows(),
			Columns:   e.grid.Columns(),
		}
	}

	if e.calculationStack != nil {
		if e.calculationStack.isProcessing(addr) {
			chain := append(e.calculationStack.chain(), addr)
			e.logger.Debug("Circular reference detected.", "cell", addr.String())
			return 0, &CycleError{Address: addr, Chain: chain}
		}
		e.calculationStack.push(addr)
		defer e.calculationStack.pop()
	}

	e.logger.Debug("Resolving reference.", "reference", token, "cell", addr.String(), "text", target)
	result, err := e.CalculateCell(target)
	if err != nil {
		return 0, err
	}

	e.storage.positions.Put(addr, result)
	return result, nil
}

// Stats returns cache counters for the session so far
func (e *Evaluator) Stats() Stats {
	return e.storage.Stats()
}

// parseLiteral parses a decimal number. surrounding whitespace is ignored
// and a literal too large for float64 becomes +-Inf rather than an error.
// spelled-out values such as "Inf" or "NaN" are rejected: a literal needs
// at least one digit.
func parseLiteral(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if strings.IndexFunc(trimmed, isDigit) < 0 {
		return 0, &FormatError{Text: text, Err: strconv.ErrSyntax}
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, &FormatError{Text: text, Err: errors.Unwrap(err)}
	}
	return v, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// FormatResult floors v and renders it as an integer. NaN renders as "0"
// and values beyond the int64 range saturate at its bounds.
func FormatResult(v float64) string {
	f := math.Floor(v)
	switch {
	case math.IsNaN(f):
		return "0"
	case f >= float64(math.MaxInt64):
		return strconv.FormatInt(math.MaxInt64, 10)
	case f <= float64(math.MinInt64):
		return strconv.FormatInt(math.MinInt64, 10)
	}
	return strconv.FormatInt(int64(f), 10)
}

// CalculationStack tracks the reference positions currently being resolved
type CalculationStack struct {
	items      []CellAddress            // stack of positions being resolved
	processing map[CellAddress]struct{} // same positions, for lookup
}

// NewCalculationStack creates a new calculation stack
func NewCalculationStack() *CalculationStack {
	return &CalculationStack{
		items:      make([]CellAddress, 0),
		processing: make(map[CellAddress]struct{}),
	}
}

// push adds a position to the stack
func (cs *CalculationStack) push(addr CellAddress) {
	cs.items = append(cs.items, addr)
	cs.processing[addr] = struct{}{}
}

// pop removes and returns the top position from the stack
func (cs *CalculationStack) pop() (CellAddress, bool) {
	if len(cs.items) == 0 {
		return CellAddress{}, false
	}
	addr := cs.items[len(cs.items)-1]
	cs.items = cs.items[:len(cs.items)-1]
	delete(cs.processing, addr)
	return addr, true
}

// isProcessing checks if a position is currently being resolved
func (cs *CalculationStack) isProcessing(addr CellAddress) bool {
	_, exists := cs.processing[addr]
	return exists
}

// chain returns a copy of the stack, bottom first
func (cs *CalculationStack) chain() []CellAddress {
	return append([]CellAddress(nil), cs.items...)
}

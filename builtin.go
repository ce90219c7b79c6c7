package gridcalc

import (
	"math"
)

// BuiltInOperations contains the binary operations a formula may name
type BuiltInOperations struct{}

// NewDefaultBuiltInOperations creates the operation table used by evaluators
func NewDefaultBuiltInOperations() *BuiltInOperations {
	return &BuiltInOperations{}
}

// Call applies the named operation to two resolved operands. names are
// matched exactly (upper case). an unknown name is not an error, it yields 0.
func (bo *BuiltInOperations) Call(name string, left, right float64) float64 {
	fn, ok := bo.lookup(name)
	if !ok {
		return 0
	}
	return fn(left, right)
}

// IsKnown reports whether name is one of the built-in operations
func (bo *BuiltInOperations) IsKnown(name string) bool {
	_, ok := bo.lookup(name)
	return ok
}

func (bo *BuiltInOperations) lookup(name string) (func(left, right float64) float64, bool) {
	switch name {
	case "ADD":
		return bo.ADD, true
	case "SUB":
		return bo.SUB, true
	case "MUL":
		return bo.MUL, true
	case "DIV":
		return bo.DIV, true
	case "MOD":
		return bo.MOD, true
	}
	return nil, false
}

func (bo *BuiltInOperations) ADD(left, right float64) float64 {
	return left + right
}

func (bo *BuiltInOperations) SUB(left, right float64) float64 {
	return left - right
}

func (bo *BuiltInOperations) MUL(left, right float64) float64 {
	return left * right
}

// DIV follows IEEE 754: x/0 is +-Inf and 0/0 is NaN
func (bo *BuiltInOperations) DIV(left, right float64) float64 {
	return left / right
}

// MOD is not a mathematical modulo. the divisor is made positive, then a
// negative dividend is shifted to right-left before both are truncated to
// 32-bit integers and reduced with %. so MOD(-7, 3) is (3+7) % 3 = 1.
// a divisor that truncates to zero gives NaN.
func (bo *BuiltInOperations) MOD(left, right float64) float64 {
	right = math.Abs(right)
	if left < 0 {
		left = right - left
	}

	divisor := truncInt32(right)
	if divisor == 0 {
		return math.NaN()
	}
	return float64(truncInt32(left) % divisor)
}

// truncInt32 converts toward zero, saturating at the int32 bounds. NaN
// converts to 0.
func truncInt32(v float64) int32 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}

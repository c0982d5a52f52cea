package vm

import (
	"math"

	"github.com/robbyt/go-tapescript/engines/flatline/token"
)

// approxEpsilon is the tolerance of the approximate-equality operator.
const approxEpsilon = 1e-8

// applyOperator folds one operand into the running result. It is total: every
// operator kind yields a value and nothing here can fail or touch the store.
//
// OpAssign returns the right operand unchanged; committing it to a variable
// is the machine's job, decided by token position, not the operator's.
func applyOperator(left, right float64, op token.OperatorKind) float64 {
	switch op {
	case token.OpAdd:
		return left + right
	case token.OpSubtract:
		return left - right
	case token.OpMultiply:
		return left * right
	case token.OpLessOrEqual:
		return boolValue(left <= right)
	case token.OpGreaterThan:
		return boolValue(left > right)
	case token.OpApproxEqual:
		return boolValue(math.Abs(left-right) < approxEpsilon)
	case token.OpAssign:
		return right
	default:
		return right
	}
}

func boolValue(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}

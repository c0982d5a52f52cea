package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robbyt/go-tapescript/engines/flatline/token"
)

func TestApplyOperator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		left  float64
		right float64
		op    token.OperatorKind
		want  float64
	}{
		{"add", 2, 3, token.OpAdd, 5},
		{"add negative", 2, -3, token.OpAdd, -1},
		{"subtract", 5, 3, token.OpSubtract, 2},
		{"multiply", 4, 2.5, token.OpMultiply, 10},
		{"less or equal when below", 3, 5, token.OpLessOrEqual, 1},
		{"less or equal when equal", 5, 5, token.OpLessOrEqual, 1},
		{"less or equal when above", 7, 5, token.OpLessOrEqual, 0},
		{"greater than when above", 7, 5, token.OpGreaterThan, 1},
		{"greater than when equal", 5, 5, token.OpGreaterThan, 0},
		{"greater than when below", 3, 5, token.OpGreaterThan, 0},
		{"approx equal within epsilon", 1.0, 1.0 + 5e-9, token.OpApproxEqual, 1},
		{"approx equal exact", 0.5, 0.5, token.OpApproxEqual, 1},
		{"approx equal outside epsilon", 1.0, 1.0 + 2e-8, token.OpApproxEqual, 0},
		{"approx equal after float drift", 0.1 + 0.2, 0.3, token.OpApproxEqual, 1},
		{"assign passes the right operand through", 99, 7, token.OpAssign, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, applyOperator(tt.left, tt.right, tt.op))
		})
	}
}

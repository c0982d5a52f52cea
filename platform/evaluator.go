package platform

import (
	"context"

	"github.com/robbyt/go-tapescript/platform/data"
)

// EvalOnly is the interface for running a pre-compiled program.
type EvalOnly interface {
	// Eval runs the program compiled during evaluator creation, with input
	// data pulled from the context through the ExecutableUnit's DataProvider.
	//
	// This design encourages the "compile once, run many times" pattern,
	// where program validation (expensive) is separated from execution
	// (inexpensive). For per-run data, use a ContextProvider with the
	// constants.EvalData key.
	Eval(ctx context.Context) (EvaluatorResponse, error)
}

// Evaluator combines EvalOnly with the data.Setter interface, providing a
// unified API for data preparation and program evaluation. The two steps stay
// separately callable, so preparation and execution can happen on different
// goroutines or hosts.
type Evaluator interface {
	EvalOnly
	data.Setter
}

// EvaluatorResponse is the result of one program evaluation.
type EvaluatorResponse interface {
	// Type of the result value.
	Type() data.Types

	// Inspect returns a printable representation of the result value.
	Inspect() string

	// Interface converts the result to a native Go value.
	Interface() any

	// GetProgramExeID returns the ID of the executable unit that produced
	// this result.
	GetProgramExeID() string

	// GetExecTime returns how long the evaluation took, as a formatted string.
	GetExecTime() string
}

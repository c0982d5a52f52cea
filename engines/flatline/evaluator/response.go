package evaluator

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/robbyt/go-tapescript/platform/data"
)

// execResult is the outcome of one flatline program run: the final value of
// the evaluated token range, plus execution metadata.
type execResult struct {
	value        float64
	execTime     time.Duration
	programExeID string
	logHandler   slog.Handler
	logger       *slog.Logger
}

func newEvalResult(
	handler slog.Handler,
	value float64,
	execTime time.Duration,
	versionID string,
) *execResult {
	if handler == nil {
		defaultHandler := slog.NewTextHandler(os.Stdout, nil)
		handler = defaultHandler.WithGroup("flatline")
		defaultLogger := slog.New(handler)
		defaultLogger.Warn("Handler is nil, using the default logger configuration.")
	}

	return &execResult{
		value:        value,
		execTime:     execTime,
		programExeID: versionID,
		logHandler:   handler,
		logger:       slog.New(handler.WithGroup("execResult")),
	}
}

func (r *execResult) String() string {
	return fmt.Sprintf(
		"ExecResult{Type: %s, Value: %s, ExecTime: %s, ProgramExeID: %s}",
		r.Type(), r.Inspect(), r.GetExecTime(), r.GetProgramExeID())
}

// Type reports data.FLOAT: every flatline program evaluates to a float64.
func (r *execResult) Type() data.Types {
	return data.FLOAT
}

// Inspect returns the result value formatted with the shortest
// representation that round-trips.
func (r *execResult) Inspect() string {
	return strconv.FormatFloat(r.value, 'g', -1, 64)
}

// Interface returns the result as a native float64.
func (r *execResult) Interface() any {
	return r.value
}

func (r *execResult) GetProgramExeID() string {
	return r.programExeID
}

func (r *execResult) GetExecTime() string {
	return r.execTime.String()
}

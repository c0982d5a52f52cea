package evaluator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-tapescript/engines/flatline/token"
	"github.com/robbyt/go-tapescript/engines/flatline/vm"
	"github.com/robbyt/go-tapescript/internal/helpers"
	"github.com/robbyt/go-tapescript/platform"
	"github.com/robbyt/go-tapescript/platform/data"
	"github.com/robbyt/go-tapescript/platform/program"
)

// ErrInvalidInputType is returned when a data provider supplies a variable
// that cannot be represented in the machine's float64 store.
var ErrInvalidInputType = errors.New("input variable is not numeric")

// Evaluator runs compiled flatline token programs on a vm.Machine.
//
// The machine (and with it the variable table) lives as long as the
// Evaluator: values assigned during one Eval call are still visible to the
// next one on the same instance. An Evaluator is single-threaded, matching
// the machine it owns.
type Evaluator struct {
	// execUnit contains the compiled token program and data provider
	execUnit *program.ExecutableUnit

	machine *vm.Machine

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a new Evaluator object
func New(
	handler slog.Handler,
	execUnit *program.ExecutableUnit,
) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, "flatline", "Evaluator")

	return &Evaluator{
		execUnit:   execUnit,
		machine:    vm.New(),
		logHandler: handler,
		logger:     logger,
	}
}

func (be *Evaluator) String() string {
	return "flatline.Evaluator"
}

// loadInputData retrieves input data using the data provider in the
// executable unit. Returns the raw map that will seed the machine's
// variable table.
func (be *Evaluator) loadInputData(ctx context.Context) (map[string]any, error) {
	logger := be.logger.WithGroup("loadInputData")

	// If no executable unit or data provider, return empty map
	if be.execUnit == nil || be.execUnit.GetDataProvider() == nil {
		logger.WarnContext(ctx, "no data provider available, using empty data")
		return make(map[string]any), nil
	}

	inputData, err := be.execUnit.GetDataProvider().GetData(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get input data from provider", "error", err)
		return nil, err
	}

	if len(inputData) == 0 {
		logger.WarnContext(ctx, "empty input data returned from provider")
	}
	logger.DebugContext(ctx, "input data loaded from provider", "inputData", inputData)
	return inputData, nil
}

// seedStore commits provider data into the machine's variable table. The
// store holds float64 only, so every value must be numeric; anything else is
// a per-variable typed error rather than a silent truncation.
func (be *Evaluator) seedStore(inputData map[string]any) error {
	store := be.machine.Store()
	for name, value := range inputData {
		f, err := coerceToFloat(name, value)
		if err != nil {
			return err
		}
		store.Assign(name, f)
	}
	return nil
}

// coerceToFloat widens any numeric Go type to float64.
func coerceToFloat(name string, value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%w: variable %q has type %T", ErrInvalidInputType, name, value)
	}
}

// exec runs the token program on the machine and wraps the outcome.
func (be *Evaluator) exec(toks []token.Token) (*execResult, error) {
	startTime := time.Now()
	value, err := be.machine.Evaluate(toks)
	execTime := time.Since(startTime)

	if err != nil {
		return nil, fmt.Errorf("flatline execution error: %w", err)
	}
	return newEvalResult(be.logHandler, value, execTime, ""), nil
}

// Eval evaluates the loaded token program, seeding the machine's variable
// table from the unit's data provider first. Store state survives between
// calls, so sequential Eval calls on one Evaluator see each other's
// assignments.
func (be *Evaluator) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	logger := be.logger.WithGroup("Eval")
	if be.execUnit == nil {
		return nil, fmt.Errorf("executable unit is nil")
	}

	if be.execUnit.GetContent() == nil {
		return nil, fmt.Errorf("content is nil")
	}

	bytecode := be.execUnit.GetContent().GetByteCode()
	if bytecode == nil {
		return nil, fmt.Errorf("bytecode is nil")
	}

	exeID := be.execUnit.GetID()
	if exeID == "" {
		return nil, fmt.Errorf("exeID is empty")
	}
	logger = logger.With("exeID", exeID)

	// 1. Type assert the bytecode into the flatline token sequence
	toks, ok := bytecode.([]token.Token)
	if !ok {
		return nil, fmt.Errorf(
			"unable to type assert bytecode into []token.Token for ID: %s",
			exeID,
		)
	}

	// 2. Get the raw input data
	rawInputData, err := be.loadInputData(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get input data: %w", err)
	}

	// 3. Seed the variable table
	if err := be.seedStore(rawInputData); err != nil {
		return nil, fmt.Errorf("failed to seed variable store: %w", err)
	}

	// 4. Execute the program
	result, err := be.exec(toks)
	if err != nil {
		return nil, fmt.Errorf("exec error: %w", err)
	}
	logger.DebugContext(ctx, "exec complete", "result", result)

	// 5. Collect results
	result.programExeID = exeID
	return result, nil
}

// AddDataToContext implements the data.Setter interface which stores and
// prepares runtime data which can be eventually passed to the Eval method.
func (be *Evaluator) AddDataToContext(
	ctx context.Context,
	d ...map[string]any,
) (context.Context, error) {
	logger := be.logger.WithGroup("AddDataToContext")

	if be.execUnit == nil || be.execUnit.GetDataProvider() == nil {
		return ctx, fmt.Errorf("no data provider available")
	}

	return data.AddDataToContextHelper(
		ctx,
		logger,
		be.execUnit.GetDataProvider(),
		d...,
	)
}

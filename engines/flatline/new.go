package flatline

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-tapescript/engines/flatline/compiler"
	"github.com/robbyt/go-tapescript/engines/flatline/evaluator"
	"github.com/robbyt/go-tapescript/platform/constants"
	"github.com/robbyt/go-tapescript/platform/data"
	"github.com/robbyt/go-tapescript/platform/program"
	"github.com/robbyt/go-tapescript/platform/program/loader"
)

// FromFlatlineLoader creates a flatline evaluator from a loader with dynamic
// data only (ContextProvider).
//
// Input parameters:
// - logHandler: logger handler for logging
// - ldr: loader implementation for loading the program document
//
// Returns an evaluator, which implements the platform.Evaluator interface.
func FromFlatlineLoader(
	logHandler slog.Handler,
	ldr loader.Loader,
) (*evaluator.Evaluator, error) {
	return NewEvaluator(
		logHandler,
		ldr,
		data.NewContextProvider(constants.EvalData),
	)
}

// FromFlatlineLoaderWithData creates a flatline evaluator with both static
// and dynamic data capabilities. To add runtime data, use the
// `AddDataToContext` method on the evaluator to add data to the context.
//
// Input parameters:
// - logHandler: logger handler for logging
// - ldr: loader implementation for loading the program document
// - staticData: map of initial variables seeded for every evaluation
//
// Returns an evaluator, which implements the platform.Evaluator interface.
func FromFlatlineLoaderWithData(
	logHandler slog.Handler,
	ldr loader.Loader,
	staticData map[string]any,
) (*evaluator.Evaluator, error) {
	staticProvider := data.NewStaticProvider(staticData)
	dynamicProvider := data.NewContextProvider(constants.EvalData)
	compositeProvider := data.NewCompositeProvider(staticProvider, dynamicProvider)

	return NewEvaluator(
		logHandler,
		ldr,
		compositeProvider,
	)
}

// NewCompiler creates a new flatline compiler using the functional options
// pattern. Returns a compiler implementing the program.Compiler interface.
func NewCompiler(opts ...compiler.FunctionalOption) (*compiler.Compiler, error) {
	return compiler.New(opts...)
}

// NewEvaluator creates a flatline evaluator with the token program decoded,
// and ready for execution. Returns an Evaluator, which implements the
// platform.Evaluator interface.
func NewEvaluator(
	logHandler slog.Handler,
	ldr loader.Loader,
	dataProvider data.Provider,
) (*evaluator.Evaluator, error) {
	if dataProvider == nil {
		return nil, fmt.Errorf("provider is nil")
	}

	var compilerOptions []compiler.FunctionalOption
	if logHandler != nil {
		compilerOptions = append(compilerOptions, compiler.WithLogHandler(logHandler))
	}
	compiler, err := NewCompiler(compilerOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create flatline compiler: %w", err)
	}

	execUnitID := ""
	sourceURL := ldr.GetSourceURL()
	if sourceURL != nil {
		execUnitID = sourceURL.String()
	}

	// Create executable unit (to decode and validate the program document)
	execUnit, err := program.NewExecutableUnit(
		logHandler,
		execUnitID,
		ldr,
		compiler,
		dataProvider,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return evaluator.New(logHandler, execUnit), nil
}

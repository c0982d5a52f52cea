package program

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-tapescript/internal/helpers"
	"github.com/robbyt/go-tapescript/platform/data"
	"github.com/robbyt/go-tapescript/platform/program/loader"
)

const checksumLength = 12

// ExecutableUnit is one compiled version of a program: its validated
// content, the loader and compiler that produced it, and the data provider
// that feeds its evaluations. Build it once, evaluate it many times.
type ExecutableUnit struct {
	// ID identifies this unit, by default a truncated checksum of the
	// program source.
	ID string

	// CreatedAt records when this unit was compiled.
	CreatedAt time.Time

	// Loader is the source the program document was read from.
	Loader loader.Loader

	// Compiler is the engine-specific compiler that validated this unit.
	Compiler Compiler

	// Content holds the validated document and its decoded form.
	Content ExecutableContent

	// DataProvider supplies input variables at evaluation time. When built
	// with NewExecutableUnit this is a CompositeProvider layering the
	// caller's runtime provider over the static seed data.
	DataProvider data.Provider

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewExecutableUnit loads a program document through the loader, compiles
// it, and wraps the result with its evaluation data sources. When versionID
// is empty, a truncated sha256 checksum of the compiled source is used.
// Static seed data (sData) is layered under the runtime dataProvider, so
// per-run values override the seed for duplicate names.
func NewExecutableUnit(
	handler slog.Handler,
	versionID string,
	programLoader loader.Loader,
	compiler Compiler,
	dataProvider data.Provider,
	sData map[string]any,
) (*ExecutableUnit, error) {
	handler, logger := helpers.SetupLogger(handler, "program", "ExecutableUnit")

	if compiler == nil {
		return nil, ErrNoCompiler
	}
	if programLoader == nil {
		return nil, ErrNoLoader
	}

	if sData == nil {
		sData = make(map[string]any)
	}

	reader, err := programLoader.GetReader()
	if err != nil {
		return nil, fmt.Errorf("failed to get reader from loader: %w", err)
	}

	exe, err := compiler.Compile(reader)
	if err != nil {
		return nil, fmt.Errorf("compiler failed: %w", err)
	}

	if versionID == "" {
		versionID = helpers.SHA256(exe.GetSource())
		if len(versionID) > checksumLength {
			versionID = versionID[:checksumLength]
		}
	}

	staticProvider := data.NewStaticProvider(sData)

	// Runtime data must override the static seed for duplicate keys, so the
	// static provider goes first in the chain.
	var combinedProvider data.Provider
	if dataProvider != nil {
		combinedProvider = data.NewCompositeProvider(staticProvider, dataProvider)
	} else {
		combinedProvider = staticProvider
	}

	return &ExecutableUnit{
		ID:           versionID,
		CreatedAt:    time.Now(),
		Loader:       programLoader,
		Content:      exe,
		Compiler:     compiler,
		DataProvider: combinedProvider,
		logHandler:   handler,
		logger:       logger.With("ID", versionID),
	}, nil
}

func (exe *ExecutableUnit) String() string {
	return fmt.Sprintf("ExecutableUnit{ID: %s, CreatedAt: %s, Compiler: %s, Loader: %s}",
		exe.ID, exe.CreatedAt, exe.Compiler, exe.Loader)
}

// GetID returns the identifier for this program version.
func (exe *ExecutableUnit) GetID() string {
	return exe.ID
}

// GetContent returns the validated and decoded program content.
func (exe *ExecutableUnit) GetContent() ExecutableContent {
	return exe.Content
}

// GetCreatedAt returns the timestamp when this unit was compiled.
func (exe *ExecutableUnit) GetCreatedAt() time.Time {
	return exe.CreatedAt
}

// GetCompiler returns the compiler that validated this unit.
func (exe *ExecutableUnit) GetCompiler() Compiler {
	return exe.Compiler
}

// GetLoader returns the loader the program document was read from.
func (exe *ExecutableUnit) GetLoader() loader.Loader {
	return exe.Loader
}

// GetDataProvider returns the data provider feeding this unit's evaluations.
func (exe *ExecutableUnit) GetDataProvider() data.Provider {
	return exe.DataProvider
}

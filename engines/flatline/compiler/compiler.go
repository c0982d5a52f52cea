package compiler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/robbyt/go-tapescript/engines/flatline/token"
	"github.com/robbyt/go-tapescript/platform/program"
)

// Compiler validates flatline program documents and decodes them into the
// token sequence the machine executes.
type Compiler struct {
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a new flatline Compiler instance with the provided options.
func New(opts ...FunctionalOption) (*Compiler, error) {
	c := &Compiler{}
	c.applyDefaults()

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying compiler option: %w", err)
		}
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid compiler configuration: %w", err)
	}

	c.setupLogger()

	return c, nil
}

func (c *Compiler) String() string {
	return "flatline.Compiler"
}

// Compile reads a program document and turns it into executable content.
func (c *Compiler) Compile(reader io.ReadCloser) (program.ExecutableContent, error) {
	if reader == nil {
		return nil, ErrContentNil
	}

	documentBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read program document: %w", err)
	}

	if err := reader.Close(); err != nil {
		return nil, fmt.Errorf("failed to close reader: %w", err)
	}

	return c.compile(documentBytes)
}

func (c *Compiler) compile(documentBytes []byte) (*executable, error) {
	logger := c.logger.WithGroup("compile")
	if len(documentBytes) == 0 {
		logger.Error("Compile called with empty document")
		return nil, ErrContentNil
	}

	logger.Debug("Starting validation")

	tokens, err := token.UnmarshalDocument(documentBytes)
	if err != nil {
		if errors.Is(err, token.ErrEmptyDocument) {
			logger.Warn("Document contains no tokens")
			return nil, fmt.Errorf("%w: %w", ErrNoTokens, err)
		}
		logger.Warn("Validation failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	flatlineExec := newExecutable(documentBytes, tokens)
	if flatlineExec == nil {
		logger.Warn("Failed to create executable from tokens")
		return nil, ErrExecCreationFailed
	}

	logger.Debug("Validation completed", "tokens", len(tokens))
	return flatlineExec, nil
}

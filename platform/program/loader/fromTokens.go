package loader

import (
	"bytes"
	"fmt"
	"io"
	"net/url"

	"github.com/robbyt/go-tapescript/engines/flatline/token"
	"github.com/robbyt/go-tapescript/internal/helpers"
)

// FromTokens implements the Loader interface for programs assembled
// in-process as token slices, the primary input shape for this library.
// The tokens are rendered once into the canonical document form, so the
// compiler sees the same bytes it would read from any other source.
type FromTokens struct {
	tokens    []token.Token
	document  []byte
	sourceURL *url.URL
}

// NewFromTokens creates a Loader from a token slice. The slice must be
// non-empty; it is rendered to a program document at construction, so later
// mutations of the caller's slice do not leak into the loader.
func NewFromTokens(tokens []token.Token) (*FromTokens, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: no tokens provided", ErrInputEmpty)
	}

	document, err := token.MarshalDocument(tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to render program document: %w", err)
	}

	contentHash := helpers.SHA256Bytes(document)[:8]
	u, err := url.Parse("tokens://inline/" + contentHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromTokens{
		tokens:    tokens,
		document:  document,
		sourceURL: u,
	}, nil
}

func (l *FromTokens) String() string {
	return fmt.Sprintf("loader.FromTokens{Tokens: %d}", len(l.tokens))
}

// GetReader returns a new reader over the rendered program document.
func (l *FromTokens) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(l.document)), nil
}

// GetSourceURL returns the source URL of the program.
func (l *FromTokens) GetSourceURL() *url.URL {
	return l.sourceURL
}

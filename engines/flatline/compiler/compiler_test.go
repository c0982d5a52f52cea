package compiler

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/robbyt/go-tapescript/engines/flatline/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockProgramReaderCloser implements io.ReadCloser for testing
type mockProgramReaderCloser struct {
	*mock.Mock
	content string
	offset  int
}

func newMockProgramReaderCloser(content string) *mockProgramReaderCloser {
	return &mockProgramReaderCloser{
		Mock:    &mock.Mock{},
		content: content,
	}
}

func (m *mockProgramReaderCloser) Read(p []byte) (n int, err error) {
	if m.offset >= len(m.content) {
		return 0, io.EOF
	}
	n = copy(p, m.content[m.offset:])
	m.offset += n
	return n, nil
}

func (m *mockProgramReaderCloser) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("basic creation", func(t *testing.T) {
		comp, err := New(
			WithLogHandler(slog.NewTextHandler(os.Stdout, nil)),
		)
		require.NoError(t, err)
		require.NotNil(t, comp)
		require.Equal(t, "flatline.Compiler", comp.String())
	})

	t.Run("with logger", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, nil)
		logger := slog.New(handler)
		comp, err := New(WithLogger(logger))
		require.NoError(t, err)
		require.NotNil(t, comp)
	})

	t.Run("defaults", func(t *testing.T) {
		comp, err := New()
		require.NoError(t, err)
		require.NotNil(t, comp)
	})

	t.Run("nil handler rejected", func(t *testing.T) {
		comp, err := New(WithLogHandler(nil))
		require.Error(t, err)
		require.Nil(t, comp)
	})

	t.Run("nil logger rejected", func(t *testing.T) {
		comp, err := New(WithLogger(nil))
		require.Error(t, err)
		require.Nil(t, comp)
	})
}

func TestCompiler_Compile(t *testing.T) {
	t.Parallel()

	newCompiler := func(t *testing.T) *Compiler {
		t.Helper()
		comp, err := New(WithLogHandler(slog.NewTextHandler(os.Stdout, nil)))
		require.NoError(t, err, "Failed to create compiler")
		return comp
	}

	t.Run("success cases", func(t *testing.T) {
		tests := []struct {
			name     string
			document string
			tokens   int
		}{
			{
				name: "single literal",
				document: `
tokens:
  - num: 42
`,
				tokens: 1,
			},
			{
				name: "assignment",
				document: `
tokens:
  - var: total
  - op: "="
  - num: 99
`,
				tokens: 3,
			},
			{
				name: "loop with legacy operator spelling",
				document: `
tokens:
  - ctl: for
  - var: i
  - num: 1
  - num: 5
  - var: sum
  - op: "+"
  - var: i
  - ctl: endfor
  - var: sum
`,
				tokens: 9,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				comp := newCompiler(t)

				reader := newMockProgramReaderCloser(tt.document)
				reader.On("Close").Return(nil)

				content, err := comp.Compile(reader)
				require.NoError(t, err)
				require.NotNil(t, content)

				assert.Equal(t, tt.document, content.GetSource())

				toks, ok := content.GetByteCode().([]token.Token)
				require.True(t, ok, "bytecode should be a token slice")
				assert.Len(t, toks, tt.tokens)

				reader.AssertExpectations(t)
			})
		}
	})

	t.Run("error cases", func(t *testing.T) {
		tests := []struct {
			name     string
			document string
			wantErr  error
		}{
			{
				name:     "empty document",
				document: "",
				wantErr:  ErrContentNil,
			},
			{
				name: "empty token list",
				document: `
tokens: []
`,
				wantErr: ErrNoTokens,
			},
			{
				name: "not yaml",
				document: `
}{ this is not yaml
`,
				wantErr: ErrValidationFailed,
			},
			{
				name: "unknown operator spelling",
				document: `
tokens:
  - op: "%"
`,
				wantErr: ErrValidationFailed,
			},
			{
				name: "two keys in one entry",
				document: `
tokens:
  - num: 1
    var: x
`,
				wantErr: ErrValidationFailed,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				comp := newCompiler(t)

				content, err := comp.Compile(io.NopCloser(strings.NewReader(tt.document)))
				require.Error(t, err)
				assert.Nil(t, content)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})

	t.Run("nil reader", func(t *testing.T) {
		comp := newCompiler(t)
		content, err := comp.Compile(nil)
		require.Error(t, err)
		assert.Nil(t, content)
		assert.ErrorIs(t, err, ErrContentNil)
	})
}

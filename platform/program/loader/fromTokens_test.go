package loader

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-tapescript/engines/flatline/token"
)

func TestNewFromTokens(t *testing.T) {
	t.Parallel()

	program := []token.Token{
		token.Variable("x"),
		token.Operator(token.OpAssign),
		token.Number(5),
	}

	t.Run("valid tokens", func(t *testing.T) {
		l, err := NewFromTokens(program)
		require.NoError(t, err)
		require.NotNil(t, l)

		u := l.GetSourceURL()
		require.NotNil(t, u)
		assert.Equal(t, "tokens", u.Scheme)
	})

	t.Run("document round trips", func(t *testing.T) {
		l, err := NewFromTokens(program)
		require.NoError(t, err)

		reader, err := l.GetReader()
		require.NoError(t, err)
		defer func() { require.NoError(t, reader.Close()) }()

		document, err := io.ReadAll(reader)
		require.NoError(t, err)

		decoded, err := token.UnmarshalDocument(document)
		require.NoError(t, err)
		assert.Equal(t, program, decoded)
	})

	t.Run("each reader starts fresh", func(t *testing.T) {
		l, err := NewFromTokens(program)
		require.NoError(t, err)

		r1, err := l.GetReader()
		require.NoError(t, err)
		first, err := io.ReadAll(r1)
		require.NoError(t, err)

		r2, err := l.GetReader()
		require.NoError(t, err)
		second, err := io.ReadAll(r2)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.NotEmpty(t, first)
	})

	t.Run("empty token slice", func(t *testing.T) {
		_, err := NewFromTokens(nil)
		require.ErrorIs(t, err, ErrInputEmpty)

		_, err = NewFromTokens([]token.Token{})
		require.ErrorIs(t, err, ErrInputEmpty)
	})

	t.Run("identical programs share a source URL", func(t *testing.T) {
		l1, err := NewFromTokens(program)
		require.NoError(t, err)
		l2, err := NewFromTokens(program)
		require.NoError(t, err)
		assert.Equal(t, l1.GetSourceURL().String(), l2.GetSourceURL().String())
	})
}

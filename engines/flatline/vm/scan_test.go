package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robbyt/go-tapescript/engines/flatline/token"
)

func TestFindMarker(t *testing.T) {
	t.Parallel()

	t.Run("empty range returns start for every kind", func(t *testing.T) {
		t.Parallel()
		toks := []token.Token{
			token.Number(1),
			token.Marker(token.EndFor),
		}
		kinds := []token.ControlKind{token.For, token.If, token.Else, token.EndFor, token.EndIf}
		for _, kind := range kinds {
			offset, found := findMarker(toks, len(toks), kind)
			assert.Equal(t, len(toks), offset, "kind %s", kind)
			assert.False(t, found, "kind %s", kind)
		}
	})

	t.Run("finds the first matching marker", func(t *testing.T) {
		t.Parallel()
		toks := []token.Token{
			token.Variable("x"),
			token.Operator(token.OpAdd),
			token.Number(1),
			token.Marker(token.EndFor),
			token.Marker(token.EndFor),
		}
		offset, found := findMarker(toks, 0, token.EndFor)
		assert.True(t, found)
		assert.Equal(t, 3, offset)
	})

	t.Run("marker at the start offset matches", func(t *testing.T) {
		t.Parallel()
		toks := []token.Token{
			token.Number(1),
			token.Marker(token.Else),
			token.Number(2),
		}
		offset, found := findMarker(toks, 1, token.Else)
		assert.True(t, found)
		assert.Equal(t, 1, offset)
	})

	t.Run("other marker kinds are skipped", func(t *testing.T) {
		t.Parallel()
		toks := []token.Token{
			token.Marker(token.Else),
			token.Marker(token.EndFor),
			token.Marker(token.EndIf),
		}
		offset, found := findMarker(toks, 0, token.EndIf)
		assert.True(t, found)
		assert.Equal(t, 2, offset)
	})

	t.Run("miss reports the start offset and not found", func(t *testing.T) {
		t.Parallel()
		toks := []token.Token{
			token.Variable("x"),
			token.Number(1),
		}
		offset, found := findMarker(toks, 0, token.EndIf)
		assert.False(t, found)
		assert.Equal(t, 0, offset)
	})

	t.Run("no nesting awareness", func(t *testing.T) {
		t.Parallel()
		// An inner block's terminator is indistinguishable from the outer
		// one: the scan stops at the first match regardless of structure.
		toks := []token.Token{
			token.Marker(token.For),
			token.Marker(token.EndFor),
			token.Marker(token.EndFor),
		}
		offset, found := findMarker(toks, 0, token.EndFor)
		assert.True(t, found)
		assert.Equal(t, 1, offset)
	})
}

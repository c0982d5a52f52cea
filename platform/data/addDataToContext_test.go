package data

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-tapescript/platform/constants"
)

func TestAddDataToContextHelper(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	t.Run("nil provider fails", func(t *testing.T) {
		ctx := t.Context()
		newCtx, err := AddDataToContextHelper(ctx, logger, nil, map[string]any{"x": 1.0})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no data provider available")
		assert.Equal(t, ctx, newCtx)
	})

	t.Run("nil logger falls back to the default", func(t *testing.T) {
		provider := NewContextProvider(constants.EvalData)
		ctx, err := AddDataToContextHelper(t.Context(), nil, provider, map[string]any{"x": 1.0})
		require.NoError(t, err)

		stored, err := provider.GetData(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1.0, stored["x"])
	})

	t.Run("provider errors are wrapped", func(t *testing.T) {
		ctx := t.Context()
		newCtx, err := AddDataToContextHelper(ctx, logger, newMockErrorProvider(),
			map[string]any{"x": 1.0})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to prepare context")
		assert.Equal(t, ctx, newCtx, "the original context comes back on failure")
	})

	t.Run("data lands in the enriched context", func(t *testing.T) {
		provider := NewContextProvider(constants.EvalData)
		ctx, err := AddDataToContextHelper(t.Context(), logger, provider, seedData)
		require.NoError(t, err)

		stored, err := provider.GetData(ctx)
		require.NoError(t, err)
		assertMapContainsExpectedHelper(t, seedData, stored)
	})
}

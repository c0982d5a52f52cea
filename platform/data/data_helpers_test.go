package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Shared test data sets used across the provider tests.
var (
	// Flat variable seed, the common case for program inputs.
	seedData = map[string]any{
		"x":       5.0,
		"label":   "run-a",
		"enabled": true,
	}

	// Nested data for exercising the deep-merge paths.
	layeredData = map[string]any{
		"x": 5.0,
		"limits": map[string]any{
			"low":   1.0,
			"inner": map[string]any{"epsilon": 1e-8},
		},
		"tags": []string{"one", "two"},
	}
)

// MockProvider is a testify mock implementation of Provider.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GetData(ctx context.Context) (map[string]any, error) {
	args := m.Called(ctx)
	data, _ := args.Get(0).(map[string]any)
	return data, args.Error(1)
}

func (m *MockProvider) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	args := m.Called(ctx, data)
	newCtx, _ := args.Get(0).(context.Context)
	return newCtx, args.Error(1)
}

// newMockErrorProvider creates a mock provider whose every call fails.
func newMockErrorProvider() *MockProvider {
	provider := new(MockProvider)
	provider.On("GetData", mock.Anything).Return(nil, assert.AnError)
	provider.On("AddDataToContext", mock.Anything, mock.Anything).
		Return(nil, assert.AnError)
	return provider
}

// assertMapContainsExpectedHelper recursively asserts that actual carries
// every key/value pair from expected.
func assertMapContainsExpectedHelper(t *testing.T, expected, actual map[string]any) {
	t.Helper()
	for key, expectedValue := range expected {
		actualValue, exists := actual[key]
		require.True(t, exists, "key should exist: %s", key)

		expectedMap, expectedIsMap := expectedValue.(map[string]any)
		actualMap, actualIsMap := actualValue.(map[string]any)

		if expectedIsMap && actualIsMap {
			assertMapContainsExpectedHelper(t, expectedMap, actualMap)
		} else {
			assert.Equal(t, expectedValue, actualValue, "value should match for key: %s", key)
		}
	}
}

// getDataCheckHelper verifies repeated GetData calls agree with each other.
func getDataCheckHelper(t *testing.T, provider Provider, ctx context.Context) {
	t.Helper()
	result1, err1 := provider.GetData(ctx)
	require.NoError(t, err1)

	result2, err2 := provider.GetData(ctx)
	require.NoError(t, err2)

	assert.Equal(t, result1, result2, "repeated GetData calls should agree")
}

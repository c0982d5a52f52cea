package data

import (
	"context"
	"errors"
	"maps"
)

// ErrStaticProviderNoRuntimeUpdates is returned by StaticProvider's
// AddDataToContext, which cannot accept new data after construction.
var ErrStaticProviderNoRuntimeUpdates = errors.New(
	"StaticProvider doesn't support adding data at runtime")

// StaticProvider returns a fixed map of data, defined at creation. Useful
// when the variable seed for a program is known in advance and never changes
// between runs.
type StaticProvider struct {
	data map[string]any
}

// NewStaticProvider creates a StaticProvider with the given data map.
// A nil map is stored as an empty one.
func NewStaticProvider(data map[string]any) *StaticProvider {
	if data == nil {
		data = make(map[string]any)
	}
	return &StaticProvider{data: data}
}

// GetData returns a copy of the static data, regardless of the context.
func (p *StaticProvider) GetData(_ context.Context) (map[string]any, error) {
	return maps.Clone(p.data), nil
}

// AddDataToContext always fails: static data is sealed at construction.
// CompositeProvider recognizes this error and carries on with the other
// providers in its chain.
func (p *StaticProvider) AddDataToContext(
	ctx context.Context,
	_ ...map[string]any,
) (context.Context, error) {
	return ctx, ErrStaticProviderNoRuntimeUpdates
}

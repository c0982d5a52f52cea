package data

import (
	"context"
	"errors"
	"fmt"
	"maps"
)

// CompositeProvider chains multiple providers, later ones overriding values
// from earlier ones. The usual arrangement layers per-run context data over
// a static seed.
type CompositeProvider struct {
	providers []Provider
}

// NewCompositeProvider creates a provider that queries the given providers
// in order.
func NewCompositeProvider(providers ...Provider) *CompositeProvider {
	return &CompositeProvider{
		providers: providers,
	}
}

// GetData queries every provider in sequence and merges the results into one
// map, deep-merging nested maps so later providers override individual keys
// rather than whole subtrees. The first provider failure aborts the merge.
func (p *CompositeProvider) GetData(ctx context.Context) (map[string]any, error) {
	result := make(map[string]any)

	for i, provider := range p.providers {
		if provider == nil {
			continue
		}

		data, err := provider.GetData(ctx)
		if err != nil {
			return nil, fmt.Errorf("error from provider %d: %w", i, err)
		}

		result = deepMerge(result, data)
	}

	return result, nil
}

// deepMerge recursively merges map[string]any values. dst wins over src for
// scalar conflicts; nested maps merge key by key. Slices and other types are
// replaced whole.
func deepMerge(src, dst map[string]any) map[string]any {
	result := maps.Clone(src)

	for k, dstVal := range dst {
		srcVal, exists := result[k]
		if !exists {
			result[k] = dstVal
			continue
		}

		srcMap, srcIsMap := srcVal.(map[string]any)
		dstMap, dstIsMap := dstVal.(map[string]any)

		if srcIsMap && dstIsMap {
			result[k] = deepMerge(srcMap, dstMap)
		} else {
			result[k] = dstVal
		}
	}

	return result
}

// AddDataToContext offers the data to every provider in the chain. Static
// providers always refuse runtime data; their refusals only surface as an
// error when the chain contains nothing but static providers, so that a
// static+context composite accepts updates through the context half.
func (p *CompositeProvider) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	finalCtx := ctx

	var errs []error
	var staticErrs []error
	successCount := 0
	updatableCount := 0
	staticCount := 0

	for i, provider := range p.providers {
		if provider == nil {
			continue
		}

		_, isStatic := provider.(*StaticProvider)
		if isStatic {
			staticCount++
		} else {
			updatableCount++
		}

		nextCtx, err := provider.AddDataToContext(finalCtx, data...)
		if err != nil {
			if isStatic && errors.Is(err, ErrStaticProviderNoRuntimeUpdates) {
				staticErrs = append(staticErrs, fmt.Errorf("error from provider %d: %w", i, err))
				continue
			}
			errs = append(errs, fmt.Errorf("error from provider %d: %w", i, err))
			continue
		}

		finalCtx = nextCtx
		successCount++
	}

	if staticCount > 0 && updatableCount == 0 && len(staticErrs) > 0 {
		return ctx, errors.Join(staticErrs...)
	}

	if updatableCount > 0 && successCount == 0 && len(errs) > 0 {
		return ctx, errors.Join(errs...)
	}

	return finalCtx, nil
}

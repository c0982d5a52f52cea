package data

import (
	"context"
	"fmt"
	"log/slog"
)

// AddDataToContextHelper implements the context-enrichment step shared by
// engine evaluators: it hands the data maps to the provider and returns the
// enriched context. Engines call this from their AddDataToContext methods so
// the behavior stays identical across implementations.
func AddDataToContextHelper(
	ctx context.Context,
	logger *slog.Logger,
	provider Provider,
	d ...map[string]any,
) (context.Context, error) {
	if logger == nil {
		// TODO: drop this fallback once all callers pass their own logger
		logger = slog.Default()
	}

	if provider == nil {
		logger.WarnContext(ctx, "no data provider available for context preparation")
		return ctx, fmt.Errorf("no data provider available")
	}

	enrichedCtx, err := provider.AddDataToContext(ctx, d...)
	if err != nil {
		return ctx, fmt.Errorf("failed to prepare context: %w", err)
	}

	return enrichedCtx, err
}

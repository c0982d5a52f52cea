package data

import (
	"context"
)

// Getter retrieves the input data for an evaluation from a context.
type Getter interface {
	GetData(ctx context.Context) (map[string]any, error)
}

// Setter prepares data for program evaluation by enriching a context.
// Separating preparation from evaluation lets the two steps run on different
// goroutines or hosts; the enriched context is the hand-off between them.
type Setter interface {
	// AddDataToContext enriches a context with data for program evaluation.
	// The variadic parameter accepts maps with string keys and arbitrary
	// values; later maps override earlier ones for duplicate keys.
	//
	// Example:
	//  inputs := map[string]any{"threshold": 10.0}
	//  enrichedCtx, err := evaluator.AddDataToContext(ctx, inputs)
	//  if err != nil {
	//      return err
	//  }
	//  result, err := evaluator.Eval(enrichedCtx)
	AddDataToContext(ctx context.Context, data ...map[string]any) (context.Context, error)
}

// Provider is the access point for runtime data during program execution.
type Provider interface {
	// Getter retrieves associated data from a context during evaluation.
	Getter

	// Setter links data to a context so a later evaluation can reach it
	// through the ExecutableUnit's DataProvider.
	Setter
}

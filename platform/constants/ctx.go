// Description: This file contains constants used for accessing values from context objects.
package constants

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// EvalData is the key used to store evaluation data in the context.
	// Values stored under it become the variable seed for the next Eval call,
	// loaded with ctx.Value().
	EvalData ContextKey = "eval_data"
)

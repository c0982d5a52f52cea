// Package tapescript evaluates flat, pre-tokenized instruction programs.
//
// Programs are ordered token sequences (number literals, variable
// references, operators and control markers) assembled by the caller or
// loaded from YAML program documents. There is no source language and no
// lexer: tokens arrive already classified, and the flatline engine walks
// them positionally.
//
// The factory functions here cover the common setups. For anything more
// involved (custom loaders, data provider chains), use the engines/flatline
// package directly.
package tapescript

import (
	"log/slog"

	"github.com/robbyt/go-tapescript/engines/flatline"
	"github.com/robbyt/go-tapescript/engines/flatline/token"
	"github.com/robbyt/go-tapescript/platform"
	"github.com/robbyt/go-tapescript/platform/program/loader"
)

// FromTokens creates an evaluator from a caller-assembled token slice, with
// dynamic data only. Use AddDataToContext on the returned evaluator to seed
// variables for each Eval call.
func FromTokens(
	handler slog.Handler,
	toks []token.Token,
) (platform.Evaluator, error) {
	ldr, err := loader.NewFromTokens(toks)
	if err != nil {
		return nil, err
	}
	return flatline.FromFlatlineLoader(handler, ldr)
}

// FromTokensWithData creates an evaluator from a caller-assembled token
// slice, with both static and dynamic data capabilities. The staticData
// variables are seeded for every evaluation; runtime data added with
// AddDataToContext overrides them for duplicate names.
func FromTokensWithData(
	handler slog.Handler,
	toks []token.Token,
	staticData map[string]any,
) (platform.Evaluator, error) {
	ldr, err := loader.NewFromTokens(toks)
	if err != nil {
		return nil, err
	}
	return flatline.FromFlatlineLoaderWithData(handler, ldr, staticData)
}

// FromFlatlineString creates an evaluator from an inline YAML program
// document, with dynamic data only.
func FromFlatlineString(
	handler slog.Handler,
	document string,
) (platform.Evaluator, error) {
	ldr, err := loader.NewFromString(document)
	if err != nil {
		return nil, err
	}
	return flatline.FromFlatlineLoader(handler, ldr)
}

// FromFlatlineStringWithData creates an evaluator from an inline YAML
// program document, with both static and dynamic data capabilities.
func FromFlatlineStringWithData(
	handler slog.Handler,
	document string,
	staticData map[string]any,
) (platform.Evaluator, error) {
	ldr, err := loader.NewFromString(document)
	if err != nil {
		return nil, err
	}
	return flatline.FromFlatlineLoaderWithData(handler, ldr, staticData)
}

// FromFlatlineFile creates an evaluator from a YAML program document on
// disk, with dynamic data only.
func FromFlatlineFile(
	handler slog.Handler,
	path string,
) (platform.Evaluator, error) {
	ldr, err := loader.NewFromDisk(path)
	if err != nil {
		return nil, err
	}
	return flatline.FromFlatlineLoader(handler, ldr)
}

// FromFlatlineFileWithData creates an evaluator from a YAML program
// document on disk, with both static and dynamic data capabilities.
func FromFlatlineFileWithData(
	handler slog.Handler,
	path string,
	staticData map[string]any,
) (platform.Evaluator, error) {
	ldr, err := loader.NewFromDisk(path)
	if err != nil {
		return nil, err
	}
	return flatline.FromFlatlineLoaderWithData(handler, ldr, staticData)
}

package compiler

import "errors"

var (
	ErrContentNil         = errors.New("flatline content is nil")
	ErrNoTokens           = errors.New("flatline program has no tokens")
	ErrValidationFailed   = errors.New("flatline program validation error")
	ErrExecCreationFailed = errors.New("unable to create flatline executable")
)

package program

import "errors"

var (
	ErrNoCompiler = errors.New("compiler is nil")
	ErrNoLoader   = errors.New("loader is nil")
)

package loader

import "errors"

var (
	ErrSchemeUnsupported   = errors.New("unsupported scheme")
	ErrProgramNotAvailable = errors.New("program not available")
	ErrInputEmpty          = errors.New("input is empty")
)

package compiler

import (
	"github.com/robbyt/go-tapescript/engines/flatline/token"
)

// executable is a validated flatline program: the original document bytes
// plus the decoded token sequence the machine runs.
type executable struct {
	documentBytes []byte
	tokens        []token.Token
}

func newExecutable(documentBytes []byte, tokens []token.Token) *executable {
	if len(documentBytes) == 0 || len(tokens) == 0 {
		return nil
	}

	return &executable{
		documentBytes: documentBytes,
		tokens:        tokens,
	}
}

func (e *executable) GetSource() string {
	return string(e.documentBytes)
}

func (e *executable) GetByteCode() any {
	return e.tokens
}

func (e *executable) GetFlatlineByteCode() []token.Token {
	return e.tokens
}

package program

import "io"

// Compiler validates a program document before execution. It checks the
// document's structure and returns the decoded form as ExecutableContent; a
// failed check is the only place structural errors surface, so evaluation
// can assume well-shaped input.
//
// Example usage:
//
//	var comp Compiler = flatlineCompiler.New()
//	content, err := comp.Compile(reader)
//	if err != nil {
//	    // handle validation error
//	}
type Compiler interface {
	// Compile reads a program document from the reader, validates it, and
	// returns it as executable content. The reader is consumed and closed.
	Compile(reader io.ReadCloser) (ExecutableContent, error)
}

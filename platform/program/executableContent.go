package program

// ExecutableContent is a validated program, ready for execution. It carries
// both the original document text and the decoded, execution-ready form.
type ExecutableContent interface {
	// GetSource returns the original program document as a string, before
	// any decoding.
	GetSource() string

	// GetByteCode returns the decoded program in an engine-specific format.
	// The evaluator asserts it into the type it requires at run time, so the
	// content and the engine must be built for each other.
	GetByteCode() any
}

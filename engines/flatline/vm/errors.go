package vm

import "errors"

// Evaluation failures. All of them abort the Evaluate call that detected them
// and propagate unchanged through any enclosing recursive evaluation; nothing
// is retried, substituted or logged on the way up. Raise sites wrap these with
// positional context, so match with errors.Is.
var (
	// ErrInvalidAssignment: an assign operator without a variable reference
	// exactly two tokens back, or with a variable reference on the right.
	ErrInvalidAssignment = errors.New("invalid assignment")

	// ErrUndefinedVariable: a variable was read before ever being assigned.
	ErrUndefinedVariable = errors.New("undefined variable")

	// ErrInvalidForLoop: too few tokens after a for marker, or the loop
	// variable / accumulator slots do not hold variable references.
	ErrInvalidForLoop = errors.New("invalid for loop")

	// ErrMissingEndFor: a for marker with no endfor anywhere after its body.
	ErrMissingEndFor = errors.New("missing endfor marker")

	// ErrInvalidIfStatement: too few tokens after an if marker to hold the
	// three-token condition.
	ErrInvalidIfStatement = errors.New("invalid if statement")

	// ErrMissingEndIf: an if marker with no endif after it.
	ErrMissingEndIf = errors.New("missing endif marker")
)

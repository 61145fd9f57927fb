package match

import "errors"

// ErrUndefinedFunction indicates a constraint calls a user function name
// that was never registered with the Checker. This is a fatal, stop-the-
// match error: an undefined function means the schema cannot be evaluated
// at all, not merely that this component fails to match.
var ErrUndefinedFunction = errors.New("match: undefined user function")

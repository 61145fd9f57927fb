package ndnname

import "errors"

var (
	// ErrEmptyComponent indicates a "//" or a trailing slash produced a
	// zero-length path segment.
	ErrEmptyComponent = errors.New("ndnname: empty path component")

	// ErrInvalidPercentEncoding indicates a malformed "%XX" escape.
	ErrInvalidPercentEncoding = errors.New("ndnname: invalid percent-encoding")

	// ErrComponentTooLarge indicates a component's encoded length does
	// not fit in the wire format's length field.
	ErrComponentTooLarge = errors.New("ndnname: component too large")
)

package tlv

import "errors"

// Decode errors.
var (
	// ErrUnexpectedEOF indicates the buffer ended before a declared length
	// could be satisfied.
	ErrUnexpectedEOF = errors.New("tlv: unexpected end of input")

	// ErrInvalidVarNum indicates a VarNum was truncated: the buffer ended
	// before its discriminator byte or the width bytes it signals.
	ErrInvalidVarNum = errors.New("tlv: truncated VarNum")

	// ErrInvalidNaturalSize indicates a natural-number field's length was
	// not one of the four sizes the wire format allows (1, 2, 4, 8).
	ErrInvalidNaturalSize = errors.New("tlv: natural number has invalid size")

	// ErrTrailingBytes indicates bytes remained after decoding the
	// outermost structure, which the outermost decode never tolerates.
	ErrTrailingBytes = errors.New("tlv: trailing bytes after outermost structure")

	// ErrOverflow indicates an encoded VarNum or length exceeds what the
	// target platform can represent.
	ErrOverflow = errors.New("tlv: value overflow")
)

package sigverify

import "errors"

// ErrInvalidPublicKey is returned when a public key is malformed or does
// not lie on the expected curve.
var ErrInvalidPublicKey = errors.New("sigverify: invalid public key")

// ErrInvalidSignatureLength is returned when a signature is not the fixed
// size a verifier expects.
var ErrInvalidSignatureLength = errors.New("sigverify: invalid signature length")
